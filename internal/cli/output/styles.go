package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// ID renders run identifiers.
	ID lipgloss.Style
	// FilePath renders paths to matrices and reports.
	FilePath lipgloss.Style

	// StatusSuccess and StatusFailed carry their glyph via SetString,
	// so styles.StatusSuccess.String() yields a ready-to-print marker.
	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
}

// DefaultStyles returns the colored style set used on terminals.
func DefaultStyles() *Styles {
	return &Styles{
		Header1:       lipgloss.NewStyle().Bold(true).Underline(true),
		Header2:       lipgloss.NewStyle().Bold(true),
		Bold:          lipgloss.NewStyle().Bold(true),
		Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Warning:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Info:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		ID:            lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		FilePath:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).SetString("✓"),
		StatusFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).SetString("✗"),
	}
}

// PlainStyles returns an uncolored style set. The glyphs survive so
// piped output still reads naturally.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header1:       plain,
		Header2:       plain,
		Bold:          plain,
		Muted:         plain,
		Success:       plain,
		Warning:       plain,
		Error:         plain,
		Info:          plain,
		ID:            plain,
		FilePath:      plain,
		StatusSuccess: lipgloss.NewStyle().SetString("✓"),
		StatusFailed:  lipgloss.NewStyle().SetString("✗"),
	}
}
