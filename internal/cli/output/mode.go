// Package output provides terminal rendering for the sigplot CLI.
//
// A Renderer wraps the command's stdout/stderr and adapts its output to
// the requested mode: styled text on a terminal, markdown when piped,
// or machine-readable JSON. Styling is built on lipgloss and degrades
// to plain text whenever colors are unwanted.
package output

// Mode selects how CLI output is formatted.
type Mode string

// OutputMode is an alias for Mode kept for readability at call sites
// that pass the mode through several layers.
type OutputMode = Mode

const (
	// ModeAuto picks text on a TTY and markdown otherwise.
	ModeAuto Mode = "auto"
	// ModeText produces styled human-readable output.
	ModeText Mode = "text"
	// ModeMarkdown produces markdown suitable for piping into docs.
	ModeMarkdown Mode = "markdown"
	// ModeJSON produces machine-readable JSON.
	ModeJSON Mode = "json"
)

// Valid reports whether m is a recognized output mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeAuto, ModeText, ModeMarkdown, ModeJSON, "":
		return true
	}
	return false
}

// Modes returns the accepted values for the --output flag.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}
}
