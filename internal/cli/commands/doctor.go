package commands

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spf13/cobra"

	"github.com/basepair-labs/sigplot/internal/cli/config"
	"github.com/basepair-labs/sigplot/internal/cli/output"
	"github.com/basepair-labs/sigplot/internal/document"
	"github.com/basepair-labs/sigplot/internal/render/raster"
)

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	Checks          []HealthCheck `json:"checks"`
	Score           int           `json:"score"`
	Recommendations []string      `json:"recommendations"`
	FailCount       int           `json:"fail_count"`
}

// HealthCheck is a single environment check result.
type HealthCheck struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Group   string   `json:"group"`
	Status  string   `json:"status"` // "pass", "warn", "error"
	Details []string `json:"details,omitempty"`
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that sigplot can render on this machine",
		Long: `Verify the rendering environment: configuration and palette, output
directory, document backend, embedded fonts and page geometry.

Checks are grouped by area and scored; the command exits non-zero
when any check fails outright, so it can gate CI pipelines.`,
		Example: `  # Check the environment
  sigplot doctor

  # Machine-readable report
  sigplot doctor --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd)
		},
	}
	return cmd
}

func runDoctor(cmd *cobra.Command) error {
	c := NewCommandContext(cmd)
	r := c.Renderer

	out := buildDoctorOutput(c.Cfg, r)

	var renderErr error
	switch r.EffectiveMode() {
	case output.ModeJSON:
		renderErr = r.JSON(out)
	case output.ModeMarkdown:
		renderErr = renderDoctorMarkdown(r, out)
	default:
		renderErr = renderDoctorText(r, out)
	}
	if renderErr != nil {
		return renderErr
	}

	if out.FailCount > 0 {
		return fmt.Errorf("%d check(s) failed", out.FailCount)
	}
	return nil
}

func buildDoctorOutput(cfg *config.Config, r *output.Renderer) *DoctorOutput {
	checks := []HealthCheck{
		checkConfigFile(),
		checkPalette(cfg),
		checkOutputDir(cfg),
		checkBackend(cfg),
		checkFonts(),
		checkPageGeometry(cfg),
		checkTerminal(r),
	}

	failCount := 0
	score := 100
	for _, check := range checks {
		switch check.Status {
		case "error":
			failCount++
			score -= 25
		case "warn":
			score -= 10
		}
	}
	if score < 0 {
		score = 0
	}

	return &DoctorOutput{
		Checks:          checks,
		Score:           score,
		Recommendations: doctorRecommendations(checks),
		FailCount:       failCount,
	}
}

func checkConfigFile() HealthCheck {
	check := HealthCheck{ID: "CFG01", Name: "Config file", Group: "configuration", Status: "pass"}
	if path := config.GetConfigFileUsed(); path != "" {
		check.Details = []string{path}
	} else {
		check.Details = []string{"built-in defaults (no sigplot.yaml found)"}
	}
	return check
}

func checkPalette(cfg *config.Config) HealthCheck {
	check := HealthCheck{ID: "CFG02", Name: "Color palette", Group: "configuration", Status: "pass"}
	if _, err := cfg.Palette(); err != nil {
		check.Status = "error"
		check.Details = []string{err.Error()}
	}
	return check
}

func checkOutputDir(cfg *config.Config) HealthCheck {
	check := HealthCheck{ID: "OUT01", Name: "Output directory", Group: "output", Status: "pass"}
	dir := cfg.Plot.OutDir

	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		check.Status = "warn"
		check.Details = []string{fmt.Sprintf("%s does not exist yet; it is created on first render", dir)}
	case err != nil:
		check.Status = "error"
		check.Details = []string{err.Error()}
	case !info.IsDir():
		check.Status = "error"
		check.Details = []string{fmt.Sprintf("%s exists but is not a directory", dir)}
	default:
		probe, err := os.CreateTemp(dir, ".sigplot-*")
		if err != nil {
			check.Status = "error"
			check.Details = []string{fmt.Sprintf("%s is not writable: %v", dir, err)}
			break
		}
		probe.Close()
		os.Remove(probe.Name())
		check.Details = []string{dir}
	}
	return check
}

func checkBackend(cfg *config.Config) HealthCheck {
	check := HealthCheck{ID: "OUT02", Name: "Document backend", Group: "output", Status: "pass"}
	if !document.IsRegistered(cfg.Plot.Backend) {
		check.Status = "error"
		check.Details = []string{fmt.Sprintf("unknown backend %q (available: %s)",
			cfg.Plot.Backend, strings.Join(document.ListFormats(), ", "))}
	} else {
		check.Details = []string{cfg.Plot.Backend}
	}
	return check
}

func checkFonts() HealthCheck {
	check := HealthCheck{ID: "RND01", Name: "Embedded fonts", Group: "rendering", Status: "pass"}
	if _, err := raster.New(16, 16); err != nil {
		check.Status = "error"
		check.Details = []string{err.Error()}
	}
	return check
}

func checkPageGeometry(cfg *config.Config) HealthCheck {
	check := HealthCheck{ID: "RND02", Name: "Page geometry", Group: "rendering", Status: "pass"}
	pxW := int(cfg.Plot.PageWidth * float64(cfg.Plot.DPI))
	pxH := int(cfg.Plot.PageHeight * float64(cfg.Plot.DPI))
	check.Details = []string{fmt.Sprintf("%gx%g in at %d dpi = %dx%d px",
		cfg.Plot.PageWidth, cfg.Plot.PageHeight, cfg.Plot.DPI, pxW, pxH)}
	if pxW > 8000 || pxH > 8000 {
		check.Status = "warn"
		check.Details = append(check.Details, "pages above 8000 px render slowly and produce large files")
	}
	return check
}

func checkTerminal(r *output.Renderer) HealthCheck {
	check := HealthCheck{ID: "ENV01", Name: "Terminal", Group: "environment", Status: "pass"}
	tty := "not a TTY"
	if r.IsTTY() {
		tty = "TTY"
	}
	check.Details = []string{fmt.Sprintf("stdout is %s, effective output mode %s", tty, r.EffectiveMode())}
	return check
}

// doctorRecommendations maps failing checks to fixes.
func doctorRecommendations(checks []HealthCheck) []string {
	var recs []string
	for _, check := range checks {
		if check.Status == "pass" {
			continue
		}
		switch check.ID {
		case "CFG02":
			recs = append(recs, "Fix the colors section of sigplot.yaml; values must be #RRGGBB")
		case "OUT01":
			recs = append(recs, "Point plot.out_dir at a writable directory or create it")
		case "OUT02":
			recs = append(recs, "Set plot.backend to a registered format (pdf or svg)")
		case "RND01":
			recs = append(recs, "Reinstall sigplot; the embedded font data is corrupt")
		case "RND02":
			recs = append(recs, "Lower plot.dpi or the page size in sigplot.yaml")
		}
	}
	return recs
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("sigplot Environment Report"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.Checks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println(styles.Bold.Render("   " + titleCaser.String(currentGroup)))
			r.Println(styles.Muted.Render("   " + strings.Repeat("-", 40)))
		}

		icon := styles.StatusSuccess.String()
		switch check.Status {
		case "warn":
			icon = styles.Warning.Render("!")
		case "error":
			icon = styles.StatusFailed.String()
		}

		r.Printf("   %s %s: %s\n", icon, check.ID, check.Name)
		for _, detail := range check.Details {
			r.Println(styles.Muted.Render("       - " + detail))
		}
	}
	r.Println("")

	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	scoreStyle := styles.Success
	if out.Score < 70 {
		scoreStyle = styles.Warning
	}
	if out.Score < 50 {
		scoreStyle = styles.Error
	}
	r.Printf("   Health Score: %s\n", scoreStyle.Render(fmt.Sprintf("%d/100", out.Score)))
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println(styles.Header2.Render("Recommendations"))
		for i, rec := range out.Recommendations {
			r.Printf("   %d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}

func renderDoctorMarkdown(r *output.Renderer, out *DoctorOutput) error {
	r.Println("# sigplot Environment Report")
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.Checks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println("## " + titleCaser.String(currentGroup))
			r.Println("")
		}

		status := "PASS"
		switch check.Status {
		case "warn":
			status = "WARN"
		case "error":
			status = "ERROR"
		}

		r.Printf("- **[%s]** %s: %s\n", status, check.ID, check.Name)
		for _, detail := range check.Details {
			r.Printf("  - %s\n", detail)
		}
	}
	r.Println("")

	r.Println("## Health Score")
	r.Println("")
	r.Printf("**%d/100**\n", out.Score)
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println("## Recommendations")
		r.Println("")
		for i, rec := range out.Recommendations {
			r.Printf("%d. %s\n", i+1, rec)
		}
		r.Println("")
	}

	return nil
}
