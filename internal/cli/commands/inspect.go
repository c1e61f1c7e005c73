package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/basepair-labs/sigplot/internal/cli/output"
	"github.com/basepair-labs/sigplot/internal/engine"
	"github.com/basepair-labs/sigplot/pkg/mutation"
	"github.com/basepair-labs/sigplot/pkg/sigdata"
)

// inspectReport is the machine-readable shape of an inspection.
type inspectReport struct {
	Path     string         `json:"path"`
	Rows     int            `json:"rows"`
	Samples  []string       `json:"samples"`
	Width    int            `json:"width"`
	Kind     string         `json:"kind"`
	Classes  []classSummary `json:"classes"`
	Missing  []string       `json:"missing_keys,omitempty"`
	Valid    bool           `json:"valid"`
	Problems []string       `json:"problems,omitempty"`
}

// classSummary aggregates one substitution class across all samples.
type classSummary struct {
	Class string  `json:"class"`
	Keys  int     `json:"keys"`
	Total float64 `json:"total"`
	Share float64 `json:"share_pct"`
}

// NewInspectCommand summarizes a matrix file without rendering it.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <matrix>",
		Short: "Summarize a signature matrix",
		Long: `Read a matrix file and report its shape: row and sample counts,
context width, the report kind a plot run would pick, per-class
totals, and any validation problems.

For trinucleotide matrices the summary also lists canonical 96-context
keys missing from the file.`,
		Example: `  sigplot inspect samples.tsv
  sigplot inspect samples.tsv --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
	return cmd
}

func runInspect(cmd *cobra.Command, matrixPath string) error {
	c := NewCommandContext(cmd)
	r := c.Renderer

	m, err := sigdata.ReadFile(matrixPath)
	if err != nil {
		return err
	}

	report := buildInspectReport(matrixPath, m)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(report)
	}
	renderInspectReport(r, report)
	return nil
}

func buildInspectReport(path string, m *sigdata.Matrix) *inspectReport {
	report := &inspectReport{
		Path:    path,
		Rows:    m.Rows(),
		Samples: m.SampleNames(),
		Width:   m.Width(),
		Kind:    detectKind(m.Width()),
		Valid:   true,
	}

	if err := m.Validate(); err != nil {
		report.Valid = false
		report.Problems = strings.Split(err.Error(), "\n")
	}

	report.Classes = summarizeClasses(m)

	if report.Width == 3 {
		present := make(map[string]bool, len(m.Keys))
		for _, key := range m.Keys {
			present[key] = true
		}
		for _, key := range mutation.Catalog96() {
			if !present[key] {
				report.Missing = append(report.Missing, key)
			}
		}
	}

	return report
}

// detectKind reports the report kind a plot run would choose for the
// context width, or "unknown" for widths no report accepts.
func detectKind(width int) string {
	switch {
	case width == 3:
		return engine.KindStandard
	case width > 3 && width%2 == 1:
		return engine.KindExtended
	default:
		return "unknown"
	}
}

// summarizeClasses totals every substitution class across all samples.
// Unparseable keys are skipped; Validate already reports them.
func summarizeClasses(m *sigdata.Matrix) []classSummary {
	keys := make(map[mutation.Class]int)
	totals := make(map[mutation.Class]float64)
	var grand float64

	for i, key := range m.Keys {
		t, err := mutation.Parse(key)
		if err != nil {
			continue
		}
		class := t.Class()
		keys[class]++
		for _, sample := range m.Samples {
			if i < len(sample.Values) {
				totals[class] += sample.Values[i]
				grand += sample.Values[i]
			}
		}
	}

	summaries := make([]classSummary, 0, len(mutation.Classes()))
	for _, class := range mutation.Classes() {
		share := 0.0
		if grand > 0 {
			share = totals[class] / grand * 100
		}
		summaries = append(summaries, classSummary{
			Class: string(class),
			Keys:  keys[class],
			Total: totals[class],
			Share: share,
		})
	}
	return summaries
}

func renderInspectReport(r *output.Renderer, report *inspectReport) {
	r.Header(1, "Matrix Inspection")
	r.Println("")
	r.Println(output.FormatKeyValue("Path", report.Path))
	r.Println(output.FormatKeyValue("Rows", fmt.Sprintf("%d", report.Rows)))
	r.Println(output.FormatKeyValue("Samples", fmt.Sprintf("%d (%s)", len(report.Samples), strings.Join(report.Samples, ", "))))
	r.Println(output.FormatKeyValue("Context width", fmt.Sprintf("%d", report.Width)))
	r.Println(output.FormatKeyValue("Report kind", report.Kind))
	r.Println("")

	header := []string{"Class", "Keys", "Total", "Share"}
	rows := make([][]string, 0, len(report.Classes))
	for _, cs := range report.Classes {
		rows = append(rows, []string{
			cs.Class,
			fmt.Sprintf("%d", cs.Keys),
			fmt.Sprintf("%.6g", cs.Total),
			fmt.Sprintf("%.1f%%", cs.Share),
		})
	}
	r.Table(header, rows)
	r.Println("")

	if len(report.Missing) > 0 {
		preview := report.Missing
		if len(preview) > 5 {
			preview = preview[:5]
		}
		r.Warning(fmt.Sprintf("%d of 96 canonical keys missing (e.g. %s)", len(report.Missing), strings.Join(preview, ", ")))
	}

	if report.Valid {
		r.Success("Matrix is valid")
		return
	}
	for _, problem := range report.Problems {
		r.Warning(problem)
	}
}
