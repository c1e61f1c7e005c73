package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/basepair-labs/sigplot/internal/cli/output"
	"github.com/basepair-labs/sigplot/internal/engine"
	"github.com/basepair-labs/sigplot/pkg/sigdata"
)

// PlotOptions holds the plot command flags.
type PlotOptions struct {
	renderFlags
	JSON    bool
	Verbose bool
}

// NewPlotCommand renders a signature report from a matrix file.
func NewPlotCommand() *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "plot <matrix>",
		Short: "Render a mutational signature report",
		Long: `Render one signature chart per sample column of a tab-separated
matrix file into a multi-page document.

Trinucleotide matrices (keys like A[C>A]A) get the standard 96-context
chart; wider keys (like AA[C>A]AA) get the extended-context chart with
a stacked flanking-base heatmap. The report kind is detected from the
matrix unless --kind forces one.`,
		Example: `  # Render a 96-context matrix to figures/signatures.96.pdf
  sigplot plot samples.tsv

  # SVG output, one file per sample, normalized to frequencies
  sigplot plot samples.tsv --backend svg --normalize

  # Stream progress as JSON lines
  sigplot plot samples.tsv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, opts, args[0])
		},
	}

	addRenderFlags(cmd, &opts.renderFlags)
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "stream progress as JSON lines")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "show per-column render timing")

	return cmd
}

func runPlot(cmd *cobra.Command, opts *PlotOptions, matrixPath string) error {
	c := NewCommandContext(cmd)
	s := resolveRenderSettings(cmd, c.Cfg, &opts.renderFlags)

	if opts.JSON || c.Renderer.EffectiveMode() == output.ModeJSON {
		return runPlotJSON(cmd, c, s, matrixPath)
	}
	return runPlotPretty(cmd, c, s, opts.Verbose, matrixPath)
}

// runPlotPretty renders with spinner feedback on a terminal and a
// summary afterwards, in text or markdown depending on the renderer.
func runPlotPretty(cmd *cobra.Command, c *CommandContext, s renderSettings, verbose bool, matrixPath string) error {
	r := c.Renderer

	eng, err := c.newEngine(s, nil)
	if err != nil {
		return err
	}

	var spin *output.Spinner
	if r.EffectiveMode() == output.ModeText {
		spin = r.NewSpinner(fmt.Sprintf("Rendering %s", matrixPath))
		spin.Start()
	}

	report, err := eng.RenderFile(cmd.Context(), matrixPath, s.OutDir, s.Kind)
	if err != nil {
		if spin != nil {
			spin.Fail(fmt.Sprintf("Render failed for %s", matrixPath))
		}
		return err
	}

	summary := fmt.Sprintf("Rendered %d page(s) to %s (%dms)", report.Pages, report.OutputPath, report.TotalMS)
	if spin != nil {
		spin.Success(summary)
	} else {
		r.Header(2, "Signature Report")
		r.Println(output.FormatKeyValue("Matrix", matrixPath))
		r.Println(output.FormatKeyValue("Kind", report.Kind))
		r.Println(output.FormatKeyValue("Pages", fmt.Sprintf("%d", report.Pages)))
		r.Println(output.FormatKeyValue("Output", report.OutputPath))
		r.Println(output.FormatKeyValue("Total", fmt.Sprintf("%dms", report.TotalMS)))
	}

	if verbose {
		r.Println("")
		header := []string{"#", "Column", "Render ms"}
		rows := make([][]string, 0, len(report.Columns))
		for i, col := range report.Columns {
			rows = append(rows, []string{fmt.Sprintf("%d", i+1), col.Name, fmt.Sprintf("%d", col.RenderMS)})
		}
		r.Table(header, rows)
		r.Muted(fmt.Sprintf("Run %s", report.ID))
	}

	return nil
}

// runPlotJSON streams run_start, column_complete and run_complete
// events as JSON lines, one per line on stdout.
func runPlotJSON(cmd *cobra.Command, c *CommandContext, s renderSettings, matrixPath string) error {
	w := c.Renderer.Writer()
	runID := newRunID()
	start := time.Now()

	fail := func(err error) error {
		emitRunEvent(w, output.RunEvent{
			Event:   "run_complete",
			RunID:   runID,
			Status:  "failed",
			TotalMS: time.Since(start).Milliseconds(),
			Error:   err.Error(),
		})
		return err
	}

	// Peek at the matrix so run_start can announce the plan. The
	// engine re-reads and validates on its own.
	m, err := sigdata.ReadFile(matrixPath)
	if err != nil {
		return fail(err)
	}
	kind := resolveKind(s.Kind, m)
	columns := m.SampleNames()
	if kind == engine.KindExtended {
		columns = m.SortedSampleNames()
	}

	emitRunEvent(w, output.RunEvent{
		Event:   "run_start",
		RunID:   runID,
		Kind:    kind,
		Matrix:  matrixPath,
		Columns: columns,
	})

	eng, err := c.newEngine(s, &jsonSink{w: w, runID: runID})
	if err != nil {
		return fail(err)
	}

	report, err := eng.RenderFile(cmd.Context(), matrixPath, s.OutDir, s.Kind)
	if err != nil {
		return fail(err)
	}

	emitRunEvent(w, output.RunEvent{
		Event:   "run_complete",
		RunID:   runID,
		Status:  "success",
		Pages:   report.Pages,
		Output:  report.OutputPath,
		TotalMS: report.TotalMS,
	})
	return nil
}

// resolveKind maps auto to the kind the matrix's context width selects.
func resolveKind(kind string, m *sigdata.Matrix) string {
	if kind == "" || kind == engine.KindAuto {
		if m.Width() == 3 {
			return engine.KindStandard
		}
		return engine.KindExtended
	}
	return kind
}

// jsonSink emits a column_complete event per rendered column. The
// per-column time is measured between ticks, so it includes the page
// write, not just the layout.
type jsonSink struct {
	w     io.Writer
	runID string
	last  time.Time
}

func (s *jsonSink) Start(total int) { s.last = time.Now() }

func (s *jsonSink) Tick(column string) {
	now := time.Now()
	emitRunEvent(s.w, output.RunEvent{
		Event:    "column_complete",
		RunID:    s.runID,
		Column:   column,
		RenderMS: now.Sub(s.last).Milliseconds(),
	})
	s.last = now
}

func (s *jsonSink) Done() {}
