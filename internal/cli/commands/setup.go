// Package commands implements the sigplot subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/basepair-labs/sigplot/internal/cli/config"
	"github.com/basepair-labs/sigplot/internal/cli/output"
	"github.com/basepair-labs/sigplot/internal/engine"
	"github.com/basepair-labs/sigplot/pkg/plot"
)

// CommandContext carries the shared state a subcommand needs: the effective
// configuration, a logger and a renderer bound to the command's streams.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext assembles the context for a subcommand invocation. The
// renderer writes to the command's configured streams so tests can capture
// output, and the logger comes from the command context when the root command
// installed one.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))
	if cfg.NoColor {
		r.DisableColor()
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: r,
	}
}

// getConfig returns the loaded configuration, falling back to defaults when
// the root command has not run (direct command construction in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		Output:    config.DefaultOutput,
		LogLevel:  config.DefaultLogLevel,
		LogFormat: config.DefaultLogFormat,
		Plot: config.PlotConfig{
			OutDir:     config.DefaultOutDir,
			Backend:    config.DefaultBackend,
			Kind:       config.DefaultKind,
			DPI:        config.DefaultDPI,
			PageWidth:  config.DefaultPageWidth,
			PageHeight: config.DefaultPageHeight,
		},
	}
}

// renderSettings are the effective per-run render options after merging
// command flags over the configuration file.
type renderSettings struct {
	OutDir    string
	Backend   string
	Kind      string
	DPI       int
	Normalize bool
}

// renderFlags holds the flag values shared by plot and watch.
type renderFlags struct {
	OutDir    string
	Backend   string
	Kind      string
	DPI       int
	Normalize bool
}

func addRenderFlags(cmd *cobra.Command, flags *renderFlags) {
	cmd.Flags().StringVarP(&flags.OutDir, "out", "o", config.DefaultOutDir, "directory to write rendered figures to")
	cmd.Flags().StringVar(&flags.Backend, "backend", config.DefaultBackend, "output format (pdf, svg)")
	cmd.Flags().StringVar(&flags.Kind, "kind", config.DefaultKind, "report kind (auto, standard, extended)")
	cmd.Flags().IntVar(&flags.DPI, "dpi", config.DefaultDPI, "raster resolution in dots per inch")
	cmd.Flags().BoolVar(&flags.Normalize, "normalize", false, "rescale each column to relative frequencies")
}

// resolveRenderSettings merges flag values over the configuration. A flag
// wins only when it was set on the command line.
func resolveRenderSettings(cmd *cobra.Command, cfg *config.Config, flags *renderFlags) renderSettings {
	s := renderSettings{
		OutDir:    cfg.Plot.OutDir,
		Backend:   cfg.Plot.Backend,
		Kind:      cfg.Plot.Kind,
		DPI:       cfg.Plot.DPI,
		Normalize: cfg.Plot.Normalize,
	}
	f := cmd.Flags()
	if f.Changed("out") {
		s.OutDir = flags.OutDir
	}
	if f.Changed("backend") {
		s.Backend = flags.Backend
	}
	if f.Changed("kind") {
		s.Kind = flags.Kind
	}
	if f.Changed("dpi") {
		s.DPI = flags.DPI
	}
	if f.Changed("normalize") {
		s.Normalize = flags.Normalize
	}
	return s
}

// newEngine builds a render engine from the resolved settings and the
// configured palette.
func (c *CommandContext) newEngine(s renderSettings, progress plot.ProgressSink) (*engine.Engine, error) {
	pal, err := c.Cfg.Palette()
	if err != nil {
		return nil, err
	}
	return engine.New(engine.Config{
		Logger:     c.Logger,
		Palette:    pal,
		Backend:    s.Backend,
		DPI:        s.DPI,
		PageWidth:  c.Cfg.Plot.PageWidth,
		PageHeight: c.Cfg.Plot.PageHeight,
		Normalize:  s.Normalize,
		Progress:   progress,
	})
}

// newRunID returns a process-unique identifier for JSON event streams.
func newRunID() string {
	return fmt.Sprintf("run_%d", time.Now().UnixNano())
}

// emitRunEvent writes a single JSON line describing a run milestone.
func emitRunEvent(w io.Writer, event output.RunEvent) {
	event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	fmt.Fprintln(w, string(data))
}
