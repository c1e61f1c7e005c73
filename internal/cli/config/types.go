// Package config provides configuration management for the sigplot CLI.
//
// Configuration is layered with koanf: built-in defaults, then an
// optional sigplot.yaml, then SIGPLOT_* environment variables, then
// explicitly-set command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Output selects the CLI output mode: auto, text, markdown or json.
	Output string `koanf:"output"`
	// LogLevel sets the slog level: debug, info, warn or error.
	LogLevel string `koanf:"log_level"`
	// LogFormat selects the slog handler: text or json.
	LogFormat string `koanf:"log_format"`
	// NoColor disables ANSI styling even on a terminal.
	NoColor bool `koanf:"no_color"`
	// Plot configures report rendering.
	Plot PlotConfig `koanf:"plot"`
}

// PlotConfig configures how signature reports are rendered.
type PlotConfig struct {
	// OutDir is the directory reports are written to.
	OutDir string `koanf:"out_dir"`
	// Backend selects the registered document format (pdf, svg).
	Backend string `koanf:"backend"`
	// Kind selects the report layout: auto, standard or extended.
	Kind string `koanf:"kind"`
	// DPI is the raster resolution of report pages.
	DPI int `koanf:"dpi"`
	// PageWidth and PageHeight are the page dimensions in inches.
	PageWidth  float64 `koanf:"page_width"`
	PageHeight float64 `koanf:"page_height"`
	// Normalize divides each sample column by its sum before plotting.
	Normalize bool `koanf:"normalize"`
	// Colors overrides the built-in palette with hex colors.
	Colors ColorsConfig `koanf:"colors"`
}

// ColorsConfig maps bases (A, C, G, T) and substitution classes
// (C>A .. T>G) to hex colors like "#03BCEE".
type ColorsConfig struct {
	Bases   map[string]string `koanf:"bases"`
	Classes map[string]string `koanf:"classes"`
}

// Default configuration values.
const (
	DefaultOutDir     = "figures"
	DefaultBackend    = "pdf"
	DefaultKind       = "auto"
	DefaultDPI        = 100
	DefaultPageWidth  = 20.0
	DefaultPageHeight = 10.0
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)
