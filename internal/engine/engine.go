// Package engine orchestrates signature report rendering: it prepares
// one page per sample column, renders the pages into an output
// document, and guarantees the document is closed on every path.
package engine

import (
	"log/slog"
	"math"

	"github.com/basepair-labs/sigplot/internal/document"
	"github.com/basepair-labs/sigplot/pkg/plot"
)

// Report kinds accepted by Render.
const (
	KindAuto     = "auto"
	KindStandard = "standard"
	KindExtended = "extended"
)

// Engine renders signature reports.
type Engine struct {
	logger    *slog.Logger
	palette   plot.Palette
	backend   string
	size      document.PageSize
	normalize bool
	progress  plot.ProgressSink
}

// Config holds engine configuration.
type Config struct {
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
	// Palette supplies the bar colors (zero value uses the default palette)
	Palette plot.Palette
	// Backend selects the registered output format, "pdf" by default
	Backend string
	// DPI is the raster resolution in pixels per inch (default 100)
	DPI int
	// PageWidth and PageHeight are the page size in inches (default 20x10)
	PageWidth  float64
	PageHeight float64
	// Normalize rescales each sample column of loaded matrices to sum to 1
	Normalize bool
	// Progress receives one tick per rendered column (optional)
	Progress plot.ProgressSink
}

// New creates an engine. The output format must be registered; the
// palette must cover all bases and classes.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	backend := cfg.Backend
	if backend == "" {
		backend = "pdf"
	}
	if !document.IsRegistered(backend) {
		return nil, &document.UnknownFormatError{Format: backend, Available: document.ListFormats()}
	}

	pal := cfg.Palette
	if pal.Bases == nil && pal.Classes == nil {
		pal = plot.DefaultPalette()
	}
	if err := pal.Validate(); err != nil {
		return nil, err
	}

	dpi := cfg.DPI
	if dpi <= 0 {
		dpi = 100
	}
	widthIn := cfg.PageWidth
	if widthIn <= 0 {
		widthIn = 20
	}
	heightIn := cfg.PageHeight
	if heightIn <= 0 {
		heightIn = 10
	}
	size := document.PageSize{
		WidthPt:  int(math.Round(widthIn * 72)),
		HeightPt: int(math.Round(heightIn * 72)),
		WidthPx:  int(math.Round(widthIn * float64(dpi))),
		HeightPx: int(math.Round(heightIn * float64(dpi))),
	}

	logger.Debug("initializing engine",
		"backend", backend, "page_px", size.WidthPx, "page_pt", size.WidthPt, "normalize", cfg.Normalize)

	return &Engine{
		logger:    logger,
		palette:   pal,
		backend:   backend,
		size:      size,
		normalize: cfg.Normalize,
		progress:  cfg.Progress,
	}, nil
}

// The progress sink is optional; rendering behaves identically with
// and without one.

func (e *Engine) progressStart(total int) {
	if e.progress != nil {
		e.progress.Start(total)
	}
}

func (e *Engine) progressTick(column string) {
	if e.progress != nil {
		e.progress.Tick(column)
	}
}

func (e *Engine) progressDone() {
	if e.progress != nil {
		e.progress.Done()
	}
}
