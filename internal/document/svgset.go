package document

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/basepair-labs/sigplot/internal/render/svgcanvas"
	"github.com/basepair-labs/sigplot/pkg/plot"
)

func init() {
	Register("svg", NewSVGSet)
}

// SVGSet writes each page as an individual SVG file inside a directory
// named by the output stem, e.g. signatures.96/01-SBS1.svg.
type SVGSet struct {
	dir    string
	size   PageSize
	logger *slog.Logger
	pages  []*svgPage
	closed bool
}

type svgPage struct {
	title  string
	buf    bytes.Buffer
	canvas *svgcanvas.Canvas
}

// NewSVGSet creates an SVG document writing into the directory stem.
func NewSVGSet(stem string, size PageSize, logger *slog.Logger) (Doc, error) {
	if err := size.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SVGSet{dir: stem, size: size, logger: logger}, nil
}

// Path returns the output directory.
func (d *SVGSet) Path() string { return d.dir }

// NewPage appends a page buffered in memory until Close.
func (d *SVGSet) NewPage(title string) (plot.Canvas, error) {
	if d.closed {
		return nil, fmt.Errorf("document %s is already closed", d.dir)
	}
	p := &svgPage{title: title}
	p.canvas = svgcanvas.New(&p.buf, d.size.WidthPx, d.size.HeightPx)
	d.pages = append(d.pages, p)
	return p.canvas, nil
}

// Close finalizes every page and writes one numbered file per page.
// Calling Close again is a no-op.
func (d *SVGSet) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	if len(d.pages) == 0 {
		return fmt.Errorf("document %s has no pages", d.dir)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, p := range d.pages {
		p.canvas.End()
		name := fmt.Sprintf("%02d-%s.svg", i+1, fileName(p.title))
		path := filepath.Join(d.dir, name)
		if err := os.WriteFile(path, p.buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write page %d: %w", i+1, err)
		}
	}

	d.logger.Debug("wrote document", "path", d.dir, "pages", len(d.pages))
	return nil
}

// fileName reduces a page title to a safe file name fragment.
func fileName(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "page"
	}
	return b.String()
}
