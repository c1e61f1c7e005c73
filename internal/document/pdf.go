package document

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/basepair-labs/sigplot/internal/render/raster"
	"github.com/basepair-labs/sigplot/pkg/plot"
)

func init() {
	Register("pdf", NewPDF)
}

// PDF collects raster pages and assembles them into one multi-page
// PDF file on Close. Each page is PNG-encoded as soon as the next one
// begins, so only one raster canvas is alive at a time.
type PDF struct {
	path    string
	size    PageSize
	logger  *slog.Logger
	current *raster.Canvas
	encoded []*bytes.Buffer
	closed  bool
}

// NewPDF creates a PDF document writing to stem + ".pdf".
func NewPDF(stem string, size PageSize, logger *slog.Logger) (Doc, error) {
	if err := size.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PDF{path: stem + ".pdf", size: size, logger: logger}, nil
}

// Path returns the output file path.
func (d *PDF) Path() string { return d.path }

// NewPage commits the page in progress and appends a blank one.
func (d *PDF) NewPage(title string) (plot.Canvas, error) {
	if d.closed {
		return nil, fmt.Errorf("document %s is already closed", d.path)
	}
	if err := d.flush(); err != nil {
		return nil, err
	}
	page, err := raster.New(d.size.WidthPx, d.size.HeightPx)
	if err != nil {
		return nil, fmt.Errorf("failed to create page %q: %w", title, err)
	}
	d.current = page
	return page, nil
}

// flush PNG-encodes the page in progress and releases its canvas.
func (d *PDF) flush() error {
	if d.current == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := d.current.EncodePNG(&buf); err != nil {
		return fmt.Errorf("failed to encode page %d: %w", len(d.encoded)+1, err)
	}
	d.current = nil
	d.encoded = append(d.encoded, &buf)
	return nil
}

// Close commits the last page and writes the PDF. The file appears
// atomically: pages are assembled into a temporary file first and
// renamed into place only on success. Calling Close again is a no-op.
func (d *PDF) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	if err := d.flush(); err != nil {
		return err
	}
	if len(d.encoded) == 0 {
		return fmt.Errorf("document %s has no pages", d.path)
	}

	imgs := make([]io.Reader, 0, len(d.encoded))
	for _, buf := range d.encoded {
		imgs = append(imgs, buf)
	}

	imp, err := api.Import(fmt.Sprintf("dim:%d %d, pos:full", d.size.WidthPt, d.size.HeightPt), types.POINTS)
	if err != nil {
		return fmt.Errorf("failed to configure page import: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), ".sigplot-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create temporary output: %w", err)
	}

	if err := api.ImportImages(nil, tmp, imgs, imp, model.NewDefaultConfiguration()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to assemble %s: %w", d.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to finish temporary output: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	d.logger.Debug("wrote document", "path", d.path, "pages", len(d.encoded))
	return nil
}
