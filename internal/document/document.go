// Package document assembles rendered chart pages into output
// artifacts. Formats register themselves at init time: "pdf" produces
// a single multi-page file, "svg" a directory of per-page files.
package document

import (
	"fmt"

	"github.com/basepair-labs/sigplot/pkg/plot"
)

// Doc is a plot.Document bound to a concrete output location.
type Doc interface {
	plot.Document

	// Path returns where Close writes the artifact: a file for single
	// file formats, a directory for per-page formats.
	Path() string
}

// PageSize couples the physical page geometry with the raster grid
// pages are drawn on.
type PageSize struct {
	// WidthPt and HeightPt are the page dimensions in PDF points.
	WidthPt  int
	HeightPt int
	// WidthPx and HeightPx are the drawing dimensions in pixels.
	WidthPx  int
	HeightPx int
}

// DefaultPageSize is a 20x10 inch landscape page drawn at 100 pixels
// per inch.
func DefaultPageSize() PageSize {
	return PageSize{WidthPt: 1440, HeightPt: 720, WidthPx: 2000, HeightPx: 1000}
}

func (s PageSize) validate() error {
	if s.WidthPt < 1 || s.HeightPt < 1 || s.WidthPx < 1 || s.HeightPx < 1 {
		return fmt.Errorf("invalid page size %+v", s)
	}
	return nil
}
