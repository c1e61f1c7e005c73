package engine

// run.go - Report orchestration for rendering signature documents

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/basepair-labs/sigplot/internal/document"
	"github.com/basepair-labs/sigplot/pkg/plot"
	"github.com/basepair-labs/sigplot/pkg/sigdata"
)

// preparedPage holds a fully laid out page awaiting rendering.
type preparedPage struct {
	column string
	spec   *plot.PanelSpec
	prepMS int64
}

// Render produces the report matching kind: auto picks by the
// matrix's context width (trinucleotide keys get the standard chart,
// wider keys the extended one).
func (e *Engine) Render(ctx context.Context, m *sigdata.Matrix, outDir, kind string) (*Report, error) {
	switch kind {
	case "", KindAuto:
		if m.Width() == 3 {
			return e.RenderStandardContextReport(ctx, m, outDir)
		}
		return e.RenderLargerContextReport(ctx, m, outDir)
	case KindStandard:
		return e.RenderStandardContextReport(ctx, m, outDir)
	case KindExtended:
		return e.RenderLargerContextReport(ctx, m, outDir)
	default:
		return nil, fmt.Errorf("unknown report kind %q (want auto, standard or extended)", kind)
	}
}

// RenderFile loads, validates and renders a matrix file.
func (e *Engine) RenderFile(ctx context.Context, matrixPath, outDir, kind string) (*Report, error) {
	m, err := sigdata.ReadFile(matrixPath)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid matrix %s: %w", matrixPath, err)
	}
	if e.normalize {
		m.Normalize()
	}
	return e.Render(ctx, m, outDir, kind)
}

// RenderLargerContextReport renders one extended-context page per
// sample column, in natural column order, into
// signatures.<rowCount>.<ext> using a two-phase approach:
// Phase 1: build every page layout (fail fast if any column fails)
// Phase 2: render all pages into the document
func (e *Engine) RenderLargerContextReport(ctx context.Context, m *sigdata.Matrix, outDir string) (*Report, error) {
	if w := m.Width(); w <= 3 {
		return nil, fmt.Errorf("extended report needs flanking bases beyond the trinucleotide core, matrix has context width %d", w)
	}

	columns := m.SortedSampleNames()
	e.logger.Info("starting extended-context report",
		"rows", len(m.Keys), "columns", len(columns), "width", m.Width())

	prepared, prepErrors := e.prepareColumns(columns, func(column string) (*plot.PanelSpec, error) {
		rows, err := plot.ParseExtendedContext(m, column)
		if err != nil {
			return nil, err
		}
		return plot.BuildExtendedPanel(rows, e.palette)
	})
	if len(prepErrors) > 0 {
		e.logger.Error("report failed during validation", "errors", len(prepErrors))
		return nil, errors.Join(prepErrors...)
	}

	stem := fmt.Sprintf("signatures.%d", len(m.Keys))
	return e.renderPages(ctx, KindExtended, outDir, stem, prepared)
}

// RenderStandardContextReport renders one 96-context page per sample
// column, in matrix column order, into signatures.96.<ext>. Same
// two-phase lifecycle as the extended report.
func (e *Engine) RenderStandardContextReport(ctx context.Context, m *sigdata.Matrix, outDir string) (*Report, error) {
	if w := m.Width(); w != 3 {
		return nil, fmt.Errorf("standard report needs trinucleotide keys, matrix has context width %d", w)
	}

	columns := m.SampleNames()
	e.logger.Info("starting standard-context report", "rows", len(m.Keys), "columns", len(columns))

	prepared, prepErrors := e.prepareColumns(columns, func(column string) (*plot.PanelSpec, error) {
		return plot.Build96Panel(m, column, e.palette)
	})
	if len(prepErrors) > 0 {
		e.logger.Error("report failed during validation", "errors", len(prepErrors))
		return nil, errors.Join(prepErrors...)
	}

	return e.renderPages(ctx, KindStandard, outDir, "signatures.96", prepared)
}

// prepareColumns builds the page layout for every column with timing.
// Returns prepared pages and any layout errors encountered.
func (e *Engine) prepareColumns(columns []string, build func(string) (*plot.PanelSpec, error)) ([]preparedPage, []error) {
	var prepared []preparedPage
	var prepErrors []error

	for _, column := range columns {
		start := time.Now()
		spec, err := build(column)
		prepMS := time.Since(start).Milliseconds()

		if err != nil {
			prepErrors = append(prepErrors, fmt.Errorf("column %s: %w", column, err))
			continue
		}

		e.logger.Debug("column prepared", "column", column, "prep_ms", prepMS)
		prepared = append(prepared, preparedPage{column: column, spec: spec, prepMS: prepMS})
	}

	return prepared, prepErrors
}

// renderPages opens the output document, renders every prepared page
// and closes it. The document is closed exactly once on every path,
// including mid-loop errors and cancellation.
func (e *Engine) renderPages(ctx context.Context, kind, outDir, stem string, prepared []preparedPage) (report *Report, retErr error) {
	start := time.Now()

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	doc, err := document.New(e.backend, filepath.Join(outDir, stem), e.size, e.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil && retErr == nil {
			report, retErr = nil, cerr
		}
	}()

	report = &Report{
		ID:         uuid.New().String(),
		Kind:       kind,
		OutputPath: doc.Path(),
	}

	e.progressStart(len(prepared))
	defer e.progressDone()

	for _, p := range prepared {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("report cancelled: %w", err)
		}

		pageStart := time.Now()
		canvas, err := doc.NewPage(p.column)
		if err != nil {
			return nil, err
		}
		if err := plot.RenderPanel(canvas, p.spec); err != nil {
			return nil, fmt.Errorf("column %s: %w", p.column, err)
		}
		renderMS := p.prepMS + time.Since(pageStart).Milliseconds()

		report.Pages++
		report.Columns = append(report.Columns, ColumnRender{Name: p.column, RenderMS: renderMS})
		e.progressTick(p.column)
		e.logger.Debug("page rendered", "column", p.column, "render_ms", renderMS)
	}

	// Close before stamping the total so the write is included.
	if err := doc.Close(); err != nil {
		return nil, err
	}
	report.TotalMS = time.Since(start).Milliseconds()

	e.logger.Info("report completed", "path", report.OutputPath, "pages", report.Pages, "total_ms", report.TotalMS)
	return report, nil
}
