package engine

// Report summarizes one rendered signature report.
type Report struct {
	// ID uniquely identifies this report run.
	ID string
	// Kind is "standard" or "extended".
	Kind string
	// OutputPath is where the document was written: a file for pdf, a
	// directory for svg.
	OutputPath string
	// Pages is the number of pages rendered, one per column.
	Pages int
	// Columns records per-column render timing, in page order.
	Columns []ColumnRender
	// TotalMS is the wall time of the whole report, including the
	// document write.
	TotalMS int64
}

// ColumnRender is the per-column entry of a report.
type ColumnRender struct {
	Name     string
	RenderMS int64
}
