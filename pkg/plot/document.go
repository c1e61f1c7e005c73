package plot

// Document collects rendered pages into a single output artifact,
// such as a multi-page PDF or a directory of SVG files.
type Document interface {
	// NewPage appends a page and returns the canvas to draw it on.
	// The title is used by backends that name pages individually; a
	// page is committed implicitly by the next NewPage or by Close.
	NewPage(title string) (Canvas, error)

	// Close finalizes and writes the artifact. The first call does
	// the work and reports any error; subsequent calls are no-ops
	// returning nil, so Close is safe to defer alongside an explicit
	// call on the success path.
	Close() error
}

// ProgressSink receives rendering progress, one tick per column.
// Implementations must tolerate calls from a single goroutine only.
type ProgressSink interface {
	// Start announces the number of columns that will be rendered.
	Start(total int)
	// Tick reports that the named column has been rendered.
	Tick(column string)
	// Done marks the run as finished.
	Done()
}
