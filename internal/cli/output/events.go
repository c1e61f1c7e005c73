package output

// RunEvent is one line of --json progress output. Events are emitted
// as run_start, column_complete per page, and a final run_complete.
type RunEvent struct {
	Event     string `json:"event"`
	RunID     string `json:"run_id"`
	Timestamp string `json:"timestamp"`

	// run_start
	Kind    string   `json:"kind,omitempty"`
	Matrix  string   `json:"matrix,omitempty"`
	Columns []string `json:"columns,omitempty"`

	// column_complete
	Column   string `json:"column,omitempty"`
	RenderMS int64  `json:"render_ms,omitempty"`

	// run_complete
	Status  string `json:"status,omitempty"`
	Pages   int    `json:"pages,omitempty"`
	Output  string `json:"output,omitempty"`
	TotalMS int64  `json:"total_ms,omitempty"`
	Error   string `json:"error,omitempty"`
}
