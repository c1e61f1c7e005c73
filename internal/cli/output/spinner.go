package output

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows an animated progress indicator on a TTY. On non-TTY
// writers the animation is skipped and only the final status line is
// printed, so commands can use one code path for both.
type Spinner struct {
	w       io.Writer
	term    *termenv.Output
	msg     string
	styles  *Styles
	animate bool

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewSpinner creates a spinner bound to the renderer's output writer.
func (r *Renderer) NewSpinner(msg string) *Spinner {
	return &Spinner{
		w:       r.out,
		term:    termenv.NewOutput(r.out),
		msg:     msg,
		styles:  r.styles,
		animate: r.isTTY && !r.noColor,
	}
}

// Start begins the animation. No-op off-TTY.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.animate || s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.term.HideCursor()

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		frame := 0
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				_, _ = fmt.Fprintf(s.w, "\r%s %s", spinnerFrames[frame%len(spinnerFrames)], s.msg)
				frame++
			}
		}
	}()
}

// Success stops the spinner and prints a check-marked line.
func (s *Spinner) Success(msg string) {
	s.finish(fmt.Sprintf("%s %s", s.styles.StatusSuccess.String(), msg))
}

// Fail stops the spinner and prints a cross-marked line.
func (s *Spinner) Fail(msg string) {
	s.finish(fmt.Sprintf("%s %s", s.styles.StatusFailed.String(), msg))
}

// Stop halts the animation without printing a status line.
func (s *Spinner) Stop() {
	s.finish("")
}

func (s *Spinner) finish(line string) {
	s.mu.Lock()
	if s.running {
		close(s.stop)
		<-s.done
		s.running = false
		s.term.ClearLine()
		_, _ = fmt.Fprint(s.w, "\r")
		s.term.ShowCursor()
	}
	s.mu.Unlock()

	if line != "" {
		_, _ = fmt.Fprintln(s.w, line)
	}
}
