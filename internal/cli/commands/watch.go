package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewWatchCommand re-renders the report whenever the matrix file changes.
func NewWatchCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "watch <matrix>",
		Short: "Re-render the report whenever the matrix changes",
		Long: `Render the matrix once, then keep watching it and re-render on
every save. Render failures are logged and watching continues, so a
half-saved file does not stop the loop. Stop with Ctrl+C.`,
		Example: `  # Keep figures/signatures.96.pdf in sync with the matrix
  sigplot watch samples.tsv

  # Watch into a scratch directory with SVG output
  sigplot watch samples.tsv --out /tmp/figs --backend svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, flags, args[0])
		},
	}

	addRenderFlags(cmd, flags)

	return cmd
}

func runWatch(cmd *cobra.Command, flags *renderFlags, matrixPath string) error {
	c := NewCommandContext(cmd)
	r := c.Renderer
	s := resolveRenderSettings(cmd, c.Cfg, flags)

	eng, err := c.newEngine(s, nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			r.Println("")
			r.Muted("Shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	r.Printf("Watching %s (Ctrl+C to stop)\n", matrixPath)
	return eng.Watch(ctx, matrixPath, s.OutDir, s.Kind)
}
