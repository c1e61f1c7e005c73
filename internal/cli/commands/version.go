package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display sigplot version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sigplot v%s\n", version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Mutational signature plotting for SBS matrices")
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "module %s\n", info.Main.Version)
			}
		},
	}
}
