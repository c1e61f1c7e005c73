package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/basepair-labs/sigplot/internal/cli/output"
	"github.com/basepair-labs/sigplot/pkg/mutation"
)

// NewCatalogCommand prints the canonical mutation-type vocabulary.
func NewCatalogCommand() *cobra.Command {
	var classesOnly bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the canonical 96-context catalog",
		Long: `Print the 96 canonical trinucleotide mutation keys in chart order:
the six substitution classes C>A, C>G, C>T, T>A, T>C, T>G, each with
its sixteen flanking-base combinations.

The list matches the row order a standard matrix is expected to use
and is one key per line, so it pipes cleanly into other tools.`,
		Example: `  sigplot catalog
  sigplot catalog --classes
  sigplot catalog --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, classesOnly)
		},
	}

	cmd.Flags().BoolVar(&classesOnly, "classes", false, "print the six substitution classes instead of the full catalog")

	return cmd
}

func runCatalog(cmd *cobra.Command, classesOnly bool) error {
	c := NewCommandContext(cmd)
	r := c.Renderer

	classes := make([]string, 0, len(mutation.Classes()))
	for _, class := range mutation.Classes() {
		classes = append(classes, string(class))
	}

	lines := mutation.Catalog96()
	if classesOnly {
		lines = classes
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		payload := map[string][]string{"classes": classes}
		if !classesOnly {
			payload["keys"] = mutation.Catalog96()
		}
		return r.JSON(payload)
	case output.ModeMarkdown:
		r.Println(output.FormatCodeBlock("", strings.Join(lines, "\n")))
	default:
		for _, line := range lines {
			r.Println(line)
		}
	}
	return nil
}
