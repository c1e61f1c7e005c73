package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/basepair-labs/sigplot/internal/cli/config"
	"github.com/basepair-labs/sigplot/internal/cli/output"
	"github.com/basepair-labs/sigplot/pkg/mutation"
)

// scaffoldConfig is the config file layout written by init. Kept
// separate from config.Config so the scaffold can stay small and
// stable while the full config grows.
type scaffoldConfig struct {
	Output   string       `yaml:"output"`
	LogLevel string       `yaml:"log_level"`
	Plot     scaffoldPlot `yaml:"plot"`
}

type scaffoldPlot struct {
	OutDir     string  `yaml:"out_dir"`
	Backend    string  `yaml:"backend"`
	Kind       string  `yaml:"kind"`
	DPI        int     `yaml:"dpi"`
	PageWidth  float64 `yaml:"page_width"`
	PageHeight float64 `yaml:"page_height"`
	Normalize  bool    `yaml:"normalize"`
}

const configBanner = `# sigplot configuration.
# Flags and SIGPLOT_* environment variables override these values.
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a sigplot workspace",
		Long: `Write a sigplot.yaml configuration file with the default settings.

Use --example to also write example.tsv, a small 96-context matrix
with two sample columns, ready to render with 'sigplot plot'.`,
		Example: `  # Initialize in the current directory
  sigplot init

  # Initialize a new directory with an example matrix
  sigplot init my-figures --example

  # Overwrite an existing configuration
  sigplot init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			c := NewCommandContext(cmd)
			return runInit(c.Renderer, dir, force, example)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&example, "example", false, "Also write an example matrix file")

	return cmd
}

func runInit(r *output.Renderer, dir string, force, example bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "sigplot.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("sigplot.yaml already exists. Use --force to overwrite")
	}

	if err := writeScaffoldConfig(configPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	r.StatusLine("sigplot.yaml", "success", "")

	if example {
		examplePath := filepath.Join(dir, "example.tsv")
		if err := os.WriteFile(examplePath, []byte(exampleMatrix()), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", examplePath, err)
		}
		r.StatusLine("example.tsv", "success", "96-context matrix, 2 samples")
	}

	r.Println("")
	r.Success("sigplot workspace initialized!")
	r.Println("")
	r.Println("Next steps:")
	if example {
		r.Println("  1. Run 'sigplot plot example.tsv' to render the example")
		r.Println("  2. Replace example.tsv with your own matrix")
	} else {
		r.Println("  1. Export a signature matrix as tab-separated text")
		r.Println("  2. Run 'sigplot plot <matrix>' to render it")
	}
	r.Println("  3. Edit sigplot.yaml to change backend, size or colors")

	return nil
}

func writeScaffoldConfig(path string) error {
	scaffold := scaffoldConfig{
		Output:   config.DefaultOutput,
		LogLevel: config.DefaultLogLevel,
		Plot: scaffoldPlot{
			OutDir:     config.DefaultOutDir,
			Backend:    config.DefaultBackend,
			Kind:       config.DefaultKind,
			DPI:        config.DefaultDPI,
			PageWidth:  config.DefaultPageWidth,
			PageHeight: config.DefaultPageHeight,
			Normalize:  false,
		},
	}

	data, err := yaml.Marshal(&scaffold)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append([]byte(configBanner), data...), 0o644)
}

// exampleMatrix builds a deterministic demo matrix: one column shaped
// like the clock-like deamination signature (C>T at NpCpG peaks) and
// one background column.
func exampleMatrix() string {
	var sb strings.Builder
	sb.WriteString("MutationType\tDeamination\tBackground\n")
	for i, key := range mutation.Catalog96() {
		deamination := 4 + (i*7)%11
		if strings.Contains(key, "[C>T]G") {
			deamination += 120
		}
		background := 10 + (i*13)%17
		fmt.Fprintf(&sb, "%s\t%d\t%d\n", key, deamination, background)
	}
	return sb.String()
}
