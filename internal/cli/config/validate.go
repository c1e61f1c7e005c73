package config

import (
	"fmt"
	"strings"

	"github.com/basepair-labs/sigplot/internal/document"
	"github.com/basepair-labs/sigplot/pkg/mutation"
	"github.com/basepair-labs/sigplot/pkg/plot"
)

var validKinds = []string{"auto", "standard", "extended"}

var validOutputs = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !contains(validOutputs, c.Output) {
		return fmt.Errorf("invalid output mode %q (want one of %s)", c.Output, strings.Join(validOutputs, ", "))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		return fmt.Errorf("invalid log format %q (want text or json)", c.LogFormat)
	}

	if !document.IsRegistered(c.Plot.Backend) {
		return &document.UnknownFormatError{
			Format:    c.Plot.Backend,
			Available: document.ListFormats(),
		}
	}
	if !contains(validKinds, c.Plot.Kind) {
		return fmt.Errorf("invalid report kind %q (want one of %s)", c.Plot.Kind, strings.Join(validKinds, ", "))
	}
	if c.Plot.DPI < 10 || c.Plot.DPI > 1200 {
		return fmt.Errorf("dpi %d out of range (want 10-1200)", c.Plot.DPI)
	}
	if c.Plot.PageWidth <= 0 || c.Plot.PageHeight <= 0 {
		return fmt.Errorf("page size %gx%g inches is not positive", c.Plot.PageWidth, c.Plot.PageHeight)
	}

	return c.validateColors()
}

// validateColors checks that palette overrides name real bases and
// classes and carry parseable hex colors.
func (c *Config) validateColors() error {
	for base, hex := range c.Plot.Colors.Bases {
		if len(base) != 1 || !strings.Contains("ACGT", base) {
			return fmt.Errorf("unknown base %q in plot.colors.bases (want A, C, G or T)", base)
		}
		if _, err := plot.ParseHexColor(hex); err != nil {
			return fmt.Errorf("color for base %s: %w", base, err)
		}
	}

	for class, hex := range c.Plot.Colors.Classes {
		if !knownClass(class) {
			return fmt.Errorf("unknown substitution class %q in plot.colors.classes", class)
		}
		if _, err := plot.ParseHexColor(hex); err != nil {
			return fmt.Errorf("color for class %s: %w", class, err)
		}
	}
	return nil
}

func knownClass(s string) bool {
	for _, c := range mutation.Classes() {
		if string(c) == s {
			return true
		}
	}
	return false
}

func contains(valid []string, s string) bool {
	for _, v := range valid {
		if v == s {
			return true
		}
	}
	return false
}
