package config

import (
	"fmt"
	"image/color"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/basepair-labs/sigplot/pkg/mutation"
	"github.com/basepair-labs/sigplot/pkg/plot"
)

// paletteOverrides is the decoded form of ColorsConfig, with hex
// strings already turned into colors by the decode hook.
type paletteOverrides struct {
	Bases   map[string]color.RGBA `mapstructure:"bases"`
	Classes map[string]color.RGBA `mapstructure:"classes"`
}

// hexColorHook decodes "#RRGGBB" strings into color.RGBA values.
func hexColorHook() mapstructure.DecodeHookFuncType {
	rgbaType := reflect.TypeOf(color.RGBA{})
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != rgbaType {
			return data, nil
		}
		return plot.ParseHexColor(data.(string))
	}
}

// Palette builds the plot palette: the built-in colors with any
// configured overrides applied on top.
func (c *Config) Palette() (plot.Palette, error) {
	pal := plot.DefaultPalette()

	var overrides paletteOverrides
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: hexColorHook(),
		Result:     &overrides,
	})
	if err != nil {
		return plot.Palette{}, err
	}
	if err := dec.Decode(map[string]interface{}{
		"bases":   c.Plot.Colors.Bases,
		"classes": c.Plot.Colors.Classes,
	}); err != nil {
		return plot.Palette{}, fmt.Errorf("invalid color overrides: %w", err)
	}

	for base, col := range overrides.Bases {
		if len(base) != 1 || !strings.Contains("ACGT", base) {
			return plot.Palette{}, fmt.Errorf("unknown base %q in plot.colors.bases (want A, C, G or T)", base)
		}
		pal.Bases[base[0]] = col
	}
	for class, col := range overrides.Classes {
		if !knownClass(class) {
			return plot.Palette{}, fmt.Errorf("unknown substitution class %q in plot.colors.classes", class)
		}
		pal.Classes[mutation.Class(class)] = col
	}

	if err := pal.Validate(); err != nil {
		return plot.Palette{}, err
	}
	return pal, nil
}
