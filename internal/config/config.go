// Package config reads the optional sepplot.toml style file.
package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/HamletTheHamster/sepplot/internal/data"
	"github.com/HamletTheHamster/sepplot/internal/render"
)

// DefaultPath is read when --config is not given.
const DefaultPath = "sepplot.toml"

type Config struct {
	// OutputDir receives figures without an explicit --output.
	OutputDir string `toml:"output_dir"`
	// OutlierX drops samples with x at or above it unless --keep-outliers.
	OutlierX float64 `toml:"outlier_x"`
	// Type is the default figure format.
	Type  string `toml:"type"`
	Style Style  `toml:"style"`
}

// Style is the figure look: series colors and markers cycle in order.
type Style struct {
	Colors  []string `toml:"colors"`
	Markers []string `toml:"markers"`
	Accent  string   `toml:"accent"`
	// Width and Height are in inches.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

func Default() Config {
	return Config{
		OutputDir: "output",
		OutlierX:  data.DefaultOutlierX,
		Type:      "pdf",
		Style: Style{
			Colors:  []string{"#009682", "#df9b1b", "#4664aa", "#a3107c"},
			Markers: []string{"x", "^", "o", "+"},
			Accent:  "#df9b1b",
			Width:   8,
			Height:  6,
		},
	}
}

// Load reads path over the defaults: keys the file leaves out keep their
// default value. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as TOML, replacing path.
func Save(path string, cfg Config) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

func (c Config) validate() error {
	if c.OutlierX <= 0 {
		return fmt.Errorf("outlier_x must be positive, got %g", c.OutlierX)
	}
	if c.Style.Width <= 0 || c.Style.Height <= 0 {
		return fmt.Errorf("figure size %gx%g must be positive", c.Style.Width, c.Style.Height)
	}
	if c.Type == "" {
		return fmt.Errorf("type must not be empty")
	}
	return nil
}

// Render converts the style section into drawing settings.
func (s Style) Render() (render.Style, error) {
	st := render.DefaultStyle()
	if len(s.Colors) > 0 {
		st.Colors = make([]color.Color, len(s.Colors))
		for i, hex := range s.Colors {
			c, err := render.ParseColor(hex)
			if err != nil {
				return render.Style{}, err
			}
			st.Colors[i] = c
		}
	}
	if len(s.Markers) > 0 {
		st.Markers = make([]draw.GlyphDrawer, len(s.Markers))
		for i, name := range s.Markers {
			g, err := render.ParseMarker(name)
			if err != nil {
				return render.Style{}, err
			}
			st.Markers[i] = g
		}
	}
	if s.Accent != "" {
		c, err := render.ParseColor(s.Accent)
		if err != nil {
			return render.Style{}, err
		}
		st.Accent = c
	}
	if s.Width > 0 {
		st.Width = vg.Length(s.Width) * vg.Inch
	}
	if s.Height > 0 {
		st.Height = vg.Length(s.Height) * vg.Inch
	}
	return st, nil
}
