package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/HamletTheHamster/sepplot/internal/render"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sepplot.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 10_000_000.0, cfg.OutlierX)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := write(t, `
output_dir = "figures"
type = "png"

[style]
colors = ["#000000", "#ffffff"]
width = 4
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "figures", cfg.OutputDir)
	assert.Equal(t, "png", cfg.Type)
	assert.Equal(t, []string{"#000000", "#ffffff"}, cfg.Style.Colors)
	assert.Equal(t, 4.0, cfg.Style.Width)
	// untouched keys keep their defaults
	assert.Equal(t, 6.0, cfg.Style.Height)
	assert.Equal(t, Default().Style.Markers, cfg.Style.Markers)
	assert.Equal(t, Default().OutlierX, cfg.OutlierX)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	_, err := Load(write(t, "output_dir = ["))
	assert.Error(t, err)

	_, err = Load(write(t, "outlier_x = -1"))
	assert.ErrorContains(t, err, "outlier_x")

	_, err = Load(write(t, "[style]\nheight = 0"))
	assert.ErrorContains(t, err, "figure size")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sepplot.toml")
	cfg := Default()
	cfg.OutputDir = "elsewhere"
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestStyleRender(t *testing.T) {
	st, err := Default().Style.Render()
	require.NoError(t, err)
	assert.Equal(t, render.KIT, st.Colors[0])
	assert.Equal(t, draw.CrossGlyph{}, st.Markers[0])
	assert.Equal(t, 8*vg.Inch, st.Width)

	_, err = Style{Colors: []string{"green"}}.Render()
	assert.Error(t, err)
	_, err = Style{Markers: []string{"star"}}.Render()
	assert.Error(t, err)
	_, err = Style{Accent: "#12"}.Render()
	assert.Error(t, err)
}
