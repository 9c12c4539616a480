package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/HamletTheHamster/sepplot/internal/data"
)

var (
	levelColors = []color.Color{
		KIT,
		color.RGBA{R: 230, G: 159, B: 0, A: 255},
		color.RGBA{R: 86, G: 180, B: 233, A: 255},
	}
	levelRadii  = []vg.Length{vg.Points(5), vg.Points(2.5), vg.Points(1.2)}
	levelAlphas = []float64{1, 0.666, 0.333}
)

// Levels draws nested point clouds, deepest level first so the outer levels
// stay on top. Each level cycles through its own color, size and opacity.
func Levels(levels []data.Samples, st Style) (*Figure, error) {
	if len(levels) == 0 {
		return nil, data.ErrNoSamples
	}
	p := newPlot(Options{})
	p.HideAxes()
	p.Legend.Left = false

	scatters := make([]*plotter.Scatter, len(levels))
	for i := len(levels) - 1; i >= 0; i-- {
		sc, err := plotter.NewScatter(levels[i])
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  fade(levelColors[i%len(levelColors)], levelAlphas[i%len(levelAlphas)]),
			Shape:  draw.CircleGlyph{},
			Radius: levelRadii[i%len(levelRadii)],
		}
		p.Add(sc)
		scatters[i] = sc
	}
	for i, sc := range scatters {
		p.Legend.Add(fmt.Sprintf("Level %d", i+1), sc)
	}

	equalAxes(p)
	return square(p, st), nil
}
