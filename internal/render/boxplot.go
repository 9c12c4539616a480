package render

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/sepplot/internal/bins"
	"github.com/HamletTheHamster/sepplot/internal/data"
)

// BoxSeries is the binned data of one input: one box per bin.
type BoxSeries struct {
	Name string
	Bins []bins.Bin
}

// Boxplot draws a box per bin at the bin center, median line in black and
// no outlier glyphs. Overlays, such as fits over the bin medians, follow.
func Boxplot(series []BoxSeries, overlays []Overlay, opts Options, st Style) (*Figure, error) {
	p := newPlot(opts)

	var centers []float64
	for _, s := range series {
		for _, b := range s.Bins {
			centers = append(centers, b.Center)
		}
	}
	width := boxWidth(centers, st.Width)

	lo, hi := math.Inf(1), math.Inf(-1)
	for i, s := range series {
		col := st.Color(i)
		drawn := false
		for _, b := range s.Bins {
			values := b.Values
			if opts.LogX && b.Center <= 0 {
				continue
			}
			if opts.LogY {
				values = positive(values)
			}
			if len(values) == 0 {
				continue
			}

			box, err := plotter.NewBoxPlot(width, b.Center, plotter.Values(values))
			if err != nil {
				return nil, fmt.Errorf("%s: bin at %g: %w", s.Name, b.Center, err)
			}
			box.Outside = nil
			box.FillColor = fade(col, 0.6)
			box.BoxStyle.Color = col
			box.WhiskerStyle.Color = fade(col, 0.8)
			box.MedianStyle.Width = vg.Points(1.5)
			p.Add(box)

			drawn = true
			lo, hi = math.Min(lo, b.Lo), math.Max(hi, b.Hi)
		}
		if drawn {
			p.Legend.Add(s.Name, swatch{fade(col, 0.6)})
		}
	}
	if math.IsInf(lo, 1) {
		return nil, data.ErrNoSamples
	}
	if opts.LogX && lo <= 0 {
		lo = math.Min(1, hi)
	}

	if err := addOverlays(p, overlays, lo, hi, opts); err != nil {
		return nil, err
	}
	return newFigure(p, st), nil
}

// boxWidth spaces boxes by the number of distinct bin centers.
func boxWidth(centers []float64, figure vg.Length) vg.Length {
	sort.Float64s(centers)
	n := 0
	for i, c := range centers {
		if i == 0 || c != centers[i-1] {
			n++
		}
	}
	w := figure * 0.6 / vg.Length(max(n, 1))
	return min(max(w, vg.Points(3)), vg.Points(40))
}

func positive(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			out = append(out, v)
		}
	}
	return out
}
