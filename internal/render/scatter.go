package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/sepplot/internal/data"
)

// Series is one named set of samples, usually one input file.
type Series struct {
	Name    string
	Samples data.Samples
}

// Overlay is a function drawn as a line across the data's x range.
type Overlay struct {
	Name   string
	F      func(x float64) float64
	Color  color.Color
	Dashes []vg.Length
}

var (
	dotted  = []vg.Length{vg.Points(1), vg.Points(3)}
	dashDot = []vg.Length{vg.Points(6), vg.Points(3), vg.Points(1), vg.Points(3)}
	dashed  = []vg.Length{vg.Points(6), vg.Points(4)}
)

// reference is the faint black used for the x^1/2 and x^1/3 guides.
var reference = color.NRGBA{A: 51}

func SqrtReference() Overlay {
	return Overlay{Name: "x^(1/2)", F: math.Sqrt, Color: reference, Dashes: dotted}
}

func CbrtReference() Overlay {
	return Overlay{Name: "x^(1/3)", F: math.Cbrt, Color: reference, Dashes: dashDot}
}

// FitOverlay draws a fitted curve dashed in the color of its series.
func FitOverlay(name string, f func(float64) float64, c color.Color) Overlay {
	return Overlay{Name: name, F: f, Color: fade(c, 0.8), Dashes: dashed}
}

const overlaySamples = 500

// Scatter plots one series per input with cycling colors and markers, then
// the overlays. On log axes non-positive samples are left out.
func Scatter(series []Series, overlays []Overlay, opts Options, st Style) (*Figure, error) {
	p := newPlot(opts)

	lo, hi := math.Inf(1), math.Inf(-1)
	for i, s := range series {
		pts := visible(s.Samples, opts)
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		sc.GlyphStyle.Color = st.Color(i)
		sc.GlyphStyle.Shape = st.Marker(i)
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add(s.Name, sc)

		minX, maxX, _, _ := pts.Bounds()
		lo, hi = math.Min(lo, minX), math.Max(hi, maxX)
	}
	if math.IsInf(lo, 0) {
		return nil, data.ErrNoSamples
	}

	if err := addOverlays(p, overlays, lo, hi, opts); err != nil {
		return nil, err
	}
	return newFigure(p, st), nil
}

// visible drops the samples a log axis cannot show.
func visible(s data.Samples, opts Options) data.Samples {
	if !opts.LogX && !opts.LogY {
		return s
	}
	out := make(data.Samples, 0, len(s))
	for _, v := range s {
		if (opts.LogX && v.X <= 0) || (opts.LogY && v.Y <= 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// addOverlays samples every overlay from the data's lower x bound (1 on a
// log axis when the data reaches past it) to hi.
func addOverlays(p *plot.Plot, overlays []Overlay, lo, hi float64, opts Options) error {
	if len(overlays) == 0 {
		return nil
	}
	if opts.LogX {
		lo = math.Min(1, lo)
	} else {
		lo = math.Min(0, lo)
	}
	if hi <= lo {
		return nil
	}

	for _, o := range overlays {
		xs := sampleRange(lo, hi, overlaySamples, opts.LogX)
		pts := make(plotter.XYs, 0, len(xs))
		for _, x := range xs {
			y := o.F(x)
			if math.IsNaN(y) || math.IsInf(y, 0) || (opts.LogY && y <= 0) {
				continue
			}
			pts = append(pts, plotter.XY{X: x, Y: y})
		}
		if len(pts) < 2 {
			continue
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("%s: %w", o.Name, err)
		}
		l.LineStyle.Color = o.Color
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Dashes = o.Dashes
		p.Add(l)
		p.Legend.Add(o.Name, l)
	}
	return nil
}

// sampleRange returns n points from lo to hi, evenly spaced or, for log
// spacing, evenly spaced in log.
func sampleRange(lo, hi float64, n int, log bool) []float64 {
	xs := make([]float64, n)
	if log {
		a, b := math.Log10(lo), math.Log10(hi)
		for i := range xs {
			xs[i] = math.Pow(10, a+(b-a)*float64(i)/float64(n-1))
		}
		return xs
	}
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return xs
}
