package render

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/HamletTheHamster/sepplot/internal/data"
)

// Bars draws one bar per labelled value, in file order.
func Bars(values []data.Labeled, opts Options, st Style) (*Figure, error) {
	if len(values) == 0 {
		return nil, data.ErrNoSamples
	}
	p := newPlot(opts)

	vs := make(plotter.Values, len(values))
	names := make([]string, len(values))
	for i, v := range values {
		vs[i] = v.Value
		names[i] = v.Name
	}

	width := min(st.Width*0.6/vg.Length(len(values)), vg.Points(60))
	bars, err := plotter.NewBarChart(vs, width)
	if err != nil {
		return nil, err
	}
	bars.Color = st.Color(0)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)
	return newFigure(p, st), nil
}

// Histogram counts values into n equal-width bins. With a log x axis the
// non-positive values are dropped; a log y axis leaves empty bins out of
// the range.
func Histogram(values []float64, n int, opts Options, st Style) (*Figure, error) {
	if opts.LogX {
		values = positive(values)
	}
	if len(values) == 0 {
		return nil, data.ErrNoSamples
	}
	p := newPlot(opts)

	h, err := plotter.NewHist(plotter.Values(values), n)
	if err != nil {
		return nil, err
	}
	h.FillColor = st.Color(0)
	h.LineStyle.Width = 0
	h.LogY = opts.LogY
	p.Add(h)
	return newFigure(p, st), nil
}
