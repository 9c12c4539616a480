package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/HamletTheHamster/sepplot/internal/bins"
	"github.com/HamletTheHamster/sepplot/internal/data"
)

// Counts is a 2-D histogram over the bounding box of a sample set. N[c][r]
// counts the samples in column c and row r. Like the 1-D bins, cells are
// half-open except the last column and row.
type Counts struct {
	XEdges, YEdges []float64
	N              [][]float64
}

// Count2D bins s into cols x rows equal cells.
func Count2D(s data.Samples, cols, rows int) (*Counts, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", bins.ErrBinCount, cols, rows)
	}
	if len(s) == 0 {
		return nil, data.ErrNoSamples
	}
	minX, maxX, minY, maxY := s.Bounds()
	c := &Counts{
		XEdges: edges(minX, maxX, cols),
		YEdges: edges(minY, maxY, rows),
		N:      make([][]float64, cols),
	}
	for i := range c.N {
		c.N[i] = make([]float64, rows)
	}
	for _, v := range s {
		i := cell(v.X, c.XEdges)
		j := cell(v.Y, c.YEdges)
		c.N[i][j]++
	}
	return c, nil
}

// edges splits [lo, hi] into n equal parts. A zero-width range is widened
// to one unit around its value.
func edges(lo, hi float64, n int) []float64 {
	if hi == lo {
		lo, hi = lo-0.5, hi+0.5
	}
	e := make([]float64, n+1)
	for i := range e {
		e[i] = lo + (hi-lo)*float64(i)/float64(n)
	}
	return e
}

func cell(v float64, edges []float64) int {
	n := len(edges) - 1
	lo, hi := edges[0], edges[n]
	i := int((v - lo) / (hi - lo) * float64(n))
	return min(max(i, 0), n-1)
}

func (c *Counts) Dims() (int, int) {
	return len(c.XEdges) - 1, len(c.YEdges) - 1
}

func (c *Counts) Z(col, row int) float64 {
	return c.N[col][row]
}

func (c *Counts) X(col int) float64 {
	return (c.XEdges[col] + c.XEdges[col+1]) / 2
}

func (c *Counts) Y(row int) float64 {
	return (c.YEdges[row] + c.YEdges[row+1]) / 2
}

// logCounts colors cells by log10 of their count. Empty cells are NaN and
// stay unpainted.
type logCounts struct {
	*Counts
}

func (l logCounts) Z(col, row int) float64 {
	n := l.N[col][row]
	if n == 0 {
		return math.NaN()
	}
	return math.Log10(n)
}

// KITColorMap runs from white to KIT green.
func KITColorMap() (palette.ColorMap, error) {
	cm, err := moreland.NewLuminance([]color.Color{KIT, color.White})
	if err != nil {
		return nil, err
	}
	return palette.Reverse(cm), nil
}

// paletteSize is even: palette.Reverse leaves the middle entry of an odd
// sized palette unset.
const paletteSize = 256

// Density draws a 2-D histogram of s with log color normalisation: a cell
// holding ten times the samples of another is one color step further.
func Density(s data.Samples, cols, rows int, opts Options, st Style) (*Figure, error) {
	counts, err := Count2D(s, cols, rows)
	if err != nil {
		return nil, err
	}
	cm, err := KITColorMap()
	if err != nil {
		return nil, err
	}

	hm := plotter.NewHeatMap(logCounts{counts}, cm.Palette(paletteSize))
	if hm.Max == hm.Min {
		hm.Max = hm.Min + 1
	}
	p := newPlot(Options{Title: opts.Title, XLabel: opts.XLabel, YLabel: opts.YLabel})
	p.Add(hm)

	fig := newFigure(p, st)
	fig.Bar = colorBar(cm, hm.Min, hm.Max, "Count", powTicks)
	return fig, nil
}

// Heatmap draws the n x n histogram of point data with linear colors.
func Heatmap(s data.Samples, n int, st Style) (*Figure, error) {
	counts, err := Count2D(s, n, n)
	if err != nil {
		return nil, err
	}
	cm := moreland.Kindlmann()

	hm := plotter.NewHeatMap(counts, cm.Palette(paletteSize))
	if hm.Max == hm.Min {
		hm.Max = hm.Min + 1
	}
	p := newPlot(Options{
		Title:  fmt.Sprintf("2D Histogram on a %dx%d Grid", n, n),
		XLabel: "X Coordinate",
		YLabel: "Y Coordinate",
	})
	p.Add(hm)

	fig := newFigure(p, st)
	fig.Bar = colorBar(cm, hm.Min, hm.Max, "Number of Points in Cell", nil)
	return fig, nil
}

func colorBar(cm palette.ColorMap, lo, hi float64, label string, ticks plot.Ticker) *plot.Plot {
	cm.SetMin(lo)
	cm.SetMax(hi)

	p := plot.New()
	p.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})
	p.HideX()
	p.Y.Label.Text = label
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Tick.Label.Font.Variant = "Sans"
	p.Y.Padding = 0
	if ticks != nil {
		p.Y.Tick.Marker = ticks
	}
	return p
}

// powTicks labels log10 color values with the counts they stand for.
var powTicks = plot.TickerFunc(func(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for e := math.Ceil(min); e <= max; e++ {
		ticks = append(ticks, plot.Tick{Value: e, Label: fmt.Sprintf("%g", math.Pow(10, e))})
	}
	if len(ticks) < 2 {
		ticks = []plot.Tick{
			{Value: min, Label: fmt.Sprintf("%.0f", math.Pow(10, min))},
			{Value: max, Label: fmt.Sprintf("%.0f", math.Pow(10, max))},
		}
	}
	return ticks
})
