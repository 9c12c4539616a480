// Package render draws the toolkit's charts with gonum/plot and saves them
// in the format named by the output file's extension.
package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// KIT is the green used for single-series charts and the density color map.
var KIT = color.RGBA{R: 0, G: 150, B: 130, A: 255}

// Style holds the figure size and the per-series colors and markers. Series i
// uses Colors[i % len] and Markers[i % len].
type Style struct {
	Colors  []color.Color
	Markers []draw.GlyphDrawer
	// Accent marks highlighted graph nodes.
	Accent        color.Color
	Width, Height vg.Length
}

func DefaultStyle() Style {
	return Style{
		Colors: []color.Color{
			KIT,
			color.RGBA{R: 223, G: 155, B: 27, A: 255},
			color.RGBA{R: 70, G: 100, B: 170, A: 255},
			color.RGBA{R: 163, G: 16, B: 124, A: 255},
		},
		Markers: []draw.GlyphDrawer{
			draw.CrossGlyph{},
			draw.TriangleGlyph{},
			draw.CircleGlyph{},
			draw.PlusGlyph{},
		},
		Accent: color.RGBA{R: 223, G: 155, B: 27, A: 255},
		Width:  8 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

// Color returns the color of series i. An empty palette falls back to the
// plotutil defaults.
func (s Style) Color(i int) color.Color {
	if len(s.Colors) == 0 {
		return plotutil.Color(i)
	}
	return s.Colors[i%len(s.Colors)]
}

func (s Style) Marker(i int) draw.GlyphDrawer {
	if len(s.Markers) == 0 {
		return plotutil.Shape(i)
	}
	return s.Markers[i%len(s.Markers)]
}

// ParseColor reads a "#rrggbb" or "#rrggbbaa" hex color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

var markers = map[string]draw.GlyphDrawer{
	"x":        draw.CrossGlyph{},
	"cross":    draw.CrossGlyph{},
	"^":        draw.TriangleGlyph{},
	"triangle": draw.TriangleGlyph{},
	"o":        draw.CircleGlyph{},
	"circle":   draw.CircleGlyph{},
	"+":        draw.PlusGlyph{},
	"plus":     draw.PlusGlyph{},
	"s":        draw.SquareGlyph{},
	"square":   draw.SquareGlyph{},
	"ring":     draw.RingGlyph{},
	"box":      draw.BoxGlyph{},
	"pyramid":  draw.PyramidGlyph{},
}

// ParseMarker maps a marker name ("x", "^", "o", "+", "square", ...) to a
// glyph.
func ParseMarker(name string) (draw.GlyphDrawer, error) {
	g, ok := markers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown marker %q", name)
	}
	return g, nil
}

// Options are the axis settings shared by every chart.
type Options struct {
	Title, XLabel, YLabel string
	LogX, LogY            bool
}

// newPlot returns an empty plot in the house style: Liberation Sans text,
// thick axes closed by a frame on the top and right, and a faint dashed grid.
func newPlot(opts Options) *plot.Plot {
	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Typeface = "Liberation"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.Padding = vg.Points(8)

	for _, a := range []*plot.Axis{&p.X, &p.Y} {
		a.Label.TextStyle.Font.Variant = "Sans"
		a.Label.TextStyle.Font.Size = vg.Points(12)
		a.Label.Padding = vg.Points(4)
		a.LineStyle.Width = vg.Points(1.2)
		a.Tick.LineStyle.Width = vg.Points(1.2)
		a.Tick.Label.Font.Variant = "Sans"
		a.Tick.Label.Font.Size = vg.Points(10)
		a.Padding = 0
	}
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	p.Legend.TextStyle.Font.Variant = "Sans"
	p.Legend.TextStyle.Font.Size = vg.Points(10)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = vg.Points(8)
	p.Legend.YOffs = vg.Points(-8)
	p.Legend.Padding = vg.Points(3)
	p.Legend.ThumbnailWidth = vg.Points(20)

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 200}
	grid.Vertical.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Horizontal = grid.Vertical
	p.Add(grid, frame{LineStyle: p.X.LineStyle})

	if opts.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = log2Ticks{}
	}
	if opts.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = log2Ticks{}
	}
	return p
}

// frame closes the data area with a top and a right edge.
type frame struct {
	draw.LineStyle
}

func (f frame) Plot(c draw.Canvas, _ *plot.Plot) {
	c.StrokeLine2(f.LineStyle, c.Min.X, c.Max.Y, c.Max.X, c.Max.Y)
	c.StrokeLine2(f.LineStyle, c.Max.X, c.Min.Y, c.Max.X, c.Max.Y)
}

// log2Ticks labels powers of two, thinning them to at most a dozen labels.
type log2Ticks struct{}

func (log2Ticks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 || max <= min {
		return plot.LogTicks{}.Ticks(min, max)
	}
	lo := math.Ceil(math.Log2(min))
	hi := math.Floor(math.Log2(max))
	if hi < lo {
		return plot.LogTicks{}.Ticks(min, max)
	}
	step := math.Max(1, math.Ceil((hi-lo+1)/12))
	var ticks []plot.Tick
	for e := lo; e <= hi; e += step {
		ticks = append(ticks, plot.Tick{Value: math.Exp2(e), Label: fmt.Sprintf("2^%d", int(e))})
	}
	return ticks
}

// swatch is a filled legend entry.
type swatch struct {
	color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	}
	c.FillPolygon(s.Color, pts)
}

// fade returns c with its alpha scaled by a.
func fade(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * a))
	return n
}
