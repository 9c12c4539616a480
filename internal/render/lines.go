package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/HamletTheHamster/sepplot/internal/data"
	"github.com/HamletTheHamster/sepplot/internal/graph"
)

// segments draws unconnected line segments, styled per index. A positive
// head ends every segment in an arrowhead stopping gap short of B.
type segments struct {
	segs  []data.Segment
	style func(i int) draw.LineStyle
	head  vg.Length
	gap   vg.Length
}

func (s segments) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for i, seg := range s.segs {
		a := vg.Point{X: trX(seg.A.X), Y: trY(seg.A.Y)}
		b := vg.Point{X: trX(seg.B.X), Y: trY(seg.B.Y)}
		ls := s.style(i)
		c.StrokeLines(ls, c.ClipLinesXY([]vg.Point{a, b})...)
		if s.head <= 0 {
			continue
		}
		if wings, ok := arrowhead(a, b, s.head, s.gap); ok {
			c.StrokeLines(ls, c.ClipLinesXY(wings[:])...)
		}
	}
}

const arrowAngle = math.Pi / 7

// arrowhead returns the polyline wing, tip, wing of an arrow pointing from a
// to b with its tip gap short of b. Segments too short to carry the head
// have none.
func arrowhead(a, b vg.Point, head, gap vg.Length) ([3]vg.Point, bool) {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	d := math.Hypot(dx, dy)
	if d <= float64(head+gap) {
		return [3]vg.Point{}, false
	}
	// unit vector from b back towards a
	x, y := -dx/d, -dy/d
	tip := vg.Point{X: b.X + vg.Length(x)*gap, Y: b.Y + vg.Length(y)*gap}

	wing := func(angle float64) vg.Point {
		sin, cos := math.Sincos(angle)
		return vg.Point{
			X: tip.X + head*vg.Length(x*cos-y*sin),
			Y: tip.Y + head*vg.Length(x*sin+y*cos),
		}
	}
	return [3]vg.Point{wing(arrowAngle), tip, wing(-arrowAngle)}, true
}

func (s segments) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, seg := range s.segs {
		for _, pt := range []data.Point{seg.A, seg.B} {
			xmin, xmax = math.Min(xmin, pt.X), math.Max(xmax, pt.X)
			ymin, ymax = math.Min(ymin, pt.Y), math.Max(ymax, pt.Y)
		}
	}
	return xmin, xmax, ymin, ymax
}

func endpoints(segs []data.Segment) plotter.XYs {
	pts := make(plotter.XYs, 0, 2*len(segs))
	for _, s := range segs {
		pts = append(pts, plotter.XY{X: s.A.X, Y: s.A.Y}, plotter.XY{X: s.B.X, Y: s.B.Y})
	}
	return pts
}

// Segments draws each segment in its own plotutil color, with endpoint
// markers, on equal axes.
func Segments(segs []data.Segment, opts Options, st Style) (*Figure, error) {
	if len(segs) == 0 {
		return nil, data.ErrNoSamples
	}
	p := newPlot(opts)
	p.Add(segments{segs: segs, style: func(i int) draw.LineStyle {
		return draw.LineStyle{Color: plotutil.Color(i), Width: vg.Points(1)}
	}})

	ends, err := plotter.NewScatter(endpoints(segs))
	if err != nil {
		return nil, err
	}
	ends.GlyphStyle.Color = color.Black
	ends.GlyphStyle.Shape = draw.CircleGlyph{}
	ends.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(ends)

	equalAxes(p)
	return square(p, st), nil
}

// Points draws a point cloud with small dots on equal axes.
func Points(s data.Samples, opts Options, st Style) (*Figure, error) {
	if len(s) == 0 {
		return nil, data.ErrNoSamples
	}
	p := newPlot(opts)
	sc, err := plotter.NewScatter(s)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = st.Color(0)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(0.5)
	p.Add(sc)

	equalAxes(p)
	return square(p, st), nil
}

// GraphOptions control node drawing.
type GraphOptions struct {
	Options
	// Labels writes each node's name next to it.
	Labels bool
}

// Graph draws every arc as a thin gray line and every node as a dot at its
// layout position. Highlighted nodes are drawn larger in the accent color.
// Arcs of directed graphs end in arrowheads.
func Graph(g *graph.Graph, pos []data.Point, opts GraphOptions, st Style) (*Figure, error) {
	if g.Nodes() == 0 {
		return nil, data.ErrNoSamples
	}
	p := newPlot(opts.Options)
	p.HideAxes()

	arcs := g.Edges()
	segs := make([]data.Segment, 0, len(arcs))
	for _, e := range arcs {
		segs = append(segs, data.Segment{A: pos[e[0]], B: pos[e[1]]})
	}
	radius := nodeRadius(g.Nodes())
	edgeStyle := draw.LineStyle{Color: color.Gray{Y: 160}, Width: vg.Points(0.5)}
	links := segments{segs: segs, style: func(int) draw.LineStyle { return edgeStyle }}
	if g.Directed() {
		links.head = max(vg.Points(3), 1.5*radius)
		links.gap = radius
	}
	p.Add(links)

	var plain, marked plotter.XYs
	for v, pt := range pos {
		xy := plotter.XY{X: pt.X, Y: pt.Y}
		if g.Highlight[v] {
			marked = append(marked, xy)
		} else {
			plain = append(plain, xy)
		}
	}
	if len(plain) > 0 {
		sc, err := plotter.NewScatter(plain)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle = draw.GlyphStyle{Color: st.Color(0), Shape: draw.CircleGlyph{}, Radius: radius}
		p.Add(sc)
	}
	if len(marked) > 0 {
		sc, err := plotter.NewScatter(marked)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle = draw.GlyphStyle{Color: st.Accent, Shape: draw.CircleGlyph{}, Radius: 2 * radius}
		p.Add(sc)
		p.Legend.Add("highlighted", sc)
	}

	if opts.Labels {
		names := make([]string, len(pos))
		xys := make(plotter.XYs, len(pos))
		for v, pt := range pos {
			names[v] = g.Label(v)
			xys[v] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
		if err != nil {
			return nil, err
		}
		labels.Offset = vg.Point{X: radius, Y: radius}
		p.Add(labels)
	}

	if !g.HasCoordinates() {
		equalAxes(p)
	}
	return square(p, st), nil
}

// nodeRadius shrinks dots as the graph grows.
func nodeRadius(n int) vg.Length {
	switch {
	case n <= 100:
		return vg.Points(4)
	case n <= 10_000:
		return vg.Points(1.5)
	default:
		return vg.Points(0.3)
	}
}

// equalAxes widens the shorter axis so both span the same range around
// their centers. On a square figure one unit then has the same length on
// both axes.
func equalAxes(p *plot.Plot) {
	span := math.Max(p.X.Max-p.X.Min, p.Y.Max-p.Y.Min)
	if span == 0 {
		span = 1
	}
	cx := (p.X.Min + p.X.Max) / 2
	cy := (p.Y.Min + p.Y.Max) / 2
	p.X.Min, p.X.Max = cx-span/2, cx+span/2
	p.Y.Min, p.Y.Max = cy-span/2, cy+span/2
}

func square(p *plot.Plot, st Style) *Figure {
	side := math.Min(float64(st.Width), float64(st.Height))
	return &Figure{Plot: p, Width: vg.Length(side), Height: vg.Length(side)}
}
