package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a finished chart: a main plot and, for heat maps, a color bar
// drawn in a narrow strip to its right.
type Figure struct {
	Plot *plot.Plot
	Bar  *plot.Plot

	Width, Height vg.Length
}

func newFigure(p *plot.Plot, st Style) *Figure {
	return &Figure{Plot: p, Width: st.Width, Height: st.Height}
}

// OutputPath builds <dir>/<name><suffix>.<typ>.
func OutputPath(dir, name, suffix, typ string) string {
	return filepath.Join(dir, name+suffix+"."+strings.TrimPrefix(typ, "."))
}

// Save writes the figure to path, creating parent directories. The format
// follows the extension: png, svg, pdf, eps, jpg or tif.
func (f *Figure) Save(path string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return fmt.Errorf("%s: missing file extension", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	dc := draw.New(c)
	if f.Bar == nil {
		f.Plot.Draw(dc)
	} else {
		strip := f.Width / 7
		f.Plot.Draw(draw.Crop(dc, 0, -strip, 0, 0))
		f.Bar.Draw(draw.Crop(dc, f.Width-strip+vg.Points(10), 0, 0, 0))
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = c.WriteTo(out)
	return err
}
