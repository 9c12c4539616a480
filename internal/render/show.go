package render

import (
	"fmt"

	"github.com/Arafatk/glot"
)

// Show opens the series in a persistent gnuplot window. It fails when
// gnuplot cannot be started.
func Show(series []Series, opts Options) error {
	dimensions := 2
	persist := true
	debug := false
	gp, err := glot.NewPlot(dimensions, persist, debug)
	if err != nil {
		return fmt.Errorf("gnuplot: %w", err)
	}

	for _, s := range series {
		if len(s.Samples) == 0 {
			continue
		}
		pts := [][]float64{s.Samples.Xs(), s.Samples.Ys()}
		if err := gp.AddPointGroup(s.Name, "points", pts); err != nil {
			return fmt.Errorf("gnuplot: %s: %w", s.Name, err)
		}
	}
	if err := gp.SetTitle(opts.Title); err != nil {
		return err
	}
	if err := gp.SetXLabel(opts.XLabel); err != nil {
		return err
	}
	return gp.SetYLabel(opts.YLabel)
}
