package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/sepplot/internal/bins"
	"github.com/HamletTheHamster/sepplot/internal/data"
	"github.com/HamletTheHamster/sepplot/internal/fit"
	"github.com/HamletTheHamster/sepplot/internal/render"
)

var boxplotCmd = &cobra.Command{
	Use:   "boxplot FILE...",
	Short: "Box per x bin for one or more x y files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		xLabel, _ := cmd.Flags().GetString("x-label")
		yLabel, _ := cmd.Flags().GetString("y-label")
		loglog, _ := cmd.Flags().GetBool("loglog")
		sqrt, _ := cmd.Flags().GetBool("sqrt")
		cbrt, _ := cmd.Flags().GetBool("cbrt")
		keep, _ := cmd.Flags().GetBool("keep-outliers")
		binCount, _ := cmd.Flags().GetInt("bins")
		fitLine, _ := cmd.Flags().GetBool("fit-line")

		series, err := loadSeries(args, keep)
		if err != nil {
			return quit(err)
		}

		binOpts := bins.Options{Count: binCount, Log: loglog, Stat: bins.Median}
		boxes := make([]render.BoxSeries, 0, len(series))
		overlays := references(sqrt, cbrt)
		for i, s := range series {
			bs, err := bins.Make(s.Samples, binOpts)
			if err != nil {
				return err
			}
			runLog.Printf("%s: %d non-empty bins\n", s.Name, len(bs))
			boxes = append(boxes, render.BoxSeries{Name: s.Name, Bins: bs})

			if !fitLine {
				continue
			}
			over, err := binFit(bins.Centers(bs), loglog)
			if err != nil {
				log.Printf("warning: %s: no fit line: %v", s.Name, err)
				continue
			}
			over.Color = style.Color(i)
			runLog.Printf("%s: %s\n", s.Name, over.Name)
			overlays = append(overlays, over)
		}

		opts := render.Options{XLabel: xLabel, YLabel: yLabel, LogX: loglog, LogY: loglog}
		fig, err := render.Boxplot(boxes, overlays, opts, style)
		if err != nil {
			return quit(err)
		}
		return finish(fig, outputPath(cmd, name, args[0], "_boxplot"), series, opts)
	},
}

// binFit fits the bin medians: a power law on log-log axes, a straight line
// otherwise.
func binFit(medians data.Samples, loglog bool) (render.Overlay, error) {
	if loglog {
		c, err := fit.PowerLaw(medians)
		if err != nil {
			return render.Overlay{}, err
		}
		return render.Overlay{Name: c.Model.Format(c.Params) + " (fit)", F: c.Eval}, nil
	}
	l, err := fit.Linear(medians.Xs(), medians.Ys())
	if err != nil {
		return render.Overlay{}, err
	}
	return render.Overlay{Name: fmt.Sprintf("%.2fx + %.2f (fit)", l.Slope, l.Intercept), F: l.Eval}, nil
}

func init() {
	boxplotCmd.Flags().Int("bins", 0, "number of x bins")
	boxplotCmd.Flags().String("name", "", "output name (default: first input's stem)")
	boxplotCmd.Flags().String("x-label", "Number of nodes", "x axis label")
	boxplotCmd.Flags().String("y-label", "Size of separator", "y axis label")
	boxplotCmd.Flags().Bool("loglog", false, "base 2 log-log axes and log spaced bins")
	boxplotCmd.Flags().Bool("sqrt", false, "draw an x^(1/2) reference")
	boxplotCmd.Flags().Bool("cbrt", false, "draw an x^(1/3) reference")
	boxplotCmd.Flags().Bool("keep-outliers", false, "keep samples past the outlier bound")
	boxplotCmd.Flags().String("type", "", "figure format (default from config)")
	boxplotCmd.Flags().Bool("fit-line", false, "fit the bin medians of every file")
	boxplotCmd.Flags().StringP("output", "o", "", "output file")
	_ = boxplotCmd.MarkFlagRequired("bins")
}
