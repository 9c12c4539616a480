package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/sepplot/internal/bins"
	"github.com/HamletTheHamster/sepplot/internal/data"
	"github.com/HamletTheHamster/sepplot/internal/fit"
	"github.com/HamletTheHamster/sepplot/internal/render"
)

var scatterCmd = &cobra.Command{
	Use:   "scatter FILE...",
	Short: "Scatter plot of one or more x y files",
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
		median, _ := cmd.Flags().GetBool("median")
		fitCurves, _ := cmd.Flags().GetBool("fit")

		series, err := loadSeries(args, keep)
		if err != nil {
			return quit(err)
		}

		if binCount != 0 {
			opts := bins.Options{Count: binCount, Log: loglog, FromOrigin: true}
			if median {
				opts.Stat = bins.Median
			}
			for i := range series {
				bs, err := bins.Make(series[i].Samples, opts)
				if err != nil {
					return err
				}
				series[i].Name = fmt.Sprintf("%s (binned %s)", series[i].Name, binLabel(opts.Stat))
				series[i].Samples = bins.Centers(bs)
			}
		}

		overlays := references(sqrt, cbrt)
		if fitCurves {
			for i, s := range series {
				c, err := fit.PowerLaw(s.Samples)
				if err != nil {
					log.Printf("warning: %s: no power law fit: %v", s.Name, err)
					continue
				}
				runLog.Printf("%s: %s\n", s.Name, c)
				overlays = append(overlays, render.FitOverlay(c.Model.Format(c.Params)+" (fit)", c.Eval, style.Color(i)))
			}
		}

		opts := render.Options{XLabel: xLabel, YLabel: yLabel, LogX: loglog, LogY: loglog}
		fig, err := render.Scatter(series, overlays, opts, style)
		if err != nil {
			return quit(err)
		}
		return finish(fig, outputPath(cmd, name, args[0], ""), series, opts)
	},
}

var separatorCmd = &cobra.Command{
	Use:   "separator FILE",
	Short: "Scatter one file against a cbrt(x) or k*sqrt(x) reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		factor, _ := cmd.Flags().GetFloat64("sqrt-factor")
		title, _ := cmd.Flags().GetString("title")
		if title == "" {
			title = data.Stem(args[0])
		}

		series, err := loadSeries(args, true)
		if err != nil {
			return quit(err)
		}

		red := color.RGBA{R: 220, G: 30, B: 30, A: 255}
		over := render.Overlay{Name: "cbrt(x)", F: math.Cbrt, Color: red}
		if factor > 0 {
			over = render.Overlay{
				Name:  fmt.Sprintf("%g * sqrt(x)", factor),
				F:     func(x float64) float64 { return factor * math.Sqrt(x) },
				Color: red,
			}
		}

		opts := render.Options{Title: title}
		fig, err := render.Scatter(series, []render.Overlay{over}, opts, style)
		if err != nil {
			return quit(err)
		}
		return finish(fig, outputPath(cmd, "", args[0], ""), series, opts)
	},
}

func references(sqrt, cbrt bool) []render.Overlay {
	var out []render.Overlay
	if sqrt {
		out = append(out, render.SqrtReference())
	}
	if cbrt {
		out = append(out, render.CbrtReference())
	}
	return out
}

func binLabel(s bins.Statistic) string {
	if s == bins.Mean {
		return "average"
	}
	return s.String()
}

func init() {
	scatterCmd.Flags().String("name", "", "output name (default: first input's stem)")
	scatterCmd.Flags().String("x-label", "Number of nodes", "x axis label")
	scatterCmd.Flags().String("y-label", "Size of separator", "y axis label")
	scatterCmd.Flags().Bool("loglog", false, "base 2 log-log axes")
	scatterCmd.Flags().Bool("sqrt", false, "draw an x^(1/2) reference")
	scatterCmd.Flags().Bool("cbrt", false, "draw an x^(1/3) reference")
	scatterCmd.Flags().Bool("keep-outliers", false, "keep samples past the outlier bound")
	scatterCmd.Flags().String("type", "", "figure format (default from config)")
	scatterCmd.Flags().Int("bins", 0, "plot binned averages over this many bins")
	scatterCmd.Flags().Bool("median", false, "bin by median instead of mean")
	scatterCmd.Flags().Bool("fit", false, "fit and draw a power law per series")
	scatterCmd.Flags().StringP("output", "o", "", "output file")

	separatorCmd.Flags().Float64("sqrt-factor", 0, "draw k*sqrt(x) instead of cbrt(x)")
	separatorCmd.Flags().String("title", "", "figure title (default: input stem)")
	separatorCmd.Flags().String("type", "svg", "figure format")
	separatorCmd.Flags().StringP("output", "o", "", "output file")
}
