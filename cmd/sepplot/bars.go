package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/sepplot/internal/data"
	"github.com/HamletTheHamster/sepplot/internal/render"
)

var barsCmd = &cobra.Command{
	Use:   "bars FILE",
	Short: "Bar chart of \"name value\" lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		xLabel, _ := cmd.Flags().GetString("x-label")
		yLabel, _ := cmd.Flags().GetString("y-label")

		values, skipped, err := data.LoadLabeled(args[0])
		warnSkipped(args[0], skipped)
		if err != nil {
			return quit(err)
		}
		runLog.Printf("%s: %d bars\n", args[0], len(values))

		opts := render.Options{XLabel: xLabel, YLabel: yLabel}
		fig, err := render.Bars(values, opts, style)
		if err != nil {
			return quit(err)
		}
		return finish(fig, outputPath(cmd, "", args[0], "_bars"), nil, opts)
	},
}

var histogramCmd = &cobra.Command{
	Use:   "histogram FILE",
	Short: "Histogram of a one value per line file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("bins")
		logX, _ := cmd.Flags().GetBool("log-x")
		logY, _ := cmd.Flags().GetBool("log-y")
		xLabel, _ := cmd.Flags().GetString("x-label")
		yLabel, _ := cmd.Flags().GetString("y-label")

		values, skipped, err := data.LoadValues(args[0])
		warnSkipped(args[0], skipped)
		if err != nil {
			return quit(err)
		}
		runLog.Printf("%s: %d values\n", args[0], len(values))

		opts := render.Options{
			Title:  "Histogram of " + data.Stem(args[0]),
			XLabel: xLabel,
			YLabel: yLabel,
			LogX:   logX,
			LogY:   logY,
		}
		fig, err := render.Histogram(values, n, opts, style)
		if err != nil {
			return quit(err)
		}

		path, _ := cmd.Flags().GetString("output")
		if path == "" {
			path = filepath.Join(figureDir(), "histogram", data.Stem(args[0])+".png")
		}
		return finish(fig, path, nil, opts)
	},
}

func init() {
	barsCmd.Flags().String("x-label", "", "x axis label")
	barsCmd.Flags().String("y-label", "", "y axis label")
	barsCmd.Flags().StringP("output", "o", "", "output file")
	barsCmd.Flags().String("type", "", "figure format (default from config)")
	_ = barsCmd.MarkFlagRequired("x-label")
	_ = barsCmd.MarkFlagRequired("y-label")

	histogramCmd.Flags().Int("bins", 30, "number of bins")
	histogramCmd.Flags().Bool("log-x", false, "log x axis")
	histogramCmd.Flags().Bool("log-y", false, "log y axis")
	histogramCmd.Flags().String("x-label", "Value", "x axis label")
	histogramCmd.Flags().String("y-label", "Frequency", "y axis label")
	histogramCmd.Flags().StringP("output", "o", "", "output file (default: <output dir>/histogram/<stem>.png)")
}
