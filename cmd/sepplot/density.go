package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/sepplot/internal/data"
	"github.com/HamletTheHamster/sepplot/internal/render"
)

// densityRows is the fixed number of y cells of a density plot.
const densityRows = 20

var densityCmd = &cobra.Command{
	Use:   "density FILE",
	Short: "2-D histogram of an x y file with log colors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		xLabel, _ := cmd.Flags().GetString("x-label")
		yLabel, _ := cmd.Flags().GetString("y-label")
		loglog, _ := cmd.Flags().GetBool("loglog")
		cols, _ := cmd.Flags().GetInt("bins")

		s, skipped, err := data.LoadPairs(args[0])
		warnSkipped(args[0], skipped)
		if err != nil {
			return quit(err)
		}
		if loglog {
			s = data.LogLog(s, 2)
			xLabel = fmt.Sprintf("log2(%s)", xLabel)
			yLabel = fmt.Sprintf("log2(%s)", yLabel)
		}
		runLog.Printf("%s: %d samples on %dx%d cells\n", args[0], len(s), cols, densityRows)

		opts := render.Options{XLabel: xLabel, YLabel: yLabel}
		fig, err := render.Density(s, cols, densityRows, opts, style)
		if err != nil {
			return quit(err)
		}
		return finish(fig, outputPath(cmd, name, args[0], "-hist"), nil, opts)
	},
}

var heatmapCmd = &cobra.Command{
	Use:   "heatmap FILE",
	Short: "n x n 2-D histogram of an x y point file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("grid-size")

		s, skipped, err := data.LoadPairs(args[0])
		warnSkipped(args[0], skipped)
		if err != nil {
			return quit(err)
		}
		runLog.Printf("%s: %d points on a %dx%d grid\n", args[0], len(s), n, n)

		fig, err := render.Heatmap(s, n, style)
		if err != nil {
			return quit(err)
		}
		return finish(fig, outputPath(cmd, "", args[0], "_heatmap"), nil, render.Options{})
	},
}

func init() {
	densityCmd.Flags().String("name", "", "output name (default: input stem)")
	densityCmd.Flags().String("x-label", "Number of nodes", "x axis label")
	densityCmd.Flags().String("y-label", "Size of separator", "y axis label")
	densityCmd.Flags().Bool("loglog", false, "plot log2 of both coordinates")
	densityCmd.Flags().Int("bins", 45, "number of x cells")
	densityCmd.Flags().String("type", "pdf", "figure format")
	densityCmd.Flags().StringP("output", "o", "", "output file")

	heatmapCmd.Flags().IntP("grid-size", "n", 0, "cells per side")
	heatmapCmd.Flags().String("type", "", "figure format (default from config)")
	heatmapCmd.Flags().StringP("output", "o", "", "output file")
	_ = heatmapCmd.MarkFlagRequired("grid-size")
}
