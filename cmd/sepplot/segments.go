package main

import (
	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/sepplot/internal/data"
	"github.com/HamletTheHamster/sepplot/internal/render"
)

func segmentsCommand(use, short, suffix string, load func(string) ([]data.Segment, []data.Skipped, error)) *cobra.Command {
	c := &cobra.Command{
		Use:   use + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segs, skipped, err := load(args[0])
			warnSkipped(args[0], skipped)
			if err != nil {
				return quit(err)
			}
			runLog.Printf("%s: %d segments\n", args[0], len(segs))

			opts := render.Options{Title: data.Stem(args[0])}
			fig, err := render.Segments(segs, opts, style)
			if err != nil {
				return quit(err)
			}
			return finish(fig, outputPath(cmd, "", args[0], suffix), nil, opts)
		},
	}
	c.Flags().StringP("output", "o", "", "output file")
	c.Flags().String("type", "", "figure format (default from config)")
	return c
}

var (
	segmentsCmd = segmentsCommand("segments", "Draw \"Coord { x: .., y: .. }\" segment dumps", "_segments", data.LoadSegments)
	edgesCmd    = segmentsCommand("edges", "Draw \"x1 y1 x2 y2\" edge lists", "_edges", data.LoadEdges)
)

var pointsCmd = &cobra.Command{
	Use:   "points FILE",
	Short: "Equal aspect scatter of an x y point file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, skipped, err := data.LoadPairs(args[0])
		warnSkipped(args[0], skipped)
		if err != nil {
			return quit(err)
		}
		runLog.Printf("%s: %d points\n", args[0], len(s))

		opts := render.Options{Title: data.Stem(args[0])}
		fig, err := render.Points(s, opts, style)
		if err != nil {
			return quit(err)
		}
		series := []render.Series{{Name: data.Stem(args[0]), Samples: s}}
		return finish(fig, outputPath(cmd, "", args[0], "_points"), series, opts)
	},
}

func init() {
	pointsCmd.Flags().StringP("output", "o", "", "output file")
	pointsCmd.Flags().String("type", "", "figure format (default from config)")
}
