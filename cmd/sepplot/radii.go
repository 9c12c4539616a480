package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/sepplot/internal/data"
	"github.com/HamletTheHamster/sepplot/internal/render"
)

var radiiCmd = &cobra.Command{
	Use:   "radii",
	Short: "Generate and draw nested random point clouds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		levels, _ := cmd.Flags().GetInt("levels")
		perLevel, _ := cmd.Flags().GetInt("points")
		radii, _ := cmd.Flags().GetFloat64Slice("radius")
		seed, _ := cmd.Flags().GetInt64("seed")

		if levels <= 0 || perLevel <= 0 || len(radii) == 0 {
			return fmt.Errorf("need positive --levels and --points and at least one --radius")
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		runLog.Printf("levels: %d, points per level: %d, radii: %v, seed: %d\n", levels, perLevel, radii, seed)

		clouds := data.Hierarchy(levels, perLevel, radii, rand.New(rand.NewSource(seed)))
		fig, err := render.Levels(clouds, style)
		if err != nil {
			return err
		}
		return finish(fig, outputPath(cmd, "radii", "", ""), nil, render.Options{})
	},
}

func init() {
	radiiCmd.Flags().Int("levels", 3, "number of levels")
	radiiCmd.Flags().Int("points", 15, "points around every center of the level above")
	radiiCmd.Flags().Float64Slice("radius", []float64{10000}, "radius of a level, repeat per level (the last repeats)")
	radiiCmd.Flags().Int64("seed", 0, "random seed (default: time based)")
	radiiCmd.Flags().StringP("output", "o", "", "output file")
	radiiCmd.Flags().String("type", "", "figure format (default from config)")
}
