package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/sepplot/internal/bins"
	"github.com/HamletTheHamster/sepplot/internal/data"
	"github.com/HamletTheHamster/sepplot/internal/fit"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Fit log-log, root and power law models and print the report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minX, _ := cmd.Flags().GetFloat64("min-x")
		binCount, _ := cmd.Flags().GetInt("bins")
		report, _ := cmd.Flags().GetString("report")

		s, skipped, err := data.LoadPairs(args[0])
		warnSkipped(args[0], skipped)
		if err != nil {
			return quit(err)
		}
		s = data.Filter{MinX: minX}.Apply(s)
		runLog.Printf("%s: %d samples with x > %g\n", args[0], len(s), minX)

		if binCount > 0 {
			bs, err := bins.Make(s, bins.Options{Count: binCount, FromOrigin: true})
			if err != nil {
				return err
			}
			s = bins.Centers(bs)
			runLog.Printf("analyzing %d bin means\n", len(s))
		}

		a, err := fit.Analyze(s)
		if err != nil {
			return err
		}
		lines := a.Report()
		runLog.Add(lines...)

		if report != "" {
			if err := os.WriteFile(report, []byte(strings.Join(lines, "")), 0o644); err != nil {
				return err
			}
		}
		if writeRunLog {
			if _, err := runLog.Write(figureDir()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Float64("min-x", 256, "ignore samples with x at or below this")
	analyzeCmd.Flags().Int("bins", 0, "analyze the means of this many x bins instead of the raw samples")
	analyzeCmd.Flags().String("report", "", "also write the report to this file")
}
