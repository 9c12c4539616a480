package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/sepplot/internal/config"
	"github.com/HamletTheHamster/sepplot/internal/render"
	"github.com/HamletTheHamster/sepplot/internal/runlog"
)

var (
	configPath  string
	showPlot    bool
	outputDir   string
	writeRunLog bool
	note        string

	cfg    config.Config
	style  render.Style
	runLog *runlog.Log
)

var rootCmd = &cobra.Command{
	Use:   "sepplot",
	Short: "Plot and fit graph size vs. separator size measurements",
	Long: `sepplot reads whitespace separated measurement files, bins and fits
them against square root, cube root and general power laws, and draws the
result as scatter, box, bar, histogram, density or graph figures.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		if style, err = cfg.Style.Render(); err != nil {
			return err
		}
		runLog = runlog.New(os.Stdout)
		runLog.Header(cmd.Name(), args, note)
		return nil
	},
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("sepplot: ")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "style and defaults file (TOML)")
	rootCmd.PersistentFlags().BoolVar(&showPlot, "show", false, "also display the data in a gnuplot window")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "directory for figures without --output (default from config)")
	rootCmd.PersistentFlags().BoolVar(&writeRunLog, "log", false, "write the run log next to the figure")
	rootCmd.PersistentFlags().StringVar(&note, "note", "", "runtime note recorded in the run log")

	rootCmd.AddCommand(scatterCmd)
	rootCmd.AddCommand(separatorCmd)
	rootCmd.AddCommand(boxplotCmd)
	rootCmd.AddCommand(barsCmd)
	rootCmd.AddCommand(histogramCmd)
	rootCmd.AddCommand(densityCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(segmentsCmd)
	rootCmd.AddCommand(edgesCmd)
	rootCmd.AddCommand(pointsCmd)
	rootCmd.AddCommand(radiiCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
