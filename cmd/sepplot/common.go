package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/sepplot/internal/data"
	"github.com/HamletTheHamster/sepplot/internal/render"
)

// noData reports errors that end a run without a figure but are not
// failures: a missing input or one without usable rows.
func noData(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, data.ErrNoSamples)
}

// quit turns a load error into the command's result.
func quit(err error) error {
	if noData(err) {
		log.Print(err)
		return nil
	}
	return err
}

func warnSkipped(path string, skipped []data.Skipped) {
	for _, s := range skipped {
		log.Printf("warning: %s: skipping %s", path, s)
	}
}

// loadSeries reads every file as one series named after its stem. Samples
// at or past the outlier bound are dropped unless keepOutliers is set.
func loadSeries(paths []string, keepOutliers bool) ([]render.Series, error) {
	filter := data.Outliers(cfg.OutlierX, keepOutliers)
	series := make([]render.Series, 0, len(paths))
	for _, path := range paths {
		s, skipped, err := data.LoadPairs(path)
		warnSkipped(path, skipped)
		if err != nil {
			return nil, err
		}
		s = filter.Apply(s)
		if len(s) == 0 {
			return nil, fmt.Errorf("%s: %w", path, data.ErrNoSamples)
		}
		runLog.Printf("%s: %d samples\n", path, len(s))
		series = append(series, render.Series{Name: data.Stem(path), Samples: s})
	}
	return series, nil
}

func figureDir() string {
	if outputDir != "" {
		return outputDir
	}
	return cfg.OutputDir
}

// outputPath is --output when given, otherwise
// <output dir>/<name, or the first input's stem><suffix>.<type>.
func outputPath(cmd *cobra.Command, name, first, suffix string) string {
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		return out
	}
	typ, _ := cmd.Flags().GetString("type")
	if typ == "" {
		typ = cfg.Type
	}
	if name == "" {
		name = data.Stem(first)
	}
	return render.OutputPath(figureDir(), name, suffix, typ)
}

// finish saves the figure, then shows the series in gnuplot and writes the
// run log when asked to.
func finish(fig *render.Figure, path string, series []render.Series, opts render.Options) error {
	if err := fig.Save(path); err != nil {
		return err
	}
	runLog.Printf("Plot saved to %s\n", path)

	if showPlot && len(series) > 0 {
		if err := render.Show(series, opts); err != nil {
			log.Printf("warning: %v", err)
		}
	}
	if writeRunLog {
		p, err := runLog.Write(filepath.Dir(path))
		if err != nil {
			return err
		}
		log.Printf("run log written to %s", p)
	}
	return nil
}
