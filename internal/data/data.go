// Package data loads the measurement files the plotting commands work on:
// whitespace separated numeric columns, single value lists, labelled values,
// raw binary vectors and the segment dumps written by the partitioner.
package data

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// ErrNoSamples is returned when a file holds no usable numeric rows.
var ErrNoSamples = errors.New("no samples")

// DefaultOutlierX is the x bound above which samples count as outliers.
const DefaultOutlierX = 10_000_000

// Sample is one (x, y) measurement.
type Sample struct {
	X, Y float64
}

// Samples implements plotter.XYer so it can be handed to gonum/plot directly.
type Samples []Sample

func (s Samples) Len() int {
	return len(s)
}

func (s Samples) XY(i int) (float64, float64) {
	return s[i].X, s[i].Y
}

func (s Samples) Xs() []float64 {
	xs := make([]float64, len(s))
	for i, v := range s {
		xs[i] = v.X
	}
	return xs
}

func (s Samples) Ys() []float64 {
	ys := make([]float64, len(s))
	for i, v := range s {
		ys[i] = v.Y
	}
	return ys
}

// Bounds returns the smallest and largest x and y. All four are NaN for an
// empty set.
func (s Samples) Bounds() (minX, maxX, minY, maxY float64) {
	if len(s) == 0 {
		nan := math.NaN()
		return nan, nan, nan, nan
	}
	minX, maxX = s[0].X, s[0].X
	minY, maxY = s[0].Y, s[0].Y
	for _, v := range s[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, maxX, minY, maxY
}

// MaxX returns the largest x, or 0 for an empty set.
func (s Samples) MaxX() float64 {
	if len(s) == 0 {
		return 0
	}
	_, maxX, _, _ := s.Bounds()
	return maxX
}

// Skipped records an input line that could not be parsed.
type Skipped struct {
	Line int
	Text string
	Err  error
}

func (s Skipped) String() string {
	return fmt.Sprintf("line %d: %q: %v", s.Line, s.Text, s.Err)
}

// Stem returns the file name without directory and extension, the default
// series label and output name.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
