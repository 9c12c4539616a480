// Package bins groups scattered samples into x intervals and reduces each
// interval to one representative point.
package bins

import (
	"errors"
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/HamletTheHamster/sepplot/internal/data"
)

// ErrBinCount is returned for a non-positive number of bins.
var ErrBinCount = errors.New("bins: bin count must be positive")

// Statistic selects how the y values of a bin are reduced.
type Statistic int

const (
	Mean Statistic = iota
	Median
)

func (s Statistic) String() string {
	if s == Median {
		return "median"
	}
	return "mean"
}

// Options configures Make.
type Options struct {
	Count int
	// Log spaces the edges geometrically and centers bins on the geometric
	// midpoint.
	Log  bool
	Stat Statistic
	// FromOrigin starts the edges at 0 (1 for log bins) instead of at the
	// smallest x.
	FromOrigin bool
}

// Bin is one non-empty x interval.
type Bin struct {
	Lo, Hi float64
	Center float64
	// Value is the mean or median of Values, Err the standard error of the
	// mean.
	Value  float64
	Err    float64
	Values []float64
}

// Make distributes samples over opts.Count intervals and returns the
// non-empty ones in increasing x. Intervals are half open except the last,
// which includes its upper edge; samples outside the edges are ignored.
func Make(s data.Samples, opts Options) ([]Bin, error) {
	if opts.Count <= 0 {
		return nil, ErrBinCount
	}
	if len(s) == 0 {
		return nil, nil
	}

	edges, ok := Edges(s, opts)
	if !ok {
		return nil, nil
	}

	groups := make([][]float64, opts.Count)
	for _, v := range s {
		i := locate(edges, v.X)
		if i < 0 {
			continue
		}
		groups[i] = append(groups[i], v.Y)
	}

	var out []Bin
	for i, ys := range groups {
		if len(ys) == 0 {
			continue
		}
		lo, hi := edges[i], edges[i+1]
		b := Bin{Lo: lo, Hi: hi, Values: ys}
		if opts.Log {
			b.Center = math.Sqrt(lo * hi)
		} else {
			b.Center = (lo + hi) / 2
		}
		b.Value = reduce(ys, opts.Stat)
		b.Err = stdErr(ys)
		out = append(out, b)
	}
	return out, nil
}

// Edges returns the opts.Count+1 bin edges for s. ok is false when no range
// can be formed, e.g. log bins over data without positive x.
func Edges(s data.Samples, opts Options) (edges []float64, ok bool) {
	minX, maxX, _, _ := s.Bounds()
	lo := minX
	if opts.Log {
		lo = math.Inf(1)
		for _, v := range s {
			if v.X > 0 && v.X < lo {
				lo = v.X
			}
		}
		if math.IsInf(lo, 1) {
			return nil, false
		}
		if opts.FromOrigin {
			lo = 1
		}
		if maxX < lo {
			return nil, false
		}
		return logspace(lo, maxX, opts.Count+1), true
	}
	if opts.FromOrigin {
		lo = 0
	}
	if maxX < lo {
		return nil, false
	}
	return linspace(lo, maxX, opts.Count+1), true
}

// Centers returns the bin centers of a result, ready for fitting or
// plotting.
func Centers(bs []Bin) data.Samples {
	out := make(data.Samples, len(bs))
	for i, b := range bs {
		out[i] = data.Sample{X: b.Center, Y: b.Value}
	}
	return out
}

func locate(edges []float64, x float64) int {
	n := len(edges) - 1
	if math.IsNaN(x) || x < edges[0] || x > edges[n] {
		return -1
	}
	if x == edges[n] {
		return n - 1
	}
	// first edge strictly greater than x closes the interval
	i := sort.Search(len(edges), func(i int) bool { return edges[i] > x })
	return i - 1
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

func logspace(lo, hi float64, n int) []float64 {
	l := linspace(math.Log10(lo), math.Log10(hi), n)
	for i, v := range l {
		l[i] = math.Pow(10, v)
	}
	l[0], l[n-1] = lo, hi
	return l
}

func reduce(ys []float64, st Statistic) float64 {
	var v float64
	var err error
	if st == Median {
		v, err = stats.Median(ys)
	} else {
		v, err = stats.Mean(ys)
	}
	if err != nil {
		return math.NaN()
	}
	return v
}

// stdErr is the standard deviation of the mean; zero for fewer than two
// values.
func stdErr(ys []float64) float64 {
	if len(ys) < 2 {
		return 0
	}
	sd, err := stats.StandardDeviationSample(ys)
	if err != nil {
		return 0
	}
	return sd / math.Sqrt(float64(len(ys)))
}
