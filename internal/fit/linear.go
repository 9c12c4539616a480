// Package fit fits the closed-form growth models used to judge separator
// sizes: straight lines (optionally in log-log space) and square root, cube
// root and general power laws solved by Levenberg-Marquardt.
package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/HamletTheHamster/sepplot/internal/data"
)

var (
	// ErrTooFewPoints is returned when there are fewer samples than the
	// model has degrees of freedom.
	ErrTooFewPoints = errors.New("fit: too few points")
	// ErrDegenerate is returned when all x are equal.
	ErrDegenerate = errors.New("fit: x values are all equal")
)

// Line is a least squares line y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
	// R is the Pearson correlation, P the two-sided p-value of the slope
	// against a zero slope, StdErr the standard error of the slope.
	R      float64
	P      float64
	StdErr float64
	N      int
}

func (l Line) Eval(x float64) float64 {
	return l.Slope*x + l.Intercept
}

func (l Line) String() string {
	return fmt.Sprintf("y = %.4fx + %.4f", l.Slope, l.Intercept)
}

// Linear fits a line through x, y. Two points give the line through them
// with R = ±1; P and StdErr are NaN since no degrees of freedom are left.
func Linear(x, y []float64) (Line, error) {
	n := len(x)
	if n != len(y) {
		return Line{}, fmt.Errorf("fit: %d x values but %d y values", n, len(y))
	}
	if n < 2 {
		return Line{}, ErrTooFewPoints
	}
	if stat.Variance(x, nil) == 0 {
		return Line{}, ErrDegenerate
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	l := Line{Slope: slope, Intercept: intercept, N: n}

	if stat.Variance(y, nil) == 0 {
		// a perfectly flat line
		l.R = 0
		l.P = 1
		return l, nil
	}

	if n == 2 {
		l.R = math.Copysign(1, slope)
		l.P = math.NaN()
		l.StdErr = math.NaN()
		return l, nil
	}

	r := stat.Correlation(x, y, nil)
	r = math.Max(-1, math.Min(1, r))
	l.R = r

	df := float64(n - 2)
	if math.Abs(r) == 1 {
		l.P = 0
		l.StdErr = 0
		return l, nil
	}
	t := r * math.Sqrt(df/((1-r)*(1+r)))
	student := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	l.P = 2 * student.Survival(math.Abs(t))
	l.StdErr = math.Sqrt((1 - r*r) * stat.Variance(y, nil) / stat.Variance(x, nil) / df)
	return l, nil
}

// LogLog fits a line to (log_base x, log_base y). For y = c*x^k the slope
// is k and the intercept log_base c. Non-positive samples are dropped.
func LogLog(s data.Samples, base float64) (Line, error) {
	t := data.LogLog(s, base)
	return Linear(t.Xs(), t.Ys())
}
