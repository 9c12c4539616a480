package fit

import (
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/stat"

	"github.com/HamletTheHamster/sepplot/internal/data"
)

// Model is a curve y = F(x, params) with a fixed number of parameters.
type Model struct {
	Name   string
	Params int
	F      func(x float64, p []float64) float64
	Format func(p []float64) string
}

// InitialGuess seeds every parameter of every model.
const InitialGuess = 0.5

var (
	Sqrt = Model{
		Name:   "sqrt",
		Params: 2,
		F:      func(x float64, p []float64) float64 { return p[0]*math.Sqrt(x) + p[1] },
		Format: func(p []float64) string { return fmt.Sprintf("%.4f * sqrt(x) + %.4f", p[0], p[1]) },
	}
	SqrtOrigin = Model{
		Name:   "sqrt, no intercept",
		Params: 1,
		F:      func(x float64, p []float64) float64 { return p[0] * math.Sqrt(x) },
		Format: func(p []float64) string { return fmt.Sprintf("%.4f * sqrt(x)", p[0]) },
	}
	Cbrt = Model{
		Name:   "cbrt",
		Params: 2,
		F:      func(x float64, p []float64) float64 { return p[0]*math.Cbrt(x) + p[1] },
		Format: func(p []float64) string { return fmt.Sprintf("%.4f * cbrt(x) + %.4f", p[0], p[1]) },
	}
	CbrtOrigin = Model{
		Name:   "cbrt, no intercept",
		Params: 1,
		F:      func(x float64, p []float64) float64 { return p[0] * math.Cbrt(x) },
		Format: func(p []float64) string { return fmt.Sprintf("%.4f * cbrt(x)", p[0]) },
	}
	Power = Model{
		Name:   "power",
		Params: 3,
		F:      func(x float64, p []float64) float64 { return p[0]*math.Pow(x, p[1]) + p[2] },
		Format: func(p []float64) string { return fmt.Sprintf("%.4f * x^%.4f + %.4f", p[0], p[1], p[2]) },
	}
	PowerOrigin = Model{
		Name:   "power, no intercept",
		Params: 2,
		F:      func(x float64, p []float64) float64 { return p[0] * math.Pow(x, p[1]) },
		Format: func(p []float64) string { return fmt.Sprintf("%.4f * x^%.4f", p[0], p[1]) },
	}
)

// Exponent is a * x^m with m held fixed.
func Exponent(m float64) Model {
	return Model{
		Name:   fmt.Sprintf("x^%.2f", m),
		Params: 1,
		F:      func(x float64, p []float64) float64 { return p[0] * math.Pow(x, m) },
		Format: func(p []float64) string { return fmt.Sprintf("%.2f * x^%.2f", p[0], m) },
	}
}

// Curve is a fitted model.
type Curve struct {
	Model  Model
	Params []float64
	R2     float64
}

func (c Curve) Eval(x float64) float64 {
	return c.Model.F(x, c.Params)
}

func (c Curve) String() string {
	return fmt.Sprintf("%s   R²: %.4f", c.Model.Format(c.Params), c.R2)
}

// Fit solves for the model parameters by nonlinear least squares starting
// from InitialGuess. A solver failure is returned as is.
func Fit(s data.Samples, m Model) (Curve, error) {
	if len(s) < m.Params || len(s) == 0 {
		return Curve{}, ErrTooFewPoints
	}

	f := func(dst, guess []float64) {
		for i, v := range s {
			dst[i] = m.F(v.X, guess) - v.Y
		}
	}

	init := make([]float64, m.Params)
	for i := range init {
		init[i] = InitialGuess
	}

	jacobian := lm.NumJac{Func: f}

	toBeSolved := lm.LMProblem{
		Dim:        m.Params,
		Size:       len(s),
		Func:       f,
		Jac:        jacobian.Jac,
		InitParams: init,
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	results, err := lm.LM(toBeSolved, &lm.Settings{Iterations: 1000, ObjectiveTol: 1e-16})
	if err != nil {
		return Curve{}, fmt.Errorf("fit %s: %w", m.Name, err)
	}

	params := append([]float64(nil), results.X...)
	for _, p := range params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return Curve{}, fmt.Errorf("fit %s: solver diverged", m.Name)
		}
	}

	c := Curve{Model: m, Params: params}
	c.R2 = RSquared(s, c.Eval)
	return c, nil
}

// RSquared is 1 - SS_res/SS_tot of predict over s.
func RSquared(s data.Samples, predict func(float64) float64) float64 {
	est := make([]float64, len(s))
	for i, v := range s {
		est[i] = predict(v.X)
	}
	return stat.RSquaredFrom(est, s.Ys(), nil)
}
