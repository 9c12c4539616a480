package fit

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamletTheHamster/sepplot/internal/data"
)

func generate(n int, f func(x float64) float64) data.Samples {
	s := make(data.Samples, n)
	for i := range s {
		x := float64(i + 1)
		s[i] = data.Sample{X: x, Y: f(x)}
	}
	return s
}

func TestLinearExact(t *testing.T) {
	s := generate(20, func(x float64) float64 { return 2*x + 1 })
	l, err := Linear(s.Xs(), s.Ys())
	require.NoError(t, err)
	assert.InDelta(t, 2, l.Slope, 1e-9)
	assert.InDelta(t, 1, l.Intercept, 1e-9)
	assert.InDelta(t, 1, l.R, 1e-12)
	assert.InDelta(t, 0, l.P, 1e-9)
	assert.Equal(t, 20, l.N)
	assert.InDelta(t, 7, l.Eval(3), 1e-9)
	assert.Equal(t, "y = 2.0000x + 1.0000", l.String())
}

func TestLinearNoisy(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1, 3, 2, 5, 4}
	l, err := Linear(x, y)
	require.NoError(t, err)
	// values from a reference least squares solution
	assert.InDelta(t, 0.8, l.Slope, 1e-9)
	assert.InDelta(t, 0.6, l.Intercept, 1e-9)
	assert.InDelta(t, 0.8, l.R, 1e-9)
	assert.InDelta(t, 0.1041, l.P, 1e-3)
	assert.InDelta(t, 0.3464, l.StdErr, 1e-3)
}

func TestLinearErrors(t *testing.T) {
	_, err := Linear([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = Linear([]float64{1, 1, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Linear([]float64{1, 2, 3}, []float64{1, 2})
	assert.Error(t, err)

	l, err := Linear([]float64{1, 2, 3}, []float64{5, 5, 5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, l.Slope)
	assert.Equal(t, 1.0, l.P)
}

func TestLogLogRecoversPowerLaw(t *testing.T) {
	const c, k = 3.0, 0.4
	s := generate(200, func(x float64) float64 { return c * math.Pow(x, k) })

	l, err := LogLog(s, 2)
	require.NoError(t, err)
	assert.InDelta(t, k, l.Slope, 1e-9)
	assert.InDelta(t, math.Log2(c), l.Intercept, 1e-9)

	l, err = LogLog(s, math.E)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(c), l.Intercept, 1e-9)
}

func TestFitSqrtRecoversCoefficient(t *testing.T) {
	const a = 3.0
	s := generate(100, func(x float64) float64 { return a * math.Sqrt(x) })

	c, err := Fit(s, SqrtOrigin)
	require.NoError(t, err)
	require.Len(t, c.Params, 1)
	assert.InDelta(t, a, c.Params[0], 1e-6)
	assert.InDelta(t, 1, c.R2, 1e-9)

	c, err = Fit(s, Sqrt)
	require.NoError(t, err)
	assert.InDelta(t, a, c.Params[0], 1e-4)
	assert.InDelta(t, 0, c.Params[1], 1e-3)
}

func TestFitCbrt(t *testing.T) {
	s := generate(100, func(x float64) float64 { return 1.5*math.Cbrt(x) + 2 })
	c, err := Fit(s, Cbrt)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, c.Params[0], 1e-4)
	assert.InDelta(t, 2, c.Params[1], 1e-3)
	assert.Equal(t, "1.5000 * cbrt(x) + 2.0000   R²: 1.0000", c.String())
}

func TestFitExponent(t *testing.T) {
	s := generate(50, func(x float64) float64 { return 4 * math.Pow(x, 0.3) })
	c, err := Fit(s, Exponent(0.3))
	require.NoError(t, err)
	assert.InDelta(t, 4, c.Params[0], 1e-6)
	assert.InDelta(t, 4*math.Pow(10, 0.3), c.Eval(10), 1e-5)
}

func TestPowerLaw(t *testing.T) {
	s := generate(64, func(x float64) float64 { return 2.5 * math.Pow(x, 0.5) })
	c, err := PowerLaw(s)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, c.Params[0], 1e-6)
	assert.Equal(t, "x^0.50", c.Model.Name)
}

func TestLinearTwoPoints(t *testing.T) {
	l, err := Linear([]float64{1, 3}, []float64{5, 1})
	require.NoError(t, err)
	assert.InDelta(t, -2, l.Slope, 1e-12)
	assert.InDelta(t, 7, l.Intercept, 1e-12)
	assert.Equal(t, -1.0, l.R)
	assert.True(t, math.IsNaN(l.P))
	assert.True(t, math.IsNaN(l.StdErr))
	assert.Equal(t, 2, l.N)

	// two bin medians are enough for a power law
	c, err := PowerLaw(data.Samples{{X: 4, Y: 6}, {X: 16, Y: 12}})
	require.NoError(t, err)
	assert.InDelta(t, 3*math.Sqrt(9), c.Eval(9), 1e-3)
}

func TestFitTooFewPoints(t *testing.T) {
	_, err := Fit(data.Samples{{X: 1, Y: 1}, {X: 2, Y: 2}}, Power)
	assert.ErrorIs(t, err, ErrTooFewPoints)
	_, err = Fit(nil, SqrtOrigin)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestRSquared(t *testing.T) {
	s := data.Samples{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	assert.InDelta(t, 1, RSquared(s, func(x float64) float64 { return x }), 1e-12)
	// predicting the mean explains nothing
	assert.InDelta(t, 0, RSquared(s, func(float64) float64 { return 2 }), 1e-12)
}

func TestAnalyzeReport(t *testing.T) {
	s := generate(300, func(x float64) float64 { return 2 * math.Sqrt(x) })
	a, err := Analyze(s)
	require.NoError(t, err)
	require.Len(t, a.Curves, len(Models))
	assert.InDelta(t, 0.5, a.LogLog.Slope, 1e-9)
	// y² is exactly linear in x for a square root law
	assert.InDelta(t, 1, a.Squared.R, 1e-9)

	report := strings.Join(a.Report(), "")
	assert.Contains(t, report, "Log-Log Transformation")
	assert.Contains(t, report, "Fitted Line: y = 0.5000x + 1.0000")
	assert.Contains(t, report, "Normal Fit")
	assert.Contains(t, report, "2.0000 * sqrt(x)   R²: 1.0000")
	assert.Contains(t, report, "Adjusted pow 2")
}
