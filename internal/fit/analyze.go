package fit

import (
	"fmt"

	"github.com/HamletTheHamster/sepplot/internal/data"
)

// Models lists the curves tried by Analyze, in report order.
var Models = []Model{Cbrt, Sqrt, Power, CbrtOrigin, SqrtOrigin}

// Analysis compares a log-log regression with every curve in Models.
type Analysis struct {
	LogLog Line
	Curves []Curve
	// Squared and Cubed regress y² and y³ on x; a square root (cube root) law
	// makes the matching one straight.
	Squared Line
	Cubed   Line
}

// Analyze runs every fit over s. The first failing fit aborts the analysis.
func Analyze(s data.Samples) (Analysis, error) {
	var a Analysis
	var err error

	if a.LogLog, err = LogLog(s, 2); err != nil {
		return a, fmt.Errorf("log-log: %w", err)
	}
	for _, m := range Models {
		c, err := Fit(s, m)
		if err != nil {
			return a, err
		}
		a.Curves = append(a.Curves, c)
	}

	sq := data.PowY(s, 2)
	if a.Squared, err = Linear(sq.Xs(), sq.Ys()); err != nil {
		return a, fmt.Errorf("y^2: %w", err)
	}
	cu := data.PowY(s, 3)
	if a.Cubed, err = Linear(cu.Xs(), cu.Ys()); err != nil {
		return a, fmt.Errorf("y^3: %w", err)
	}
	return a, nil
}

// Report renders the analysis as printable lines.
func (a Analysis) Report() []string {
	out := []string{"\nLog-Log Transformation\n"}
	out = append(out, lineReport(a.LogLog)...)

	out = append(out, "\nNormal Fit\n")
	for i, c := range a.Curves {
		out = append(out, c.String()+"\n")
		if i == 2 {
			out = append(out, "\n")
		}
	}

	out = append(out, "\nAdjusted pow 3\n")
	out = append(out, lineReport(a.Cubed)...)
	out = append(out, "\nAdjusted pow 2\n")
	out = append(out, lineReport(a.Squared)...)
	return out
}

func lineReport(l Line) []string {
	return []string{
		fmt.Sprintf("Fitted Line: %s\n", l),
		fmt.Sprintf("r: %.4f   R²: %.4f (closer to 1 is better)\n", l.R, l.R*l.R),
		fmt.Sprintf("P-value: %g (for slope, closer to 0 is better)\n", l.P),
		fmt.Sprintf("Std. error: %.4g\n", l.StdErr),
	}
}

// PowerLaw fits a*x^m to s by taking m from a base-2 log-log regression and
// then solving for a with m fixed.
func PowerLaw(s data.Samples) (Curve, error) {
	l, err := LogLog(s, 2)
	if err != nil {
		return Curve{}, err
	}
	return Fit(s, Exponent(l.Slope))
}
