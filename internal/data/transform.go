package data

import "math"

// Filter keeps samples whose x lies strictly between MinX and MaxX. A zero
// bound is open.
type Filter struct {
	MinX float64
	MaxX float64
}

// Outliers is the filter every scatter-like command applies: samples with
// x at or above maxX are dropped unless keep is set.
func Outliers(maxX float64, keep bool) Filter {
	if keep {
		return Filter{}
	}
	return Filter{MaxX: maxX}
}

func (f Filter) Apply(s Samples) Samples {
	out := make(Samples, 0, len(s))
	for _, v := range s {
		if f.MinX != 0 && v.X <= f.MinX {
			continue
		}
		if f.MaxX != 0 && v.X >= f.MaxX {
			continue
		}
		out = append(out, v)
	}
	return out
}

// LogLog maps every sample to (log_base x, log_base y). Samples with a
// non-positive coordinate have no logarithm and are dropped.
func LogLog(s Samples, base float64) Samples {
	lb := math.Log(base)
	out := make(Samples, 0, len(s))
	for _, v := range s {
		if v.X <= 0 || v.Y <= 0 {
			continue
		}
		out = append(out, Sample{X: math.Log(v.X) / lb, Y: math.Log(v.Y) / lb})
	}
	return out
}

// PowY raises every y to p. With p = 2 a square root law becomes linear in x,
// with p = 3 a cube root law does.
func PowY(s Samples, p float64) Samples {
	out := make(Samples, len(s))
	for i, v := range s {
		out[i] = Sample{X: v.X, Y: math.Pow(v.Y, p)}
	}
	return out
}
