package data

import (
	"math"
	"math/rand"
)

// Hierarchy samples nested point clouds. Level 0 holds perLevel points drawn
// uniformly from the disc of radius radii[0] around the origin; every point
// of level i becomes the center of perLevel points of level i+1 within
// radii[i+1]. Missing radii repeat the last one.
func Hierarchy(levels, perLevel int, radii []float64, rng *rand.Rand) []Samples {
	if levels <= 0 || perLevel <= 0 || len(radii) == 0 {
		return nil
	}
	out := make([]Samples, 0, levels)
	centers := Samples{{}}
	for i := 0; i < levels; i++ {
		r := radii[min(i, len(radii)-1)]
		level := make(Samples, 0, len(centers)*perLevel)
		for _, c := range centers {
			for j := 0; j < perLevel; j++ {
				level = append(level, inDisc(c, r, rng))
			}
		}
		out = append(out, level)
		centers = level
	}
	return out
}

// inDisc draws a point uniformly from the disc; the square root keeps the
// density constant over the area.
func inDisc(center Sample, radius float64, rng *rand.Rand) Sample {
	angle := 2 * math.Pi * rng.Float64()
	r := radius * math.Sqrt(rng.Float64())
	return Sample{X: center.X + r*math.Cos(angle), Y: center.Y + r*math.Sin(angle)}
}
