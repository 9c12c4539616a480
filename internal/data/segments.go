package data

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Point is a 2-D coordinate.
type Point struct {
	X, Y float64
}

// Segment is a line between two points.
type Segment struct {
	A, B Point
}

// Segment dumps print points as `Coord { x: 85.26, y: 18.56 }`.
var coordRE = regexp.MustCompile(`Coord\s*\{\s*x:\s*([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?),\s*y:\s*([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)\s*\}`)

// LoadSegments reads lines holding exactly two Coord groups. Other lines are
// reported as skipped.
func LoadSegments(path string) ([]Segment, []Skipped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ReadSegments(f)
}

func ReadSegments(r io.Reader) ([]Segment, []Skipped, error) {
	var segs []Segment
	var skipped []Skipped
	err := eachLine(r, func(n int, line string) {
		m := coordRE.FindAllStringSubmatch(line, -1)
		if len(m) != 2 {
			skipped = append(skipped, Skipped{Line: n, Text: line, Err: fmt.Errorf("want 2 coordinates, got %d", len(m))})
			return
		}
		var pts [2]Point
		for i, g := range m {
			x, err := strconv.ParseFloat(g[1], 64)
			if err != nil {
				skipped = append(skipped, Skipped{Line: n, Text: line, Err: err})
				return
			}
			y, err := strconv.ParseFloat(g[2], 64)
			if err != nil {
				skipped = append(skipped, Skipped{Line: n, Text: line, Err: err})
				return
			}
			pts[i] = Point{X: x, Y: y}
		}
		segs = append(segs, Segment{A: pts[0], B: pts[1]})
	})
	if err != nil {
		return nil, skipped, err
	}
	if len(segs) == 0 {
		return nil, skipped, ErrNoSamples
	}
	return segs, skipped, nil
}

// LoadEdges reads "x1 y1 x2 y2" integer lines.
func LoadEdges(path string) ([]Segment, []Skipped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ReadEdges(f)
}

func ReadEdges(r io.Reader) ([]Segment, []Skipped, error) {
	var segs []Segment
	var skipped []Skipped
	err := eachLine(r, func(n int, line string) {
		fields := strings.Fields(line)
		if len(fields) != 4 {
			skipped = append(skipped, Skipped{Line: n, Text: line, Err: fmt.Errorf("want 4 integers, got %d fields", len(fields))})
			return
		}
		var v [4]float64
		for i, s := range fields {
			iv, err := strconv.Atoi(s)
			if err != nil {
				skipped = append(skipped, Skipped{Line: n, Text: line, Err: err})
				return
			}
			v[i] = float64(iv)
		}
		segs = append(segs, Segment{A: Point{X: v[0], Y: v[1]}, B: Point{X: v[2], Y: v[3]}})
	})
	if err != nil {
		return nil, skipped, err
	}
	if len(segs) == 0 {
		return nil, skipped, ErrNoSamples
	}
	return segs, skipped, nil
}
