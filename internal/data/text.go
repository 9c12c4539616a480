package data

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadPairs reads an "x y" file. Bad lines are returned in skipped rather
// than aborting the load.
func LoadPairs(path string) (Samples, []Skipped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	samples, skipped, err := ReadPairs(f)
	if err != nil {
		return nil, skipped, fmt.Errorf("%s: %w", path, err)
	}
	return samples, skipped, nil
}

// ReadPairs parses whitespace separated numeric columns, keeping the first
// two. Blank lines are ignored.
func ReadPairs(r io.Reader) (Samples, []Skipped, error) {
	var samples Samples
	var skipped []Skipped

	err := eachLine(r, func(n int, line string) {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			skipped = append(skipped, Skipped{Line: n, Text: line, Err: fmt.Errorf("want 2 columns, got %d", len(fields))})
			return
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			skipped = append(skipped, Skipped{Line: n, Text: line, Err: err})
			return
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			skipped = append(skipped, Skipped{Line: n, Text: line, Err: err})
			return
		}
		samples = append(samples, Sample{X: x, Y: y})
	})
	if err != nil {
		return nil, skipped, err
	}
	if len(samples) == 0 {
		return nil, skipped, ErrNoSamples
	}
	return samples, skipped, nil
}

// LoadValues reads one number per line.
func LoadValues(path string) ([]float64, []Skipped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var values []float64
	var skipped []Skipped
	err = eachLine(f, func(n int, line string) {
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			skipped = append(skipped, Skipped{Line: n, Text: line, Err: err})
			return
		}
		values = append(values, v)
	})
	if err != nil {
		return nil, skipped, fmt.Errorf("%s: %w", path, err)
	}
	if len(values) == 0 {
		return nil, skipped, fmt.Errorf("%s: %w", path, ErrNoSamples)
	}
	return values, skipped, nil
}

// Labeled is a named value, one bar of a bar chart.
type Labeled struct {
	Name  string
	Value float64
}

// LoadLabeled reads "name value" lines.
func LoadLabeled(path string) ([]Labeled, []Skipped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var out []Labeled
	var skipped []Skipped
	err = eachLine(f, func(n int, line string) {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			skipped = append(skipped, Skipped{Line: n, Text: line, Err: fmt.Errorf("want name and value")})
			return
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			skipped = append(skipped, Skipped{Line: n, Text: line, Err: err})
			return
		}
		out = append(out, Labeled{Name: fields[0], Value: v})
	})
	if err != nil {
		return nil, skipped, fmt.Errorf("%s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, skipped, fmt.Errorf("%s: %w", path, ErrNoSamples)
	}
	return out, skipped, nil
}

func eachLine(r io.Reader, fn func(n int, line string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(n, line)
	}
	return sc.Err()
}
