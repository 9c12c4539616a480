package data

import (
	"bytes"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPairsCountsNonEmptyLines(t *testing.T) {
	in := "1 2\n\n3 4\n  \n5 6 7\n"
	samples, skipped, err := ReadPairs(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, Samples{{1, 2}, {3, 4}, {5, 6}}, samples)
}

func TestReadPairsSkipsMalformedLines(t *testing.T) {
	in := "1 2\nabc 3\n4\n5 x\n6 7\n"
	samples, skipped, err := ReadPairs(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, Samples{{1, 2}, {6, 7}}, samples)
	require.Len(t, skipped, 3)
	assert.Equal(t, 2, skipped[0].Line)
	assert.Equal(t, 3, skipped[1].Line)
	assert.Equal(t, 4, skipped[2].Line)
}

func TestReadPairsEmpty(t *testing.T) {
	_, _, err := ReadPairs(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, ErrNoSamples)

	_, skipped, err := ReadPairs(strings.NewReader("a b\n"))
	assert.ErrorIs(t, err, ErrNoSamples)
	assert.Len(t, skipped, 1)
}

func TestLoadPairsMissingFile(t *testing.T) {
	_, _, err := LoadPairs(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadValuesAndLabeled(t *testing.T) {
	dir := t.TempDir()
	vp := filepath.Join(dir, "values")
	require.NoError(t, os.WriteFile(vp, []byte("1.5\n2\nfoo\n\n3e2\n"), 0o644))
	values, skipped, err := LoadValues(vp)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, 300}, values)
	assert.Len(t, skipped, 1)

	lp := filepath.Join(dir, "bars")
	require.NoError(t, os.WriteFile(lp, []byte("metis 12\nkahip 10.5\nbroken\n"), 0o644))
	bars, skipped, err := LoadLabeled(lp)
	require.NoError(t, err)
	assert.Equal(t, []Labeled{{"metis", 12}, {"kahip", 10.5}}, bars)
	assert.Len(t, skipped, 1)
}

func TestFilter(t *testing.T) {
	s := Samples{{100, 1}, {256, 2}, {300, 3}, {DefaultOutlierX, 4}, {2e7, 5}}

	assert.Equal(t, Samples{{100, 1}, {256, 2}, {300, 3}}, Outliers(DefaultOutlierX, false).Apply(s))
	assert.Equal(t, s, Outliers(DefaultOutlierX, true).Apply(s))
	assert.Equal(t, Samples{{300, 3}}, Filter{MinX: 256, MaxX: DefaultOutlierX}.Apply(s))
}

func TestLogLog(t *testing.T) {
	s := Samples{{8, 4}, {0, 1}, {2, -1}, {1024, 32}}
	out := LogLog(s, 2)
	require.Len(t, out, 2)
	assert.InDelta(t, 3, out[0].X, 1e-12)
	assert.InDelta(t, 2, out[0].Y, 1e-12)
	assert.InDelta(t, 10, out[1].X, 1e-12)
	assert.InDelta(t, 5, out[1].Y, 1e-12)
}

func TestPowY(t *testing.T) {
	out := PowY(Samples{{1, 2}, {2, 3}}, 3)
	assert.Equal(t, Samples{{1, 8}, {2, 27}}, out)
}

func TestBounds(t *testing.T) {
	minX, maxX, minY, maxY := Samples{{3, -1}, {1, 5}, {2, 0}}.Bounds()
	assert.Equal(t, []float64{1, 3, -1, 5}, []float64{minX, maxX, minY, maxY})

	minX, _, _, _ = Samples{}.Bounds()
	assert.True(t, math.IsNaN(minX))
	assert.Equal(t, 0.0, Samples{}.MaxX())
}

func TestBinaryRoundTrip(t *testing.T) {
	dir := t.TempDir()

	var ib bytes.Buffer
	require.NoError(t, WriteInt32s(&ib, []int32{0, 2, -3, 1 << 30}))
	ip := filepath.Join(dir, "first_out")
	require.NoError(t, os.WriteFile(ip, ib.Bytes(), 0o644))
	ints, err := LoadInt32s(ip)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 2, -3, 1 << 30}, ints)

	var fb bytes.Buffer
	require.NoError(t, WriteFloat32s(&fb, []float32{49.0, 8.4}))
	fp := filepath.Join(dir, "latitude")
	require.NoError(t, os.WriteFile(fp, fb.Bytes(), 0o644))
	floats, err := LoadFloat32s(fp)
	require.NoError(t, err)
	assert.Equal(t, []float32{49.0, 8.4}, floats)

	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(bad, []byte{1, 2, 3}, 0o644))
	_, err = LoadInt32s(bad)
	assert.Error(t, err)
}

func TestReadSegments(t *testing.T) {
	in := "(Point(Coord { x: 85.26, y: 18.56 }), Point(Coord { x: 83.2, y: -20.9 }))\n" +
		"garbage\n" +
		"(Point(Coord { x: 1, y: 2 }), Point(Coord { x: 3.5e1, y: 4 }))\n"
	segs, skipped, err := ReadSegments(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Segment{
		{A: Point{85.26, 18.56}, B: Point{83.2, -20.9}},
		{A: Point{1, 2}, B: Point{35, 4}},
	}, segs)
	require.Len(t, skipped, 1)
	assert.Equal(t, 2, skipped[0].Line)
}

func TestReadEdges(t *testing.T) {
	segs, skipped, err := ReadEdges(strings.NewReader("0 0 1 1\n1 1 2\n2 2 3 x\n-1 4 5 6\n"))
	require.NoError(t, err)
	assert.Equal(t, []Segment{
		{A: Point{0, 0}, B: Point{1, 1}},
		{A: Point{-1, 4}, B: Point{5, 6}},
	}, segs)
	assert.Len(t, skipped, 2)
}

func TestStem(t *testing.T) {
	assert.Equal(t, "Europe", Stem("output/sep/Europe"))
	assert.Equal(t, "karlsruhe", Stem("fragments/karlsruhe.txt"))
}

func TestHierarchy(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	levels := Hierarchy(3, 4, []float64{100, 10}, rng)
	require.Len(t, levels, 3)
	assert.Len(t, levels[0], 4)
	assert.Len(t, levels[1], 16)
	assert.Len(t, levels[2], 64)

	for _, p := range levels[0] {
		assert.LessOrEqual(t, math.Hypot(p.X, p.Y), 100.0)
	}
	// the last radius repeats for deeper levels
	for i, p := range levels[2] {
		c := levels[1][i/4]
		assert.LessOrEqual(t, math.Hypot(p.X-c.X, p.Y-c.Y), 10.0)
	}

	assert.Nil(t, Hierarchy(0, 4, []float64{1}, rng))
	assert.Nil(t, Hierarchy(2, 4, nil, rng))
}
