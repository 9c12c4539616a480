package graph

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamletTheHamster/sepplot/internal/data"
)

func writeCSR(t *testing.T, dir string, firstOut, head []int32, lat, lon []float32) {
	t.Helper()
	write := func(name string, fn func(*bytes.Buffer) error) {
		var b bytes.Buffer
		require.NoError(t, fn(&b))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), b.Bytes(), 0o644))
	}
	write("first_out", func(b *bytes.Buffer) error { return data.WriteInt32s(b, firstOut) })
	write("head", func(b *bytes.Buffer) error { return data.WriteInt32s(b, head) })
	if lat != nil {
		write("latitude", func(b *bytes.Buffer) error { return data.WriteFloat32s(b, lat) })
	}
	if lon != nil {
		write("longitude", func(b *bytes.Buffer) error { return data.WriteFloat32s(b, lon) })
	}
}

func TestLoadCSR(t *testing.T) {
	dir := t.TempDir()
	writeCSR(t, dir, []int32{0, 2, 3, 4}, []int32{1, 2, 0, 0}, []float32{49, 48.5, 49.5}, []float32{8, 8.5, 9})

	g, err := LoadCSR(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Nodes())
	assert.Equal(t, []int32{1, 2}, g.Neighbors(0))
	assert.True(t, g.HasCoordinates())
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 0}, {2, 0}}, g.Edges())

	pos := Layout(g)
	require.Len(t, pos, 3)
	assert.Equal(t, data.Point{X: 49, Y: -8}, pos[0])
	assert.Equal(t, data.Point{X: 48.5, Y: -8.5}, pos[1])
}

func TestLoadCSRWithoutCoordinates(t *testing.T) {
	dir := t.TempDir()
	writeCSR(t, dir, []int32{0, 1, 2}, []int32{1, 0}, nil, nil)
	g, err := LoadCSR(dir)
	require.NoError(t, err)
	assert.False(t, g.HasCoordinates())
}

func TestLoadCSRInconsistent(t *testing.T) {
	cases := map[string]struct {
		firstOut, head []int32
		lat, lon       []float32
	}{
		"head too short":    {firstOut: []int32{0, 2, 3}, head: []int32{1, 0}},
		"head out of range": {firstOut: []int32{0, 1, 2}, head: []int32{1, 7}},
		"decreasing":        {firstOut: []int32{0, 2, 1, 2}, head: []int32{1, 0}},
		"coordinate count":  {firstOut: []int32{0, 1, 2}, head: []int32{1, 0}, lat: []float32{1}, lon: []float32{1}},
		"latitude only":     {firstOut: []int32{0, 1, 2}, head: []int32{1, 0}, lat: []float32{1, 2}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeCSR(t, dir, c.firstOut, c.head, c.lat, c.lon)
			_, err := LoadCSR(dir)
			assert.ErrorIs(t, err, ErrInconsistent)
		})
	}
}

func TestLoadCSRMissing(t *testing.T) {
	_, err := LoadCSR(t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadMETIS(t *testing.T) {
	in := "% a triangle plus a tail\n4 4\n2 3\n1 3\n1 2 4\n3\n"
	g, err := ReadMETIS(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Nodes())
	assert.Equal(t, []int32{1, 2}, g.Neighbors(0))
	assert.Equal(t, []int32{0, 1, 3}, g.Neighbors(2))
	assert.Equal(t, []int32{2}, g.Neighbors(3))

	_, err = ReadMETIS(strings.NewReader("2 1\n5\n\n"))
	assert.ErrorIs(t, err, ErrInconsistent)

	_, err = ReadMETIS(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadJSON(t *testing.T) {
	g, err := ReadJSON(strings.NewReader(`{"b": [1, "a"], "a": ["b"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "1"}, g.Names)
	assert.Equal(t, 3, g.Nodes())
	assert.Equal(t, []int32{1}, g.Neighbors(0))
	assert.Equal(t, []int32{2, 0}, g.Neighbors(1))
	assert.Empty(t, g.Neighbors(2))
	assert.Equal(t, "1", g.Label(2))
	require.NoError(t, g.Validate())
}

func TestReadAdjacency(t *testing.T) {
	in := `
0: {6, 1}
1: {0}
2: {5, 8}
oops
3: {9, x}
`
	g, skipped, err := ReadAdjacency(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 10, g.Nodes())
	assert.Equal(t, []int32{6, 1}, g.Neighbors(0))
	assert.Equal(t, []int32{9}, g.Neighbors(3))
	assert.Empty(t, g.Neighbors(7))
	assert.Len(t, skipped, 2)
	assert.Equal(t, "7", g.Label(7))

	_, _, err = ReadAdjacency(strings.NewReader("nothing here\n"))
	assert.ErrorIs(t, err, data.ErrNoSamples)
}

func TestReadAdjacencyNegativeNeighbor(t *testing.T) {
	g, skipped, err := ReadAdjacency(strings.NewReader("0: {1, -1}\n1: {0}\n"))
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.Equal(t, 2, g.Nodes())
	assert.Equal(t, []int32{1}, g.Neighbors(0))
	require.Len(t, skipped, 1)
	assert.Equal(t, "-1", skipped[0].Text)

	assert.Len(t, Layout(g), 2)
}

func TestReadAdjacencySparseIDs(t *testing.T) {
	g, skipped, err := ReadAdjacency(strings.NewReader("7: {2000000000}\n2000000000: {7, 42}\n"))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, 3, g.Nodes())
	assert.Equal(t, []string{"7", "42", "2000000000"}, g.Names)
	assert.Equal(t, []int32{2}, g.Neighbors(0))
	assert.Equal(t, []int32{0, 1}, g.Neighbors(2))
	assert.Equal(t, "2000000000", g.Label(2))
}

func TestMark(t *testing.T) {
	g := FromAdjacency([][]int{{1}, {0}, {}})
	g.Mark(map[int]bool{2: true, 9: true, -1: true})
	assert.Equal(t, map[int]bool{2: true}, g.Highlight)

	named, _, err := ReadAdjacency(strings.NewReader("5: {9000}\n"))
	require.NoError(t, err)
	named.Mark(map[int]bool{9000: true, 1: true})
	assert.Equal(t, map[int]bool{1: true}, named.Highlight)
}

func TestDirected(t *testing.T) {
	assert.False(t, FromAdjacency([][]int{{1, 2}, {0}, {0}}).Directed())
	assert.True(t, FromAdjacency([][]int{{1}, {}}).Directed())
	assert.False(t, FromAdjacency(nil).Directed())
}

func TestUndirected(t *testing.T) {
	g := FromAdjacency([][]int{{1, 0}, {0}, {}})
	ug := g.Undirected()
	assert.Equal(t, 3, ug.Nodes().Len())
	assert.True(t, ug.HasEdgeBetween(0, 1))
	assert.False(t, ug.HasEdgeBetween(0, 0))
	assert.Equal(t, 1, ug.Edges().Len())
}

func TestLayoutPath(t *testing.T) {
	// a path 0-1-2-3 embeds on a line with equal spacing
	g := FromAdjacency([][]int{{1}, {0, 2}, {1, 3}, {2}})
	pos := Layout(g)
	require.Len(t, pos, 4)

	dist := func(a, b data.Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }
	assert.InDelta(t, 1, dist(pos[0], pos[1]), 1e-6)
	assert.InDelta(t, 1, dist(pos[1], pos[2]), 1e-6)
	assert.InDelta(t, 3, dist(pos[0], pos[3]), 1e-6)
}

func TestLayoutSmall(t *testing.T) {
	assert.Empty(t, Layout(FromAdjacency(nil)))
	assert.Equal(t, []data.Point{{}}, Layout(FromAdjacency([][]int{{}})))
}

func TestLoadHighlight(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sep")
	require.NoError(t, os.WriteFile(p, []byte("3\n5\nx\n"), 0o644))
	h, skipped, err := LoadHighlight(p)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{3: true, 5: true}, h)
	assert.Len(t, skipped, 1)
}
