package graph

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/mds"

	"github.com/HamletTheHamster/sepplot/internal/data"
)

// Layout returns one position per node. Graphs with coordinates are drawn
// at (lat, -lon); the rest are embedded by classical multidimensional
// scaling of their hop distances.
func Layout(g *Graph) []data.Point {
	n := g.Nodes()
	pos := make([]data.Point, n)
	if g.HasCoordinates() {
		for v := range pos {
			pos[v] = data.Point{X: float64(g.Lat[v]), Y: -float64(g.Lon[v])}
		}
		return pos
	}
	if n < 2 {
		return pos
	}

	coords := scale(distances(g.Undirected(), n))
	if coords == nil {
		return pos
	}
	_, k := coords.Dims()
	for v := range pos {
		if k > 0 {
			pos[v].X = coords.At(v, 0)
		}
		if k > 1 {
			pos[v].Y = coords.At(v, 1)
		}
	}
	return pos
}

// distances holds BFS hop counts between all node pairs. Unreachable pairs
// are set to n so components still separate.
func distances(g *simple.UndirectedGraph, n int) *mat.SymDense {
	dist := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		hops := bfs(g, int64(i), n)
		for j := i + 1; j < n; j++ {
			d := hops[j]
			if d < 0 {
				d = n
			}
			dist.SetSym(i, j, float64(d))
		}
	}
	return dist
}

func bfs(g *simple.UndirectedGraph, source int64, n int) []int {
	hops := make([]int, n)
	for i := range hops {
		hops[i] = -1
	}
	hops[source] = 0
	queue := []int64{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		neighbors := g.From(current)
		for neighbors.Next() {
			id := neighbors.Node().ID()
			if hops[id] < 0 {
				hops[id] = hops[current] + 1
				queue = append(queue, id)
			}
		}
	}
	return hops
}

func scale(dist *mat.SymDense) *mat.Dense {
	var coords mat.Dense
	k, _ := mds.TorgersonScaling(&coords, nil, dist)
	if k == 0 || coords.IsEmpty() {
		return nil
	}
	return &coords
}
