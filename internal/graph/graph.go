// Package graph loads the graphs the partitioner works on, from its compact
// binary directories or from small text and JSON descriptions, and places
// their nodes in the plane for drawing.
package graph

import (
	"errors"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/graph/simple"
)

// ErrInconsistent is returned for CSR arrays whose lengths disagree.
var ErrInconsistent = errors.New("graph: inconsistent arrays")

// Graph is an adjacency array: the neighbors of node v are
// Head[FirstOut[v]:FirstOut[v+1]]. Lat and Lon are empty or hold one
// coordinate per node.
type Graph struct {
	FirstOut []int32
	Head     []int32
	Lat, Lon []float32
	// Names labels nodes when the source had non-numeric ids.
	Names     []string
	Highlight map[int]bool
}

// FromAdjacency builds the CSR arrays from neighbor lists.
func FromAdjacency(adj [][]int) *Graph {
	g := &Graph{FirstOut: make([]int32, len(adj)+1)}
	for v, ns := range adj {
		g.FirstOut[v+1] = g.FirstOut[v] + int32(len(ns))
		for _, u := range ns {
			g.Head = append(g.Head, int32(u))
		}
	}
	return g
}

// Nodes is the number of nodes.
func (g *Graph) Nodes() int {
	if len(g.FirstOut) == 0 {
		return 0
	}
	return len(g.FirstOut) - 1
}

func (g *Graph) Neighbors(v int) []int32 {
	return g.Head[g.FirstOut[v]:g.FirstOut[v+1]]
}

func (g *Graph) HasCoordinates() bool {
	return len(g.Lat) > 0 && len(g.Lat) == g.Nodes() && len(g.Lon) == g.Nodes()
}

// Label names node v for drawing.
func (g *Graph) Label(v int) string {
	if v < len(g.Names) {
		return g.Names[v]
	}
	return fmt.Sprint(v)
}

// Validate checks the CSR invariants: FirstOut is non-decreasing and ends at
// len(Head), every head is a node, and coordinates, if any, cover every node.
func (g *Graph) Validate() error {
	if len(g.FirstOut) == 0 {
		return fmt.Errorf("%w: empty first_out", ErrInconsistent)
	}
	if g.FirstOut[0] != 0 {
		return fmt.Errorf("%w: first_out starts at %d", ErrInconsistent, g.FirstOut[0])
	}
	n := g.Nodes()
	if last := int(g.FirstOut[n]); last != len(g.Head) {
		return fmt.Errorf("%w: first_out ends at %d but head has %d entries", ErrInconsistent, last, len(g.Head))
	}
	for v := 0; v < n; v++ {
		if g.FirstOut[v] > g.FirstOut[v+1] {
			return fmt.Errorf("%w: first_out decreases at node %d", ErrInconsistent, v)
		}
	}
	for i, h := range g.Head {
		if h < 0 || int(h) >= n {
			return fmt.Errorf("%w: head[%d] = %d out of range", ErrInconsistent, i, h)
		}
	}
	if len(g.Lat) != len(g.Lon) {
		return fmt.Errorf("%w: %d latitudes but %d longitudes", ErrInconsistent, len(g.Lat), len(g.Lon))
	}
	if len(g.Lat) != 0 && len(g.Lat) != n {
		return fmt.Errorf("%w: %d coordinates for %d nodes", ErrInconsistent, len(g.Lat), n)
	}
	return nil
}

// Mark sets the highlighted nodes from ids as read by LoadHighlight. On a
// graph with names an id selects the node of that name; otherwise it is the
// node index. Unknown ids are ignored.
func (g *Graph) Mark(ids map[int]bool) {
	g.Highlight = make(map[int]bool, len(ids))
	if len(g.Names) == 0 {
		for id := range ids {
			if id >= 0 && id < g.Nodes() {
				g.Highlight[id] = true
			}
		}
		return
	}
	index := make(map[string]int, len(g.Names))
	for v, name := range g.Names {
		index[name] = v
	}
	for id := range ids {
		if v, ok := index[strconv.Itoa(id)]; ok {
			g.Highlight[v] = true
		}
	}
}

// Directed reports whether some arc has no reverse arc.
func (g *Graph) Directed() bool {
	arcs := make(map[[2]int]bool, len(g.Head))
	for _, e := range g.Edges() {
		arcs[e] = true
	}
	for e := range arcs {
		if !arcs[[2]int{e[1], e[0]}] {
			return true
		}
	}
	return false
}

// Edges lists every arc (v, head) in CSR order.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, len(g.Head))
	for v := 0; v < g.Nodes(); v++ {
		for _, u := range g.Neighbors(v) {
			out = append(out, [2]int{v, int(u)})
		}
	}
	return out
}

// Undirected converts g into a gonum graph, dropping self loops and
// collapsing arcs in both directions into one edge.
func (g *Graph) Undirected() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for v := 0; v < g.Nodes(); v++ {
		ug.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		if e[0] == e[1] {
			continue
		}
		ug.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	return ug
}
