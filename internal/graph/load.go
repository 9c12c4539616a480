package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/HamletTheHamster/sepplot/internal/data"
)

// LoadCSR reads a graph directory holding first_out and head (int32) and,
// optionally, latitude and longitude (float32).
func LoadCSR(dir string) (*Graph, error) {
	var g Graph
	var err error

	if g.FirstOut, err = data.LoadInt32s(filepath.Join(dir, "first_out")); err != nil {
		return nil, err
	}
	if g.Head, err = data.LoadInt32s(filepath.Join(dir, "head")); err != nil {
		return nil, err
	}

	lat, latErr := data.LoadFloat32s(filepath.Join(dir, "latitude"))
	lon, lonErr := data.LoadFloat32s(filepath.Join(dir, "longitude"))
	switch {
	case latErr == nil && lonErr == nil:
		g.Lat, g.Lon = lat, lon
	case errors.Is(latErr, os.ErrNotExist) && errors.Is(lonErr, os.ErrNotExist):
	case latErr != nil && !errors.Is(latErr, os.ErrNotExist):
		return nil, latErr
	case lonErr != nil && !errors.Is(lonErr, os.ErrNotExist):
		return nil, lonErr
	default:
		return nil, fmt.Errorf("%w: %s has only one of latitude and longitude", ErrInconsistent, dir)
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	return &g, nil
}

// ReadMETIS parses a METIS graph: a header line, then one line per node
// listing its 1-based neighbors. Lines starting with % are comments.
func ReadMETIS(r io.Reader) (*Graph, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(b), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "%") {
			continue
		}
		lines = append(lines, line)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("metis: missing header")
	}

	header := strings.Fields(lines[0])
	if len(header) < 2 {
		return nil, fmt.Errorf("metis: bad header %q", lines[0])
	}
	n, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("metis: bad node count: %w", err)
	}
	if len(lines)-1 > n {
		return nil, fmt.Errorf("metis: header declares %d nodes but found %d lines", n, len(lines)-1)
	}

	adj := make([][]int, n)
	for v, line := range lines[1:] {
		for _, f := range strings.Fields(line) {
			u, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("metis: node %d: %w", v+1, err)
			}
			adj[v] = append(adj[v], u-1)
		}
	}
	g := FromAdjacency(adj)
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("metis: %w", err)
	}
	return g, nil
}

// ReadJSON parses {"node": [neighbor, ...]} objects. Neighbors may be
// numbers or strings; every distinct name becomes a node.
func ReadJSON(r io.Reader) (*Graph, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw map[string][]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("json graph: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	index := map[string]int{}
	var names []string
	id := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		index[name] = len(names)
		names = append(names, name)
		return index[name]
	}
	for _, k := range keys {
		id(k)
	}

	adj := make([][]int, len(keys))
	for _, k := range keys {
		v := id(k)
		for _, n := range raw[k] {
			adj[v] = append(adj[v], id(fmt.Sprint(n)))
		}
	}
	// nodes only named as neighbors have no list of their own
	for len(adj) < len(names) {
		adj = append(adj, nil)
	}

	g := FromAdjacency(adj)
	g.Names = names
	return g, nil
}

var adjRE = regexp.MustCompile(`^(\d+):\s*\{([^}]*)\}$`)

// denseSlack is how far the largest adjacency id may run past twice the
// number of distinct ids before nodes are renumbered.
const denseSlack = 1024

// ReadAdjacency parses "node: {a, b, c}" lines. Malformed lines and
// neighbors are skipped and reported. Ids are node indices unless they are
// sparse, in which case the distinct ids are numbered in increasing order
// and kept as node names.
func ReadAdjacency(r io.Reader) (*Graph, []data.Skipped, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	var skipped []data.Skipped
	lists := map[int][]int{}
	seen := map[int]bool{}
	maxID := -1
	for i, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := adjRE.FindStringSubmatch(line)
		if m == nil {
			skipped = append(skipped, data.Skipped{Line: i + 1, Text: line, Err: errors.New("malformed line")})
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil {
			skipped = append(skipped, data.Skipped{Line: i + 1, Text: line, Err: err})
			continue
		}
		seen[v] = true
		maxID = max(maxID, v)
		for _, f := range strings.Split(m[2], ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			u, err := strconv.Atoi(f)
			if err == nil && u < 0 {
				err = errors.New("negative id")
			}
			if err != nil {
				skipped = append(skipped, data.Skipped{Line: i + 1, Text: f, Err: fmt.Errorf("invalid neighbor for node %d: %w", v, err)})
				continue
			}
			lists[v] = append(lists[v], u)
			seen[u] = true
			maxID = max(maxID, u)
		}
	}
	if maxID < 0 {
		return nil, skipped, fmt.Errorf("adjacency: %w", data.ErrNoSamples)
	}

	var g *Graph
	if maxID < 2*len(seen)+denseSlack {
		adj := make([][]int, maxID+1)
		for v, ns := range lists {
			adj[v] = ns
		}
		g = FromAdjacency(adj)
	} else {
		g = renumber(lists, seen)
	}
	if err := g.Validate(); err != nil {
		return nil, skipped, fmt.Errorf("adjacency: %w", err)
	}
	return g, skipped, nil
}

// renumber builds a graph over the ids in seen, in increasing order, naming
// each node by its id.
func renumber(lists map[int][]int, seen map[int]bool) *Graph {
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	index := make(map[int]int, len(ids))
	names := make([]string, len(ids))
	for i, id := range ids {
		index[id] = i
		names[i] = strconv.Itoa(id)
	}
	adj := make([][]int, len(ids))
	for v, ns := range lists {
		for _, u := range ns {
			adj[index[v]] = append(adj[index[v]], index[u])
		}
	}
	g := FromAdjacency(adj)
	g.Names = names
	return g
}

// LoadHighlight reads node ids, one per line, to be drawn highlighted.
func LoadHighlight(path string) (map[int]bool, []data.Skipped, error) {
	values, skipped, err := data.LoadValues(path)
	if err != nil {
		return nil, skipped, err
	}
	out := make(map[int]bool, len(values))
	for _, v := range values {
		out[int(v)] = true
	}
	return out, skipped, nil
}
