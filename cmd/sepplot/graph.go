package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/sepplot/internal/data"
	"github.com/HamletTheHamster/sepplot/internal/graph"
	"github.com/HamletTheHamster/sepplot/internal/render"
)

var graphCmd = &cobra.Command{
	Use:   "graph PATH",
	Short: "Draw a graph from a CSR directory, METIS, JSON or adjacency file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		highlight, _ := cmd.Flags().GetString("highlight")
		labels, _ := cmd.Flags().GetBool("labels")

		if format == "" {
			format = graphFormat(args[0])
		}
		g, err := loadGraph(args[0], format)
		if err != nil {
			return quit(err)
		}
		if highlight != "" {
			marked, skipped, err := graph.LoadHighlight(highlight)
			warnSkipped(highlight, skipped)
			if err != nil {
				return err
			}
			g.Mark(marked)
		}
		runLog.Printf("%s: %d nodes, %d arcs (%s)\n", args[0], g.Nodes(), len(g.Head), format)

		opts := render.GraphOptions{Labels: labels}
		fig, err := render.Graph(g, graph.Layout(g), opts, style)
		if err != nil {
			return quit(err)
		}

		path, _ := cmd.Flags().GetString("output")
		if path == "" {
			path = filepath.Join(figureDir(), filepath.Base(filepath.Clean(args[0]))+".png")
		}
		return finish(fig, path, nil, opts.Options)
	},
}

// graphFormat guesses the format of path: directories hold CSR arrays,
// .json and .graph/.metis files name their format, anything else is read as
// adjacency text.
func graphFormat(path string) string {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return "csr"
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".graph", ".metis":
		return "metis"
	}
	return "adj"
}

func loadGraph(path, format string) (*graph.Graph, error) {
	if format == "csr" {
		return graph.LoadCSR(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var g *graph.Graph
	switch format {
	case "metis":
		g, err = graph.ReadMETIS(f)
	case "json":
		g, err = graph.ReadJSON(f)
	case "adj":
		var skipped []data.Skipped
		g, skipped, err = graph.ReadAdjacency(f)
		warnSkipped(path, skipped)
	default:
		return nil, fmt.Errorf("unknown graph format %q (want csr, metis, json or adj)", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func init() {
	graphCmd.Flags().String("format", "", "csr, metis, json or adj (default: guessed from the path)")
	graphCmd.Flags().String("highlight", "", "file of node ids to highlight, one per line")
	graphCmd.Flags().Bool("labels", false, "label every node")
	graphCmd.Flags().StringP("output", "o", "", "output file (default: <output dir>/<base>.png)")
}
