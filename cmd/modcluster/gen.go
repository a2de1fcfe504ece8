// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/katalvlaran/modcluster/bfs"
	"github.com/katalvlaran/modcluster/builder"
	"github.com/katalvlaran/modcluster/core"
	"github.com/katalvlaran/modcluster/division"
	"github.com/katalvlaran/modcluster/spectral"
)

func runGen(args []string) int {
	if len(args) != 3 {
		logger.Println("usage: modcluster gen <topology> <n> <output-adjacency>")
		logger.Println("topologies: clique-pair, disjoint-cliques, bipartite, path, cycle, wheel, empty, random")
		return 2
	}
	topology, nStr, outPath := args[0], args[1], args[2]

	n, err := strconv.Atoi(nStr)
	if err != nil || n < 0 {
		logger.Printf("invalid vertex count %q", nStr)
		return 2
	}

	g, err := buildTopology(topology, n)
	if err != nil {
		logger.Println(err)
		return 1
	}

	logConnectivity(g)

	adj, err := spectral.NewAdjacencyFromGraph(g)
	if err != nil {
		logger.Printf("converting generated graph: %v", err)
		return 1
	}

	if err := writeAdjacencyFile(outPath, adj); err != nil {
		logger.Println(err)
		return 1
	}

	return 0
}

func writeAdjacencyFile(outPath string, adj *spectral.Adjacency) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	if err := division.WriteAdjacency(out, adj); err != nil {
		out.Close()
		os.Remove(outPath)

		return fmt.Errorf("writing adjacency: %w", err)
	}

	return out.Close()
}

// buildTopology dispatches to a builder-backed constructor per spec.md §8's
// fixture topologies. clique-pair and disjoint-cliques both merge several
// independently built cliques into one graph (builder's default ID scheme
// resets per call, so each clique is built in isolation and then copied in
// under a distinguishing vertex-ID prefix).
func buildTopology(topology string, n int) (*core.Graph, error) {
	switch topology {
	case "clique-pair":
		return mergeCliques(splitEvenly(n, 2))
	case "disjoint-cliques":
		return mergeCliques(splitEvenly(n, 3))
	case "bipartite":
		half := n / 2
		return builder.BuildGraph(nil, builder.CompleteBipartite(half, n-half))
	case "path":
		return builder.BuildGraph(nil, builder.Path(n))
	case "cycle":
		return builder.BuildGraph(nil, builder.Cycle(n))
	case "wheel":
		return builder.BuildGraph(nil, builder.Wheel(n))
	case "empty":
		return buildEmpty(n)
	case "random":
		rng := rand.New(rand.NewSource(1))
		return builder.BuildGraph([]builder.BuilderOption{builder.WithRand(rng)}, builder.RandomSparse(n, 0.3))
	default:
		return nil, fmt.Errorf("unknown topology %q", topology)
	}
}

func buildEmpty(n int) (*core.Graph, error) {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("empty: %w", err)
		}
	}

	return g, nil
}

// splitEvenly divides n vertices into parts sizes that differ by at most 1.
// When n < parts some sizes are 0; mergeCliques rejects those.
func splitEvenly(n, parts int) []int {
	sizes := make([]int, parts)
	base := n / parts
	rem := n % parts
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}

	return sizes
}

func mergeCliques(sizes []int) (*core.Graph, error) {
	out := core.NewGraph()
	for ci, size := range sizes {
		if size < 1 {
			return nil, fmt.Errorf("mergeCliques: clique %d has size %d, want >= 1", ci, size)
		}
		clique, err := builder.BuildGraph(nil, builder.Complete(size))
		if err != nil {
			return nil, fmt.Errorf("mergeCliques: clique %d: %w", ci, err)
		}
		if err := copyInto(out, clique, fmt.Sprintf("c%d-", ci)); err != nil {
			return nil, fmt.Errorf("mergeCliques: clique %d: %w", ci, err)
		}
	}

	return out, nil
}

// copyInto adds every vertex and edge of src into dst, prefixing src's
// vertex IDs to keep separately-built components from colliding.
func copyInto(dst, src *core.Graph, prefix string) error {
	for _, id := range src.Vertices() {
		if err := dst.AddVertex(prefix + id); err != nil {
			return err
		}
	}
	for _, e := range src.Edges() {
		if _, err := dst.AddEdge(prefix+e.From, prefix+e.To, 0); err != nil {
			return err
		}
	}

	return nil
}

func logConnectivity(g *core.Graph) {
	ids := g.Vertices()
	if len(ids) == 0 {
		return
	}

	visited := make(map[string]bool, len(ids))
	components := 0
	for _, start := range ids {
		if visited[start] {
			continue
		}
		components++
		result, err := bfs.BFS(g, start)
		if err != nil {
			logger.Printf("connectivity check: %v", err)
			return
		}
		for _, id := range result.Order {
			visited[id] = true
		}
	}

	logger.Printf("generated graph has %d vertices, %d connected component(s)", len(ids), components)
}
