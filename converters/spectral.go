// SPDX-License-Identifier: MIT
package converters

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/modcluster/spectral"
)

// ToSimpleGraph builds a *simple.UndirectedGraph from adj, using each
// vertex's index as its gonum node ID. Edges are added once per pair
// (i<j) since adj is already known-symmetric by construction.
func ToSimpleGraph(adj *spectral.Adjacency) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < adj.N(); i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < adj.N(); i++ {
		for _, j := range adjNeighborsAbove(adj, i) {
			g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
		}
	}

	return g
}

// adjNeighborsAbove returns i's neighbors strictly greater than i, so a
// caller adding one edge per pair never double-adds an undirected edge.
func adjNeighborsAbove(adj *spectral.Adjacency, i int) []int {
	var out []int
	for _, j := range adj.Neighbors(i) {
		if j > i {
			out = append(out, j)
		}
	}

	return out
}

// FromSimpleGraph builds a spectral.Adjacency from any gonum graph.Graph
// whose node IDs are used directly as vertex indices: every node ID must
// be a non-negative int64 in [0, n) for some n, with no gaps. Use
// ToSimpleGraph's own output, or any other gonum graph built the same way,
// as input.
func FromSimpleGraph(g graph.Graph) (*spectral.Adjacency, error) {
	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)

	seen := make([]bool, n)
	for _, node := range nodes {
		id := node.ID()
		if id < 0 || id >= int64(n) {
			return nil, fmt.Errorf("converters: FromSimpleGraph: node id %d out of range [0,%d)", id, n)
		}
		if seen[id] {
			return nil, fmt.Errorf("converters: FromSimpleGraph: duplicate node id %d", id)
		}
		seen[id] = true
	}

	nbrs := make([][]int, n)
	for i := 0; i < n; i++ {
		to := graph.NodesOf(g.From(int64(i)))
		row := make([]int, 0, len(to))
		for _, node := range to {
			row = append(row, int(node.ID()))
		}
		sortInts(row)
		nbrs[i] = row
	}

	return spectral.NewAdjacency(n, nbrs)
}

// sortInts is a tiny insertion sort; converters never handles graphs large
// enough to need sort.Ints's overhead guarantees, and avoiding the import
// keeps this file's dependency surface limited to gonum/graph.
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}
