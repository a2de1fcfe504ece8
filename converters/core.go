// SPDX-License-Identifier: MIT
package converters

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/modcluster/core"
)

// CoreToSimpleGraph builds a *simple.UndirectedGraph from g, assigning
// vertex index i (in core.Graph.Vertices's ascending string order) as the
// i-th node's gonum ID. The returned idToVertex slice maps a node ID back
// to the originating core.Graph vertex ID, so a caller can translate
// results computed over the gonum graph back into g's own vertex space.
//
// Edge direction and weight are dropped: gonum's UndirectedGraph has no
// concept of either, matching this module's unweighted, undirected scope.
func CoreToSimpleGraph(g *core.Graph) (sg *simple.UndirectedGraph, idToVertex []string, err error) {
	if g == nil {
		return nil, nil, fmt.Errorf("converters: CoreToSimpleGraph: nil graph")
	}

	ids := g.Vertices()
	index := make(map[string]int64, len(ids))
	sg = simple.NewUndirectedGraph()
	for i, id := range ids {
		index[id] = int64(i)
		sg.AddNode(simple.Node(i))
	}

	for _, id := range ids {
		neighborIDs, nerr := g.NeighborIDs(id)
		if nerr != nil {
			return nil, nil, fmt.Errorf("converters: CoreToSimpleGraph: vertex %q: %w", id, nerr)
		}
		from := index[id]
		for _, nid := range neighborIDs {
			to, ok := index[nid]
			if !ok || to == from {
				continue
			}
			sg.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
		}
	}

	return sg, ids, nil
}

// SimpleGraphToCore builds an unweighted, undirected core.Graph from g,
// naming each vertex by its gonum node ID formatted as a base-10 string
// ("0", "1", ...). Use idToVertex (as returned by CoreToSimpleGraph) as a
// rename table afterward if the original vertex IDs must be restored.
func SimpleGraphToCore(g graph.Graph) (*core.Graph, error) {
	nodes := graph.NodesOf(g.Nodes())

	out := core.NewGraph()
	for _, node := range nodes {
		if err := out.AddVertex(nodeName(node.ID())); err != nil {
			return nil, fmt.Errorf("converters: SimpleGraphToCore: %w", err)
		}
	}

	added := make(map[[2]int64]bool)
	for _, node := range nodes {
		from := node.ID()
		for _, to := range graph.NodesOf(g.From(from)) {
			key := edgeKey(from, to.ID())
			if added[key] {
				continue
			}
			added[key] = true
			if _, err := out.AddEdge(nodeName(from), nodeName(to.ID()), 0); err != nil {
				return nil, fmt.Errorf("converters: SimpleGraphToCore: %w", err)
			}
		}
	}

	return out, nil
}

func nodeName(id int64) string {
	return fmt.Sprintf("%d", id)
}

func edgeKey(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}

	return [2]int64{a, b}
}
