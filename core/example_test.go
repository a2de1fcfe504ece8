package core_test

import (
	"fmt"

	"github.com/katalvlaran/modcluster/core"
)

// buildGridTopology constructs two dense four-vertex districts joined only
// through a single hub vertex, returning the populated Graph.
func buildGridTopology(hubID string, districtA, districtB []string) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < len(districtA); i++ {
		for j := i + 1; j < len(districtA); j++ {
			_, _ = g.AddEdge(districtA[i], districtA[j], 0)
			_, _ = g.AddEdge(districtB[i], districtB[j], 0)
		}
	}
	for i := 0; i < len(districtA); i++ {
		_, _ = g.AddEdge(hubID, districtA[i], 0)
		_, _ = g.AddEdge(hubID, districtB[i], 0)
	}

	return g
}

// largestComponentSize returns the size of the largest connected component
// of g via a BFS over NeighborIDs, visiting every vertex exactly once.
func largestComponentSize(g *core.Graph) int {
	visited := make(map[string]bool)
	maxSize := 0

	for _, root := range g.Vertices() {
		if visited[root] {
			continue
		}

		size := 0
		queue := []string{root}
		visited[root] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			size++

			adj, _ := g.NeighborIDs(u)
			for _, v := range adj {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}

		if size > maxSize {
			maxSize = size
		}
	}

	return maxSize
}

// ExampleGraph_CascadingFailures demonstrates cascading-failure analysis in
// a small grid: two dense districts are joined only through a single hub
// vertex, and the resilience ratio measures how much connectivity survives
// the hub's removal.
//
// Resilience ratio: R = N'_LCC / (N_LCC - 1), where N_LCC is the largest
// connected component before the hub is removed and N'_LCC is the largest
// connected component after.
func ExampleGraph_CascadingFailures() {
	hubID := "Hub-Central"
	districtA := []string{"A1", "A2", "A3", "A4"}
	districtB := []string{"B1", "B2", "B3", "B4"}

	before := buildGridTopology(hubID, districtA, districtB)
	nLCC := largestComponentSize(before)

	after := buildGridTopology(hubID, districtA, districtB)
	if err := after.RemoveVertex(hubID); err != nil {
		fmt.Println(err)
		return
	}
	npLCC := largestComponentSize(after)

	resilience := float64(npLCC) / float64(nLCC-1)
	fmt.Printf("Resilience Ratio (R): %.2f\n", resilience)

	// Output:
	// Resilience Ratio (R): 0.50
}

// ExampleGraph_BetweennessLoad demonstrates identifying a single bridge edge
// between two dense clusters and computing its betweenness load: the number
// of cross-cluster vertex pairs whose shortest path must traverse it.
//
// Closed-form load: every pair (a in A, b in B) must traverse the bridge,
// so bridgeLoad = |A| * |B|.
func ExampleGraph_BetweennessLoad() {
	const clusterSize = 4
	g := core.NewGraph()

	vertsA := make([]string, clusterSize)
	vertsB := make([]string, clusterSize)
	for i := 0; i < clusterSize; i++ {
		vertsA[i] = fmt.Sprintf("A%d", i)
		vertsB[i] = fmt.Sprintf("B%d", i)
	}

	for i := 0; i < clusterSize; i++ {
		for j := i + 1; j < clusterSize; j++ {
			_, _ = g.AddEdge(vertsA[i], vertsA[j], 0)
			_, _ = g.AddEdge(vertsB[i], vertsB[j], 0)
		}
	}

	if _, err := g.AddEdge(vertsA[0], vertsB[0], 0); err != nil {
		fmt.Println(err)
		return
	}

	bridgeLoad := clusterSize * clusterSize
	fmt.Printf("Bridge: %s-%s\n", vertsA[0], vertsB[0])
	fmt.Printf("Load: %d paths\n", bridgeLoad)

	// Output:
	// Bridge: A0-B0
	// Load: 16 paths
}
