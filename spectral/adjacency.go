// SPDX-License-Identifier: MIT
package spectral

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/modcluster/core"
)

// Adjacency is the read-only sparse adjacency model of an undirected,
// unweighted graph. It owns per-vertex ordered neighbor rows plus the
// precomputed degree and total-degree (M) statistics the modularity operator
// needs on every hot path.
//
// An Adjacency never mutates after construction and may be shared by value
// across any number of Submatrix views.
type Adjacency struct {
	n     int       // vertex count
	nbrs  [][]int   // nbrs[i] is the ascending, unique neighbor list of i
	k     []int     // k[i] = len(nbrs[i])
	m     int       // total degree sum, Σk[i] (== 2|E|); spec.md's "M"
	kDivM []float64 // kDivM[i] = k[i]/m; only valid when m > 0
}

// N returns the vertex count.
func (a *Adjacency) N() int { return a.n }

// M returns the total degree sum Σk[i] (twice the edge count).
func (a *Adjacency) M() int { return a.m }

// Degree returns the degree of vertex i.
func (a *Adjacency) Degree(i int) int { return a.k[i] }

// neighbors returns the ascending, unique neighbor list of vertex i. The
// returned slice must not be mutated by callers.
func (a *Adjacency) neighbors(i int) []int { return a.nbrs[i] }

// Neighbors is the exported form of neighbors, for callers outside the
// package (converters, CLI inspection tooling) that need read-only access
// to a vertex's adjacency row.
func (a *Adjacency) Neighbors(i int) []int { return a.nbrs[i] }

// NewAdjacency validates and wraps a caller-provided row store. Each row
// must be strictly ascending, unique, and within [0,n). Symmetry (j ∈
// nbrs(i) ⇔ i ∈ nbrs(j)) is the caller's responsibility and is not
// re-derived here; correctness of modularity rests on it per spec.
//
// Complexity: O(n + Σk[i]) time and space.
func NewAdjacency(n int, nbrs [][]int) (*Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("spectral: NewAdjacency: n=%d: %w", n, ErrInvalidAdjacency)
	}
	if len(nbrs) != n {
		return nil, fmt.Errorf("spectral: NewAdjacency: len(nbrs)=%d != n=%d: %w", len(nbrs), n, ErrInvalidAdjacency)
	}

	k := make([]int, n)
	m := 0
	for i, row := range nbrs {
		k[i] = len(row)
		m += len(row)
		prev := -1
		for _, j := range row {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("spectral: NewAdjacency: vertex %d has neighbor %d out of range [0,%d): %w", i, j, n, ErrInvalidAdjacency)
			}
			if j <= prev {
				return nil, fmt.Errorf("spectral: NewAdjacency: vertex %d's neighbor list is not strictly ascending: %w", i, ErrInvalidAdjacency)
			}
			prev = j
		}
	}

	a := &Adjacency{n: n, nbrs: nbrs, k: k, m: m}
	if m > 0 {
		a.kDivM = make([]float64, n)
		for i := range k {
			a.kDivM[i] = float64(k[i]) / float64(m)
		}
	}

	return a, nil
}

// NewAdjacencyFromGraph builds an Adjacency from a core.Graph, assigning
// vertex index i to the i-th smallest vertex ID in ascending string order
// (core.Graph.Vertices already returns that order, so no resort is needed
// here). Used by the gen CLI verb and by builder-backed test fixtures.
//
// NewAdjacencyFromGraph treats the graph as undirected and unweighted: edge
// weights and directionality are ignored, matching spec.md's scope.
func NewAdjacencyFromGraph(g *core.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, fmt.Errorf("spectral: NewAdjacencyFromGraph: nil graph: %w", ErrInvalidAdjacency)
	}

	ids := g.Vertices()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	nbrs := make([][]int, n)
	for i, id := range ids {
		neighborIDs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("spectral: NewAdjacencyFromGraph: vertex %q: %w", id, err)
		}

		row := make([]int, 0, len(neighborIDs))
		seen := make(map[int]bool, len(neighborIDs))
		for _, nid := range neighborIDs {
			j, ok := index[nid]
			if !ok || j == i || seen[j] {
				continue
			}
			seen[j] = true
			row = append(row, j)
		}
		sort.Ints(row)
		nbrs[i] = row
	}

	return NewAdjacency(n, nbrs)
}
