// SPDX-License-Identifier: MIT
// Package: modcluster/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Adds left partition IDs as "{leftPrefix}{i}", i=0..n1-1.
//   • Adds right partition IDs as "{rightPrefix}{j}", j=0..n2-1.
//     (Prefixes are resolved deterministically in newBuilderConfig; empty → defaults "L"/"R".)
//   • Emits every cross-pair L_i - R_j exactly once.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n1 + n2) vertices + O(n1·n2) edges emission.
//   • Space: O(n1 + n2) extra for ID slices.
//
// Determinism:
//   • Deterministic IDs via (prefix, index) with stable prefixes from cfg.
//   • Deterministic edge emission order: i asc over L, inner j asc over R.

package builder

import (
	"fmt"

	"github.com/katalvlaran/modcluster/core"
)

// File-local constants for method tag and minima (no magic numbers).
const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	// The closure captures (n1,n2); BuildGraph supplies (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Early validation: both partitions must be non-empty.
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		// Resolve partition prefixes (already defaulted by newBuilderConfig).
		lp, rp := cfg.leftPrefix, cfg.rightPrefix

		// Compose deterministic partition IDs as "<prefix><index>" (e.g., "L0", "R0").
		leftIDs := makeIDs(lp, n1)
		rightIDs := makeIDs(rp, n2)

		if err := addVerticesWithIDFn(g, n1, func(i int) string { return vertexID(lp, i) }); err != nil {
			return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
		}
		if err := addVerticesWithIDFn(g, n2, func(j int) string { return vertexID(rp, j) }); err != nil {
			return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
		}

		// Emit all cross edges in stable (i over left, j over right) order.
		for i := 0; i < n1; i++ { // iterate left side first
			u := leftIDs[i]           // left endpoint ID
			for j := 0; j < n2; j++ { // then each right endpoint
				v := rightIDs[j] // right endpoint ID

				// Add u-v edge.
				if _, err := g.AddEdge(u, v, 0); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCompleteBipartite, u, v, err)
				}
			}
		}

		// Success: K_{n1,n2} constructed deterministically.
		return nil
	}
}
