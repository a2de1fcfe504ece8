// SPDX-License-Identifier: MIT
// Package: modcluster/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Iterates unordered pairs {i,j} with i<j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil whenever 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials / edge checks.
//   - Space: O(1) extra (no global buffers).
//
// Determinism:
//   - Stable vertex order: i asc.
//   - Stable edge-trial order: for each i asc, j asc with j>i.
//   - Deterministic outcomes for fixed seed/options due to fixed trial order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/modcluster/core"
)

// File-local constants (no magic literals; stable method tag and domains).
const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	// The returned closure captures (n, p); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).

		// Validate vertex count domain: n must be at least 1.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}

		// Validate probability: must lie in the closed interval [0,1].
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}

		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Add all vertices deterministically via cfg.idFn (IDs 0..n-1).
		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		rng := cfg.rng // local alias for RNG

		var (
			i, j int    // loop iterators
			u, v string // edge endpoints
		)
		// 3) Sample edges over unordered pairs {i,j} with i<j in a stable order.
		for i = 0; i < n; i++ { // stable i asc
			u = cfg.idFn(i)             // left endpoint ID
			for j = i + 1; j < n; j++ { // j strictly greater than i
				if rng == nil {
					// Deterministic edge set for p == 1.0 (p == 0.0 needs no RNG and adds nothing).
					if p == 1.0 {
						v = cfg.idFn(j)
						if _, err := g.AddEdge(u, v, 0); err != nil {
							return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodRandomSparse, u, v, err)
						}
					}
					continue
				}
				// Bernoulli trial: include edge with probability p.
				if rng.Float64() <= p {
					v = cfg.idFn(j) // right endpoint ID
					if _, err := g.AddEdge(u, v, 0); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodRandomSparse, u, v, err)
					}
				}
			}
		}

		// 4) Success: random sparse graph sampled deterministically for a fixed seed.
		return nil
	}
}
