// SPDX-License-Identifier: MIT
package spectral

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// DefaultEpsilon is the positivity/convergence tolerance used throughout
// this package wherever a scalar is compared against zero: power-iteration
// convergence, the two divisibility tests, and the refiner's stopping
// condition. It matches the 1e-5 hard-coded in the source this engine is
// grounded on.
const DefaultEpsilon = 1e-5

// randomVector returns a vector of n components drawn uniformly from
// [-1, 1), the power iteration's random start vector b0. rng must be
// non-nil; callers needing determinism supply a seeded *rand.Rand.
func randomVector(n int, rng *rand.Rand) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}

	return v
}

// normalize scales v to unit Euclidean norm in place and reports whether
// the norm was nonzero. A zero norm signals numerical failure to callers.
func normalize(v []float64) bool {
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return false
	}
	floats.Scale(1/norm, v)

	return true
}

// powerIterate runs power iteration against (B̂[g] + s.diagShift·I) from
// start vector b0 until consecutive normalized iterates differ by less than
// eps in every component, per spec.md §4.4. It returns ErrNumerical if
// either the start vector or any iterate normalizes to a zero vector.
//
// powerIterate does not bound the number of steps; termination relies on
// the spectral gap the caller's diagonal shift is expected to produce.
func powerIterate(s *Submatrix, b0 []float64, eps float64) ([]float64, error) {
	m := s.size()
	b := make([]float64, m)
	copy(b, b0)
	if !normalize(b) {
		return nil, ErrNumerical
	}

	r := make([]float64, m)
	for {
		mult(s, b, r)
		if !normalize(r) {
			return nil, ErrNumerical
		}

		var maxDiff float64
		for a := range r {
			if d := math.Abs(r[a] - b[a]); d > maxDiff {
				maxDiff = d
			}
		}

		b, r = r, b
		if maxDiff < eps {
			return b, nil
		}
	}
}

// rayleighQuotient returns (vᵀB̂[g]v)/(vᵀv) using s's current diagShift.
// Callers that applied a shift for power iteration must subtract that
// shift from the result themselves to recover the unshifted eigenvalue,
// per spec.md §4.4.
func rayleighQuotient(s *Submatrix, v []float64) float64 {
	den := floats.Dot(v, v)
	if den == 0 {
		return 0
	}

	return innerSBs(s, v) / den
}
