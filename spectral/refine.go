// SPDX-License-Identifier: MIT
package spectral

import "math"

// refine performs one sweep of Kernighan-Lin-style single-move refinement
// over (s, sVec) in place, per spec.md §4.6: every position is moved
// exactly once, in greedy best-ΔQ order, then the sweep is rolled back to
// its best-scoring prefix. It returns that prefix's cumulative ΔQ, or 0 if
// no prefix improved sᵀB̂[g]s by more than eps. In that case too only the
// moves after bestT are undone: the moves of the best prefix (at least the
// first one) stay applied to sVec.
//
// The unmoved set is an intrusive doubly linked list over sVec's index
// positions, giving O(1) removal after each move as spec.md requires.
func refine(s *Submatrix, sVec []float64, eps float64) float64 {
	m := s.size()
	if m == 0 {
		return 0
	}

	const sentinel = -1
	prev := make([]int, m)
	next := make([]int, m)
	for a := 0; a < m; a++ {
		prev[a] = a - 1
		next[a] = a + 1
	}
	next[m-1] = sentinel
	head := 0

	remove := func(a int) {
		if prev[a] == sentinel {
			head = next[a]
		} else {
			next[prev[a]] = next[a]
		}
		if next[a] != sentinel {
			prev[next[a]] = prev[a]
		}
	}

	order := make([]int, m)
	improve := make([]float64, m)

	for t := 0; t < m; t++ {
		bestK := sentinel
		bestScore := math.Inf(-1)
		for k := head; k != sentinel; k = next[k] {
			if score := deltaScore(s, sVec, k); score > bestScore {
				bestScore = score
				bestK = k
			}
		}

		sVec[bestK] = -sVec[bestK]
		order[t] = bestK
		if t == 0 {
			improve[t] = bestScore
		} else {
			improve[t] = improve[t-1] + bestScore
		}
		remove(bestK)
	}

	bestT := 0
	for t := 1; t < m; t++ {
		if improve[t] > improve[bestT] {
			bestT = t
		}
	}

	for t := m - 1; t > bestT; t-- {
		sVec[order[t]] = -sVec[order[t]]
	}

	if improve[bestT] <= eps {
		return 0
	}

	return improve[bestT]
}
