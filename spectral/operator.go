// SPDX-License-Identifier: MIT
package spectral

import "math"

// rowWalk merges vertex i's ascending neighbor row against g (also
// ascending) in O(|g| + k[i]) time, the "ordered merge" spec.md §4.1
// requires for row·(vector-over-g) computation. For each position b with
// j = g[b] it forms the modularity entry
//
//	term_b = A{i,j} - k[i]*k[j]/M
//
// (the kDivM term is skipped entirely when adj.m == 0, since every degree
// is then zero and the term is identically zero — this is the guard
// SPEC_FULL.md §8 calls out for the M=0 policy).
//
// It returns rowSum = Σ_b term_b (spec's f[a] row-sum correction), dot =
// Σ_b term_b*v[b] when v is non-nil (the unshifted B̂ row · v, before the
// diagonal shift/correction is applied by the caller), and termAA = the
// term at the position where j == i (the diagonal's off-diagonal-formula
// contribution, used to recover B̂{a,a}).
func rowWalk(adj *Adjacency, i int, g []int, v []float64) (rowSum, dot, termAA float64) {
	nb := adj.nbrs[i]
	hasM := adj.m > 0
	var kiDivM float64
	if hasM {
		kiDivM = adj.kDivM[i]
	}

	bi := 0
	for b, j := range g {
		for bi < len(nb) && nb[bi] < j {
			bi++
		}

		var aij float64
		if bi < len(nb) && nb[bi] == j {
			aij = 1
		}

		var term float64
		if hasM {
			term = aij - kiDivM*float64(adj.k[j])
		} else {
			term = aij
		}

		rowSum += term
		if v != nil {
			dot += term * v[b]
		}
		if j == i {
			termAA = term
		}
	}

	return rowSum, dot, termAA
}

// mult computes out = (B̂[g] + diagShift·I)·v, per spec.md §4.3. v and out
// must both have length s.size(), and out must not alias v: every row reads
// all of v, so writing out[a] in place would corrupt the rows computed
// after it. Callers in this package always pass distinct slices.
func mult(s *Submatrix, v, out []float64) {
	adj := s.adj
	for a, i := range s.g {
		rowSum, dot, _ := rowWalk(adj, i, s.g, v)
		out[a] = dot + (s.diagShift-rowSum)*v[a]
	}
}

// innerSBs computes sᵀB̂[g]s = Σ_a s[a]·(B̂[g]·s)[a], per spec.md §4.3.
func innerSBs(s *Submatrix, v []float64) float64 {
	adj := s.adj
	var total float64
	for a, i := range s.g {
		rowSum, dot, _ := rowWalk(adj, i, s.g, v)
		rowVal := dot + (s.diagShift-rowSum)*v[a]
		total += v[a] * rowVal
	}

	return total
}

// oneNorm returns ‖B̂[g]‖₁ = max over columns of the column-abs-sum, which
// equals the max row-abs-sum since B̂[g] is symmetric. Implemented as the
// two ordered-merge passes spec.md §4.3 describes: the first computes f[a]
// for every row, the second re-walks each row substituting the diagonal
// entry with B̂{a,a} = term_aa - f[a] + diagShift before summing absolute
// values.
func oneNorm(s *Submatrix) float64 {
	adj := s.adj
	m := s.size()

	f := make([]float64, m)
	for a, i := range s.g {
		rowSum, _, _ := rowWalk(adj, i, s.g, nil)
		f[a] = rowSum
	}

	hasM := adj.m > 0
	var maxAbsSum float64
	for a, i := range s.g {
		nb := adj.nbrs[i]
		var kiDivM float64
		if hasM {
			kiDivM = adj.kDivM[i]
		}

		var absSum float64
		bi := 0
		for b, j := range s.g {
			for bi < len(nb) && nb[bi] < j {
				bi++
			}

			var aij float64
			if bi < len(nb) && nb[bi] == j {
				aij = 1
			}

			var term float64
			if hasM {
				term = aij - kiDivM*float64(adj.k[j])
			} else {
				term = aij
			}
			if b == a {
				term = term - f[a] + s.diagShift
			}

			absSum += math.Abs(term)
		}

		if absSum > maxAbsSum {
			maxAbsSum = absSum
		}
	}

	return maxAbsSum
}

// deltaScore returns the change in sᵀB̂[g]s from flipping sVec[a] alone
// (position a in s.g, not a vertex id), via the closed form spec.md §4.3
// and §9 give: ΔQ = -4·s[a]·(B̂ row a · s) + 4·B̂{a,a}.
func deltaScore(s *Submatrix, sVec []float64, a int) float64 {
	adj := s.adj
	i := s.g[a]

	rowSum, dot, termAA := rowWalk(adj, i, s.g, sVec)
	rowDotS := dot + (s.diagShift-rowSum)*sVec[a]
	bkk := termAA + s.diagShift - rowSum

	return -4*sVec[a]*rowDotS + 4*bkk
}
