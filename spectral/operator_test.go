package spectral

import (
	"math"
	"testing"
)

func trianglePairAdjacency(t *testing.T) *Adjacency {
	t.Helper()
	rows := [][]int{
		{1, 2}, {0, 2}, {0, 1},
		{4, 5}, {3, 5}, {3, 4},
	}
	adj, err := NewAdjacency(6, rows)
	if err != nil {
		t.Fatalf("NewAdjacency: %v", err)
	}

	return adj
}

// TestMultMatchesInnerSBs verifies spec.md §8 property 9: mult(S,s)·s (as a
// scalar) equals inner_sBs(S,s) within floating tolerance.
func TestMultMatchesInnerSBs(t *testing.T) {
	adj := trianglePairAdjacency(t)
	s := newRootSubmatrix(adj)

	sVec := []float64{1, 1, 1, -1, -1, -1}
	out := make([]float64, s.size())
	mult(s, sVec, out)

	var dot float64
	for a := range sVec {
		dot += sVec[a] * out[a]
	}

	want := innerSBs(s, sVec)
	if math.Abs(dot-want) > 1e-9 {
		t.Fatalf("mult(S,s)*s = %v, innerSBs(S,s) = %v", dot, want)
	}
}

// TestOneNormNonNegative checks the 1-norm is non-negative, and strictly
// positive on a graph with edges.
func TestOneNormNonNegative(t *testing.T) {
	adj := trianglePairAdjacency(t)
	s := newRootSubmatrix(adj)

	rho := oneNorm(s)
	if rho < 0 {
		t.Fatalf("oneNorm = %v, want >= 0", rho)
	}
	if rho == 0 {
		t.Fatalf("oneNorm = 0 on a graph with edges, want > 0")
	}
}

// TestDeltaScoreMatchesBruteForce verifies the closed-form delta_score
// against a direct before/after evaluation of sᵀB̂s for a small graph.
func TestDeltaScoreMatchesBruteForce(t *testing.T) {
	adj := trianglePairAdjacency(t)
	s := newRootSubmatrix(adj)
	sVec := []float64{1, 1, -1, -1, -1, 1}

	before := innerSBs(s, sVec)
	for k := range sVec {
		want := deltaScore(s, sVec, k)

		flipped := append([]float64(nil), sVec...)
		flipped[k] = -flipped[k]
		after := innerSBs(s, flipped)

		got := after - before
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("deltaScore(%d) = %v, brute-force delta = %v", k, want, got)
		}
	}
}

// TestMultZeroWhenNoEdges exercises the M=0 guard in rowWalk: an
// edgeless graph's B̂ is the zero matrix regardless of diagShift.
func TestMultZeroWhenNoEdges(t *testing.T) {
	adj, err := NewAdjacency(4, make([][]int, 4))
	if err != nil {
		t.Fatalf("NewAdjacency: %v", err)
	}
	s := newRootSubmatrix(adj)

	v := []float64{1, -1, 1, -1}
	out := make([]float64, 4)
	mult(s, v, out)
	for a, x := range out {
		if x != 0 {
			t.Fatalf("out[%d] = %v, want 0 on an edgeless graph", a, x)
		}
	}
}
