package spectral

import (
	"testing"

	"github.com/katalvlaran/modcluster/matrix"
	"github.com/katalvlaran/modcluster/matrix/ops"
)

// denseModularityMatrix materializes the standard modularity matrix
// B[i][j] = A[i][j] - k[i]k[j]/M for the whole vertex set. This coincides
// with the implicit operator B̂[g] when g is the full vertex set, since the
// row-sum correction f[a] telescopes to zero there (Σ_b A[i,b] - k[i]Σ_b
// k[b]/M = k[i] - k[i] = 0).
func denseModularityMatrix(t *testing.T, adj *Adjacency) matrix.Matrix {
	t.Helper()
	n := adj.N()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}

	adjSet := make([]map[int]bool, n)
	for i := 0; i < n; i++ {
		adjSet[i] = make(map[int]bool, adj.Degree(i))
		for _, j := range adj.neighbors(i) {
			adjSet[i][j] = true
		}
	}

	mm := float64(adj.M())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var a float64
			if adjSet[i][j] {
				a = 1
			}
			var kk float64
			if mm > 0 {
				kk = float64(adj.Degree(i)) * float64(adj.Degree(j)) / mm
			}
			if err := m.Set(i, j, a-kk); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

func maxEigenvalue(eigs []float64) float64 {
	max := eigs[0]
	for _, v := range eigs[1:] {
		if v > max {
			max = v
		}
	}

	return max
}

// TestDividerAgreesWithExactEigendecomposition cross-checks the divider's
// root-level divisibility verdict (power iteration over the implicit
// operator) against an exact Jacobi eigendecomposition of the same
// modularity matrix materialized densely. This is the test oracle role
// matrix/ops.Eigen serves: an O(n^3) method independent of spectral's own
// numerics, confirming power iteration reaches the same divisibility
// verdict a dense eigendecomposition would.
func TestDividerAgreesWithExactEigendecomposition(t *testing.T) {
	cases := []struct {
		name string
		adj  *Adjacency
	}{
		{"trianglePair", trianglePairAdjacency(t)},
		{"pathP4", pathP4Adjacency(t)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dense := denseModularityMatrix(t, tc.adj)
			eigs, _, err := ops.Eigen(dense, 1e-9, 200)
			if err != nil {
				t.Fatalf("ops.Eigen: %v", err)
			}
			exactLambda := maxEigenvalue(eigs)

			var rootDivisible bool
			var sawRoot bool
			_, err = Partition(tc.adj, WithDecisionLogger(func(size int, divisible bool) {
				if !sawRoot {
					sawRoot = true
					rootDivisible = divisible
				}
			}))
			if err != nil {
				t.Fatalf("Partition: %v", err)
			}
			if !sawRoot {
				t.Fatalf("divider never ran (graph too small to test)")
			}

			wantDivisible := exactLambda > DefaultEpsilon
			if rootDivisible != wantDivisible {
				t.Fatalf("root divisible = %v, want %v (exact leading eigenvalue %v)", rootDivisible, wantDivisible, exactLambda)
			}
		})
	}
}
