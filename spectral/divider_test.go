package spectral

import (
	"errors"
	"math/rand"
	"testing"
)

func TestDivider_TooSmall(t *testing.T) {
	adj, _ := NewAdjacency(1, [][]int{{}})
	s := newRootSubmatrix(adj)
	d := &Divider{Rng: rand.New(rand.NewSource(1))}

	_, divisible, err := d.Divide(s)
	if divisible {
		t.Fatalf("divisible = true, want false")
	}
	if !errors.Is(err, ErrTooSmall) {
		t.Fatalf("err = %v, want ErrTooSmall", err)
	}
}

func TestDivider_NeedsRandSource(t *testing.T) {
	adj := trianglePairAdjacency(t)
	s := newRootSubmatrix(adj)
	d := &Divider{}

	_, _, err := d.Divide(s)
	if !errors.Is(err, ErrNeedRandSource) {
		t.Fatalf("err = %v, want ErrNeedRandSource", err)
	}
}

func TestDivider_SplitsTrianglePair(t *testing.T) {
	adj := trianglePairAdjacency(t)
	s := newRootSubmatrix(adj)
	d := &Divider{Rng: rand.New(rand.NewSource(1))}

	sVec, divisible, err := d.Divide(s)
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}
	if !divisible {
		t.Fatalf("divisible = false, want true for two disjoint triangles")
	}

	for i := 0; i < 3; i++ {
		for j := 3; j < 6; j++ {
			if sVec[i] == sVec[j] {
				t.Fatalf("expected {0,1,2} separated from {3,4,5}, got sVec=%v", sVec)
			}
		}
	}
}
