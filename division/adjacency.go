// SPDX-License-Identifier: MIT
package division

import (
	"fmt"
	"io"

	"github.com/katalvlaran/modcluster/spectral"
)

// ReadAdjacency reads the adjacency file format of spec.md §6: a
// little-endian int32 n, followed for each vertex by an int32 degree k_i
// and k_i strictly ascending int32 neighbor indices in [0,n).
//
// Validation failures return an error wrapping ErrMalformed (structural
// violations) or ErrShortRead (truncated input); the graph's symmetry is
// not and cannot be verified here, per spec.md §6's explicit floor.
func ReadAdjacency(r io.Reader) (*spectral.Adjacency, error) {
	n32, err := readInt32(r)
	if err != nil {
		return nil, fmt.Errorf("division: ReadAdjacency: %w", err)
	}
	if n32 < 0 {
		return nil, fmt.Errorf("division: ReadAdjacency: n=%d: %w", n32, ErrMalformed)
	}
	n := int(n32)

	nbrs := make([][]int, n)
	for i := 0; i < n; i++ {
		k32, err := readInt32(r)
		if err != nil {
			return nil, fmt.Errorf("division: ReadAdjacency: vertex %d: %w", i, err)
		}
		if k32 < 0 {
			return nil, fmt.Errorf("division: ReadAdjacency: vertex %d has negative degree %d: %w", i, k32, ErrMalformed)
		}

		row := make([]int, k32)
		prev := -1
		for j := int32(0); j < k32; j++ {
			v32, err := readInt32(r)
			if err != nil {
				return nil, fmt.Errorf("division: ReadAdjacency: vertex %d neighbor %d: %w", i, j, err)
			}
			if v32 < 0 || int(v32) >= n {
				return nil, fmt.Errorf("division: ReadAdjacency: vertex %d neighbor %d out of range [0,%d): %w", i, v32, n, ErrMalformed)
			}
			if int(v32) <= prev {
				return nil, fmt.Errorf("division: ReadAdjacency: vertex %d's neighbor list is not strictly ascending: %w", i, ErrMalformed)
			}
			prev = int(v32)
			row[j] = int(v32)
		}
		nbrs[i] = row
	}

	adj, err := spectral.NewAdjacency(n, nbrs)
	if err != nil {
		return nil, fmt.Errorf("division: ReadAdjacency: %w: %w", ErrMalformed, err)
	}

	return adj, nil
}

// WriteAdjacency encodes adj in the same little-endian layout ReadAdjacency
// decodes, so the gen CLI verb can produce fixture files that round-trip
// through ReadAdjacency byte-for-byte.
func WriteAdjacency(w io.Writer, adj *spectral.Adjacency) error {
	if err := writeInt32(w, int32(adj.N())); err != nil {
		return fmt.Errorf("division: WriteAdjacency: %w", err)
	}

	for i := 0; i < adj.N(); i++ {
		row := adj.Neighbors(i)
		if err := writeInt32(w, int32(len(row))); err != nil {
			return fmt.Errorf("division: WriteAdjacency: vertex %d: %w", i, err)
		}
		for _, j := range row {
			if err := writeInt32(w, int32(j)); err != nil {
				return fmt.Errorf("division: WriteAdjacency: vertex %d neighbor: %w", i, err)
			}
		}
	}

	return nil
}
