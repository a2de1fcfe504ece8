// SPDX-License-Identifier: MIT
package division

import (
	"fmt"
	"io"
)

// Writer streams a partition result to the division file format of
// spec.md §6: a placeholder int32 num_groups is written at construction
// time, each emitted group is appended as it arrives, and Finalize seeks
// back to overwrite num_groups once the true count is known. This is the
// "seek past, write groups, seek back and overwrite" protocol, modeled on
// gonum.org/v1/gonum/mat's MarshalBinary header-then-payload convention.
//
// Writer implements spectral.Sink, so it can be passed directly to
// spectral.Partition via spectral.WithSink to stream groups without
// buffering the whole partition in memory.
type Writer struct {
	w        io.WriteSeeker
	headerAt int64
	count    int32
}

// NewWriter reserves space for num_groups at w's current position and
// returns a Writer ready to accept groups via WriteGroup.
func NewWriter(w io.WriteSeeker) (*Writer, error) {
	pos, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("division: NewWriter: %w", err)
	}
	if err := writeInt32(w, 0); err != nil {
		return nil, fmt.Errorf("division: NewWriter: %w", err)
	}

	return &Writer{w: w, headerAt: pos}, nil
}

// WriteGroup appends one group record: int32 m followed by m int32
// vertex indices in the order given.
func (dw *Writer) WriteGroup(vertices []int) error {
	if err := writeInt32(dw.w, int32(len(vertices))); err != nil {
		return fmt.Errorf("division: WriteGroup: %w", err)
	}
	for _, v := range vertices {
		if err := writeInt32(dw.w, int32(v)); err != nil {
			return fmt.Errorf("division: WriteGroup: %w", err)
		}
	}
	dw.count++

	return nil
}

// Finalize overwrites the reserved num_groups field with the number of
// groups actually written, then restores the stream position to just past
// the last group record.
func (dw *Writer) Finalize() error {
	end, err := dw.w.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("division: Finalize: %w", err)
	}
	if _, err := dw.w.Seek(dw.headerAt, io.SeekStart); err != nil {
		return fmt.Errorf("division: Finalize: %w", err)
	}
	if err := writeInt32(dw.w, dw.count); err != nil {
		return fmt.Errorf("division: Finalize: %w", err)
	}
	if _, err := dw.w.Seek(end, io.SeekStart); err != nil {
		return fmt.Errorf("division: Finalize: %w", err)
	}

	return nil
}

// WriteDivision writes a complete division file in one call: a Writer is
// opened at w's current position, every group in groups is appended in
// order, and the result is finalized.
func WriteDivision(w io.WriteSeeker, groups [][]int) error {
	dw, err := NewWriter(w)
	if err != nil {
		return err
	}
	for _, g := range groups {
		if err := dw.WriteGroup(g); err != nil {
			return err
		}
	}

	return dw.Finalize()
}

// ReadDivision reads a complete division file written by WriteDivision,
// returning its groups in file order. Used by tests and by any CLI
// inspection tooling that wants to verify a file it just wrote.
func ReadDivision(r io.Reader) ([][]int, error) {
	numGroups, err := readInt32(r)
	if err != nil {
		return nil, fmt.Errorf("division: ReadDivision: %w", err)
	}
	if numGroups < 0 {
		return nil, fmt.Errorf("division: ReadDivision: num_groups=%d: %w", numGroups, ErrMalformed)
	}

	groups := make([][]int, numGroups)
	for i := int32(0); i < numGroups; i++ {
		m, err := readInt32(r)
		if err != nil {
			return nil, fmt.Errorf("division: ReadDivision: group %d: %w", i, err)
		}
		if m < 0 {
			return nil, fmt.Errorf("division: ReadDivision: group %d has negative size %d: %w", i, m, ErrMalformed)
		}

		g := make([]int, m)
		for j := int32(0); j < m; j++ {
			v, err := readInt32(r)
			if err != nil {
				return nil, fmt.Errorf("division: ReadDivision: group %d member %d: %w", i, j, err)
			}
			g[j] = int(v)
		}
		groups[i] = g
	}

	return groups, nil
}
