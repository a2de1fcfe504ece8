// SPDX-License-Identifier: MIT
package division

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// readInt32 reads one little-endian int32, wrapping a truncated read as
// ErrShortRead, matching gonum.org/v1/gonum/mat's MarshalBinary/
// UnmarshalBinary convention of an explicit fixed-width header before any
// variable-length payload.
func readInt32(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("division: short read: %w", ErrShortRead)
		}

		return 0, fmt.Errorf("division: read: %w", err)
	}

	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

// writeInt32 writes one little-endian int32, wrapping a partial write as
// ErrShortWrite.
func writeInt32(w io.Writer, v int32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	n, err := w.Write(buf[:])
	if err != nil {
		return fmt.Errorf("division: write: %w", err)
	}
	if n != len(buf) {
		return fmt.Errorf("division: wrote %d of %d bytes: %w", n, len(buf), ErrShortWrite)
	}

	return nil
}
