// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid bounds.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSymmetric is returned when a symmetric-only routine receives an
	// asymmetric matrix (outside the configured tolerance).
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric")

	// ErrEigenFailed indicates that the Jacobi eigen routine did not converge
	// within the given iteration budget.
	ErrEigenFailed = errors.New("matrix: eigen decomposition did not converge")
)
