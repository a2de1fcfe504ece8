// SPDX-License-Identifier: MIT
// Package: modcluster/spectral
//
// errors.go — sentinel errors for the spectral package.
//
// Error policy mirrors matrix and builder: only package-level sentinels are
// exposed, callers branch with errors.Is, and implementations wrap with %w
// to attach context.

package spectral

import "errors"

// ErrTooSmall indicates Divide was called on a submatrix with fewer than two
// vertices; callers must emit such a view directly instead of dividing it.
var ErrTooSmall = errors.New("spectral: submatrix has fewer than 2 vertices")

// ErrNumerical indicates power iteration's residual norm underflowed to zero
// before convergence. Callers treat this as indivisible at the current
// level rather than propagating a fatal error, per the divider's contract.
var ErrNumerical = errors.New("spectral: power iteration failed to converge")

// ErrInvalidAdjacency indicates NewAdjacency received a malformed row store:
// a negative n, a row count different from n, an out-of-range neighbor, or
// a non-ascending row.
var ErrInvalidAdjacency = errors.New("spectral: invalid adjacency")

// ErrNeedRandSource indicates a Divider was used with a nil Rng.
var ErrNeedRandSource = errors.New("spectral: divider requires a non-nil Rng")
