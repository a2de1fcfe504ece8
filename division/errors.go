// SPDX-License-Identifier: MIT
package division

import "errors"

// ErrMalformed indicates a structurally invalid adjacency file: a negative
// count, an out-of-range neighbor index, or a non-ascending neighbor list.
var ErrMalformed = errors.New("division: malformed file")

// ErrShortRead indicates the underlying reader returned fewer bytes than
// the format requires before reaching the expected end of data.
var ErrShortRead = errors.New("division: short read")

// ErrShortWrite indicates the underlying writer accepted fewer bytes than
// requested.
var ErrShortWrite = errors.New("division: short write")
