// SPDX-License-Identifier: MIT
package spectral

import "math/rand"

// Divider runs the full single-split procedure of spec.md §4.5 against a
// Submatrix: shift by the 1-norm, power-iterate to the leading eigenpair,
// un-shift, test divisibility twice, sign-round, refine in place.
//
// Rng must be non-nil for any call to Divide; a Divider is cheap to copy
// and safe to reuse across many Divide calls against different views as
// long as Rng is not shared concurrently (math/rand.Rand is not
// goroutine-safe).
type Divider struct {
	Rng     *rand.Rand
	Epsilon float64 // 0 means DefaultEpsilon
}

func (d *Divider) epsilon() float64 {
	if d.Epsilon > 0 {
		return d.Epsilon
	}

	return DefaultEpsilon
}

// Divide attempts to split s into two communities. It returns divisible =
// false, err = nil when s cannot be improved upon (spec.md's "indivisible"
// result variant, not an error) — this covers both divisibility tests
// failing and power iteration's numerical failure, which spec.md §4.7
// explicitly treats as indivisible at the current level rather than a
// propagated error.
//
// On success it returns a ±1 split vector of length s.size(), already
// refined in place by a Kernighan-Lin-style improvement loop.
func (d *Divider) Divide(s *Submatrix) (sVec []float64, divisible bool, err error) {
	m := s.size()
	if m < 2 {
		return nil, false, ErrTooSmall
	}
	if d.Rng == nil {
		return nil, false, ErrNeedRandSource
	}
	eps := d.epsilon()

	s.diagShift = 0
	rho := oneNorm(s)
	s.diagShift = rho

	b0 := randomVector(m, d.Rng)
	v, perr := powerIterate(s, b0, eps)
	if perr != nil {
		s.diagShift = 0
		return nil, false, nil
	}

	lambdaShifted := rayleighQuotient(s, v)
	lambda := lambdaShifted - rho
	s.diagShift = 0

	if lambda <= eps {
		return nil, false, nil
	}

	sVec = make([]float64, m)
	for a, val := range v {
		if val > 0 {
			sVec[a] = 1
		} else {
			sVec[a] = -1
		}
	}

	q := innerSBs(s, sVec)
	if q <= eps {
		return nil, false, nil
	}

	for {
		delta := refine(s, sVec, eps)
		if delta <= eps {
			break
		}
	}

	return sVec, true, nil
}
