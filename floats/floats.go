// Copyright ©2026 The Gncommunity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floats provides the tolerance-based float64 comparisons this
// module's tests need when checking accumulated betweenness values, which
// sum many float64 credits in an order that varies with sampling and
// worker count and so cannot be compared for exact equality. Adapted from
// this repository's older, general-purpose floats package, trimmed down to
// the comparisons this module's test suite actually exercises.
package floats

import "math"

const minNormalFloat64 = 2.2250738585072014e-308

// EqualWithinAbs returns true if a and b differ by no more than tol.
func EqualWithinAbs(a, b, tol float64) bool {
	return a == b || math.Abs(a-b) <= tol
}

// EqualWithinRel returns true if the difference between a and b is not
// greater than tol times the greater of their magnitudes.
func EqualWithinRel(a, b, tol float64) bool {
	if a == b {
		return true
	}
	delta := math.Abs(a - b)
	if delta <= minNormalFloat64 {
		return delta <= tol*minNormalFloat64
	}
	return delta/math.Max(math.Abs(a), math.Abs(b)) <= tol
}

// EqualWithinAbsOrRel returns true if a and b are equal to within either the
// absolute or the relative tolerance.
func EqualWithinAbsOrRel(a, b, absTol, relTol float64) bool {
	if EqualWithinAbs(a, b, absTol) {
		return true
	}
	return EqualWithinRel(a, b, relTol)
}
