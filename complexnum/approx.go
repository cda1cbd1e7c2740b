// SPDX-License-Identifier: MIT

package complexnum

import "math"

// DefaultEpsilon is the absolute per-component tolerance used when comparing
// values that went through sqrt/atan2/cos/sin (conversions, Power).
// Suitable for inputs of modest magnitude (|component| ≲ 1e3).
const DefaultEpsilon = 1e-9

// ApproxEqual reports whether a and b differ by at most eps in both the real
// and the imaginary component. NaN is never approximately equal to anything.
// Two infinities of the same sign compare equal.
//
// Panics if eps is negative or NaN (programmer error).
func ApproxEqual(a, b Cartesian, eps float64) bool {
	mustTolerance(eps)
	return within(a.Real, b.Real, eps) && within(a.Imaginary, b.Imaginary, eps)
}

// ApproxEqualPolar is ApproxEqual for polar values. Arguments are compared
// as plain numbers: π and −π are NOT considered equal.
func ApproxEqualPolar(a, b Polar, eps float64) bool {
	mustTolerance(eps)
	return within(a.Modulus, b.Modulus, eps) && within(a.Argument, b.Argument, eps)
}

func mustTolerance(eps float64) {
	if eps < 0 || math.IsNaN(eps) {
		panic("complexnum: tolerance must be a non-negative number")
	}
}

// within reports |x − y| ≤ eps, treating equal infinities as equal.
func within(x, y, eps float64) bool {
	if x == y {
		return true
	}
	return math.Abs(x-y) <= eps
}
