// SPDX-License-Identifier: MIT

package complexnum

// Cartesian is a complex number in rectangular form: Real + Imaginary·i.
//
// Any IEEE-754 values are accepted; ±Inf and NaN propagate through every
// operation under ordinary floating-point rules.
type Cartesian struct {
	Real      float64 // real part
	Imaginary float64 // coefficient of i
}

// Polar is a complex number in polar form: Modulus·e^(i·Argument).
//
// Modulus is conventionally non-negative but nothing here enforces it.
// Argument is in radians and is never normalized; only ToPolar happens to
// produce values in (-π, π] because it is built on math.Atan2.
type Polar struct {
	Modulus  float64 // magnitude
	Argument float64 // angle from the positive real axis, radians
}
