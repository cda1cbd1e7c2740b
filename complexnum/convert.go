// SPDX-License-Identifier: MIT

package complexnum

import "math"

// ToPolar converts a to polar form.
//
//	Modulus  = sqrt(Real² + Imaginary²)
//	Argument = atan2(Imaginary, Real)   // in (-π, π], atan2(0, 0) = 0
//
// Complexity: O(1).
func ToPolar(a Cartesian) Polar {
	return Polar{
		Modulus:  Modulus(a),
		Argument: math.Atan2(a.Imaginary, a.Real),
	}
}

// ToCartesian converts p to rectangular form.
//
//	Real      = Modulus·cos(Argument)
//	Imaginary = Modulus·sin(Argument)
//
// ToCartesian(ToPolar(a)) reproduces a only up to rounding.
// Complexity: O(1).
func ToCartesian(p Polar) Cartesian {
	return Cartesian{
		Real:      p.Modulus * math.Cos(p.Argument),
		Imaginary: p.Modulus * math.Sin(p.Argument),
	}
}

// Polar returns a in polar form. Shorthand for ToPolar(a).
func (a Cartesian) Polar() Polar { return ToPolar(a) }

// Cartesian returns p in rectangular form. Shorthand for ToCartesian(p).
func (p Polar) Cartesian() Cartesian { return ToCartesian(p) }
