// SPDX-License-Identifier: MIT

package complexnum

import "math"

// Add returns a + b, componentwise.
func Add(a, b Cartesian) Cartesian {
	return Cartesian{
		Real:      a.Real + b.Real,
		Imaginary: a.Imaginary + b.Imaginary,
	}
}

// Subtract returns a − b: a is the minuend, b the subtrahend.
func Subtract(a, b Cartesian) Cartesian {
	return Cartesian{
		Real:      a.Real - b.Real,
		Imaginary: a.Imaginary - b.Imaginary,
	}
}

// Multiply returns the complex product a·b:
//
//	(ar·br − ai·bi) + (ar·bi + ai·br)·i
//
// The formula is symmetric in a and b, so Multiply(a, b) and Multiply(b, a)
// agree bit for bit. Each partial product is rounded on its own (the
// float64 conversions forbid fused multiply-add), which keeps that true on
// FMA-capable architectures too.
func Multiply(a, b Cartesian) Cartesian {
	return Cartesian{
		Real:      float64(a.Real*b.Real) - float64(a.Imaginary*b.Imaginary),
		Imaginary: float64(a.Real*b.Imaginary) + float64(a.Imaginary*b.Real),
	}
}

// Divide returns the quotient a / b:
//
//	d = br² + bi²
//	((ar·br + ai·bi)/d) + ((ai·br − ar·bi)/d)·i
//
// Division by zero is not intercepted. When b is 0+0i, d is 0 and the
// components become ±Inf or NaN per IEEE-754 (for example 1/0 = +Inf,
// 0/0 = NaN).
//
// No scaling is applied, so very large or very small divisors can overflow
// or underflow d; use complex128 division (see Complex128) when that matters.
func Divide(a, b Cartesian) Cartesian {
	d := b.Real*b.Real + b.Imaginary*b.Imaginary
	return Cartesian{
		Real:      (a.Real*b.Real + a.Imaginary*b.Imaginary) / d,
		Imaginary: (a.Imaginary*b.Real - a.Real*b.Imaginary) / d,
	}
}

// Modulus returns |a| = sqrt(Real² + Imaginary²).
//
// Always ≥ 0 for finite input; NaN in either component yields NaN.
// Unlike math.Hypot, the squares are not rescaled, so components beyond
// ~1e154 overflow to +Inf.
func Modulus(a Cartesian) float64 {
	return math.Sqrt(a.Real*a.Real + a.Imaginary*a.Imaginary)
}
