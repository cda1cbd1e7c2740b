// SPDX-License-Identifier: MIT

// Package complexnum implements complex-number arithmetic on two small
// value types: Cartesian (real + imaginary·i) and Polar (modulus·e^(i·argument)).
//
// What is in the box:
//
//	• Representation: ToPolar / ToCartesian conversion
//	• Arithmetic:     Add, Subtract, Multiply, Divide
//	• Conjugates:     ConjugateCartesian, ConjugatePolar
//	• Magnitude:      Modulus
//	• Real powers:    Power (via a Polar round-trip)
//
// Numeric policy:
//
//   - Every function is pure: arguments are taken by value, results are new
//     values, nothing is mutated and no package state exists.
//   - No function returns an error. Division by zero and Pow(0, p≤0) surface
//     as ±Inf/NaN exactly as IEEE-754 and the math package define them.
//   - Conversions are exact only up to floating-point rounding; compare with
//     ApproxEqual and DefaultEpsilon rather than ==.
//
// Usage:
//
//	import "github.com/katalvlaran/lvcomplex/complexnum"
//
//	a := complexnum.Cartesian{Real: 1, Imaginary: 2}
//	b := complexnum.Cartesian{Real: 3, Imaginary: 4}
//	fmt.Println(complexnum.Multiply(a, b)) // -5.000000 + 10.000000i
//	fmt.Println(complexnum.ToPolar(a))     // 2.236068, 1.107149
//
// Concurrency: all functions are safe for concurrent use without locking.
package complexnum
