// Package lvcomplex is a small, dependency-free toolkit for complex-number
// arithmetic in Go.
//
// What is inside?
//
//	• complexnum/: Cartesian & Polar value types, conversion between them,
//	              add / subtract / multiply / divide, conjugates, modulus
//	              and real powers
//	• examples/:   a runnable walkthrough of every operation
//
// Why lvcomplex?
//
//   - Pure functions on plain structs: no state, no locks, safe everywhere
//   - IEEE-754 all the way: division by zero gives Inf/NaN, never a panic
//   - Explicit forms: Cartesian and Polar are distinct types, so a value
//     never changes meaning silently
//
// Quick example:
//
//	a := complexnum.Cartesian{Real: 1, Imaginary: 2}
//	b := complexnum.Cartesian{Real: 3, Imaginary: 4}
//	p := complexnum.Multiply(a, b) // -5 + 10i
//
//	go get github.com/katalvlaran/lvcomplex
package lvcomplex
