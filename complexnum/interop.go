// SPDX-License-Identifier: MIT

package complexnum

import "fmt"

// FromComplex128 builds a Cartesian from Go's built-in complex type.
func FromComplex128(z complex128) Cartesian {
	return Cartesian{Real: real(z), Imaginary: imag(z)}
}

// Complex128 returns a as a built-in complex128, for use with math/cmplx.
func (a Cartesian) Complex128() complex128 {
	return complex(a.Real, a.Imaginary)
}

// String renders a as "real + imaginaryi" with six decimals, e.g.
// "-5.000000 + 10.000000i". A negative imaginary part keeps its sign:
// "1.000000 + -2.000000i".
func (a Cartesian) String() string {
	return fmt.Sprintf("%f + %fi", a.Real, a.Imaginary)
}

// String renders p as "modulus, argument" with six decimals.
func (p Polar) String() string {
	return fmt.Sprintf("%f, %f", p.Modulus, p.Argument)
}
