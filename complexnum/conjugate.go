// SPDX-License-Identifier: MIT

package complexnum

// ConjugateCartesian returns Real − Imaginary·i.
// Applying it twice yields a again, exactly.
func ConjugateCartesian(a Cartesian) Cartesian {
	return Cartesian{Real: a.Real, Imaginary: -a.Imaginary}
}

// ConjugatePolar negates the argument and keeps the modulus.
// It works on the polar form directly, without a Cartesian round-trip.
func ConjugatePolar(p Polar) Polar {
	return Polar{Modulus: p.Modulus, Argument: -p.Argument}
}
