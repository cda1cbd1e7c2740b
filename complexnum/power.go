// SPDX-License-Identifier: MIT

package complexnum

import "math"

// Power raises a to the real exponent p using De Moivre's formula.
//
// Steps:
//  1. q := ToPolar(a)
//  2. q.Modulus = q.Modulus^p, q.Argument = q.Argument·p
//  3. return ToCartesian(q)
//
// Only the principal value is returned (Argument taken from atan2).
//
// At the origin the result is whatever math.Pow(0, p) and math.Atan2(0, 0)
// give: 0+0i for p > 0, 1+0i for p == 0 (Pow(0, 0) = 1), and +Inf/NaN
// components for p < 0. None of these cases is special-cased.
func Power(a Cartesian, p float64) Cartesian {
	q := ToPolar(a)
	return ToCartesian(Polar{
		Modulus:  math.Pow(q.Modulus, p),
		Argument: q.Argument * p,
	})
}
