// SPDX-License-Identifier: MIT

package complexnum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcomplex/complexnum"
	"github.com/stretchr/testify/assert"
)

func TestConjugateCartesian(t *testing.T) {
	assert.Equal(t, complexnum.Cartesian{Real: 1, Imaginary: -2},
		complexnum.ConjugateCartesian(complexnum.Cartesian{Real: 1, Imaginary: 2}))
	assert.Equal(t, complexnum.Cartesian{Real: -7},
		complexnum.ConjugateCartesian(complexnum.Cartesian{Real: -7}))
}

func TestConjugatePolar(t *testing.T) {
	p := complexnum.Polar{Modulus: 2, Argument: 0.5}
	assert.Equal(t, complexnum.Polar{Modulus: 2, Argument: -0.5}, complexnum.ConjugatePolar(p))

	// no normalization of the modulus, even when negative
	q := complexnum.Polar{Modulus: -3, Argument: -math.Pi}
	assert.Equal(t, complexnum.Polar{Modulus: -3, Argument: math.Pi}, complexnum.ConjugatePolar(q))
}

// TestConjugate_FormsAgree checks that conjugating in either form lands on
// the same point once converted back.
func TestConjugate_FormsAgree(t *testing.T) {
	r := newRand()
	for i := 0; i < sampleCount; i++ {
		a := randCartesian(r)
		viaPolar := complexnum.ToCartesian(complexnum.ConjugatePolar(complexnum.ToPolar(a)))
		if !assertApprox(t, complexnum.ConjugateCartesian(a), viaPolar, complexnum.DefaultEpsilon, "conjugate forms") {
			return
		}
	}
}
