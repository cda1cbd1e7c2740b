// SPDX-License-Identifier: MIT

package complexnum_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcomplex/complexnum"
	"github.com/stretchr/testify/assert"
)

// sampleCount is how many random values each property test draws.
const sampleCount = 2000

// sampleSpan bounds every sampled component to [-sampleSpan, sampleSpan].
const sampleSpan = 100.0

// newRand returns a deterministic source so failures are reproducible.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// randCartesian draws both components uniformly from [-sampleSpan, sampleSpan].
func randCartesian(r *rand.Rand) complexnum.Cartesian {
	return complexnum.Cartesian{
		Real:      (r.Float64()*2 - 1) * sampleSpan,
		Imaginary: (r.Float64()*2 - 1) * sampleSpan,
	}
}

// randNonSmall draws a value whose modulus is at least minMod, re-drawing
// until it qualifies. Keeps divisors well-conditioned.
func randNonSmall(r *rand.Rand, minMod float64) complexnum.Cartesian {
	for {
		c := randCartesian(r)
		if complexnum.Modulus(c) >= minMod {
			return c
		}
	}
}

// assertApprox fails unless want and got agree within eps per component.
// ctx identifies the case in the failure message.
func assertApprox(t *testing.T, want, got complexnum.Cartesian, eps float64, ctx string) bool {
	t.Helper()
	if complexnum.ApproxEqual(want, got, eps) {
		return true
	}
	return assert.Failf(t, "values differ beyond tolerance",
		"%s: want=%v got=%v eps=%g", ctx, want, got, eps)
}
