// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"
)

func TestEnvelope_StartsAtZero(t *testing.T) {
	t.Parallel()

	for _, d := range []float64{0.01, 0.1, 1.0} {
		if v := Envelope(0, d); v != 0.0 {
			t.Errorf("Envelope(0, %v) = %v, want 0.0", d, v)
		}
	}
}

func TestEnvelope_EndsAtZero(t *testing.T) {
	t.Parallel()

	for _, d := range []float64{0.01, 0.1, 1.0} {
		if v := Envelope(d, d); v != 0.0 {
			t.Errorf("Envelope(%v, %v) = %v, want 0.0", d, d, v)
		}
	}
}

func TestEnvelope_AttackPeaksAtOne(t *testing.T) {
	t.Parallel()

	d := 1.0 // attack = 0.01, decay = 0.02, release = 0.05
	eps := 1e-9

	if v := Envelope(0.01-eps, d); math.Abs(v-1.0) > 1e-6 {
		t.Errorf("Envelope at end of attack = %v, want ~1.0", v)
	}
}

func TestEnvelope_SustainLevel(t *testing.T) {
	t.Parallel()

	// Mid-note for a long note sits squarely in the sustain phase.
	if v := Envelope(0.5, 1.0); v != 0.7 {
		t.Errorf("Envelope(0.5, 1.0) = %v, want 0.7", v)
	}
}

func TestEnvelope_ContinuousAcrossPhases(t *testing.T) {
	t.Parallel()

	// The envelope must not jump at phase boundaries beyond floating
	// point rounding, for short, default and long notes.
	const eps = 1e-9
	const tol = 1e-6

	for _, d := range []float64{0.01, 0.1, 1.0} {
		attack := min(0.01, d*0.1)
		decay := min(0.02, d*0.2)
		release := min(0.05, d*0.3)

		boundaries := []float64{attack, attack + decay, d - release}
		for _, b := range boundaries {
			if b <= 0 || b >= d {
				continue
			}
			before := Envelope(b-eps, d)
			after := Envelope(b+eps, d)
			if math.Abs(before-after) > tol {
				t.Errorf("d=%v: discontinuity at t=%v: %v -> %v", d, b, before, after)
			}
		}
	}
}

func TestEnvelope_MonotonicAttack(t *testing.T) {
	t.Parallel()

	d := 0.1
	attack := min(0.01, d*0.1)

	prev := -1.0
	for i := 0; i <= 10; i++ {
		tt := attack * float64(i) / 10 * 0.999
		v := Envelope(tt, d)
		if v < prev {
			t.Fatalf("attack not monotonic at t=%v: %v < %v", tt, v, prev)
		}
		prev = v
	}
}

func TestEnvelope_NonNegativeWithinNote(t *testing.T) {
	t.Parallel()

	for _, d := range []float64{0.005, 0.01, 0.1, 1.0} {
		for i := 0; i < 1000; i++ {
			tt := d * float64(i) / 1000
			if v := Envelope(tt, d); v < -1e-9 || v > 1.0+1e-9 {
				t.Fatalf("Envelope(%v, %v) = %v, outside [0,1]", tt, d, v)
			}
		}
	}
}
