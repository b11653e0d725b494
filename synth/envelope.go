// SPDX-License-Identifier: EPL-2.0

package synth

// ADSR envelope parameters. Phase lengths scale down with the note
// duration so short notes keep their shape.
const (
	maxAttackTime  = 0.01
	maxDecayTime   = 0.02
	maxReleaseTime = 0.05
	sustainLevel   = 0.7
)

// Envelope returns the amplitude multiplier at elapsed time t within a
// note of total length d, both in seconds. It is a pure function of its
// arguments; the four phases are selected by ordered range checks on t:
//
//	attack:  linear 0 -> 1 over min(0.01, d*0.1)
//	decay:   linear 1 -> 0.7 over min(0.02, d*0.2)
//	sustain: constant 0.7
//	release: linear 0.7 -> 0 over the final min(0.05, d*0.3)
//
// For very short notes the sustain phase can vanish and the decay and
// release ramps abut directly; the per-branch formulas still apply and are
// intentionally not special-cased.
func Envelope(t, d float64) float64 {
	attackTime := min(maxAttackTime, d*0.1)
	decayTime := min(maxDecayTime, d*0.2)
	releaseTime := min(maxReleaseTime, d*0.3)

	switch {
	case t < attackTime:
		return t / attackTime
	case t < attackTime+decayTime:
		progress := (t - attackTime) / decayTime
		return 1.0 - (1.0-sustainLevel)*progress
	case t < d-releaseTime:
		return sustainLevel
	default:
		progress := (t - (d - releaseTime)) / releaseTime
		return sustainLevel * (1.0 - progress)
	}
}
