// SPDX-License-Identifier: EPL-2.0

package event

// Event is one timestamped unit of repository activity. Additions and
// Deletions are non-negative line counts; their sum is the event's
// activity, which drives loudness and particle size downstream.
type Event struct {
	// Timestamp in seconds since the Unix epoch. Any monotonically
	// comparable unit works; only differences between timestamps matter.
	Timestamp int64

	Additions int
	Deletions int
}

// Activity returns the total magnitude of the event.
func (e Event) Activity() int {
	return e.Additions + e.Deletions
}

// AddRatio returns the additive share of the event's activity in [0,1].
// A zero-activity event reports 0.5, the neutral midpoint.
func (e Event) AddRatio() float64 {
	activity := e.Activity()
	if activity == 0 {
		return 0.5
	}
	return float64(e.Additions) / float64(activity)
}
