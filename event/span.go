// SPDX-License-Identifier: EPL-2.0

package event

// Span holds the global scale factors derived from an event list: the time
// window the events cover and the peak activity, both floored at 1 so that
// degenerate histories divide cleanly instead of failing.
type Span struct {
	MinTime int64
	MaxTime int64

	// TimeRange is MaxTime-MinTime, floored at 1. When every event shares
	// one timestamp the floor collapses all positions to 0.0.
	TimeRange int64

	// MaxActivity is the largest Event.Activity, floored at 1. When every
	// event carries zero activity the floor maps all of them to zero
	// relative activity.
	MaxActivity int
}

// Normalize computes the Span of events. It is a pure function: one pass,
// no side effects, no failure modes. An empty list yields the zero span
// with both floors applied.
func Normalize(events []Event) Span {
	span := Span{TimeRange: 1, MaxActivity: 1}
	if len(events) == 0 {
		return span
	}

	span.MinTime = events[0].Timestamp
	span.MaxTime = events[0].Timestamp

	for _, ev := range events {
		if ev.Timestamp < span.MinTime {
			span.MinTime = ev.Timestamp
		}
		if ev.Timestamp > span.MaxTime {
			span.MaxTime = ev.Timestamp
		}
		if activity := ev.Activity(); activity > span.MaxActivity {
			span.MaxActivity = activity
		}
	}

	if r := span.MaxTime - span.MinTime; r > 0 {
		span.TimeRange = r
	}

	return span
}

// Position maps a timestamp into [0,1] relative to the span. Timestamps
// inside [MinTime,MaxTime] stay in range by construction.
func (s Span) Position(timestamp int64) float64 {
	return float64(timestamp-s.MinTime) / float64(s.TimeRange)
}

// Relative maps an activity count into [0,1] relative to the span's peak.
func (s Span) Relative(activity int) float64 {
	return float64(activity) / float64(s.MaxActivity)
}
