// SPDX-License-Identifier: EPL-2.0

// Package event defines the commit-activity records the sonification and
// visualization pipelines consume, and the normalization step that maps
// raw records into a common coordinate space.
//
// # Events
//
// An Event is one timestamped unit of repository activity:
//
//	ev := event.Event{Timestamp: 1700000000, Additions: 42, Deletions: 7}
//	ev.Activity() // 49
//
// Events need not be sorted or unique; timestamps only need to be mutually
// comparable.
//
// # Normalization
//
// Normalize derives the global scale factors a renderer needs to place any
// event relative to the whole history:
//
//	span := event.Normalize(events)
//	pos := span.Position(ev.Timestamp) // 0.0 .. 1.0
//	rel := span.Relative(ev.Activity()) // 0.0 .. 1.0
//
// Degenerate inputs never fail: a single-instant history collapses every
// event to position 0.0, and an all-zero history maps every event to zero
// relative activity. See Normalize for the exact floor rules.
package event
