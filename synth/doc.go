// SPDX-License-Identifier: EPL-2.0

// Package synth renders a list of repository events into a mono audio
// buffer: one short enveloped note per event, placed by normalized
// timestamp, pitched by the add/delete ratio and scaled by relative
// activity.
//
// # Rendering
//
// Render is the single entry point:
//
//	cfg := synth.DefaultConfig()
//	samples, err := synth.Render(events, cfg)
//
// The returned buffer holds float64 amplitudes in [-1,1], one channel, at
// cfg.SampleRate. Rendering is deterministic: the same events and config
// always produce a bit-identical buffer.
//
// # Mapping
//
// Each event becomes a note of cfg.DurationPerEvent seconds:
//
//   - start offset: the event's position within the history's time span,
//     scaled to the buffer length
//   - pitch: cfg.BaseFrequency scaled by 0.5x (pure deletions) to 2.0x
//     (pure additions)
//   - loudness: activity relative to the history's peak, capped at half
//     scale before the final normalization
//   - timbre: fundamental plus second and third harmonics at 0.3 and 0.1
//
// Overlapping notes are mixed additively. After all notes are placed the
// buffer is rescaled once if its peak exceeds unity.
//
// # Total duration
//
// The render is capped at 60 seconds. Histories longer than
// 60/cfg.DurationPerEvent events still map onto the capped buffer; notes
// that would run past the end are truncated, and RenderWithStats reports
// how many were cut short. An empty event list produces one second of
// silence.
//
// # Degenerate input
//
// Empty lists, zero-activity events, single-instant histories and silent
// buffers all take safe defaults rather than failing; the only error the
// package returns is ErrInvalidConfig for a non-positive or non-finite
// configuration value.
package synth
