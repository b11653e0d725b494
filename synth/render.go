// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/repotone/event"
)

// Harmonic weights for the additive oscillator: fundamental, second and
// third harmonic.
var harmonicWeights = [3]float64{1.0, 0.3, 0.1}

// mixScale attenuates each note before accumulation so a cluster of loud
// notes does not saturate the buffer ahead of the final normalization.
const mixScale = 0.3

// RenderStats describes one completed render.
type RenderStats struct {
	// Events is the number of events rendered.
	Events int

	// Truncated counts notes cut short by the 60-second cap on the
	// buffer. A non-zero value means the tail of the history is
	// audibly shortened.
	Truncated int

	// Peak is the largest absolute amplitude before normalization.
	Peak float64

	// Normalized reports whether the final rescale was applied.
	Normalized bool
}

// Render converts events into a mono float64 sample buffer at
// cfg.SampleRate. See the package documentation for the mapping. The only
// failure mode is an invalid Config; every degenerate input renders to a
// valid (possibly silent) buffer.
func Render(events []event.Event, cfg Config) ([]float64, error) {
	samples, _, err := RenderWithStats(events, cfg)
	return samples, err
}

// RenderWithStats is Render plus bookkeeping about the completed render.
func RenderWithStats(events []event.Event, cfg Config) ([]float64, RenderStats, error) {
	if err := cfg.validate(); err != nil {
		return nil, RenderStats{}, err
	}

	if len(events) == 0 {
		// One second of silence instead of an empty file.
		return make([]float64, cfg.SampleRate), RenderStats{}, nil
	}

	span := event.Normalize(events)

	totalDuration := min(maxTotalDuration, float64(len(events))*cfg.DurationPerEvent)
	totalSamples := int(math.Round(totalDuration * float64(cfg.SampleRate)))
	buf := make([]float64, totalSamples)

	noteSamples := int(cfg.DurationPerEvent * float64(cfg.SampleRate))
	stats := RenderStats{Events: len(events)}

	for _, ev := range events {
		start := int(span.Position(ev.Timestamp) * float64(totalSamples))
		if start+noteSamples > totalSamples {
			stats.Truncated++
		}
		renderNote(buf, start, noteSamples, ev, span, cfg)
	}

	stats.Peak = peak(buf)
	if stats.Peak > 1.0 {
		for i := range buf {
			buf[i] /= stats.Peak
		}
		stats.Normalized = true
	}

	return buf, stats, nil
}

// renderNote synthesizes one event's note and accumulates it into buf
// starting at start. Samples past the end of buf are dropped: a note is
// truncated at the end of the render, never wrapped or extended.
func renderNote(buf []float64, start, noteSamples int, ev event.Event, span event.Span, cfg Config) {
	frequency := cfg.BaseFrequency * frequencyMultiplier(ev)
	volume := noteVolume(ev, span)
	if volume == 0 {
		return
	}

	for i := 0; i < noteSamples; i++ {
		idx := start + i
		if idx >= len(buf) {
			break
		}

		t := float64(i) / float64(cfg.SampleRate)

		var sample float64
		for h, weight := range harmonicWeights {
			sample += weight * math.Sin(2*math.Pi*frequency*float64(h+1)*t)
		}

		sample *= Envelope(t, cfg.DurationPerEvent) * volume
		buf[idx] += sample * mixScale
	}
}

// frequencyMultiplier maps the event's add/delete balance into [0.5, 2.0]:
// pure deletions drop to half the base frequency, pure additions double
// it. A zero-activity event stays at the unmodulated base (exactly 1.0).
func frequencyMultiplier(ev event.Event) float64 {
	if ev.Activity() == 0 {
		return 1.0
	}
	return 0.5 + ev.AddRatio()*1.5
}

// noteVolume maps relative activity linearly into [0, 0.5]. The half-scale
// cap leaves headroom before the global normalization.
func noteVolume(ev event.Event, span event.Span) float64 {
	return min(1.0, span.Relative(ev.Activity())*0.5)
}

func peak(buf []float64) float64 {
	var p float64
	for _, s := range buf {
		if a := math.Abs(s); a > p {
			p = a
		}
	}
	return p
}
