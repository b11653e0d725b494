// SPDX-License-Identifier: EPL-2.0

package repotone

import (
	"fmt"
	"io"

	"github.com/ik5/repotone/event"
	"github.com/ik5/repotone/formats/wav"
	"github.com/ik5/repotone/synth"
)

// Sonify renders events into a mono float64 sample buffer using cfg. It
// is a thin alias for synth.Render, exported here so the common path
// needs only the root package.
func Sonify(events []event.Event, cfg synth.Config) ([]float64, error) {
	samples, err := synth.Render(events, cfg)
	if err != nil {
		return nil, fmt.Errorf("rendering events: %w", err)
	}
	return samples, nil
}

// SonifyWAV renders events and writes the result to ws as a mono 16-bit
// PCM WAV file at cfg.SampleRate.
//
// Example:
//
//	f, _ := os.Create("repo.wav")
//	defer f.Close()
//	err := repotone.SonifyWAV(f, events, synth.DefaultConfig())
func SonifyWAV(ws io.WriteSeeker, events []event.Event, cfg synth.Config) error {
	samples, err := synth.Render(events, cfg)
	if err != nil {
		return fmt.Errorf("rendering events: %w", err)
	}

	if err := wav.Encode(ws, cfg.SampleRate, samples); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}

	return nil
}
