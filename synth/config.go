// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Default configuration values. BaseFrequency is A3.
const (
	DefaultSampleRate       = 44100
	DefaultDurationPerEvent = 0.1
	DefaultBaseFrequency    = 220.0

	// maxTotalDuration caps the render length in seconds regardless of
	// how many events the history holds.
	maxTotalDuration = 60.0
)

// Config holds the engine tunables. All values must be positive and
// finite; Render rejects anything else with ErrInvalidConfig before
// allocating the buffer.
type Config struct {
	// SampleRate of the output buffer in Hz.
	SampleRate int

	// DurationPerEvent is each note's length in seconds. It also sets
	// the total render length: N events yield N*DurationPerEvent
	// seconds, capped at 60.
	DurationPerEvent float64

	// BaseFrequency in Hz, scaled per event into [0.5x, 2.0x].
	BaseFrequency float64
}

// DefaultConfig returns the standard 44.1kHz / 0.1s / 220Hz configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate:       DefaultSampleRate,
		DurationPerEvent: DefaultDurationPerEvent,
		BaseFrequency:    DefaultBaseFrequency,
	}
}

func (c Config) validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d: %w", c.SampleRate, ErrInvalidConfig)
	}
	if !(c.DurationPerEvent > 0) || math.IsInf(c.DurationPerEvent, 0) {
		return fmt.Errorf("duration per event %v: %w", c.DurationPerEvent, ErrInvalidConfig)
	}
	if !(c.BaseFrequency > 0) || math.IsInf(c.BaseFrequency, 0) {
		return fmt.Errorf("base frequency %v: %w", c.BaseFrequency, ErrInvalidConfig)
	}
	return nil
}
