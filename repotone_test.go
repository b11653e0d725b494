// SPDX-License-Identifier: EPL-2.0

package repotone_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/repotone"
	"github.com/ik5/repotone/formats/wav"
	"github.com/ik5/repotone/internal/sonitest"
	"github.com/ik5/repotone/synth"
)

func TestSonifyWAV_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := synth.Config{SampleRate: 8000, DurationPerEvent: 0.1, BaseFrequency: 220}
	events := sonitest.Ramp(10, 1700000000, 3600)

	ws := &sonitest.WriteSeeker{}
	if err := repotone.SonifyWAV(ws, events, cfg); err != nil {
		t.Fatalf("SonifyWAV() error = %v", err)
	}

	samples, rate, err := wav.Decode(bytes.NewReader(ws.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if rate != cfg.SampleRate {
		t.Errorf("sample rate = %d, want %d", rate, cfg.SampleRate)
	}
	// 10 events x 0.1s x 8000Hz
	if len(samples) != 8000 {
		t.Errorf("decoded %d samples, want 8000", len(samples))
	}
}

func TestSonifyWAV_EmptyHistoryWritesSilence(t *testing.T) {
	t.Parallel()

	cfg := synth.Config{SampleRate: 8000, DurationPerEvent: 0.1, BaseFrequency: 220}

	ws := &sonitest.WriteSeeker{}
	if err := repotone.SonifyWAV(ws, nil, cfg); err != nil {
		t.Fatalf("SonifyWAV(empty) error = %v", err)
	}

	samples, _, err := wav.Decode(bytes.NewReader(ws.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(samples) != cfg.SampleRate {
		t.Fatalf("decoded %d samples, want %d", len(samples), cfg.SampleRate)
	}
	for i, s := range samples {
		if s != 0.0 {
			t.Fatalf("samples[%d] = %v, want silence", i, s)
		}
	}
}

func TestSonify_PropagatesConfigError(t *testing.T) {
	t.Parallel()

	_, err := repotone.Sonify(sonitest.Spread(3, 0, 10), synth.Config{})
	if !errors.Is(err, synth.ErrInvalidConfig) {
		t.Errorf("Sonify(zero config) error = %v, want ErrInvalidConfig", err)
	}
}

func TestSonify_DeterministicAcrossCalls(t *testing.T) {
	t.Parallel()

	cfg := synth.Config{SampleRate: 8000, DurationPerEvent: 0.1, BaseFrequency: 220}
	events := sonitest.Burst(4, 1700000000, 20, 5)

	a, err := repotone.Sonify(events, cfg)
	if err != nil {
		t.Fatalf("first Sonify() error = %v", err)
	}
	b, err := repotone.Sonify(events, cfg)
	if err != nil {
		t.Fatalf("second Sonify() error = %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
