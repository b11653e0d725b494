// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/repotone/event"
	"github.com/ik5/repotone/internal/sonitest"
)

func TestRender_BufferLength(t *testing.T) {
	t.Parallel()

	cfg := Config{SampleRate: 8000, DurationPerEvent: 0.1, BaseFrequency: 220}

	for _, n := range []int{1, 5, 17, 100} {
		events := sonitest.Spread(n, 1000, 60)

		buf, err := Render(events, cfg)
		if err != nil {
			t.Fatalf("Render(%d events) error = %v", n, err)
		}

		want := int(math.Round(min(60.0, float64(n)*cfg.DurationPerEvent) * float64(cfg.SampleRate)))
		if len(buf) != want {
			t.Errorf("Render(%d events) len = %d, want %d", n, len(buf), want)
		}
	}
}

func TestRender_EmptyEventsIsOneSecondOfSilence(t *testing.T) {
	t.Parallel()

	cfg := Config{SampleRate: 8000, DurationPerEvent: 0.1, BaseFrequency: 220}

	buf, err := Render(nil, cfg)
	if err != nil {
		t.Fatalf("Render(nil) error = %v", err)
	}

	if len(buf) != cfg.SampleRate {
		t.Fatalf("len = %d, want %d", len(buf), cfg.SampleRate)
	}
	for i, s := range buf {
		if s != 0.0 {
			t.Fatalf("buf[%d] = %v, want 0.0", i, s)
		}
	}
}

func TestRender_SamplesWithinUnitRange(t *testing.T) {
	t.Parallel()

	cfg := Config{SampleRate: 8000, DurationPerEvent: 0.1, BaseFrequency: 220}

	// Pile every event on one timestamp so notes stack as hard as the
	// mixer allows.
	events := make([]event.Event, 50)
	for i := range events {
		events[i] = event.Event{Timestamp: 1000, Additions: 100, Deletions: 100}
	}

	buf, err := Render(events, cfg)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for i, s := range buf {
		if s < -1.0 || s > 1.0 {
			t.Fatalf("buf[%d] = %v, outside [-1,1]", i, s)
		}
	}
}

func TestRender_IdenticalTimestampsMixAdditively(t *testing.T) {
	t.Parallel()

	cfg := Config{SampleRate: 8000, DurationPerEvent: 0.1, BaseFrequency: 220}

	one := []event.Event{{Timestamp: 500, Additions: 10}}
	two := []event.Event{
		{Timestamp: 500, Additions: 10},
		{Timestamp: 500, Additions: 10},
	}

	_, soloStats, err := RenderWithStats(one, cfg)
	if err != nil {
		t.Fatalf("RenderWithStats(one) error = %v", err)
	}
	_, duoStats, err := RenderWithStats(two, cfg)
	if err != nil {
		t.Fatalf("RenderWithStats(two) error = %v", err)
	}

	// Identical notes at the same offset sum in phase, so the raw peak
	// must roughly double before normalization.
	if duoStats.Peak <= soloStats.Peak {
		t.Errorf("stacked peak %v not greater than solo peak %v", duoStats.Peak, soloStats.Peak)
	}
	if duoStats.Peak < soloStats.Peak*1.9 {
		t.Errorf("stacked peak %v, want ~2x solo peak %v", duoStats.Peak, soloStats.Peak)
	}
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := Config{SampleRate: 8000, DurationPerEvent: 0.1, BaseFrequency: 220}
	events := sonitest.Ramp(20, 1000, 37)

	a, err := Render(events, cfg)
	if err != nil {
		t.Fatalf("first Render() error = %v", err)
	}
	b, err := Render(events, cfg)
	if err != nil {
		t.Fatalf("second Render() error = %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("buffers differ at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRender_ZeroActivityIsSilent(t *testing.T) {
	t.Parallel()

	cfg := Config{SampleRate: 8000, DurationPerEvent: 0.1, BaseFrequency: 220}
	events := []event.Event{
		{Timestamp: 100},
		{Timestamp: 200},
	}

	buf, stats, err := RenderWithStats(events, cfg)
	if err != nil {
		t.Fatalf("RenderWithStats() error = %v", err)
	}

	if stats.Peak != 0.0 {
		t.Errorf("Peak = %v, want 0.0", stats.Peak)
	}
	if stats.Normalized {
		t.Error("Normalized = true for a silent buffer, want false")
	}
	for i, s := range buf {
		if s != 0.0 {
			t.Fatalf("buf[%d] = %v, want 0.0", i, s)
		}
	}
}

func TestRender_DurationCapTruncatesTail(t *testing.T) {
	t.Parallel()

	// 700 events at 0.1s each overruns the 60s cap; the notes mapped to
	// the very end of the span get cut short.
	cfg := Config{SampleRate: 1000, DurationPerEvent: 0.1, BaseFrequency: 220}
	events := sonitest.Spread(700, 0, 10)

	buf, stats, err := RenderWithStats(events, cfg)
	if err != nil {
		t.Fatalf("RenderWithStats() error = %v", err)
	}

	want := int(math.Round(60.0 * float64(cfg.SampleRate)))
	if len(buf) != want {
		t.Errorf("len = %d, want capped %d", len(buf), want)
	}
	if stats.Truncated == 0 {
		t.Error("Truncated = 0, want at least the final event truncated")
	}
}

func TestRender_InvalidConfig(t *testing.T) {
	t.Parallel()

	events := []event.Event{{Timestamp: 1, Additions: 1}}

	bad := []Config{
		{SampleRate: 0, DurationPerEvent: 0.1, BaseFrequency: 220},
		{SampleRate: -8000, DurationPerEvent: 0.1, BaseFrequency: 220},
		{SampleRate: 8000, DurationPerEvent: 0, BaseFrequency: 220},
		{SampleRate: 8000, DurationPerEvent: -0.1, BaseFrequency: 220},
		{SampleRate: 8000, DurationPerEvent: math.NaN(), BaseFrequency: 220},
		{SampleRate: 8000, DurationPerEvent: math.Inf(1), BaseFrequency: 220},
		{SampleRate: 8000, DurationPerEvent: 0.1, BaseFrequency: 0},
		{SampleRate: 8000, DurationPerEvent: 0.1, BaseFrequency: math.NaN()},
	}

	for _, cfg := range bad {
		if _, err := Render(events, cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Render(%+v) error = %v, want ErrInvalidConfig", cfg, err)
		}
	}
}

func TestFrequencyMultiplier(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ev   event.Event
		want float64
	}{
		{"pure additions doubles", event.Event{Additions: 10}, 2.0},
		{"pure deletions halves", event.Event{Deletions: 10}, 0.5},
		{"balanced is 1.25x", event.Event{Additions: 5, Deletions: 5}, 1.25},
		{"zero activity unmodulated", event.Event{}, 1.0},
	}

	for _, tc := range cases {
		if got := frequencyMultiplier(tc.ev); got != tc.want {
			t.Errorf("%s: frequencyMultiplier = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNoteVolume(t *testing.T) {
	t.Parallel()

	span := event.Span{TimeRange: 1, MaxActivity: 100}

	// Loudness is linear in relative activity and capped at half scale.
	if v := noteVolume(event.Event{Additions: 100}, span); v != 0.5 {
		t.Errorf("peak-activity volume = %v, want 0.5", v)
	}
	if v := noteVolume(event.Event{Additions: 50}, span); v != 0.25 {
		t.Errorf("half-activity volume = %v, want 0.25", v)
	}
	if v := noteVolume(event.Event{}, span); v != 0.0 {
		t.Errorf("zero-activity volume = %v, want 0.0", v)
	}
}

func TestRender_NormalizationBringsPeakToUnity(t *testing.T) {
	t.Parallel()

	cfg := Config{SampleRate: 8000, DurationPerEvent: 0.1, BaseFrequency: 220}

	events := make([]event.Event, 40)
	for i := range events {
		events[i] = event.Event{Timestamp: 1000, Additions: 50, Deletions: 50}
	}

	buf, stats, err := RenderWithStats(events, cfg)
	if err != nil {
		t.Fatalf("RenderWithStats() error = %v", err)
	}

	if !stats.Normalized {
		t.Skip("stack did not exceed unity; nothing to normalize")
	}

	p := 0.0
	for _, s := range buf {
		if a := math.Abs(s); a > p {
			p = a
		}
	}
	if math.Abs(p-1.0) > 1e-9 {
		t.Errorf("post-normalization peak = %v, want 1.0", p)
	}
}
