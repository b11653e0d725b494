// SPDX-License-Identifier: EPL-2.0

package visual

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"time"

	"github.com/ik5/repotone/event"
)

// Style selects the rendering strategy.
type Style string

const (
	// StyleParticle draws every commit as a glowing particle positioned
	// by time and activity.
	StyleParticle Style = "particle"
	// StyleFlow draws per-month wave strands whose amplitude follows
	// commit density.
	StyleFlow Style = "flow"
	// StyleHeatmap draws a month-by-month activity heat grid.
	StyleHeatmap Style = "heatmap"
)

// ErrUnknownStyle reports a style name outside particle/flow/heatmap.
var ErrUnknownStyle = errors.New("unknown art style")

// ParseStyle validates a style name from user input.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleParticle, StyleFlow, StyleHeatmap:
		return Style(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownStyle)
}

// Default canvas dimensions.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// Renderer turns an event history into an abstract artwork. Rendering is
// deterministic: the same events and settings always produce identical
// pixels.
type Renderer struct {
	Width  int
	Height int
	Style  Style
}

// NewRenderer returns a Renderer with the default 1920x1080 particle
// setup.
func NewRenderer() Renderer {
	return Renderer{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Style:  StyleParticle,
	}
}

// Render draws the events in the renderer's style. An empty history
// yields the bare background. An unrecognized Style value falls back to
// the particle style.
func (r Renderer) Render(events []event.Event) image.Image {
	switch r.Style {
	case StyleFlow:
		return r.renderFlow(events)
	case StyleHeatmap:
		return r.renderHeatmap(events)
	default:
		return r.renderParticles(events)
	}
}

// monthlyCounts buckets events into chronologically sorted per-month
// commit counts. The flow and heatmap styles draw from this histogram
// rather than from individual events.
func monthlyCounts(events []event.Event) []int {
	buckets := make(map[string]int)
	for _, ev := range events {
		month := time.Unix(ev.Timestamp, 0).Format("2006-01")
		buckets[month]++
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)

	counts := make([]int, len(months))
	for i, month := range months {
		counts[i] = buckets[month]
	}
	return counts
}

func maxCount(counts []int) int {
	m := 1
	for _, c := range counts {
		if c > m {
			m = c
		}
	}
	return m
}
