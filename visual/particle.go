// SPDX-License-Identifier: EPL-2.0

package visual

import (
	"image"
	"image/color"
	"math"

	"github.com/ik5/repotone/event"
)

var particleBackground = color.RGBA{10, 10, 20, 255}

// renderParticles draws each commit as a glowing dot: x follows the
// commit's position in the history's time span, y its activity relative
// to the peak (busy commits float to the top), size and color follow the
// add/delete balance. Temporally adjacent commits closer than 100px are
// linked by faint connector lines.
func (r Renderer) renderParticles(events []event.Event) image.Image {
	c := newCanvas(r.Width, r.Height, particleBackground)
	if len(events) == 0 {
		return c.img
	}

	span := event.Normalize(events)

	// Connector lines go underneath the particles.
	for i := 0; i+1 < len(events); i++ {
		x1, y1 := r.particlePos(events[i], span)
		x2, y2 := r.particlePos(events[i+1], span)
		if math.Abs(x2-x1) < 100 {
			c.strokeLine(x1, y1, x2, y2, 1, color.RGBA{50, 50, 80, 255})
		}
	}

	for _, ev := range events {
		x, y := r.particlePos(ev, span)
		activityNorm := span.Relative(ev.Activity())

		size := math.Max(2, math.Min(20, activityNorm*15))

		var core color.RGBA
		if ev.Activity() > 0 {
			// Warm colors for additions, cool for deletions.
			core = color.RGBA{
				R: uint8(255 * ev.AddRatio()),
				G: uint8(100 + 155*activityNorm),
				B: uint8(255 * (1 - ev.AddRatio())),
				A: 255,
			}
		} else {
			core = color.RGBA{128, 128, 128, 255}
		}

		// Halo rings, widest and faintest first.
		for glow := 3; glow >= 1; glow-- {
			alpha := 100.0 / float64(glow) / 255.0
			c.fillCircle(x, y, size*float64(glow), blend(core, particleBackground, alpha))
		}

		c.fillCircle(x, y, size, core)
	}

	return c.img
}

// particlePos maps an event onto the canvas, keeping a 50px margin.
func (r Renderer) particlePos(ev event.Event, span event.Span) (x, y float64) {
	x = span.Position(ev.Timestamp)*float64(r.Width-100) + 50
	y = (1-span.Relative(ev.Activity()))*float64(r.Height-100) + 50
	return x, y
}
