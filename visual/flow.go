// SPDX-License-Identifier: EPL-2.0

package visual

import (
	"image"
	"image/color"
	"math"

	"github.com/ik5/repotone/event"
)

var flowBackground = color.RGBA{15, 15, 25, 255}

// renderFlow draws three phase-shifted wave strands per month column; the
// strand displacement tracks that month's share of the peak commit
// density.
func (r Renderer) renderFlow(events []event.Event) image.Image {
	c := newCanvas(r.Width, r.Height, flowBackground)

	counts := monthlyCounts(events)
	if len(counts) == 0 {
		return c.img
	}
	peak := float64(maxCount(counts))

	yBase := float64(r.Height) / 2

	for i, count := range counts {
		t := float64(i) / math.Max(float64(len(counts)-1), 1)
		x := t*float64(r.Width-100) + 50

		intensity := float64(count) / peak
		amplitude := intensity * float64(r.Height) / 3

		for wave := 0; wave < 3; wave++ {
			phase := float64(wave) * math.Pi / 3
			y := yBase + amplitude*math.Sin(t*4+phase) +
				intensity*50*math.Sin((t*8+float64(wave))*math.Pi)

			col := waveColor(intensity, wave)

			// Short horizontal strand segments around the column.
			var prevX float64
			started := false
			for offset := -20.0; offset <= 20.0; offset += 2.0 {
				xw := x + offset
				if xw < 0 || xw >= float64(r.Width) {
					started = false
					continue
				}
				if started {
					c.strokeLine(prevX, y, xw, y, 2, col)
				}
				prevX = xw
				started = true
			}
		}
	}

	return c.img
}
