// SPDX-License-Identifier: EPL-2.0

package visual

import (
	"image"
	"image/color"

	"github.com/ik5/repotone/event"
)

var heatmapBackground = color.RGBA{5, 5, 10, 255}

// renderHeatmap draws one column per month, ten rows deep, fading toward
// the bottom; the column color follows the cold-to-hot intensity ramp.
func (r Renderer) renderHeatmap(events []event.Event) image.Image {
	c := newCanvas(r.Width, r.Height, heatmapBackground)

	counts := monthlyCounts(events)
	if len(counts) == 0 {
		return c.img
	}
	peak := float64(maxCount(counts))

	cellWidth := r.Width / (len(counts) + 1)
	cellHeight := r.Height / 10

	for i, count := range counts {
		intensity := float64(count) / peak
		col := intensityColor(intensity)
		x := i * cellWidth

		for row := 0; row < 10; row++ {
			y := row * cellHeight
			alpha := intensity * (1 - float64(row)*0.08)
			faded := blend(col, heatmapBackground, alpha)
			c.fillRect(image.Rect(x, y, x+cellWidth-2, y+cellHeight-2), faded)
		}
	}

	return c.img
}
