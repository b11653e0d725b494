package visual

import "image/color"

// blend mixes c1 over c2 at the given opacity.
func blend(c1, c2 color.RGBA, alpha float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*alpha + float64(b)*(1-alpha))
	}
	return color.RGBA{
		R: mix(c1.R, c2.R),
		G: mix(c1.G, c2.G),
		B: mix(c1.B, c2.B),
		A: 255,
	}
}

// intensityColor maps activity intensity in [0,1] onto a cold-to-hot ramp:
// blue-green for quiet months, yellow-green mid-range, white-hot peaks.
func intensityColor(intensity float64) color.RGBA {
	switch {
	case intensity < 0.3:
		return color.RGBA{0, uint8(intensity * 255 / 0.3), 128, 255}
	case intensity < 0.6:
		return color.RGBA{uint8((intensity - 0.3) * 255 / 0.3), 255, 128, 255}
	default:
		return color.RGBA{255, 255, uint8(255 * (1 - (intensity-0.6)/0.4)), 255}
	}
}

// waveColor picks the strand palette for the flow style, dimmed by
// intensity.
func waveColor(intensity float64, wave int) color.RGBA {
	palette := []color.RGBA{
		{100, 150, 255, 255}, // blue
		{150, 100, 255, 255}, // purple
		{255, 100, 150, 255}, // pink
	}

	c := palette[wave%len(palette)]
	scale := 0.3 + intensity*0.7
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: 255,
	}
}
