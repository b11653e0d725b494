// SPDX-License-Identifier: EPL-2.0

package visual

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// canvas wraps an RGBA image with a reusable vector rasterizer for the
// handful of primitives the art styles need.
type canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func newCanvas(width, height int, background color.RGBA) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	return &canvas{
		img: img,
		z:   vector.NewRasterizer(width, height),
	}
}

// circleK is the cubic Bezier control offset approximating a quarter
// circle.
const circleK = 0.5522847498

func (c *canvas) fillCircle(cx, cy, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}

	x, y, rr := float32(cx), float32(cy), float32(r)
	k := float32(circleK * r)

	c.z.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	c.z.MoveTo(x+rr, y)
	c.z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	c.z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	c.z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	c.z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	c.z.ClosePath()
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *canvas) strokeLine(x1, y1, x2, y2, width float64, col color.RGBA) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	// Perpendicular half-width offset turns the segment into a quad.
	px := -dy / length * width / 2
	py := dx / length * width / 2

	c.z.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	c.z.MoveTo(float32(x1+px), float32(y1+py))
	c.z.LineTo(float32(x2+px), float32(y2+py))
	c.z.LineTo(float32(x2-px), float32(y2-py))
	c.z.LineTo(float32(x1-px), float32(y1-py))
	c.z.ClosePath()
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *canvas) fillRect(r image.Rectangle, col color.RGBA) {
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(col), image.Point{}, draw.Src)
}
