package gridrender

import (
	"image/color"

	math "github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms1"
	"github.com/soypat/glgl/math/ms3"
)

var red = color.RGBA{R: 255, A: 255}

// ColorConversionInigoQuilez creates a signed-distance debug palette in
// [Inigo Quilez]'s style: warm tones outside the zero level set, cool tones
// inside, with contour banding and a white highlight at the boundary. A
// good value for the characteristic distance is a third of the grid's
// larger dimension in cell units. Returns red for NaN values.
//
// Positive distances are treated as inside, matching
// [glfield.Grid2D.SignedDistance].
//
// [Inigo Quilez]: https://iquilezles.org/articles/distfunctions2d/
func ColorConversionInigoQuilez(characteristicDistance float32) func(float32) color.Color {
	inv := 1 / characteristicDistance
	return func(d float32) color.Color {
		if math.IsNaN(d) {
			return red
		}
		// Shape SDFs are negative inside; grids are positive inside.
		d *= -inv
		one := ms3.Vec{X: 1, Y: 1, Z: 1}
		var c ms3.Vec
		if d > 0 {
			c = ms3.Vec{X: 0.9, Y: 0.6, Z: 0.3}
		} else {
			c = ms3.Vec{X: 0.65, Y: 0.85, Z: 1.0}
		}
		c = ms3.Scale(1-math.Exp(-6*math.Abs(d)), c)
		c = ms3.Scale(0.8+0.2*math.Cos(150*d), c)
		edge := 1 - ms1.SmoothStep(0, 0.01, math.Abs(d))
		c = ms3.InterpElem(c, one, ms3.Vec{X: edge, Y: edge, Z: edge})
		return color.RGBA{
			R: uint8(c.X * 255),
			G: uint8(c.Y * 255),
			B: uint8(c.Z * 255),
			A: 255,
		}
	}
}

// ColorConversionLinearGradient creates a conversion that blends linearly
// from c0 at value lo to c1 at value hi, clamping outside the range.
func ColorConversionLinearGradient(lo, hi float32, c0, c1 color.Color) func(float32) color.Color {
	v0 := colorVec(c0)
	v1 := colorVec(c1)
	span := hi - lo
	return func(f float32) color.Color {
		if math.IsNaN(f) {
			return red
		}
		t := ms1.Clamp((f-lo)/span, 0, 1)
		c := ms3.InterpElem(v0, v1, ms3.Vec{X: t, Y: t, Z: t})
		return color.RGBA{
			R: uint8(c.X * 255),
			G: uint8(c.Y * 255),
			B: uint8(c.Z * 255),
			A: 255,
		}
	}
}

func colorVec(c color.Color) ms3.Vec {
	r, g, b, _ := c.RGBA()
	return ms3.Vec{
		X: float32(r) / 0xffff,
		Y: float32(g) / 0xffff,
		Z: float32(b) / 0xffff,
	}
}
