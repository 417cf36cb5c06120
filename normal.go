package glfield

import (
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// Normal estimates the unit surface normal of the field interpreted as a
// height map, at normalized coordinates. The gradient is taken by central
// differences of [Grid2D.Sample] with a step of one cell in each axis
// (1/width, 1/height), and the normal is Unit((-dh/dx, -dh/dy, 1)). A flat
// grid yields (0,0,1).
func (g *Grid2D) Normal(x, y float32) ms3.Vec {
	epsX := 1 / float32(g.width)
	epsY := 1 / float32(g.height)
	gradX := (g.Sample(x+epsX, y) - g.Sample(x-epsX, y)) / (2 * epsX)
	gradY := (g.Sample(x, y+epsY) - g.Sample(x, y-epsY)) / (2 * epsY)
	return ms3.Unit(ms3.Vec{X: -gradX, Y: -gradY, Z: 1})
}

// NormalVec is [Grid2D.Normal] taking the normalized position as a vector.
func (g *Grid2D) NormalVec(pos ms2.Vec) ms3.Vec {
	return g.Normal(pos.X, pos.Y)
}
