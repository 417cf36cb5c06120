// Package glfield implements dense 2D scalar fields (height maps, coverage
// masks, signed distance fields) with bilinear sampling, per-element
// arithmetic with automatic size reconciliation, gradient normal estimation
// and binary serialization. Values are single-precision and stored row-major.
//
// Normalized positions (x,y) run from 0 at the left/top to 1 at the
// right/bottom and are clamped to [0,1]. When two grids of different sizes
// are combined the smaller grid is resampled to the larger grid's resolution
// using bilinear sampling.
package glfield

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"strconv"
	"strings"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/glgl/math/ms1"
)

// ErrSizeMismatch is returned when raw data length does not agree with the
// requested grid dimensions.
var ErrSizeMismatch = errors.New("data length does not match grid dimensions")

// Grid2D is a width×height single-precision scalar field in row-major order
// (index = x + y*width). The zero value is not usable; create grids with
// [New], [NewFromData], [FromImage], [GenRandom] or [ReadGrid2D].
//
// A Grid2D exclusively owns its backing storage. Concurrent reads are safe
// as long as no goroutine mutates the grid.
type Grid2D struct {
	width  int
	height int
	data   []float32
}

// New returns a zero-filled grid. Panics if either dimension is not positive.
func New(width, height int) *Grid2D {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("glfield: non-positive grid dimensions %dx%d", width, height))
	}
	return &Grid2D{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// NewFromData returns a grid backed by a copy of data, which must hold
// exactly width*height row-major values.
func NewFromData(width, height int, data []float32) (*Grid2D, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("glfield: non-positive grid dimensions %dx%d", width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("glfield: %dx%d grid requires %d values, got %d: %w",
			width, height, width*height, len(data), ErrSizeMismatch)
	}
	return &Grid2D{width: width, height: height, data: slices.Clone(data)}, nil
}

// Clone returns a deep copy of g.
func (g *Grid2D) Clone() *Grid2D {
	return &Grid2D{width: g.width, height: g.height, data: slices.Clone(g.data)}
}

// Width returns the number of columns.
func (g *Grid2D) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid2D) Height() int { return g.height }

// Data returns the grid's contiguous row-major storage. The slice aliases
// the grid's backing buffer; treat it as read-only unless the grid is not
// shared. It is the flat-buffer view consumed by GL texture uploads.
func (g *Grid2D) Data() []float32 { return g.data }

func (g *Grid2D) index(x, y int) int { return x + y*g.width }

// at is the unchecked accessor for inner loops. Callers guarantee bounds.
func (g *Grid2D) at(x, y int) float32 { return g.data[x+y*g.width] }

func (g *Grid2D) setAt(x, y int, v float32) { g.data[x+y*g.width] = v }

// Get returns the value at integer coordinates. Panics if (x,y) is outside
// [0,width)×[0,height).
func (g *Grid2D) Get(x, y int) float32 {
	g.checkBounds(x, y)
	return g.data[g.index(x, y)]
}

// Set stores value at integer coordinates. Panics if (x,y) is outside
// [0,width)×[0,height).
func (g *Grid2D) Set(x, y int, value float32) {
	g.checkBounds(x, y)
	g.data[g.index(x, y)] = value
}

func (g *Grid2D) checkBounds(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("glfield: coordinate (%d,%d) out of range for %dx%d grid", x, y, g.width, g.height))
	}
}

// GetNormalized returns the value of the cell nearest to the normalized
// position via index truncation, i.e. floor(x*(width-1)), floor(y*(height-1)).
// This is a nearest-neighbor lookup; use [Grid2D.Sample] for bilinear
// filtering. Coordinates are clamped to [0,1].
func (g *Grid2D) GetNormalized(x, y float32) float32 {
	ix := int(ms1.Clamp(x, 0, 1) * float32(g.width-1))
	iy := int(ms1.Clamp(y, 0, 1) * float32(g.height-1))
	return g.at(ix, iy)
}

// Sample bilinearly interpolates the field at normalized coordinates in
// [0,1]×[0,1], clamping at the grid edges. Sample(0,0) is exactly the first
// cell and Sample(1,1) exactly the last.
func (g *Grid2D) Sample(x, y float32) float32 {
	fx := ms1.Clamp(x, 0, 1) * float32(g.width-1)
	fy := ms1.Clamp(y, 0, 1) * float32(g.height-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 > g.width-1 {
		x1 = g.width - 1
	}
	if y1 > g.height-1 {
		y1 = g.height - 1
	}
	wx := fx - float32(x0)
	wy := fy - float32(y0)
	top := ms1.Interp(g.at(x0, y0), g.at(x1, y0), wx)
	bot := ms1.Interp(g.at(x0, y1), g.at(x1, y1), wx)
	return ms1.Interp(top, bot, wy)
}

// SampleVec is [Grid2D.Sample] taking the normalized position as a vector.
func (g *Grid2D) SampleVec(pos ms2.Vec) float32 {
	return g.Sample(pos.X, pos.Y)
}

// Fill assigns value to every cell.
func (g *Grid2D) Fill(value float32) {
	for i := range g.data {
		g.data[i] = value
	}
}

// MaxValue returns the integer coordinates of the first occurrence of the
// global maximum in row-major scan order.
func (g *Grid2D) MaxValue() image.Point {
	best := 0
	for i, v := range g.data {
		if v > g.data[best] {
			best = i
		}
	}
	return image.Point{X: best % g.width, Y: best / g.width}
}

// MinValue returns the integer coordinates of the first occurrence of the
// global minimum in row-major scan order.
func (g *Grid2D) MinValue() image.Point {
	best := 0
	for i, v := range g.data {
		if v < g.data[best] {
			best = i
		}
	}
	return image.Point{X: best % g.width, Y: best / g.width}
}

// Normalize affinely remaps values so the minimum becomes 0 and the maximum
// becomes maxVal. A constant grid is set entirely to 0.
func (g *Grid2D) Normalize(maxVal float32) {
	lo, hi := g.data[0], g.data[0]
	for _, v := range g.data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		g.Fill(0)
		return
	}
	scale := maxVal / (hi - lo)
	for i, v := range g.data {
		g.data[i] = (v - lo) * scale
	}
}

// ByteArray converts the grid to 8-bit grayscale RGB bytes, 3 bytes per
// cell, clamping values to [0,1] before quantization.
func (g *Grid2D) ByteArray() []uint8 {
	out := make([]uint8, 0, len(g.data)*3)
	for _, v := range g.data {
		b := uint8(ms1.Clamp(v, 0, 1) * 255)
		out = append(out, b, b, b)
	}
	return out
}

// String dumps the values row by row, comma separated.
func (g *Grid2D) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(float64(g.at(x, y)), 'g', -1, 32))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
