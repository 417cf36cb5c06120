package glfield

// Scalar and grid-grid arithmetic. Every operation returns a new grid and
// leaves its operands untouched. When operand resolutions differ the result
// takes the per-dimension maximum of both sizes and each operand is
// stretched to it by bilinear resampling, so a 2x4 grid combined with a 3x3
// grid yields a 3x4 result.

func (g *Grid2D) mapElem(f func(float32) float32) *Grid2D {
	out := New(g.width, g.height)
	for i, v := range g.data {
		out.data[i] = f(v)
	}
	return out
}

// AddScalar returns a new grid with value added to every element.
func (g *Grid2D) AddScalar(value float32) *Grid2D {
	return g.mapElem(func(v float32) float32 { return v + value })
}

// SubScalar returns a new grid with value subtracted from every element.
func (g *Grid2D) SubScalar(value float32) *Grid2D {
	return g.mapElem(func(v float32) float32 { return v - value })
}

// MulScalar returns a new grid with every element multiplied by value.
func (g *Grid2D) MulScalar(value float32) *Grid2D {
	return g.mapElem(func(v float32) float32 { return v * value })
}

// DivScalar returns a new grid with every element divided by value.
// Division by zero follows IEEE semantics and yields infinities or NaNs.
func (g *Grid2D) DivScalar(value float32) *Grid2D {
	return g.mapElem(func(v float32) float32 { return v / value })
}

// Resample returns a width×height grid whose values are bilinear samples of
// g over normalized coordinates. Resampling to the same size copies the
// grid; resampling a constant grid yields the same constant at any size.
func (g *Grid2D) Resample(width, height int) *Grid2D {
	if width == g.width && height == g.height {
		return g.Clone()
	}
	out := New(width, height)
	// A single row or column collapses the normalized axis to 0.
	dx := float32(0)
	if width > 1 {
		dx = 1 / float32(width-1)
	}
	dy := float32(0)
	if height > 1 {
		dy = 1 / float32(height-1)
	}
	for y := 0; y < height; y++ {
		ny := float32(y) * dy
		for x := 0; x < width; x++ {
			out.setAt(x, y, g.Sample(float32(x)*dx, ny))
		}
	}
	return out
}

func maxSize(a, b *Grid2D) (width, height int) {
	width = a.width
	if b.width > width {
		width = b.width
	}
	height = a.height
	if b.height > height {
		height = b.height
	}
	return width, height
}

func (g *Grid2D) combine(other *Grid2D, op func(a, b float32) float32) *Grid2D {
	if g.width == other.width && g.height == other.height {
		out := New(g.width, g.height)
		for i, v := range g.data {
			out.data[i] = op(v, other.data[i])
		}
		return out
	}
	w, h := maxSize(g, other)
	a := g.Resample(w, h)
	b := other.Resample(w, h)
	for i, v := range a.data {
		a.data[i] = op(v, b.data[i])
	}
	return a
}

// Add returns the element-wise sum of both grids, resampling to the
// per-dimension maximum size if the resolutions differ.
func (g *Grid2D) Add(other *Grid2D) *Grid2D {
	return g.combine(other, func(a, b float32) float32 { return a + b })
}

// Sub returns the element-wise difference g-other with size reconciliation.
func (g *Grid2D) Sub(other *Grid2D) *Grid2D {
	return g.combine(other, func(a, b float32) float32 { return a - b })
}

// Mul returns the element-wise product of both grids with size
// reconciliation.
func (g *Grid2D) Mul(other *Grid2D) *Grid2D {
	return g.combine(other, func(a, b float32) float32 { return a * b })
}

// Div returns the element-wise quotient g/other with size reconciliation.
// Zero divisors follow IEEE semantics.
func (g *Grid2D) Div(other *Grid2D) *Grid2D {
	return g.combine(other, func(a, b float32) float32 { return a / b })
}
