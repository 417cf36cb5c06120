package glfield

import "github.com/chewxy/math32"

// largenum stands in for infinity inside the distance transform where real
// infinities would poison the parabola intersection arithmetic.
const largenum = 1e20

// SignedDistance computes a signed Euclidean distance field from a binary
// classification of the grid: cells with value >= threshold are inside.
// Each cell of the result holds the distance, in grid-cell units, to the
// nearest cell of the opposite classification, positive for inside cells
// and negative for outside cells. Note the sign convention is inverted
// relative to typical shape SDFs, which are negative inside.
//
// If every cell classifies the same there is no opposite cell to measure
// against; a uniformly inside grid returns +Inf everywhere and a uniformly
// outside grid returns -Inf everywhere.
//
// The transform is the exact two-pass squared distance transform of
// Felzenszwalb and Huttenlocher, O(width*height) per pass.
func (g *Grid2D) SignedDistance(threshold float32) *Grid2D {
	inside := make([]bool, len(g.data))
	nInside := 0
	for i, v := range g.data {
		if v >= threshold {
			inside[i] = true
			nInside++
		}
	}
	out := New(g.width, g.height)
	if nInside == len(g.data) || nInside == 0 {
		sign := float32(1)
		if nInside == 0 {
			sign = -1
		}
		out.Fill(sign * math32.Inf(1))
		return out
	}

	// Squared distance to the nearest outside cell (for inside cells) and
	// to the nearest inside cell (for outside cells).
	toOutside := edtSquared(inside, g.width, g.height, false)
	toInside := edtSquared(inside, g.width, g.height, true)
	for i := range out.data {
		if inside[i] {
			out.data[i] = math32.Sqrt(toOutside[i])
		} else {
			out.data[i] = -math32.Sqrt(toInside[i])
		}
	}
	return out
}

// edtSquared returns per-cell squared Euclidean distance to the nearest
// cell whose classification equals site.
func edtSquared(inside []bool, width, height int, site bool) []float32 {
	f := make([]float32, len(inside))
	for i, in := range inside {
		if in == site {
			f[i] = 0
		} else {
			f[i] = largenum
		}
	}
	n := width
	if height > n {
		n = height
	}
	d := make([]float32, n)
	row := make([]float32, n)
	v := make([]int, n)
	z := make([]float32, n+1)

	// Columns first, then rows over the column result.
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			row[y] = f[x+y*width]
		}
		edt1D(row[:height], d[:height], v[:height], z[:height+1])
		for y := 0; y < height; y++ {
			f[x+y*width] = d[y]
		}
	}
	for y := 0; y < height; y++ {
		copy(row[:width], f[y*width:(y+1)*width])
		edt1D(row[:width], d[:width], v[:width], z[:width+1])
		copy(f[y*width:(y+1)*width], d[:width])
	}
	return f
}

// edt1D is the one-dimensional squared distance transform over the sampled
// function f, writing results to d. v and z are scratch for the parabola
// hull; len(z) == len(f)+1.
func edt1D(f, d []float32, v []int, z []float32) {
	n := len(f)
	k := 0
	v[0] = 0
	z[0] = -largenum
	z[1] = largenum
	intersect := func(p, q int) float32 {
		fp := float32(p)
		fq := float32(q)
		return ((f[q] + fq*fq) - (f[p] + fp*fp)) / (2*fq - 2*fp)
	}
	for q := 1; q < n; q++ {
		s := intersect(v[k], q)
		for s <= z[k] {
			k--
			s = intersect(v[k], q)
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = largenum
	}
	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float32(q) {
			k++
		}
		dq := float32(q) - float32(v[k])
		d[q] = dq*dq + f[v[k]]
	}
}
