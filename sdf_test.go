package glfield_test

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"

	"github.com/DerFred3/glfield"
)

// bruteSignedDistance is the O(n^2) reference: for every cell, scan all
// cells of the opposite classification for the nearest one.
func bruteSignedDistance(g *glfield.Grid2D, threshold float32) *glfield.Grid2D {
	w, h := g.Width(), g.Height()
	inside := func(x, y int) bool { return g.Get(x, y) >= threshold }
	out := glfield.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			in := inside(x, y)
			best := math32.Inf(1)
			for oy := 0; oy < h; oy++ {
				for ox := 0; ox < w; ox++ {
					if inside(ox, oy) == in {
						continue
					}
					dx := float32(ox - x)
					dy := float32(oy - y)
					if d := math32.Hypot(dx, dy); d < best {
						best = d
					}
				}
			}
			if !in {
				best = -best
			}
			out.Set(x, y, best)
		}
	}
	return out
}

func TestSignedDistanceMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, dims := range [][2]int{{1, 7}, {6, 1}, {5, 5}, {9, 7}, {16, 11}} {
		g := glfield.GenRandom(dims[0], dims[1], rng)
		got := g.SignedDistance(0.5)
		want := bruteSignedDistance(g, 0.5)
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				gv, wv := got.Get(x, y), want.Get(x, y)
				if math32.IsInf(wv, 0) {
					if gv != wv {
						t.Fatalf("%dx%d at (%d,%d): got %v want %v", dims[0], dims[1], x, y, gv, wv)
					}
					continue
				}
				if !closef(gv, wv, 1e-3) {
					t.Fatalf("%dx%d at (%d,%d): got %v want %v", dims[0], dims[1], x, y, gv, wv)
				}
			}
		}
	}
}

func TestSignedDistanceHalfSplit(t *testing.T) {
	// Left half inside, right half outside.
	const w, h = 8, 4
	g := glfield.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			g.Set(x, y, 1)
		}
	}
	sdf := g.SignedDistance(0.5)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := sdf.Get(x, y)
			if x < w/2 {
				if v <= 0 {
					t.Errorf("inside cell (%d,%d) has non-positive distance %v", x, y, v)
				}
				if want := float32(w/2 - x); !closef(v, want, 1e-5) {
					t.Errorf("inside cell (%d,%d)=%v want %v", x, y, v, want)
				}
			} else {
				if v >= 0 {
					t.Errorf("outside cell (%d,%d) has non-negative distance %v", x, y, v)
				}
				if want := -float32(x - w/2 + 1); !closef(v, want, 1e-5) {
					t.Errorf("outside cell (%d,%d)=%v want %v", x, y, v, want)
				}
			}
		}
	}
	// Magnitude grows with distance from the classification boundary.
	for y := 0; y < h; y++ {
		for x := 1; x < w/2; x++ {
			if sdf.Get(x, y) <= sdf.Get(x-1, y)-1-1e-5 {
				t.Errorf("inside magnitudes not decreasing towards boundary at (%d,%d)", x, y)
			}
		}
	}
}

func TestSignedDistanceUniform(t *testing.T) {
	in := glfield.New(4, 4)
	in.Fill(1)
	sdf := in.SignedDistance(0.5)
	for _, v := range sdf.Data() {
		if !math32.IsInf(v, 1) {
			t.Fatalf("uniformly inside grid: got %v want +Inf", v)
		}
	}
	out := glfield.New(4, 4)
	sdf = out.SignedDistance(0.5)
	for _, v := range sdf.Data() {
		if !math32.IsInf(v, -1) {
			t.Fatalf("uniformly outside grid: got %v want -Inf", v)
		}
	}
}

func TestSignedDistanceSinglePixel(t *testing.T) {
	g := glfield.New(5, 5)
	g.Set(2, 2, 1)
	sdf := g.SignedDistance(0.5)
	if v := sdf.Get(2, 2); !closef(v, 1, 1e-6) {
		t.Errorf("lone inside cell distance %v want 1", v)
	}
	if v := sdf.Get(0, 2); !closef(v, -2, 1e-6) {
		t.Errorf("outside cell two steps away: %v want -2", v)
	}
	if v := sdf.Get(0, 0); !closef(v, -2*math32.Sqrt2, 1e-5) {
		t.Errorf("corner cell: %v want %v", v, -2*math32.Sqrt2)
	}
}

func BenchmarkSignedDistance(b *testing.B) {
	g := glfield.GenRandomSeed(256, 256, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.SignedDistance(0.5)
	}
}
