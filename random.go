package glfield

import "math/rand"

// GenRandom returns a width×height grid of values in [0,1) drawn from rng.
// The random source is injected so callers control seeding and sharing;
// there is no package-level RNG state.
func GenRandom(width, height int, rng *rand.Rand) *Grid2D {
	g := New(width, height)
	for i := range g.data {
		g.data[i] = rng.Float32()
	}
	return g
}

// GenRandomSeed returns a width×height grid of values in [0,1) from a fresh
// source seeded with seed. Equal seeds produce equal grids.
func GenRandomSeed(width, height int, seed int64) *Grid2D {
	return GenRandom(width, height, rand.New(rand.NewSource(seed)))
}
