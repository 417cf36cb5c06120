package glfield

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// maxElems bounds deserialized grid sizes so corrupt headers cannot drive
// huge allocations.
const maxElems = 1 << 30

// Save writes the grid in its binary format: width then height as
// little-endian uint64, followed by width*height float32 values in
// row-major order. There is no padding and no version header. The byte
// order is fixed to little-endian so files transfer between platforms.
func (g *Grid2D) Save(w io.Writer) error {
	var hdr [16]byte
	binary.LittleEndian.PutUint64(hdr[:8], uint64(g.width))
	binary.LittleEndian.PutUint64(hdr[8:], uint64(g.height))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("glfield: writing grid header: %w", err)
	}
	buf := make([]byte, 4*len(g.data))
	for i, v := range g.data {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("glfield: writing grid payload: %w", err)
	}
	return nil
}

// ReadGrid2D reads a grid written by [Grid2D.Save]. Save followed by
// ReadGrid2D reproduces the grid exactly.
func ReadGrid2D(r io.Reader) (*Grid2D, error) {
	var hdr [16]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("glfield: reading grid header: %w", err)
	}
	width := binary.LittleEndian.Uint64(hdr[:8])
	height := binary.LittleEndian.Uint64(hdr[8:])
	if width == 0 || height == 0 || width > maxElems || height > maxElems || width*height > maxElems {
		return nil, fmt.Errorf("glfield: unreasonable grid dimensions %dx%d in header", width, height)
	}
	g := New(int(width), int(height))
	buf := make([]byte, 4*len(g.data))
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("glfield: reading grid payload: %w", err)
	}
	for i := range g.data {
		g.data[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return g, nil
}
