// Package gridrender converts glfield scalar fields to images through
// pluggable float32-to-color conversion functions.
package gridrender

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/DerFred3/glfield"
	"github.com/chewxy/math32"
)

type setImage = interface {
	image.Image
	Set(x, y int, c color.Color)
}

// Renderer maps grid cells to image pixels, one pixel per cell.
type Renderer struct {
	conv func(f float32) color.Color
}

// NewRenderer instances a [Renderer]. A nil conversion function results in a
// grayscale height palette clamping values to [0,1], with NaN cells drawn
// red.
func NewRenderer(conversion func(float32) color.Color) *Renderer {
	if conversion == nil {
		conversion = func(f float32) color.Color {
			switch {
			case math32.IsNaN(f):
				return color.RGBA{R: 255, A: 255}
			case f <= 0:
				return color.Black
			case f >= 1:
				return color.White
			default:
				b := uint8(f * 255)
				return color.RGBA{R: b, G: b, B: b, A: 255}
			}
		}
	}
	return &Renderer{conv: conversion}
}

// Render draws every cell of g onto img starting at the image bounds origin.
// The image must be at least as large as the grid.
func (r *Renderer) Render(g *glfield.Grid2D, img setImage) error {
	imgBB := img.Bounds()
	if imgBB.Dx() < g.Width() || imgBB.Dy() < g.Height() {
		return fmt.Errorf("gridrender: %dx%d image too small for %dx%d grid",
			imgBB.Dx(), imgBB.Dy(), g.Width(), g.Height())
	}
	conv := r.conv
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			img.Set(imgBB.Min.X+x, imgBB.Min.Y+y, conv(g.Get(x, y)))
		}
	}
	return nil
}

// Image renders g into a freshly allocated RGBA image.
func Image(g *glfield.Grid2D, conversion func(float32) color.Color) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	err := NewRenderer(conversion).Render(g, img)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// WritePNG renders g and encodes the result as PNG to w.
func WritePNG(w io.Writer, g *glfield.Grid2D, conversion func(float32) color.Color) error {
	img, err := Image(g, conversion)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// RenderPNGFile renders g to a PNG file with said filename. If a nil color
// conversion function is passed then the grayscale height palette is used.
func RenderPNGFile(filename string, g *glfield.Grid2D, conversion func(float32) color.Color) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	err = WritePNG(fp, g, conversion)
	if err != nil {
		return fmt.Errorf("gridrender: rendering %s: %w", filename, err)
	}
	return nil
}
