package glfield

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/soypat/glgl/math/ms1"
	"golang.org/x/image/bmp"
)

// FromImage builds a grid from the luminance of img, normalized to [0,1].
// The grid matches the image dimensions; row 0 corresponds to the top image
// row. Luminance uses the Rec. 601 weights via the standard gray model.
func FromImage(img image.Image) *Grid2D {
	b := img.Bounds()
	g := New(b.Dx(), b.Dy())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			gray := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			g.setAt(x, y, float32(gray.Y)/0xffff)
		}
	}
	return g
}

// FromPNG loads a PNG file and converts it to a luminance grid.
func FromPNG(filename string) (*Grid2D, error) {
	return fromImageFile(filename, png.Decode)
}

// FromBMP loads a BMP file and converts it to a luminance grid.
func FromBMP(filename string) (*Grid2D, error) {
	return fromImageFile(filename, bmp.Decode)
}

func fromImageFile(filename string, decode func(r io.Reader) (image.Image, error)) (*Grid2D, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	img, err := decode(fp)
	if err != nil {
		return nil, fmt.Errorf("glfield: decoding %s: %w", filename, err)
	}
	return FromImage(img), nil
}

// Gray converts the grid to an 8-bit grayscale image, clamping values to
// [0,1] before quantization.
func (g *Grid2D) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(ms1.Clamp(g.at(x, y), 0, 1) * 255)})
		}
	}
	return img
}

// RGBA converts the grid to an RGBA image with the grayscale value
// replicated into the color channels, matching [Grid2D.ByteArray] plus an
// opaque alpha channel.
func (g *Grid2D) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b := uint8(ms1.Clamp(g.at(x, y), 0, 1) * 255)
			img.SetRGBA(x, y, color.RGBA{R: b, G: b, B: b, A: 255})
		}
	}
	return img
}
