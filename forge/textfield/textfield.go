// Package textfield rasterizes text into glfield coverage grids and derives
// signed distance fields from them, for use as GL textures or procedural
// masks.
package textfield

import (
	"errors"
	"fmt"
	"image"
	"unicode"

	"github.com/DerFred3/glfield"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// pad is the empty border in pixels around rasterized text so derived
// distance fields have outside room to grow into.
const pad = 4

// Rasterize draws text with face into a new grid whose values are the glyph
// coverage in [0,1], 1 where ink is. The grid is sized to the text bounds
// plus a small border. Only graphic and space characters are accepted.
func Rasterize(face font.Face, text string) (*glfield.Grid2D, error) {
	if text == "" {
		return nil, errors.New("no text provided")
	}
	for _, c := range text {
		if !unicode.IsGraphic(c) {
			return nil, fmt.Errorf("char %q not graphic", c)
		}
	}
	bounds, advance := font.BoundString(face, text)
	w := advance
	if bw := bounds.Max.X - bounds.Min.X; bw > w {
		w = bw
	}
	width := w.Ceil() + 2*pad
	height := (bounds.Max.Y - bounds.Min.Y).Ceil() + 2*pad
	if width <= 2*pad || height <= 2*pad {
		return nil, fmt.Errorf("text %q has empty bounds", text)
	}
	dst := image.NewGray(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: -bounds.Min.X + fixed.I(pad),
			Y: -bounds.Min.Y + fixed.I(pad),
		},
	}
	d.DrawString(text)
	return glfield.FromImage(dst), nil
}

// RasterizeSDF rasterizes text and converts the coverage to a signed
// distance field, positive inside glyphs, in grid-cell units.
func RasterizeSDF(face font.Face, text string) (*glfield.Grid2D, error) {
	g, err := Rasterize(face, text)
	if err != nil {
		return nil, err
	}
	return g.SignedDistance(0.5), nil
}
