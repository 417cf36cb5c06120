package gridrender_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chewxy/math32"

	"github.com/DerFred3/glfield"
	"github.com/DerFred3/glfield/gridrender"
)

func TestRenderGrayscaleDefault(t *testing.T) {
	g, err := glfield.NewFromData(2, 1, []float32{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	img, err := gridrender.Image(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0 {
		t.Errorf("value 0 rendered with red channel %d, want 0", r)
	}
	if r, _, _, _ := img.At(1, 0).RGBA(); r != 0xffff {
		t.Errorf("value 1 rendered with red channel %d, want 0xffff", r)
	}
}

func TestRenderTooSmallImage(t *testing.T) {
	g := glfield.New(4, 4)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if err := gridrender.NewRenderer(nil).Render(g, img); err == nil {
		t.Error("want error rendering into a smaller image")
	}
}

func TestWritePNG(t *testing.T) {
	g := glfield.GenRandomSeed(8, 5, 1)
	var buf bytes.Buffer
	if err := gridrender.WritePNG(&buf, g, nil); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	b := decoded.Bounds()
	if b.Dx() != 8 || b.Dy() != 5 {
		t.Errorf("decoded PNG is %dx%d, want 8x5", b.Dx(), b.Dy())
	}
}

func TestColorConversionLinearGradient(t *testing.T) {
	conv := gridrender.ColorConversionLinearGradient(0, 1, color.Black, color.White)
	for _, tc := range []struct {
		f    float32
		want uint32
	}{
		{f: -5, want: 0},
		{f: 0, want: 0},
		{f: 1, want: 0xffff},
		{f: 5, want: 0xffff},
	} {
		r, _, _, _ := conv(tc.f).RGBA()
		if r != tc.want {
			t.Errorf("conv(%v) red channel %#x want %#x", tc.f, r, tc.want)
		}
	}
	r0, _, _, _ := conv(0.5).RGBA()
	if r0 < 0x7000 || r0 > 0x9000 {
		t.Errorf("conv(0.5) red channel %#x, want mid gray", r0)
	}
}

func TestColorConversionInigoQuilezBoundary(t *testing.T) {
	conv := gridrender.ColorConversionInigoQuilez(10)
	r, g, b, _ := conv(0).RGBA()
	// The zero level set renders as the white highlight.
	if r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("boundary color %#x %#x %#x, want near white", r, g, b)
	}
	rn, _, _, _ := conv(math32.NaN()).RGBA()
	if rn != 0xffff {
		t.Error("NaN did not render red")
	}
}
