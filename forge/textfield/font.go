package textfield

import (
	"errors"

	"github.com/DerFred3/glfield"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// FontConfig parametrizes glyph rasterization of a [Font].
type FontConfig struct {
	// PixelHeight sets the rasterized em size in pixels. If zero a
	// reasonable value is chosen.
	PixelHeight int
}

// Font parses a TTF font and renders text lines into grids.
type Font struct {
	face font.Face
	pix  int // Set by config or load call if zeroed.
}

// Configure sets rasterization parameters. Must be called before
// [Font.LoadTTFBytes] to take effect.
func (f *Font) Configure(cfg FontConfig) error {
	if cfg.PixelHeight < 0 {
		return errors.New("invalid PixelHeight")
	}
	f.pix = cfg.PixelHeight
	return nil
}

// LoadTTFBytes loads a TTF file blob into f. After calling Load the Font is
// ready to rasterize text fields.
func (f *Font) LoadTTFBytes(ttf []byte) error {
	parsed, err := truetype.Parse(ttf)
	if err != nil {
		return err
	}
	if f.pix == 0 {
		f.pix = 64
	}
	f.face = truetype.NewFace(parsed, &truetype.Options{
		Size: float64(f.pix),
	})
	return nil
}

// TextField renders a single line of text into a coverage grid. The face's
// kerning and advance widths determine letter spacing.
func (f *Font) TextField(text string) (*glfield.Grid2D, error) {
	if f.face == nil {
		return nil, errors.New("font not loaded, call LoadTTFBytes first")
	}
	return Rasterize(f.face, text)
}

// TextSDF renders a single line of text and returns its signed distance
// field, positive inside glyphs.
func (f *Font) TextSDF(text string) (*glfield.Grid2D, error) {
	if f.face == nil {
		return nil, errors.New("font not loaded, call LoadTTFBytes first")
	}
	return RasterizeSDF(f.face, text)
}
