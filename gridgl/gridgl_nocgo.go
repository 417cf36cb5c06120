//go:build tinygo || !cgo

package gridgl

import (
	"errors"

	"github.com/DerFred3/glfield"
)

var errNoCGO = errors.New("GL texture upload requires CGo and is not supported on TinyGo")

// Texture2D is a single-channel float GL texture holding a grid's values.
// This build has no CGo so textures cannot be created.
type Texture2D struct {
	width  int
	height int
}

// NewTexture2D uploads the grid's flat row-major buffer as an R32F texture.
func NewTexture2D(g *glfield.Grid2D) (Texture2D, error) {
	return Texture2D{}, errNoCGO
}

// Width returns the texture width in texels.
func (t Texture2D) Width() int { return t.width }

// Height returns the texture height in texels.
func (t Texture2D) Height() int { return t.height }

// Download reads the texture contents back into a new grid.
func (t Texture2D) Download() (*glfield.Grid2D, error) {
	return nil, errNoCGO
}
