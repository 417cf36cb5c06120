//go:build !tinygo && cgo

package gridgl

import (
	"errors"
	"fmt"

	"github.com/DerFred3/glfield"
	"github.com/go-gl/gl/all-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

// InitContext starts a hidden 1x1 GLFW window with a current GL 4.6 context
// so textures can be created off of it. The returned window may be resized
// and shown by callers that want to display results. Call terminate when
// done running loads on the GPU.
func InitContext() (window *glfw.Window, terminate func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("gridgl: initializing GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)
	window, err = glfw.CreateWindow(1, 1, "glfield", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("gridgl: creating GLFW window: %w", err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("gridgl: initializing OpenGL: %w", err)
	}
	return window, glfw.Terminate, nil
}

// Texture2D is a single-channel float GL texture holding a grid's values.
type Texture2D struct {
	tex    glgl.Texture
	width  int
	height int
}

// NewTexture2D uploads the grid's flat row-major buffer as an R32F texture
// with linear filtering. Requires a current GL context, see [InitContext].
func NewTexture2D(g *glfield.Grid2D) (Texture2D, error) {
	cfg := texConfig(g.Width(), g.Height())
	tex, err := glgl.NewTextureFromImage(cfg, g.Data())
	if err != nil {
		return Texture2D{}, fmt.Errorf("gridgl: uploading %dx%d grid: %w", g.Width(), g.Height(), err)
	}
	return Texture2D{tex: tex, width: g.Width(), height: g.Height()}, nil
}

// Width returns the texture width in texels.
func (t Texture2D) Width() int { return t.width }

// Height returns the texture height in texels.
func (t Texture2D) Height() int { return t.height }

// Download reads the texture contents back into a new grid.
func (t Texture2D) Download() (*glfield.Grid2D, error) {
	if t.width == 0 || t.height == 0 {
		return nil, errors.New("gridgl: download of zero Texture2D")
	}
	buf := make([]float32, t.width*t.height)
	err := glgl.GetImage(buf, t.tex, texConfig(t.width, t.height))
	if err != nil {
		return nil, fmt.Errorf("gridgl: downloading %dx%d texture: %w", t.width, t.height, err)
	}
	return glfield.NewFromData(t.width, t.height, buf)
}

func texConfig(width, height int) glgl.TextureImgConfig {
	return glgl.TextureImgConfig{
		Type:           glgl.Texture2D,
		Width:          width,
		Height:         height,
		Access:         glgl.ReadOnly,
		Format:         gl.RED,
		MinFilter:      gl.LINEAR,
		MagFilter:      gl.LINEAR,
		Xtype:          gl.FLOAT,
		InternalFormat: gl.R32F,
		ImageUnit:      0,
	}
}
