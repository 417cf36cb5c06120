// Package gridgl moves glfield grids between CPU memory and OpenGL
// textures. It only transfers buffers; drawing with the resulting textures
// is left to the host application. GPU support requires CGo, other builds
// return descriptive errors.
package gridgl
