package backend

import (
	"errors"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/pixelgrid"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrForeignTexture is returned when a texture created by another
	// backend is passed to DrawTexture.
	ErrForeignTexture = errors.New("backend: texture belongs to another backend")

	// ErrTextureSize is returned when pixel data does not match the texture size.
	ErrTextureSize = errors.New("backend: pixel data does not match texture size")

	// ErrTextureDestroyed is returned when a destroyed texture is used.
	ErrTextureDestroyed = errors.New("backend: texture destroyed")
)

// RenderBackend is the interface for texture backends.
// It owns texture storage and knows how to draw one of its textures into a
// viewport through an affine transform.
//
// Backends register themselves with Register and are created by name
// with InitNamed.
type RenderBackend interface {
	// Name returns the backend identifier (e.g., "software").
	Name() string

	// Init initializes the backend.
	// This should be called before any other operation.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// TextureCreator returns the factory used to create textures on this
	// backend, or nil before Init.
	TextureCreator() gpucontext.TextureCreator

	// DrawTexture draws tex into dst. m maps texel coordinates
	// (origin top-left, Y down) to dst pixel coordinates. Filtering
	// follows the texture's sampler.
	DrawTexture(dst *image.RGBA, tex gpucontext.Texture, m pixelgrid.Matrix) error
}
