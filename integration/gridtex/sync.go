// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridtex

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/pixelgrid"
)

// Common errors returned by Sync operations.
var (
	// ErrSyncClosed is returned when operations are attempted on a closed Sync.
	ErrSyncClosed = errors.New("gridtex: sync is closed")

	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("gridtex: nil grid")

	// ErrNilCreator is returned when a nil TextureCreator is passed.
	ErrNilCreator = errors.New("gridtex: nil TextureCreator")

	// ErrInvalidDimensions is returned when the grid has no cells.
	ErrInvalidDimensions = errors.New("gridtex: invalid dimensions")

	// ErrTextureCreationFailed is returned when the creator fails.
	ErrTextureCreationFailed = errors.New("gridtex: texture creation failed")

	// ErrNotUpdatable is returned when the texture supports neither
	// in-place writes nor gpucontext.TextureUpdater.
	ErrNotUpdatable = errors.New("gridtex: texture cannot be updated")

	// ErrDimensionMismatch is returned (at setup) or panicked with (at
	// write time) when the texture does not match the grid.
	ErrDimensionMismatch = pixelgrid.ErrDimensionMismatch
)

// pixelBuffer is implemented by textures that expose their bytes for
// in-place writes.
type pixelBuffer interface {
	Pix() []byte
}

// samplerSetter is implemented by textures with configurable sampling.
type samplerSetter interface {
	SetSampler(gputypes.SamplerDescriptor)
}

// textureDestroyer is the interface for destroying textures.
type textureDestroyer interface {
	Destroy()
}

// staleTexture is implemented by textures that report whether they have
// been destroyed behind the sync's back.
type staleTexture interface {
	Destroyed() bool
}

// NearestSampler returns the sampler the grid texture uses: nearest-neighbor
// filtering at every level, clamped at the edges.
func NearestSampler() gputypes.SamplerDescriptor {
	s := gputypes.DefaultSamplerDescriptor()
	s.Label = "pixelgrid"
	s.MagFilter = gputypes.FilterModeNearest
	s.MinFilter = gputypes.FilterModeNearest
	s.MipmapFilter = gputypes.MipmapFilterModeNearest
	return s
}

// Sync mirrors a Grid into a texture.
//
// Sync is NOT safe for concurrent use.
type Sync struct {
	grid    *pixelgrid.Grid
	texture gpucontext.Texture
	scratch []byte // reused encoding buffer for TextureUpdater writes
	uploads int
	closed  bool
}

// New creates the texture for grid through creator and returns a Sync that
// keeps it up to date.
//
// The texture is created with the grid's current contents and configured
// for nearest-neighbor sampling. On success the grid's dirty flag is
// cleared.
//
// Returns error if the grid or creator is nil, the grid is empty, texture
// creation fails, or the created texture's size differs from the grid.
func New(grid *pixelgrid.Grid, creator gpucontext.TextureCreator) (*Sync, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if creator == nil {
		return nil, ErrNilCreator
	}
	w, h := grid.Width(), grid.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, w, h)
	}

	tex, err := creator.NewTextureFromRGBA(w, h, pixelgrid.EncodeRGBA8(grid))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTextureCreationFailed, err)
	}
	if tex == nil {
		return nil, ErrTextureCreationFailed
	}
	if tex.Width() != w || tex.Height() != h {
		if d, ok := tex.(textureDestroyer); ok {
			d.Destroy()
		}
		return nil, fmt.Errorf("%w: texture %dx%d, grid %dx%d",
			ErrDimensionMismatch, tex.Width(), tex.Height(), w, h)
	}

	log := pixelgrid.Logger()
	if s, ok := tex.(samplerSetter); ok {
		s.SetSampler(NearestSampler())
	} else {
		log.Warn("gridtex: texture sampler is not configurable, cells may render blurred",
			"texture", fmt.Sprintf("%T", tex))
	}

	grid.ClearDirty()
	log.Info("gridtex: texture created", "width", w, "height", h)

	return &Sync{
		grid:    grid,
		texture: tex,
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(grid *pixelgrid.Grid, creator gpucontext.TextureCreator) *Sync {
	s, err := New(grid, creator)
	if err != nil {
		panic(err)
	}
	return s
}

// Grid returns the mirrored grid.
func (s *Sync) Grid() *pixelgrid.Grid {
	return s.grid
}

// Texture returns the texture, or nil after Close.
func (s *Sync) Texture() gpucontext.Texture {
	return s.texture
}

// Uploads returns how many times Flush has written the texture.
func (s *Sync) Uploads() int {
	return s.uploads
}

// Flush writes the grid into the texture if the grid changed since the last
// successful Flush. It returns true when a write happened.
//
// A texture whose in-place buffer no longer holds exactly
// Width*Height*4 bytes panics with ErrDimensionMismatch. Errors from
// gpucontext.TextureUpdater are returned and leave the grid dirty so the
// next Flush retries. A texture that reports itself destroyed is skipped
// silently and the grid stays dirty.
func (s *Sync) Flush() (bool, error) {
	if s.closed {
		return false, ErrSyncClosed
	}
	if !s.grid.Dirty() {
		return false, nil
	}
	if st, ok := s.texture.(staleTexture); ok && st.Destroyed() {
		pixelgrid.Logger().Debug("gridtex: texture destroyed, upload skipped")
		return false, nil
	}

	switch tex := s.texture.(type) {
	case pixelBuffer:
		pixelgrid.EncodeRGBA8Into(s.grid, tex.Pix())
	case gpucontext.TextureUpdater:
		if s.scratch == nil {
			s.scratch = make([]byte, pixelgrid.EncodedLen(s.grid))
		}
		pixelgrid.EncodeRGBA8Into(s.grid, s.scratch)
		if err := tex.UpdateData(s.scratch); err != nil {
			return false, fmt.Errorf("gridtex: texture update failed: %w", err)
		}
	default:
		return false, ErrNotUpdatable
	}

	s.grid.ClearDirty()
	s.uploads++
	pixelgrid.Logger().Debug("gridtex: texture updated", "uploads", s.uploads)
	return true, nil
}

// Close releases the texture. After Close, the Sync should not be used.
// Close is idempotent - multiple calls are safe.
func (s *Sync) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.texture != nil {
		if d, ok := s.texture.(textureDestroyer); ok {
			d.Destroy()
		}
		s.texture = nil
	}
	s.scratch = nil
	return nil
}
