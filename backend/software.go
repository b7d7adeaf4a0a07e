package backend

import (
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/pixelgrid"
	"golang.org/x/image/draw"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU-based software backend.
	BackendSoftware = "software"
)

// SoftwareBackend keeps textures in memory and draws them with
// golang.org/x/image/draw.
type SoftwareBackend struct {
	initialized bool
	live        int
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() RenderBackend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// TextureCreator returns the backend itself, or nil before Init.
func (b *SoftwareBackend) TextureCreator() gpucontext.TextureCreator {
	if !b.initialized {
		return nil
	}
	return b
}

// NewTextureFromRGBA implements gpucontext.TextureCreator.
// data may be nil for a transparent texture.
func (b *SoftwareBackend) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	t, err := newTexture(b, width, height, data)
	if err != nil {
		return nil, err
	}
	b.live++
	pixelgrid.Logger().Debug("backend: texture created",
		"backend", BackendSoftware, "width", width, "height", height)
	return t, nil
}

// Textures returns the number of textures created by b and not yet
// destroyed.
func (b *SoftwareBackend) Textures() int {
	return b.live
}

// DrawTexture draws tex into dst through m, composited over the existing
// contents of dst.
//
// The magnification filter of the texture's sampler selects the
// interpolator: nearest-neighbor keeps texels as hard-edged blocks, linear
// blends between them.
func (b *SoftwareBackend) DrawTexture(dst *image.RGBA, tex gpucontext.Texture, m pixelgrid.Matrix) error {
	if !b.initialized {
		return ErrNotInitialized
	}
	t, ok := tex.(*Texture)
	if !ok || t.owner != b {
		return ErrForeignTexture
	}
	if t.destroyed {
		return ErrTextureDestroyed
	}

	var interp draw.Interpolator = draw.ApproxBiLinear
	if t.sampler.MagFilter == gputypes.FilterModeNearest {
		interp = draw.NearestNeighbor
	}
	interp.Transform(dst, m.Aff3(), t.img, t.img.Bounds(), draw.Over, nil)
	return nil
}
