package backend

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

// Texture is an RGBA8 texture held in CPU memory.
//
// It implements gpucontext.Texture and gpucontext.TextureUpdater, and
// exposes its bytes through Pix for in-place writes.
type Texture struct {
	img       *image.NRGBA
	sampler   gputypes.SamplerDescriptor
	owner     *SoftwareBackend
	destroyed bool
}

func newTexture(owner *SoftwareBackend, width, height int, data []byte) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTextureSize, width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if data != nil {
		if len(data) != len(img.Pix) {
			return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrTextureSize, len(data), len(img.Pix))
		}
		copy(img.Pix, data)
	}
	return &Texture{
		img:     img,
		sampler: gputypes.LinearSamplerDescriptor(),
		owner:   owner,
	}, nil
}

// Width returns the texture width in texels.
func (t *Texture) Width() int {
	return t.img.Rect.Dx()
}

// Height returns the texture height in texels.
func (t *Texture) Height() int {
	return t.img.Rect.Dy()
}

// Pix returns the texture bytes (RGBA8, row stride Width*4) for in-place
// writes.
func (t *Texture) Pix() []byte {
	return t.img.Pix
}

// UpdateData replaces the texture contents.
func (t *Texture) UpdateData(data []byte) error {
	if t.destroyed {
		return ErrTextureDestroyed
	}
	if len(data) != len(t.img.Pix) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrTextureSize, len(data), len(t.img.Pix))
	}
	copy(t.img.Pix, data)
	return nil
}

// SetSampler sets how the texture is filtered when drawn.
func (t *Texture) SetSampler(s gputypes.SamplerDescriptor) {
	t.sampler = s
}

// Sampler returns the current sampler. New textures sample linearly.
func (t *Texture) Sampler() gputypes.SamplerDescriptor {
	return t.sampler
}

// Image returns the texture as an image sharing the texture's bytes.
func (t *Texture) Image() *image.NRGBA {
	return t.img
}

// Destroy marks the texture unusable and releases it from its backend.
// Idempotent.
func (t *Texture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.owner.live--
}

// Destroyed reports whether Destroy has been called.
func (t *Texture) Destroyed() bool {
	return t.destroyed
}
