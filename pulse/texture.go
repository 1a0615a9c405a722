package pulse

import (
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Texture wraps a wgpu.Texture and an identity wgpu.TextureView.
type Texture struct {
	texture     *wgpu.Texture
	textureView *wgpu.TextureView

	// equal to texture.GetFormat()
	format wgpu.TextureFormat

	// equal to texture.GetSampleCount()
	sampleCount uint32

	width, height uint32

	// false for wrapped textures, e.g. the surface texture
	owned bool
}

// NewTextureFromDesc creates a texture directly from a texture descriptor
func NewTextureFromDesc(ctx *Context, desc *wgpu.TextureDescriptor) *Texture {
	texture := ctx.Device.CreateTexture(desc)

	return &Texture{
		texture:     texture,
		textureView: texture.CreateView(nil),
		format:      desc.Format,
		sampleCount: desc.SampleCount,
		width:       desc.Size.Width,
		height:      desc.Size.Height,
		owned:       true,
	}
}

// WrapTexture creates a texture from an existing wgpu.Texture and wgpu.TextureView.
// The texture is not owned, Release will not release it.
func WrapTexture(texture *wgpu.Texture, textureView *wgpu.TextureView) *Texture {
	return &Texture{
		texture:     texture,
		textureView: textureView,
		format:      texture.GetFormat(),
		sampleCount: texture.GetSampleCount(),
		width:       texture.GetWidth(),
		height:      texture.GetHeight(),
	}
}

func (t *Texture) Width() uint32 {
	return t.width
}

func (t *Texture) Height() uint32 {
	return t.height
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) SampleCount() uint32 {
	return t.sampleCount
}

func (t *Texture) View() *wgpu.TextureView {
	return t.textureView
}

// Target describes this texture as a RenderTarget. A multisample texture
// must be given a resolve view.
func (t *Texture) Target(resolveView *wgpu.TextureView) RenderTarget {
	if t.sampleCount > 1 && resolveView == nil {
		panic("no resolve target specified for multisample texture")
	}

	if t.sampleCount == 1 && resolveView != nil {
		panic("resolve target specified for single sample texture")
	}

	return RenderTarget{
		View:          t.textureView,
		ResolveTarget: resolveView,
		Format:        t.format,
		Width:         t.width,
		Height:        t.height,
		SampleCount:   t.sampleCount,
	}
}

// Release releases the texture. Wrapped textures are left untouched.
func (t *Texture) Release() {
	if !t.owned {
		return
	}

	t.textureView.Release()
	t.texture.Release()
}
