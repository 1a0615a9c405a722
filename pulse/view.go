package pulse

import (
	"log/slog"
	"slices"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// View manages the surface configuration and, with msaa enabled,
// the multisample texture rendered to before resolving to the surface.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration

	// only configured if we have a multisample texture configured
	msaaTexture *Texture

	sampleCount uint32
}

func NewView(dev *Context, msaa bool) *View {
	st := &View{Context: dev}

	if msaa {
		st.sampleCount = 4
	} else {
		st.sampleCount = 1
	}

	caps := dev.Surface.GetCapabilities(dev.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	format := wgpu.TextureFormatBGRA8Unorm
	if !slices.Contains(caps.Formats, format) && len(caps.Formats) > 0 {
		format = caps.Formats[0]
	}

	st.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],

		// try to reduce input latency
		DesiredMaximumFrameLatency: 1,
	}

	return st
}

func (vs *View) MSAA() bool {
	return vs.sampleCount > 1
}

func (vs *View) SampleCount() uint32 {
	return vs.sampleCount
}

func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

// Configure resizes the surface and reallocates the multisample texture.
func (vs *View) Configure(width, height uint32) {
	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Device, vs.surfaceConfig)

	vs.releaseTextures()

	if vs.MSAA() {
		vs.msaaTexture = createMultisampleTexture(vs.Context, vs.surfaceConfig, vs.sampleCount)
	}
}

// SurfaceTarget returns the target to render a frame to. With msaa enabled,
// rendering goes to the multisample texture and is resolved to the surface.
func (vs *View) SurfaceTarget(screen *wgpu.Texture, screenView *wgpu.TextureView) RenderTarget {
	if !vs.MSAA() {
		return WrapTexture(screen, screenView).Target(nil)
	}

	return vs.msaaTexture.Target(screenView)
}

func (vs *View) Release() {
	vs.releaseTextures()
}

func (vs *View) releaseTextures() {
	if vs.msaaTexture != nil {
		vs.msaaTexture.Release()
		vs.msaaTexture = nil
	}
}

func createMultisampleTexture(ctx *Context, surfaceConfig *wgpu.SurfaceConfiguration, sampleCount uint32) *Texture {
	return NewTextureFromDesc(ctx, &wgpu.TextureDescriptor{
		Label: "MultisampleRenderTarget",
		Usage: wgpu.TextureUsageRenderAttachment,
		Size: wgpu.Extent3D{
			Width:              surfaceConfig.Width,
			Height:             surfaceConfig.Height,
			DepthOrArrayLayers: 1,
		},
		Format:        surfaceConfig.Format,
		Dimension:     wgpu.TextureDimension2D,
		SampleCount:   sampleCount,
		MipLevelCount: 1,
	})
}
