package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// RenderTarget holds all the information of something that can be rendered to.
// This is normally either an offscreen Texture or the screen.
type RenderTarget struct {
	View *wgpu.TextureView

	// In case of multisample rendering, this might hold the
	// texture the multisampled fragment is resolved to.
	ResolveTarget *wgpu.TextureView

	// Texture format of View
	Format wgpu.TextureFormat

	// Size of the target to render to
	Width  uint32
	Height uint32

	// The number of samples of the View texture
	SampleCount uint32
}

// ColorAttachment describes the target as the color attachment of a render pass.
// If clear is nil, the previous content of the target is loaded.
func (t RenderTarget) ColorAttachment(clear *Color) wgpu.RenderPassColorAttachment {
	attachment := wgpu.RenderPassColorAttachment{
		View:          t.View,
		ResolveTarget: t.ResolveTarget,
		LoadOp:        wgpu.LoadOpLoad,
		StoreOp:       wgpu.StoreOpStore,
	}

	if clear != nil {
		attachment.LoadOp = wgpu.LoadOpClear
		attachment.ClearValue = clear.ToWGPUColor()
	}

	return attachment
}
