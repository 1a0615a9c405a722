package glimpse

import "github.com/oliverbestmann/webgpu/wgpu"

type Window interface {
	// GetSize returns the size of the framebuffer in pixels
	GetSize() (uint32, uint32)

	// GetContentScale returns the ratio between framebuffer pixels and
	// logical pixels, e.g. 2 on a HiDPI display.
	GetContentScale() float32

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Run calls render until the window is closed or render returns an error.
	Run(render func(input UpdateInputState) error) error

	// Close requests the window to close after the current frame.
	Close()

	Terminate()
}

type WindowOptions struct {
	Width     int
	Height    int
	Title     string
	Resizable bool

	// record a cpu profile while the window is open
	Profile bool
}
