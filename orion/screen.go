package orion

// ScreenDimensions describes the surface of the current frame.
type ScreenDimensions struct {
	// size in physical pixels
	Width, Height uint32

	// ratio of physical pixels to logical pixels
	Density float32
}

// LogicalSize returns the size in logical pixels.
func (s ScreenDimensions) LogicalSize() (width, height float32) {
	if s.Density <= 0 {
		return float32(s.Width), float32(s.Height)
	}

	return float32(s.Width) / s.Density, float32(s.Height) / s.Density
}
