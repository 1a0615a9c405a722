package orion

import (
	"bytes"
	"fmt"
	"os"

	"github.com/oliverbestmann/vecmesh/pulse"
	"github.com/pelletier/go-toml/v2"
)

// DisplayConfig configures the window and the surface.
type DisplayConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`

	// srgb encoded rgba
	ClearColor [4]float32 `toml:"clear_color"`

	// render with 4x multisampling
	MSAA bool `toml:"msaa"`

	// write a cpu profile to the working directory
	Profile bool `toml:"profile"`
}

func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Title:      "vecmesh",
		Width:      1024,
		Height:     768,
		Resizable:  true,
		ClearColor: [4]float32{0, 0, 0, 1},
		MSAA:       true,
	}
}

// LoadDisplayConfig reads a toml display config file. Missing fields
// keep their default values.
func LoadDisplayConfig(path string) (DisplayConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return DisplayConfig{}, fmt.Errorf("read display config: %w", err)
	}

	config, err := ParseDisplayConfig(buf)
	if err != nil {
		return DisplayConfig{}, fmt.Errorf("parse display config %q: %w", path, err)
	}

	return config, nil
}

func ParseDisplayConfig(buf []byte) (DisplayConfig, error) {
	config := DefaultDisplayConfig()

	dec := toml.NewDecoder(bytes.NewReader(buf))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&config); err != nil {
		return DisplayConfig{}, err
	}

	if err := config.validate(); err != nil {
		return DisplayConfig{}, err
	}

	return config, nil
}

func (c DisplayConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}

	return nil
}

// Clear returns the clear color in linear rgb.
func (c DisplayConfig) Clear() pulse.Color {
	r, g, b, a := c.ClearColor[0], c.ClearColor[1], c.ClearColor[2], c.ClearColor[3]
	return pulse.ColorSRGBA(r, g, b, a)
}
