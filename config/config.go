// SPDX-License-Identifier: Unlicense OR MIT

// Package config holds the persisted device configuration and the
// startup parameters of the engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the device configuration. It is read when the device
// needs it, so changes apply on the next reset or focus change.
type Config struct {
	Mode  WindowMode `toml:"mode" yaml:"mode"`
	VSync bool       `toml:"vsync" yaml:"vsync"`
	// Width and Height are the size of the device surface in
	// pixels.
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// WindowMode is the presentation style of the main window.
type WindowMode uint8

const (
	Windowed WindowMode = iota
	Borderless
	Fullscreen
	FullscreenBorderless
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Mode:   Windowed,
		VSync:  true,
		Width:  1280,
		Height: 720,
	}
}

// Fullscreen reports whether the mode covers a whole display.
func (m WindowMode) Fullscreen() bool {
	return m == Fullscreen || m == FullscreenBorderless
}

func (m WindowMode) String() string {
	switch m {
	case Windowed:
		return "windowed"
	case Borderless:
		return "borderless"
	case Fullscreen:
		return "fullscreen"
	case FullscreenBorderless:
		return "fullscreen_borderless"
	default:
		return fmt.Sprintf("WindowMode(%d)", uint8(m))
	}
}

func (m WindowMode) MarshalText() ([]byte, error) {
	if m > FullscreenBorderless {
		return nil, fmt.Errorf("config: invalid window mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *WindowMode) UnmarshalText(text []byte) error {
	mode, err := ParseWindowMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseWindowMode parses the text form of a WindowMode.
func ParseWindowMode(s string) (WindowMode, error) {
	switch strings.ToLower(s) {
	case "windowed":
		return Windowed, nil
	case "borderless":
		return Borderless, nil
	case "fullscreen":
		return Fullscreen, nil
	case "fullscreen_borderless":
		return FullscreenBorderless, nil
	default:
		return 0, fmt.Errorf("config: unknown window mode %q", s)
	}
}

// Validate reports configuration values the device cannot use.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid surface size %dx%d", c.Width, c.Height)
	}
	if c.Mode > FullscreenBorderless {
		return fmt.Errorf("config: invalid window mode %d", uint8(c.Mode))
	}
	return nil
}

// Load reads the configuration at path over the defaults. The
// format is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		return nil, fmt.Errorf("config: unsupported file type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return c, nil
}

// Save writes c to path in the format given by its extension.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		data, err = toml.Marshal(c)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("config: unsupported file type %q", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
