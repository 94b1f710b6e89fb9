// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Field    FieldConfig    `yaml:"field"`
	Scroll   ScrollConfig   `yaml:"scroll"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	PointSize  float32 `yaml:"point_size"` // world units, attenuated by distance
}

// FieldConfig holds particle field generation settings.
type FieldConfig struct {
	Count int    `yaml:"count"`
	Seed  uint64 `yaml:"seed"` // 0 = fresh random layout on every start
}

// ScrollConfig describes the virtual page the scroll progress is measured against.
type ScrollConfig struct {
	PageHeight float64 `yaml:"page_height"` // in viewport heights
	WheelStep  float64 `yaml:"wheel_step"`  // pixels per wheel notch
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			PointSize:  0.03,
		},
		Field: FieldConfig{
			Count: 8000,
			Seed:  0,
		},
		Scroll: ScrollConfig{
			PageHeight: 6,
			WheelStep:  60,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the settings can drive a viewer.
func (c *Config) Validate() error {
	switch {
	case c.Field.Count <= 0:
		return fmt.Errorf("%w: field.count must be positive, got %d", ErrInvalid, c.Field.Count)
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("%w: graphics size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	case c.Graphics.PointSize <= 0:
		return fmt.Errorf("%w: graphics.point_size must be positive", ErrInvalid)
	case c.Scroll.PageHeight < 1:
		return fmt.Errorf("%w: scroll.page_height must be at least one viewport", ErrInvalid)
	case c.Scroll.WheelStep <= 0:
		return fmt.Errorf("%w: scroll.wheel_step must be positive", ErrInvalid)
	}
	return nil
}
