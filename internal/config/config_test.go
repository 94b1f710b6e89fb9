package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.PointSize != 0.03 {
		t.Errorf("expected point size 0.03, got %f", cfg.Graphics.PointSize)
	}
	if cfg.Field.Count != 8000 {
		t.Errorf("expected 8000 particles, got %d", cfg.Field.Count)
	}
	if cfg.Field.Seed != 0 {
		t.Errorf("expected unseeded layout by default, got seed %d", cfg.Field.Seed)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero count", func(c *Config) { c.Field.Count = 0 }},
		{"negative count", func(c *Config) { c.Field.Count = -5 }},
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"zero point size", func(c *Config) { c.Graphics.PointSize = 0 }},
		{"page shorter than viewport", func(c *Config) { c.Scroll.PageHeight = 0.5 }},
		{"zero wheel step", func(c *Config) { c.Scroll.WheelStep = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  point_size: 0.05

field:
  count: 12000
  seed: 42

scroll:
  page_height: 4
  wheel_step: 120

logging:
  level: "debug"
  log_file: "driftfield.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.PointSize != 0.05 {
		t.Errorf("expected point size 0.05, got %f", cfg.Graphics.PointSize)
	}
	if cfg.Field.Count != 12000 {
		t.Errorf("expected count 12000, got %d", cfg.Field.Count)
	}
	if cfg.Field.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Field.Seed)
	}
	if cfg.Scroll.PageHeight != 4 || cfg.Scroll.WheelStep != 120 {
		t.Errorf("unexpected scroll config %+v", cfg.Scroll)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "driftfield.log" {
		t.Errorf("expected log file 'driftfield.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"invalid syntax", "graphics:\n  width: not a number\n  invalid syntax here\n"},
		{"unknown key", "field:\n  cuont: 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFromEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("empty file should keep defaults, got %v", err)
	}
	if cfg.Field.Count != 8000 {
		t.Errorf("expected default count, got %d", cfg.Field.Count)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name:  "count and seed flags",
			setup: func() { *flagCount = 4; *flagSeed = 7 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Field.Count != 4 {
					t.Errorf("expected count 4, got %d", cfg.Field.Count)
				}
				if cfg.Field.Seed != 7 {
					t.Errorf("expected seed 7, got %d", cfg.Field.Seed)
				}
			},
			teardown: func() { *flagCount = 0; *flagSeed = 0 },
		},
		{
			name:  "width and height flags",
			setup: func() { *flagWidth = 2560; *flagHeight = 1440 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() { *flagWidth = 0; *flagHeight = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
field:
  count: 1000
  seed: 3
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagCount = 500
	defer func() {
		*flagConfig = ""
		*flagCount = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Field.Count != 500 {
		t.Errorf("expected count 500 from flag, got %d", cfg.Field.Count)
	}
	if cfg.Field.Seed != 3 {
		t.Errorf("expected seed 3 from file, got %d", cfg.Field.Seed)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Field.Seed = 99
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Field.Seed != 99 {
		t.Errorf("expected seed 99 after reload, got %d", loaded.Field.Seed)
	}
}
