package core

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hubastard/flatland/engine/colors"
	"github.com/hubastard/flatland/engine/layers"
	"gopkg.in/yaml.v3"
)

// Config for the engine run.
type Config struct {
	Title      string               `yaml:"title"`
	Width      int                  `yaml:"width"`
	Height     int                  `yaml:"height"`
	VSync      bool                 `yaml:"vsync"`
	ClearColor colors.Color         `yaml:"clear_color"`
	Layers     []layers.LayerBounds `yaml:"layers"`
	LogLevel   slog.Level           `yaml:"log_level"`
}

// DefaultConfig is a 1280x720 vsynced window with no layers.
func DefaultConfig() Config {
	return Config{
		Title:      "flatland",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,
		LogLevel:   slog.LevelInfo,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate reports configuration the engine cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d is negative", c.Width, c.Height))
	}
	var vertices int
	for _, b := range c.Layers {
		vertices += int(b.MaxVertices)
	}
	if vertices > layers.MaxVertices {
		errs = append(errs, fmt.Errorf("%w: %d vertices", layers.ErrVertexCapacity, vertices))
	}
	return errors.Join(errs...)
}
