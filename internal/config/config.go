package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSize       = 100.0
	DefaultFPS        = 20
	DefaultZoomSpeed  = 1.1
	DefaultTransSpeed = 1.0
	DefaultRotSpeed   = 0.1
	DefaultSpinSpeed  = 0.01
)

// Config holds viewer settings. Key bindings are fixed and not part of
// the config surface.
type Config struct {
	Size       float64 `yaml:"size"`
	FPS        int     `yaml:"fps"`
	ZoomSpeed  float64 `yaml:"zoom_speed"`
	TransSpeed float64 `yaml:"trans_speed"`
	RotSpeed   float64 `yaml:"rot_speed"`
	SpinSpeed  float64 `yaml:"spin_speed"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:       DefaultSize,
		FPS:        DefaultFPS,
		ZoomSpeed:  DefaultZoomSpeed,
		TransSpeed: DefaultTransSpeed,
		RotSpeed:   DefaultRotSpeed,
		SpinSpeed:  DefaultSpinSpeed,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the render pipeline cannot work with.
func (c *Config) Validate() error {
	if c.Size < 10 || c.Size > 400 {
		return fmt.Errorf("size must be between 10 and 400, got %g", c.Size)
	}
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("fps must be between 1 and 120, got %d", c.FPS)
	}
	if c.ZoomSpeed <= 1 {
		return fmt.Errorf("zoom_speed must be greater than 1, got %g", c.ZoomSpeed)
	}
	if c.RotSpeed <= 0 || c.SpinSpeed <= 0 || c.TransSpeed <= 0 {
		return fmt.Errorf("speeds must be positive")
	}
	return nil
}
