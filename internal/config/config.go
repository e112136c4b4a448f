// Package config loads marblenav settings from a YAML file with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"marblenav/internal/engine"
	"marblenav/internal/targeting"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const envPrefix = "MARBLENAV_"

type Config struct {
	Window    WindowConfig    `yaml:"window"    envPrefix:"WINDOW_"`
	Camera    CameraConfig    `yaml:"camera"    envPrefix:"CAMERA_"`
	Targeting TargetingConfig `yaml:"targeting" envPrefix:"TARGETING_"`
	Level     string          `yaml:"level"     env:"LEVEL"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"      env:"WIDTH"`
	Height    int32  `yaml:"height"     env:"HEIGHT"`
	Title     string `yaml:"title"      env:"TITLE"`
	TargetFPS int32  `yaml:"target_fps" env:"TARGET_FPS"`
}

type CameraConfig struct {
	FOV float32 `yaml:"fov" env:"FOV"`
}

type TargetingConfig struct {
	Mode         string   `yaml:"mode"          env:"MODE"`
	GroundOffset float32  `yaml:"ground_offset" env:"GROUND_OFFSET"`
	Surface      []string `yaml:"surface"       env:"SURFACE" envSeparator:","`
	Bounds       Bounds   `yaml:"bounds"        envPrefix:"BOUNDS_"`
}

// Bounds are world-space limits for clamped mode.
type Bounds struct {
	MinX float32 `yaml:"min_x" env:"MIN_X"`
	MaxX float32 `yaml:"max_x" env:"MAX_X"`
	MinZ float32 `yaml:"min_z" env:"MIN_Z"`
	MaxZ float32 `yaml:"max_z" env:"MAX_Z"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "marblenav",
			TargetFPS: 60,
		},
		Camera: CameraConfig{
			FOV: 45,
		},
		Targeting: TargetingConfig{
			Mode:         "legacy",
			GroundOffset: targeting.DefaultGroundOffset,
			Surface:      []string{"ground"},
			Bounds:       Bounds{MinX: -10, MaxX: 10, MinZ: -10, MaxZ: 10},
		},
		Level: "assets/levels/arena.yaml",
	}
}

// Load reads path over the defaults, applies MARBLENAV_* environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov must be in (0, 180), got %g", c.Camera.FOV))
	}
	if _, err := targeting.ParseMode(c.Targeting.Mode); err != nil {
		errs = append(errs, err)
	}
	if len(c.Targeting.Surface) == 0 {
		errs = append(errs, errors.New("targeting surface needs at least one layer"))
	} else if _, err := c.Targeting.SurfaceMask(); err != nil {
		errs = append(errs, err)
	}
	b := c.Targeting.Bounds
	if b.MinX > b.MaxX || b.MinZ > b.MaxZ {
		errs = append(errs, fmt.Errorf("targeting bounds are inverted: x [%g, %g], z [%g, %g]", b.MinX, b.MaxX, b.MinZ, b.MaxZ))
	}
	if c.Level == "" {
		errs = append(errs, errors.New("level path is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (t TargetingConfig) SurfaceMask() (engine.LayerMask, error) {
	return engine.ParseLayerMask(t.Surface)
}

// NewProjector builds a projector over world from these settings.
func (t TargetingConfig) NewProjector(world engine.Raycaster) (*targeting.Projector, error) {
	mode, err := targeting.ParseMode(t.Mode)
	if err != nil {
		return nil, err
	}
	mask, err := t.SurfaceMask()
	if err != nil {
		return nil, err
	}
	p := targeting.NewProjector(world, mask)
	p.Mode = mode
	p.GroundOffset = t.GroundOffset
	p.Bounds = targeting.Bounds{
		MinX: t.Bounds.MinX,
		MaxX: t.Bounds.MaxX,
		MinZ: t.Bounds.MinZ,
		MaxZ: t.Bounds.MaxZ,
	}
	return p, nil
}
