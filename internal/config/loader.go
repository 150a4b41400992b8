package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadDino loads the Dino runner configuration.
// Search order: customPath -> ~/.arcade/configs/dino.yaml -> ./configs/dino.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadDino(customPath string) (DinoConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DinoConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseDino(data)
		if err != nil {
			return DinoConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("dino.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseDino(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "dino.yaml")); err == nil {
		if cfg, err := ParseDino(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseDino(defaultDinoYAML)
	if err != nil {
		return DefaultDinoConfig(), nil // embedded file is broken; fall back to code defaults
	}
	return cfg, nil
}

// ParseDino decodes YAML over the defaults and validates the result.
func ParseDino(data []byte) (DinoConfig, error) {
	cfg := DefaultDinoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DinoConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DinoConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyDinoPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyDinoPreset(cfg *DinoConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate checks the values the controller relies on without guarding.
func (c DinoConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
		}
	}

	check(c.Viewport.Width > 0 && c.Viewport.Height > 0,
		"viewport must be positive, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	check(c.Obstacles.GroundCount > 0, "obstacles.ground_count must be positive, got %d", c.Obstacles.GroundCount)
	check(c.Obstacles.FlyingCount >= 0, "obstacles.flying_count must not be negative, got %d", c.Obstacles.FlyingCount)
	check(c.Obstacles.FlyingCount == 0 || len(c.Obstacles.FlightBands) > 0,
		"obstacles.flight_bands must not be empty when flying_count > 0")
	check(c.Obstacles.MinDistance <= c.Obstacles.MaxDistance,
		"obstacles.min_distance %d exceeds max_distance %d", c.Obstacles.MinDistance, c.Obstacles.MaxDistance)
	check(c.Obstacles.GroundAnchor == AnchorViewport || c.Obstacles.GroundAnchor == AnchorRightEdge,
		"obstacles.ground_anchor must be %q or %q, got %q", AnchorViewport, AnchorRightEdge, c.Obstacles.GroundAnchor)
	check(c.Timing.SpawnInterval > 0, "timing.spawn_interval must be positive")
	check(c.Timing.ScoreInterval > 0, "timing.score_interval must be positive")
	check(c.Rollout.TickRate > 0, "rollout.tick_rate must be positive")
	check(c.Rollout.GroundStep > 0, "rollout.ground_step must be positive")

	return errors.Join(errs...)
}
