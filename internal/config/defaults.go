package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the built-in configuration. It mirrors
// defaults/dino.yaml and is used when the embedded file cannot be parsed.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Viewport: Viewport{Width: 1000, Height: 340},
		Obstacles: Obstacles{
			GroundCount:  6,
			FlyingCount:  1,
			FlightBands:  []float64{20, 70},
			MinDistance:  150,
			MaxDistance:  300,
			GroundAnchor: AnchorViewport,
		},
		Timing: Timing{
			SpawnInterval: 1500 * time.Millisecond,
			ScoreInterval: 100 * time.Millisecond,
		},
		Speed: Speed{
			Initial:    5,
			Crash:      10,
			CloudDrift: 0.5,
		},
		Rollout: Rollout{
			TickRate:      60,
			GroundStep:    34,
			PlayerSpeed:   80,
			GroundWidth:   88,
			TriggerOffset: 100,
		},
		Player: Player{
			Gravity:      5000,
			JumpVelocity: 1600,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
