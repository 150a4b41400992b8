// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

import "time"

// DinoConfig contains all configuration for the Dino runner.
type DinoConfig struct {
	Viewport   Viewport         `yaml:"viewport"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Timing     Timing           `yaml:"timing"`
	Speed      Speed            `yaml:"speed"`
	Rollout    Rollout          `yaml:"rollout"`
	Player     Player           `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Viewport is the size of the visible world in world units.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Ground obstacle anchors.
const (
	AnchorViewport  = "viewport"   // x = distance
	AnchorRightEdge = "right_edge" // x = viewport width + distance
)

// Obstacles defines the obstacle pools and spawn placement.
type Obstacles struct {
	GroundCount  int       `yaml:"ground_count"` // ground obstacle variants (obstacle-1..N)
	FlyingCount  int       `yaml:"flying_count"` // weight of flying enemies in the draw
	FlightBands  []float64 `yaml:"flight_bands"` // heights above ground for flyers
	MinDistance  int       `yaml:"min_distance"`
	MaxDistance  int       `yaml:"max_distance"`
	GroundAnchor string    `yaml:"ground_anchor"`
}

// Timing defines the frame-clock intervals of the run.
type Timing struct {
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	ScoreInterval time.Duration `yaml:"score_interval"`
}

// Speed defines scroll speeds in world units per frame.
type Speed struct {
	Initial    float64 `yaml:"initial"`
	Crash      float64 `yaml:"crash"`       // set on collision
	CloudDrift float64 `yaml:"cloud_drift"` // decoration scroll
}

// Rollout defines the onboarding animation between trigger and play.
type Rollout struct {
	TickRate      int     `yaml:"tick_rate"`     // ticks per second
	GroundStep    float64 `yaml:"ground_step"`   // ground width added per tick
	PlayerSpeed   float64 `yaml:"player_speed"`  // horizontal units per second
	GroundWidth   float64 `yaml:"ground_width"`  // initial ground strip width
	TriggerOffset float64 `yaml:"trigger_offset"` // start trigger bottom above ground
}

// Player defines the runner's body physics.
type Player struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
}

// DifficultyConfig defines the speed progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// RolloutDelay returns the delay between rollout ticks.
func (r Rollout) RolloutDelay() time.Duration {
	if r.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(r.TickRate)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
