package runner

import "time"

// RunState is the session-level mode that decides what a frame update does.
type RunState int

const (
	StateWaitingToStart RunState = iota
	StateRollingOut
	StateRunning
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StateWaitingToStart:
		return "waiting"
	case StateRollingOut:
		return "rolling-out"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Session is the mutable state of one run. The controller owns the only
// instance; Controller.Session returns a copy.
type Session struct {
	State     RunState
	Score     int
	GameSpeed float64       // scroll units per frame
	SpawnTime time.Duration // since the last spawn
	ScoreTime time.Duration // since the last score tick
	RunTicks  int           // Running frames since the run (re)started
}

// Kind distinguishes ground obstacles from flying enemies.
type Kind int

const (
	KindGround Kind = iota
	KindFlying
)

func (k Kind) String() string {
	if k == KindFlying {
		return "flying"
	}
	return "ground"
}

// Obstacle describes a spawned hazard.
type Obstacle struct {
	Kind   Kind
	X      float64 // left edge at spawn time
	Offset float64 // height above ground; 0 for ground obstacles
	Asset  string
}
