package dino

import (
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/scene"
	"github.com/vovakirdan/tui-dino/internal/scene/world"
)

// Player is the dinosaur. It falls under gravity and rests on the bottom
// edge of the world, which is the ground line.
type Player struct {
	*world.Entity

	jumpVelocity float64
	ducking      bool
	dead         bool
}

var _ scene.Player = (*Player)(nil)

// NewPlayer creates the player standing at (x, ground) and registers its
// animations with w.
func NewPlayer(w *world.World, x float64, cfg config.Player) *Player {
	w.CreateAnimation(AnimDinoRun, AssetDinoRun, dinoFrameRate)
	w.CreateAnimation(AnimDinoDownRun, AssetDinoDownRun, dinoFrameRate)

	e := w.NewSprite(x, w.Height(), AssetDinoIdle)
	e.SetOrigin(0, 1)
	e.SetGravity(cfg.Gravity)
	e.SetCollideWorldBounds(true)

	return &Player{Entity: e, jumpVelocity: cfg.JumpVelocity}
}

// PlayRunAnimation starts running, or crawling when ducked. It also brings
// the player back after Die.
func (p *Player) PlayRunAnimation() {
	p.dead = false
	if p.ducking {
		p.Play(AnimDinoDownRun)
		return
	}
	p.Play(AnimDinoRun)
}

// Jump leaves the ground. It does nothing in the air or after a crash.
func (p *Player) Jump() {
	if p.dead || !p.OnFloor() {
		return
	}
	p.Duck(false)
	p.SetVelocityY(-p.jumpVelocity)
}

// Duck switches between the standing and the low body. Ducking in the air
// speeds up the fall.
func (p *Player) Duck(down bool) {
	if p.dead || down == p.ducking {
		return
	}
	if down && !p.OnFloor() {
		if p.Velocity().Y < p.jumpVelocity {
			p.SetVelocityY(p.jumpVelocity)
		}
		return
	}
	p.ducking = down

	running := p.Animation() != ""
	switch {
	case down && running:
		p.Play(AnimDinoDownRun)
	case down:
		p.SetTexture(AssetDinoDown)
	case running:
		p.Play(AnimDinoRun)
	default:
		p.SetTexture(AssetDinoIdle)
	}
}

// Die shows the hurt pose; the body keeps whatever velocity it had.
func (p *Player) Die() {
	p.dead = true
	p.ducking = false
	p.SetTexture(AssetDinoHurt)
}

// Ducking reports whether the low body is in use.
func (p *Player) Ducking() bool { return p.ducking }

// Dead reports whether Die was called since the last run started.
func (p *Player) Dead() bool { return p.dead }
