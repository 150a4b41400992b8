// Package scene describes the capabilities the run controller needs from a
// host 2D engine. The controller holds values satisfying these interfaces and
// never a concrete engine type, so any host (the terminal world, a test fake,
// a graphical engine) can drive it.
package scene

import (
	"time"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// Renderable is a positioned visual entity.
type Renderable interface {
	// Position returns the anchor point in world units.
	Position() core.Vec
	SetPosition(x, y float64)

	// SetOrigin sets the anchor as a fraction of the entity size:
	// (0, 0) is the top-left corner, (0, 1) the bottom-left.
	SetOrigin(x, y float64)

	Alpha() float64
	SetAlpha(alpha float64)

	// Bounds returns the axis-aligned box the entity covers.
	Bounds() core.Box

	// Asset returns the visual asset identifier the entity was created from.
	Asset() string
}

// AnimatedEntity is a renderable that can play named animations.
type AnimatedEntity interface {
	Renderable

	// Play starts a looping animation registered with Scene.CreateAnimation.
	// Playing the animation that is already running keeps its current frame.
	Play(key string)
	Stop()
	Animation() string

	// SetTexture swaps the visual asset, stopping any animation.
	SetTexture(asset string)
}

// PhysicsBody is a renderable with an arcade physics body.
type PhysicsBody interface {
	Renderable

	Velocity() core.Vec
	SetVelocity(x, y float64)
	SetVelocityX(x float64)
	SetVelocityY(y float64)

	// SetImmovable marks the body as unaffected by collision response.
	SetImmovable(immovable bool)
	Immovable() bool

	// Reset teleports the body and zeroes its velocity.
	Reset(x, y float64)
}

// Sprite is an animated entity with a physics body.
type Sprite interface {
	AnimatedEntity
	PhysicsBody
}

// Group is an ordered collection of entities that can be cleared in bulk.
type Group interface {
	// Create adds a new sprite to the scene and to the group.
	Create(x, y float64, asset string) Sprite
	Add(r Renderable)

	// Remove takes the entity out of the group and destroys it.
	Remove(r Renderable)

	// Children returns a snapshot of the current members.
	Children() []Renderable
	Len() int

	// Clear destroys every member.
	Clear()

	SetAlpha(alpha float64)
}

// Ground is a horizontally tiled strip whose texture can scroll.
type Ground interface {
	Renderable

	Width() float64
	SetWidth(w float64)
	TilePositionX() float64
	SetTilePositionX(x float64)
}

// Scene creates and owns visual entities.
type Scene interface {
	Width() float64
	Height() float64

	// Sprite creates an entity with a dynamic physics body.
	Sprite(x, y float64, asset string) Sprite
	// Image creates a body-less entity.
	Image(x, y float64, asset string) Renderable
	// TileSprite creates a tiled strip of the given size.
	TileSprite(x, y, w, h float64, asset string) Ground
	// Container groups children whose positions are relative to it and
	// whose alpha is multiplied by its own.
	Container(x, y float64, children ...Renderable) Renderable

	// NewGroup creates a display group; NewPhysicsGroup one whose
	// created members carry physics bodies.
	NewGroup() Group
	NewPhysicsGroup() Group

	CreateAnimation(key, asset string, frameRate float64)
	PauseAnimations()
	ResumeAnimations()
}

// Physics reports contacts between bodies.
type Physics interface {
	// Collider calls fn whenever a member of g touches body.
	Collider(g Group, body PhysicsBody, fn func())
	// Overlap calls fn whenever a and b overlap.
	Overlap(a, b PhysicsBody, fn func())

	Pause()
	Resume()
	Paused() bool
}

// Timer is the handle of a scheduled callback.
type Timer interface {
	// Cancel stops future invocations. It is safe to call more than once,
	// including from inside the callback.
	Cancel()
	Active() bool
}

// Scheduler runs callbacks on the host's frame clock.
type Scheduler interface {
	// Every calls fn each time delay elapses, at most once per frame,
	// until the returned timer is cancelled.
	Every(delay time.Duration, fn func()) Timer
}

// Input delivers pointer presses to interactive entities.
type Input interface {
	OnPointerDown(target Renderable, fn func())
}

// Player is the runner character the controller drives.
type Player interface {
	Sprite

	PlayRunAnimation()
	Jump()
	Duck(down bool)
	Die()
}
