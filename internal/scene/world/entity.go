package world

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/scene"
)

// member is satisfied by *Entity and by any type that embeds it.
type member interface {
	worldEntity() *Entity
}

func (e *Entity) worldEntity() *Entity { return e }

// entityOf returns the entity behind v. It panics when v is not backed by an
// entity of w.
func (w *World) entityOf(op string, v any) *Entity {
	m, ok := v.(member)
	if !ok {
		panic(fmt.Sprintf("world: %s: %T is not a world entity", op, v))
	}
	e := m.worldEntity()
	if e == nil || e.world != w {
		panic(fmt.Sprintf("world: %s: %T belongs to another world", op, v))
	}
	return e
}

type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyDynamic
)

// Entity is the single concrete entity type of the world. Depending on how it
// was created it acts as an image, a sprite, a tile sprite or a container.
type Entity struct {
	world  *World
	asset  string
	pos    core.Vec
	origin core.Vec
	size   core.Vec
	alpha  float64

	parent   *Entity
	children []*Entity

	body      bodyKind
	vel       core.Vec
	gravity   float64
	immovable bool
	bounded   bool // kept inside the world rectangle

	anim      string
	frame     int
	animClock time.Duration

	tileX     float64
	destroyed bool
}

var (
	_ scene.Sprite = (*Entity)(nil)
	_ scene.Ground = (*Entity)(nil)
)

func (e *Entity) Position() core.Vec { return e.pos }

func (e *Entity) SetPosition(x, y float64) {
	e.pos = core.Vec{X: x, Y: y}
}

func (e *Entity) SetOrigin(x, y float64) {
	e.origin = core.Vec{X: x, Y: y}
}

func (e *Entity) Alpha() float64 { return e.alpha }

func (e *Entity) SetAlpha(alpha float64) {
	e.alpha = core.ClampF(alpha, 0, 1)
}

func (e *Entity) Asset() string { return e.asset }

// Bounds returns the world-space box, including any container offset.
func (e *Entity) Bounds() core.Box {
	x := e.pos.X - e.origin.X*e.size.X
	y := e.pos.Y - e.origin.Y*e.size.Y
	if e.parent != nil {
		x += e.parent.pos.X
		y += e.parent.pos.Y
	}
	return core.NewBox(x, y, e.size.X, e.size.Y)
}

// SetSize changes the body and display size, keeping the anchor in place.
func (e *Entity) SetSize(w, h float64) {
	e.size = core.Vec{X: w, Y: h}
}

// SetGravity sets the downward acceleration of the body in units/s².
func (e *Entity) SetGravity(g float64) {
	e.gravity = g
}

// SetCollideWorldBounds keeps the body inside the world rectangle.
func (e *Entity) SetCollideWorldBounds(on bool) {
	e.bounded = on
}

// OnFloor reports whether the body rests on the bottom of the world.
func (e *Entity) OnFloor() bool {
	return e.bounded && e.Bounds().Bottom >= e.world.height
}

// Destroyed reports whether the entity was removed from the world.
func (e *Entity) Destroyed() bool { return e.destroyed }

func (e *Entity) visibleAlpha() float64 {
	if e.parent != nil {
		return e.alpha * e.parent.visibleAlpha()
	}
	return e.alpha
}

// Animation

func (e *Entity) Play(key string) {
	if e.anim == key {
		return
	}
	def, ok := e.world.anims[key]
	if !ok {
		return
	}
	e.anim = key
	e.frame = 0
	e.animClock = 0
	e.applyAsset(def.asset)
}

func (e *Entity) Stop() {
	e.anim = ""
}

func (e *Entity) Animation() string { return e.anim }

func (e *Entity) SetTexture(asset string) {
	e.anim = ""
	e.frame = 0
	e.applyAsset(asset)
}

// Frame returns the current animation frame index.
func (e *Entity) Frame() int { return e.frame }

func (e *Entity) applyAsset(asset string) {
	e.asset = asset
	a := e.world.assets.lookup(asset)
	e.size = core.Vec{X: a.Width, Y: a.Height}
}

func (e *Entity) animate(delta time.Duration) {
	if e.anim == "" {
		return
	}
	def := e.world.anims[e.anim]
	e.animClock += delta
	e.frame = int(e.animClock.Seconds() * def.frameRate)
}

// Physics body

func (e *Entity) Velocity() core.Vec { return e.vel }

func (e *Entity) SetVelocity(x, y float64) {
	e.vel = core.Vec{X: x, Y: y}
}

func (e *Entity) SetVelocityX(x float64) { e.vel.X = x }

func (e *Entity) SetVelocityY(y float64) { e.vel.Y = y }

func (e *Entity) SetImmovable(immovable bool) { e.immovable = immovable }

func (e *Entity) Immovable() bool { return e.immovable }

func (e *Entity) Reset(x, y float64) {
	e.pos = core.Vec{X: x, Y: y}
	e.vel = core.Vec{}
}

// Tile sprite

func (e *Entity) Width() float64 { return e.size.X }

func (e *Entity) SetWidth(w float64) { e.size.X = w }

func (e *Entity) TilePositionX() float64 { return e.tileX }

func (e *Entity) SetTilePositionX(x float64) { e.tileX = x }
