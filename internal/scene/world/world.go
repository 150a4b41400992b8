// Package world is a small frame-driven 2D engine that satisfies the scene
// interfaces: entities, groups, arcade-style AABB physics, a scheduler
// advanced by frame deltas, pointer input and drawing onto a core.Screen.
//
// A World is not safe for concurrent use. The host calls Tick once per
// frame and delivers input between ticks.
package world

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/scene"
)

type animation struct {
	asset     string
	frameRate float64
}

// World holds every entity of one scene.
type World struct {
	width  float64
	height float64
	assets Catalog

	entities   []*Entity // top-level display list, in draw order
	anims      map[string]animation
	animPaused bool

	physicsPaused bool
	colliders     []collider
	overlaps      []overlap

	timers   []*timer
	handlers []pointerHandler

	frames uint64
}

var (
	_ scene.Scene     = (*World)(nil)
	_ scene.Physics   = (*World)(nil)
	_ scene.Scheduler = (*World)(nil)
	_ scene.Input     = (*World)(nil)
)

// New creates an empty world of the given size in world units.
func New(width, height float64, assets Catalog) *World {
	if assets == nil {
		assets = Catalog{}
	}
	return &World{
		width:  width,
		height: height,
		assets: assets,
		anims:  make(map[string]animation),
	}
}

func (w *World) Width() float64  { return w.width }
func (w *World) Height() float64 { return w.height }

// Frames returns how many ticks the world has run.
func (w *World) Frames() uint64 { return w.frames }

func (w *World) newEntity(x, y float64, asset string, body bodyKind) *Entity {
	e := &Entity{
		world:  w,
		pos:    core.Vec{X: x, Y: y},
		origin: core.Vec{X: 0.5, Y: 0.5},
		alpha:  1,
		body:   body,
	}
	e.applyAsset(asset)
	w.entities = append(w.entities, e)
	return e
}

// NewSprite is Sprite returning the concrete type, for hosts that need
// gravity or world-bounds settings.
func (w *World) NewSprite(x, y float64, asset string) *Entity {
	return w.newEntity(x, y, asset, bodyDynamic)
}

func (w *World) Sprite(x, y float64, asset string) scene.Sprite {
	return w.NewSprite(x, y, asset)
}

func (w *World) Image(x, y float64, asset string) scene.Renderable {
	return w.newEntity(x, y, asset, bodyNone)
}

func (w *World) TileSprite(x, y, width, height float64, asset string) scene.Ground {
	e := w.newEntity(x, y, asset, bodyNone)
	e.SetSize(width, height)
	return e
}

// Container reparents the children; their positions become relative to it.
func (w *World) Container(x, y float64, children ...scene.Renderable) scene.Renderable {
	c := w.newEntity(x, y, "", bodyNone)
	c.size = core.Vec{}
	for _, r := range children {
		child := w.entityOf("container", r)
		w.detach(child)
		child.parent = c
		c.children = append(c.children, child)
	}
	return c
}

func (w *World) CreateAnimation(key, asset string, frameRate float64) {
	w.anims[key] = animation{asset: asset, frameRate: frameRate}
}

func (w *World) PauseAnimations()  { w.animPaused = true }
func (w *World) ResumeAnimations() { w.animPaused = false }

// AnimationsPaused reports whether PauseAnimations is in effect.
func (w *World) AnimationsPaused() bool { return w.animPaused }

// destroy removes the entity and its children from the world.
func (w *World) destroy(e *Entity) {
	if e.destroyed {
		return
	}
	e.destroyed = true
	w.detach(e)
	for _, c := range e.children {
		w.destroy(c)
	}
}

// BringToTop moves a top-level entity to the end of the draw order.
func (w *World) BringToTop(e *Entity) {
	if e.world != w || e.parent != nil || e.destroyed {
		return
	}
	w.detach(e)
	w.entities = append(w.entities, e)
}

func (w *World) detach(e *Entity) {
	w.entities = slices.DeleteFunc(w.entities, func(x *Entity) bool { return x == e })
}

// Tick advances the world by one frame.
// Order: scheduled timers, body integration, update, contacts, animations.
// update may be nil.
func (w *World) Tick(delta time.Duration, update func(time.Duration)) {
	if delta < 0 {
		delta = 0
	}
	w.frames++

	w.runTimers(delta)
	w.integrate(delta)
	if update != nil {
		update(delta)
	}
	w.resolveContacts()

	if !w.animPaused {
		for _, e := range w.entities {
			e.animate(delta)
		}
	}
}
