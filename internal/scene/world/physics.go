package world

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-dino/internal/scene"
)

type collider struct {
	group *Group
	body  *Entity
	fn    func()
}

type overlap struct {
	a, b *Entity
	fn   func()
}

// Collider registers fn for contacts between any member of g and body.
// Contacts are detected only; bodies are not pushed apart.
func (w *World) Collider(g scene.Group, body scene.PhysicsBody, fn func()) {
	grp, ok := g.(*Group)
	if !ok || grp.world != w {
		panic(fmt.Sprintf("world: collider: %T is not a group of this world", g))
	}
	e := w.entityOf("collider", body)
	w.colliders = append(w.colliders, collider{group: grp, body: e, fn: fn})
}

// Overlap registers fn for frames in which a and b intersect.
func (w *World) Overlap(a, b scene.PhysicsBody, fn func()) {
	ea := w.entityOf("overlap", a)
	eb := w.entityOf("overlap", b)
	w.overlaps = append(w.overlaps, overlap{a: ea, b: eb, fn: fn})
}

func (w *World) Pause()       { w.physicsPaused = true }
func (w *World) Resume()      { w.physicsPaused = false }
func (w *World) Paused() bool { return w.physicsPaused }

// integrate moves dynamic bodies by their velocity and gravity.
func (w *World) integrate(delta time.Duration) {
	if w.physicsPaused {
		return
	}
	dt := delta.Seconds()

	for _, e := range w.entities {
		if e.body != bodyDynamic || e.destroyed {
			continue
		}
		e.vel.Y += e.gravity * dt
		e.pos.X += e.vel.X * dt
		e.pos.Y += e.vel.Y * dt

		if e.bounded {
			w.keepInside(e)
		}
	}
}

func (w *World) keepInside(e *Entity) {
	b := e.Bounds()
	// Place edges exactly on the boundary so resting bodies stay put.
	switch {
	case b.Bottom > w.height:
		e.pos.Y = w.height - e.size.Y + e.origin.Y*e.size.Y
		if e.vel.Y > 0 {
			e.vel.Y = 0
		}
	case b.Top < 0:
		e.pos.Y = e.origin.Y * e.size.Y
		if e.vel.Y < 0 {
			e.vel.Y = 0
		}
	}
	switch {
	case b.Left < 0:
		e.pos.X = e.origin.X * e.size.X
		e.vel.X = 0
	case b.Right > w.width:
		e.pos.X = w.width - e.size.X + e.origin.X*e.size.X
		e.vel.X = 0
	}
}

// resolveContacts fires overlap and collider callbacks. A callback that
// pauses physics stops the remaining checks for this frame.
func (w *World) resolveContacts() {
	if w.physicsPaused {
		return
	}

	for _, o := range w.overlaps {
		if w.physicsPaused {
			return
		}
		if o.a.destroyed || o.b.destroyed {
			continue
		}
		if o.a.Bounds().Intersects(o.b.Bounds()) {
			o.fn()
		}
	}

	for _, c := range w.colliders {
		if c.body.destroyed {
			continue
		}
		for _, m := range c.group.snapshot() {
			if w.physicsPaused {
				return
			}
			if m.destroyed {
				continue
			}
			if m.Bounds().Intersects(c.body.Bounds()) {
				c.fn()
			}
		}
	}
}

func (g *Group) snapshot() []*Entity {
	out := make([]*Entity, len(g.members))
	copy(out, g.members)
	return out
}
