package world

import (
	"slices"

	"github.com/vovakirdan/tui-dino/internal/scene"
)

// Group is an ordered set of entities.
type Group struct {
	world   *World
	body    bodyKind
	members []*Entity
}

var _ scene.Group = (*Group)(nil)

func (w *World) NewGroup() scene.Group {
	return &Group{world: w, body: bodyNone}
}

func (w *World) NewPhysicsGroup() scene.Group {
	return &Group{world: w, body: bodyDynamic}
}

func (g *Group) Create(x, y float64, asset string) scene.Sprite {
	e := g.world.newEntity(x, y, asset, g.body)
	g.members = append(g.members, e)
	return e
}

// Add appends r unless it is destroyed or already a member.
func (g *Group) Add(r scene.Renderable) {
	e := g.world.entityOf("group add", r)
	if e.destroyed || slices.Contains(g.members, e) {
		return
	}
	g.members = append(g.members, e)
}

func (g *Group) Remove(r scene.Renderable) {
	e := g.world.entityOf("group remove", r)
	g.members = slices.DeleteFunc(g.members, func(x *Entity) bool { return x == e })
	g.world.destroy(e)
}

func (g *Group) Children() []scene.Renderable {
	out := make([]scene.Renderable, len(g.members))
	for i, e := range g.members {
		out[i] = e
	}
	return out
}

func (g *Group) Len() int { return len(g.members) }

func (g *Group) Clear() {
	for _, e := range g.members {
		g.world.destroy(e)
	}
	g.members = g.members[:0]
}

func (g *Group) SetAlpha(alpha float64) {
	for _, e := range g.members {
		e.SetAlpha(alpha)
	}
}
