package world

import (
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/scene"
)

type pointerHandler struct {
	target *Entity
	fn     func()
}

// OnPointerDown makes target interactive. Hidden (alpha 0) targets ignore presses.
func (w *World) OnPointerDown(target scene.Renderable, fn func()) {
	e := w.entityOf("pointer", target)
	w.handlers = append(w.handlers, pointerHandler{target: e, fn: fn})
}

// PointerDown delivers a press at world point p to the most recently
// registered visible target under it. It reports whether a target took it.
func (w *World) PointerDown(p core.Vec) bool {
	for i := len(w.handlers) - 1; i >= 0; i-- {
		h := w.handlers[i]
		if h.target.destroyed || h.target.visibleAlpha() <= 0 {
			continue
		}
		if h.target.Bounds().Contains(p) {
			h.fn()
			return true
		}
	}
	return false
}
