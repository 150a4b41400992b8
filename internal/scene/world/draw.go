package world

import (
	"math"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// visibleThreshold is the alpha below which an entity is not drawn.
// Terminal cells cannot blend, so alpha is effectively on or off.
const visibleThreshold = 0.5

// Viewport maps world units onto a rectangle of screen cells.
type Viewport struct {
	Area   core.Rect
	scaleX float64
	scaleY float64
}

// Viewport returns the mapping of the whole world onto area.
func (w *World) Viewport(area core.Rect) Viewport {
	v := Viewport{Area: area}
	if w.width > 0 {
		v.scaleX = float64(area.W) / w.width
	}
	if w.height > 0 {
		v.scaleY = float64(area.H) / w.height
	}
	return v
}

// ToWorld returns the world point at the center of screen cell (x, y).
func (v Viewport) ToWorld(x, y int) core.Vec {
	if v.scaleX == 0 || v.scaleY == 0 {
		return core.Vec{}
	}
	return core.Vec{
		X: (float64(x-v.Area.X) + 0.5) / v.scaleX,
		Y: (float64(y-v.Area.Y) + 0.5) / v.scaleY,
	}
}

// ToScreen returns the screen cell containing world point p.
func (v Viewport) ToScreen(p core.Vec) (int, int) {
	return v.Area.X + int(math.Floor(p.X*v.scaleX)), v.Area.Y + int(math.Floor(p.Y*v.scaleY))
}

// cells returns the screen cells covered by a world box. Any box with a
// positive size covers at least one cell.
func (v Viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Left * v.scaleX))
	y0 := int(math.Floor(b.Top * v.scaleY))
	x1 := int(math.Ceil(b.Right * v.scaleX))
	y1 := int(math.Ceil(b.Bottom * v.scaleY))
	if x1 <= x0 && b.Width() > 0 {
		x1 = x0 + 1
	}
	if y1 <= y0 && b.Height() > 0 {
		y1 = y0 + 1
	}
	return core.NewRect(v.Area.X+x0, v.Area.Y+y0, x1-x0, y1-y0)
}

// Draw renders every visible entity into area of dst, in creation order.
func (w *World) Draw(dst *core.Screen, area core.Rect) {
	v := w.Viewport(area)
	for _, e := range w.entities {
		w.drawEntity(dst, v, e)
	}
}

func (w *World) drawEntity(dst *core.Screen, v Viewport, e *Entity) {
	if e.destroyed || e.visibleAlpha() < visibleThreshold {
		return
	}
	for _, c := range e.children {
		w.drawEntity(dst, v, c)
	}

	a, ok := w.assets[e.asset]
	if !ok {
		return
	}
	art := a.frame(e.frame)
	if len(art) == 0 {
		return
	}

	r := v.cells(e.Bounds())
	if a.Tiled {
		drawTiled(dst, r, art, a.Color, int(math.Round(e.tileX*v.scaleX)))
		return
	}
	drawStretched(dst, r, art, a.Color)
}

// drawStretched samples art nearest-neighbour so it fills r.
func drawStretched(dst *core.Screen, r core.Rect, art []string, c core.Color) {
	rows := make([][]rune, len(art))
	for i, line := range art {
		rows[i] = []rune(line)
	}
	for dy := 0; dy < r.H; dy++ {
		row := rows[dy*len(rows)/r.H]
		if len(row) == 0 {
			continue
		}
		for dx := 0; dx < r.W; dx++ {
			ch := row[dx*len(row)/r.W]
			if ch == ' ' {
				continue
			}
			dst.SetColored(r.X+dx, r.Y+dy, ch, c)
		}
	}
}

// drawTiled repeats art horizontally, shifted left by offset cells.
// Rows beyond the art height are left empty.
func drawTiled(dst *core.Screen, r core.Rect, art []string, c core.Color, offset int) {
	for dy := 0; dy < r.H && dy < len(art); dy++ {
		row := []rune(art[dy])
		if len(row) == 0 {
			continue
		}
		for dx := 0; dx < r.W; dx++ {
			i := (dx + offset) % len(row)
			if i < 0 {
				i += len(row)
			}
			if row[i] == ' ' {
				continue
			}
			dst.SetColored(r.X+dx, r.Y+dy, row[i], c)
		}
	}
}
