package tile

import (
	"image/color"
	"math"

	"go-tile-puzzle/internal/config"
	"go-tile-puzzle/internal/defs"
	"go-tile-puzzle/pkg/canvas"
	"go-tile-puzzle/pkg/render"
)

// Draw paints the tile glyph centered on its cell (or on the drag point).
func (t *Tile) Draw(c canvas.Canvas, originX, originY float64) {
	cx, cy := t.Center(originX, originY)
	v := t.Def.Visuals
	scale := v.ScaleFactor
	if scale <= 0 {
		scale = config.TileGlyphScale
	}
	stroke := float32(v.StrokeWidth)
	if stroke <= 0 {
		stroke = config.TileStrokeWidth
	}
	r := float32(config.TileSize * scale)
	fill := v.Color
	if t.Dragging {
		fill = render.WithAlpha(fill, config.DragLiftAlpha)
	}
	x, y := float32(cx), float32(cy)

	switch v.Shape {
	case defs.ShapeCircle:
		c.FillCircle(x, y, r, fill)
	case defs.ShapeSquare:
		c.FillRect(x-r, y-r, 2*r, 2*r, fill)
	case defs.ShapeDiamond:
		c.StrokeLine(x, y-r, x+r, y, stroke, fill)
		c.StrokeLine(x+r, y, x, y+r, stroke, fill)
		c.StrokeLine(x, y+r, x-r, y, stroke, fill)
		c.StrokeLine(x-r, y, x, y-r, stroke, fill)
	case defs.ShapeCross:
		c.StrokeLine(x-r, y-r, x+r, y+r, stroke, fill)
		c.StrokeLine(x-r, y+r, x+r, y-r, stroke, fill)
	default: // ShapeLine
		half := float64(config.TileSize) * 0.4
		a := t.angle()
		dx, dy := float32(half*math.Cos(a)), float32(-half*math.Sin(a))
		c.StrokeLine(x-dx, y-dy, x+dx, y+dy, stroke, fill)
	}

	// направление для несимметричных фигур, кроме линий
	if v.Shape != defs.ShapeLine && t.Def.Rotations > 1 {
		a := 2 * t.angle()
		ex := x + float32(math.Cos(a))*r*1.4
		ey := y - float32(math.Sin(a))*r*1.4
		c.StrokeLine(x, y, ex, ey, stroke, fill)
	}

	if t.Frozen {
		rect := t.CellRect(originX, originY)
		c.StrokeRect(float32(rect.Min.X)+2, float32(rect.Min.Y)+2, float32(rect.Dx())-4, float32(rect.Dy())-4, 1, config.FrozenOutlineColor)
	}
}

// DrawOutline strokes the hitbox, used for the hovered tile.
func (t *Tile) DrawOutline(c canvas.Canvas, clr color.Color) {
	h := t.Hitbox
	if h.Empty() {
		return
	}
	c.StrokeRect(float32(h.Min.X), float32(h.Min.Y), float32(h.Dx()), float32(h.Dy()), float32(config.StrokeWidth), clr)
}
