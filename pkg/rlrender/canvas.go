// pkg/rlrender/canvas.go
package rlrender

import (
	"image/color"

	"go-tile-puzzle/pkg/canvas"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var _ canvas.Canvas = Canvas{}

// Canvas draws with raylib's immediate mode calls. Use between
// rl.BeginDrawing and rl.EndDrawing.
type Canvas struct {
	FontSize int32
}

func (c Canvas) FillRect(x, y, w, h float32, clr color.Color) {
	rl.DrawRectangleV(rl.NewVector2(x, y), rl.NewVector2(w, h), ColorToRL(clr))
}

func (c Canvas) StrokeRect(x, y, w, h, width float32, clr color.Color) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, w, h), width, ColorToRL(clr))
}

func (c Canvas) FillCircle(cx, cy, r float32, clr color.Color) {
	rl.DrawCircleV(rl.NewVector2(cx, cy), r, ColorToRL(clr))
}

func (c Canvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	rl.DrawLineEx(rl.NewVector2(x0, y0), rl.NewVector2(x1, y1), width, ColorToRL(clr))
}

// DrawText takes a baseline y like the ebiten text package; raylib wants
// the top of the glyphs.
func (c Canvas) DrawText(s string, x, y int, clr color.Color) {
	size := c.FontSize
	if size <= 0 {
		size = 10
	}
	rl.DrawText(s, int32(x), int32(y)-size, size, ColorToRL(clr))
}

// ColorToRL преобразует стандартный color.Color в rl.Color
func ColorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
