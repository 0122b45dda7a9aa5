// pkg/canvas/canvas.go
package canvas

import "image/color"

// Canvas is the drawing surface game objects paint themselves onto.
// Coordinates are screen pixels.
type Canvas interface {
	FillRect(x, y, w, h float32, c color.Color)
	StrokeRect(x, y, w, h, width float32, c color.Color)
	FillCircle(cx, cy, r float32, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, c color.Color)
	DrawText(s string, x, y int, c color.Color)
}
