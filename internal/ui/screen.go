// internal/ui/screen.go
package ui

import (
	"image/color"

	"go-tile-puzzle/pkg/canvas"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var _ canvas.Canvas = (*Screen)(nil)

// Screen adapts an ebiten image to canvas.Canvas.
type Screen struct {
	Target   *ebiten.Image
	FontFace font.Face
}

// NewScreen wraps target. A nil face falls back to basicfont.
func NewScreen(target *ebiten.Image, face font.Face) *Screen {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Screen{Target: target, FontFace: face}
}

func (s *Screen) FillRect(x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(s.Target, x, y, w, h, c, false)
}

func (s *Screen) StrokeRect(x, y, w, h, width float32, c color.Color) {
	vector.StrokeRect(s.Target, x, y, w, h, width, c, false)
}

func (s *Screen) FillCircle(cx, cy, r float32, c color.Color) {
	vector.DrawFilledCircle(s.Target, cx, cy, r, c, true)
}

func (s *Screen) StrokeLine(x0, y0, x1, y1, width float32, c color.Color) {
	vector.StrokeLine(s.Target, x0, y0, x1, y1, width, c, true)
}

func (s *Screen) DrawText(str string, x, y int, c color.Color) {
	text.Draw(s.Target, str, s.FontFace, x, y, c)
}
