// internal/ui/status_bar.go
package ui

import (
	"fmt"

	"go-tile-puzzle/internal/config"
	"go-tile-puzzle/internal/event"
	"go-tile-puzzle/internal/tile"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// StatusBar is the strip at the bottom of the screen: the hovered tile on the
// left, the last stock event on the right.
type StatusBar struct {
	Y        float32
	Height   float32
	fontFace font.Face

	Hover string
	Last  string
}

func NewStatusBar(y, height float32, fontFace font.Face) *StatusBar {
	return &StatusBar{Y: y, Height: height, fontFace: fontFace}
}

// OnEvent implements event.Listener.
func (s *StatusBar) OnEvent(e event.Event) {
	switch e.Type {
	case event.TileHovered:
		if t, ok := e.Data.(*tile.Tile); ok && t != nil {
			s.Hover = fmt.Sprintf("%s: %s", t.Name, t.Def.Description)
		}
	case event.StockChanged:
		c := e.Data.(event.StockChange)
		s.Last = fmt.Sprintf("%s %+d (x %d)", c.Name, c.Delta, c.Count)
	case event.TilePlaced:
		m := e.Data.(event.TileMove)
		s.Last = fmt.Sprintf("%s placed at (%d,%d)", m.Name, m.I, m.J)
	case event.TileReturned:
		m := e.Data.(event.TileMove)
		s.Last = fmt.Sprintf("%s returned to stock", m.Name)
	}
}

func (s *StatusBar) Draw(screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, s.Y, w, s.Height, config.StockEmptyColor, false)
	vector.StrokeLine(screen, 0, s.Y, w, s.Y, 1, config.StockBorderColor, false)

	baseline := int(s.Y + s.Height - 7)
	text.Draw(screen, s.Hover, s.fontFace, 8, baseline, config.TextLightColor)

	if s.Last != "" {
		width := text.BoundString(s.fontFace, s.Last).Dx()
		text.Draw(screen, s.Last, s.fontFace, int(w)-width-8, baseline, config.TextDimColor)
	}
}
