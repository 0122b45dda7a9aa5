// internal/ui/level_list.go
package ui

import (
	"fmt"
	"strings"

	"go-tile-puzzle/internal/config"
	"go-tile-puzzle/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// LevelList draws the level pack as a vertical menu.
type LevelList struct {
	X, Y     float32
	Width    float32
	Selected int
	fontFace font.Face
	levels   []*defs.Level
}

func NewLevelList(x, y, width float32, fontFace font.Face, levels []*defs.Level) *LevelList {
	return &LevelList{X: x, Y: y, Width: width, fontFace: fontFace, levels: levels}
}

// Move shifts the selection by delta, wrapping around.
func (l *LevelList) Move(delta int) {
	n := len(l.levels)
	if n == 0 {
		return
	}
	l.Selected = ((l.Selected+delta)%n + n) % n
}

// Current returns the selected level, nil for an empty pack.
func (l *LevelList) Current() *defs.Level {
	if len(l.levels) == 0 {
		return nil
	}
	return l.levels[l.Selected]
}

// Entry is the menu line for level i.
func (l *LevelList) Entry(i int) string {
	lvl := l.levels[i]
	if lvl.Group == "" {
		return fmt.Sprintf("%s. %s", toRoman(i+1), lvl.Name)
	}
	return fmt.Sprintf("%s. %s: %s", toRoman(i+1), lvl.Group, lvl.Name)
}

func (l *LevelList) Draw(screen *ebiten.Image) {
	for i := range l.levels {
		y := l.Y + float32(i*config.MenuLineHeight)
		if i == l.Selected {
			vector.DrawFilledRect(screen, l.X-4, y-15, l.Width, config.MenuLineHeight, config.MenuSelectedColor, false)
		}
		text.Draw(screen, l.Entry(i), l.fontFace, int(l.X), int(y), config.TextLightColor)
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}
