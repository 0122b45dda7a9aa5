// internal/tile/tile.go
package tile

import (
	"errors"
	"fmt"
	"image"
	"math"

	"go-tile-puzzle/internal/config"
	"go-tile-puzzle/internal/defs"
)

// ErrUnknownTileType is returned when a tile name has no definition in defs.TileLibrary.
var ErrUnknownTileType = errors.New("unknown tile type")

// Tile is one drawable tile instance, either on the board, in stock or in hand.
type Tile struct {
	Def      defs.TileDefinition
	Name     string
	Rotation int
	Frozen   bool
	I, J     int     // клетка сетки
	X, Y     float64 // левый верхний угол клетки в пикселях, без учёта смещения доски

	// Set by whoever renders the tile.
	FromStock bool
	Hitbox    image.Rectangle
	OnHover   func(*Tile)

	Dragging     bool
	DragX, DragY float64 // центр плитки на экране во время перетаскивания
}

// New builds a positioned tile of the given type.
func New(name string, rotation int, frozen bool, i, j int) (*Tile, error) {
	def, ok := defs.TileLibrary[name]
	if !ok {
		return nil, fmt.Errorf("tile %q: %w", name, ErrUnknownTileType)
	}
	t := &Tile{
		Def:    def,
		Name:   name,
		Frozen: frozen,
	}
	t.SetRotation(rotation)
	t.MoveTo(i, j)
	return t, nil
}

// MoveTo places the tile on grid cell (i, j).
func (t *Tile) MoveTo(i, j int) {
	t.I, t.J = i, j
	t.X = float64(i) * config.TileSize
	t.Y = float64(j) * config.TileSize
}

// SetRotation normalizes r into [0, Def.Rotations).
func (t *Tile) SetRotation(r int) {
	n := t.Def.Rotations
	if n < 1 {
		n = 1
	}
	t.Rotation = ((r % n) + n) % n
}

// Rotate advances the tile by one rotation step. Frozen tiles do not rotate.
func (t *Tile) Rotate() {
	if t.Frozen {
		return
	}
	t.SetRotation(t.Rotation + 1)
}

// Center returns the tile center in screen pixels for the given board origin.
func (t *Tile) Center(originX, originY float64) (float64, float64) {
	if t.Dragging {
		return t.DragX, t.DragY
	}
	return originX + t.X + config.TileSize/2, originY + t.Y + config.TileSize/2
}

// CellRect returns the screen rectangle of the tile's cell.
func (t *Tile) CellRect(originX, originY float64) image.Rectangle {
	x0 := int(originX + t.X)
	y0 := int(originY + t.Y)
	return image.Rect(x0, y0, x0+int(config.TileSize), y0+int(config.TileSize))
}

// Contains reports whether (x, y) falls inside the tile hitbox.
func (t *Tile) Contains(x, y int) bool {
	return image.Pt(x, y).In(t.Hitbox)
}

// Hover invokes the hover callback if one is attached.
func (t *Tile) Hover() {
	if t.OnHover != nil {
		t.OnHover(t)
	}
}

// angle returns the glyph angle in radians. A full turn is split into
// Def.Rotations steps over a half circle for line-like glyphs.
func (t *Tile) angle() float64 {
	n := t.Def.Rotations
	if n <= 1 {
		return 0
	}
	return float64(t.Rotation) * math.Pi / float64(n)
}
