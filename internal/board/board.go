// internal/board/board.go
package board

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sort"

	"go-tile-puzzle/internal/config"
	"go-tile-puzzle/internal/defs"
	"go-tile-puzzle/internal/event"
	"go-tile-puzzle/internal/stockview"
	"go-tile-puzzle/internal/tile"
	"go-tile-puzzle/pkg/canvas"
)

var (
	ErrOutOfBounds = errors.New("cell outside the board")
	ErrOccupied    = errors.New("cell already holds a tile")
)

// Cell is a grid position on the board.
type Cell struct {
	I, J int
}

// Board holds the tiles placed on the grid of one level.
type Board struct {
	Width, Height int
	Hovered       *tile.Tile

	originX, originY float64
	tiles            map[Cell]*tile.Tile
	events           *event.Dispatcher
}

// New builds the board of level and puts every frozen or pre-placed recipe on it.
func New(level *defs.Level, events *event.Dispatcher) (*Board, error) {
	b := &Board{
		Width:  level.Width,
		Height: level.Height,
		tiles:  make(map[Cell]*tile.Tile),
		events: events,
	}
	for _, r := range level.TileRecipes {
		if !r.OnBoard() {
			continue
		}
		t, err := tile.New(r.Name, r.Rotation, r.Frozen, r.I, r.J)
		if err != nil {
			return nil, err
		}
		if err := b.Place(t, Cell{r.I, r.J}); err != nil {
			return nil, fmt.Errorf("recipe %s at (%d,%d): %w", r.Name, r.I, r.J, err)
		}
	}
	return b, nil
}

// SetOrigin sets the screen position of cell (0, 0).
func (b *Board) SetOrigin(x, y float64) {
	b.originX, b.originY = x, y
	for c, t := range b.tiles {
		t.Hitbox = b.cellRect(c)
	}
}

func (b *Board) Origin() (float64, float64) { return b.originX, b.originY }

// Callbacks returns the hooks handed to tile renderers.
func (b *Board) Callbacks() stockview.Callbacks {
	return stockview.Callbacks{TileMouseover: b.tileMouseover}
}

func (b *Board) tileMouseover(t *tile.Tile) {
	if b.Hovered == t {
		return
	}
	b.Hovered = t
	b.events.Dispatch(event.Event{Type: event.TileHovered, Data: t})
}

// Contains reports whether c lies on the board.
func (b *Board) Contains(c Cell) bool {
	return c.I >= 0 && c.J >= 0 && c.I < b.Width && c.J < b.Height
}

// CellAt converts screen coordinates to a board cell.
func (b *Board) CellAt(x, y int) (Cell, bool) {
	i := int(math.Floor((float64(x) - b.originX) / config.TileSize))
	j := int(math.Floor((float64(y) - b.originY) / config.TileSize))
	c := Cell{i, j}
	return c, b.Contains(c)
}

// At returns the tile on c, or nil.
func (b *Board) At(c Cell) *tile.Tile {
	return b.tiles[c]
}

// Place puts t on c and moves it there.
func (b *Board) Place(t *tile.Tile, c Cell) error {
	if !b.Contains(c) {
		return ErrOutOfBounds
	}
	if b.tiles[c] != nil {
		return ErrOccupied
	}
	t.MoveTo(c.I, c.J)
	t.FromStock = false
	t.Hitbox = b.cellRect(c)
	t.OnHover = b.tileMouseover
	b.tiles[c] = t
	return nil
}

// Remove takes the tile off c and returns it.
func (b *Board) Remove(c Cell) *tile.Tile {
	t := b.tiles[c]
	if t == nil {
		return nil
	}
	delete(b.tiles, c)
	if b.Hovered == t {
		b.Hovered = nil
	}
	return t
}

// Tiles returns placed tiles in row-major order.
func (b *Board) Tiles() []*tile.Tile {
	out := make([]*tile.Tile, 0, len(b.tiles))
	for _, t := range b.tiles {
		out = append(out, t)
	}
	sort.Slice(out, func(x, y int) bool {
		if out[x].J != out[y].J {
			return out[x].J < out[y].J
		}
		return out[x].I < out[y].I
	})
	return out
}

// Hover runs hit-testing over board tiles. Returns the tile under the pointer.
func (b *Board) Hover(x, y int) *tile.Tile {
	c, ok := b.CellAt(x, y)
	if !ok {
		return nil
	}
	t := b.tiles[c]
	if t != nil {
		t.Hover()
	}
	return t
}

// Bounds is the screen rectangle of the whole grid.
func (b *Board) Bounds() image.Rectangle {
	return image.Rect(
		int(b.originX), int(b.originY),
		int(b.originX+float64(b.Width)*config.TileSize), int(b.originY+float64(b.Height)*config.TileSize),
	)
}

func (b *Board) cellRect(c Cell) image.Rectangle {
	x0 := int(b.originX + float64(c.I)*config.TileSize)
	y0 := int(b.originY + float64(c.J)*config.TileSize)
	return image.Rect(x0, y0, x0+int(config.TileSize), y0+int(config.TileSize))
}

// Render paints the grid and the placed tiles.
func (b *Board) Render(c canvas.Canvas) {
	for j := 0; j < b.Height; j++ {
		for i := 0; i < b.Width; i++ {
			r := b.cellRect(Cell{i, j})
			c.FillRect(float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.BoardCellColor)
			c.StrokeRect(float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, config.BoardGridColor)
		}
	}
	for _, t := range b.Tiles() {
		t.Draw(c, b.originX, b.originY)
	}
	if b.Hovered != nil && !b.Hovered.Dragging && !b.Hovered.FromStock {
		b.Hovered.DrawOutline(c, config.HoverOutlineColor)
	}
}
