// internal/dnd/controller.go
package dnd

import (
	"image"
	"log"

	"go-tile-puzzle/internal/board"
	"go-tile-puzzle/internal/event"
	"go-tile-puzzle/internal/stock"
	"go-tile-puzzle/internal/stockview"
	"go-tile-puzzle/internal/tile"
)

var _ stockview.DragBinder = (*Controller)(nil)

// Pointer is one sample of mouse state, filled by the front end each frame.
type Pointer struct {
	X, Y             int
	Pressed          bool
	JustPressed      bool
	JustReleased     bool
	RightJustPressed bool
}

// Controller moves tiles between the stock panel and the board.
type Controller struct {
	board  *board.Board
	events *event.Dispatcher
	host   stockview.Host
	panel  *stockview.Panel

	bound    map[*tile.Tile]struct{}
	held     *tile.Tile
	heldFrom *board.Cell // nil, если плитка взята из стока
}

func NewController(b *board.Board, events *event.Dispatcher) *Controller {
	return &Controller{
		board:  b,
		events: events,
		bound:  make(map[*tile.Tile]struct{}),
	}
}

// BindDrag makes a stock tile draggable. Frozen tiles stay where they are.
func (c *Controller) BindDrag(t *tile.Tile, host stockview.Host, panel *stockview.Panel) {
	if t.Frozen {
		return
	}
	c.host = host
	c.panel = panel
	c.bound[t] = struct{}{}
}

// Bound reports whether t was handed to BindDrag and is still in stock.
func (c *Controller) Bound(t *tile.Tile) bool {
	_, ok := c.bound[t]
	return ok
}

// Dragged is the tile currently in hand, nil if none.
func (c *Controller) Dragged() *tile.Tile {
	return c.held
}

// Update processes one pointer sample.
func (c *Controller) Update(p Pointer) error {
	switch {
	case p.JustPressed && c.held == nil:
		return c.pickUp(p)
	case p.JustReleased && c.held != nil:
		c.drop(p)
	case p.Pressed && c.held != nil:
		c.held.DragX, c.held.DragY = float64(p.X), float64(p.Y)
	case p.RightJustPressed && c.held == nil:
		if cell, ok := c.board.CellAt(p.X, p.Y); ok {
			if t := c.board.At(cell); t != nil {
				t.Rotate()
			}
		}
	}
	return nil
}

func (c *Controller) pickUp(p Pointer) error {
	if c.panel != nil {
		if slot := c.panel.SlotAt(p.X, p.Y); slot != nil && slot.Tile != nil && c.Bound(slot.Tile) {
			if stock.IsEmpty(c.panel.Stock().Counts(), slot.Name) {
				return nil
			}
			t := slot.Tile
			c.panel.UpdateCount(slot.Name, -1)
			if err := c.panel.RegenerateTile(slot); err != nil {
				return err
			}
			c.grab(t, p, nil)
			return nil
		}
	}

	cell, ok := c.board.CellAt(p.X, p.Y)
	if !ok {
		return nil
	}
	t := c.board.At(cell)
	if t == nil || t.Frozen {
		return nil
	}
	c.board.Remove(cell)
	c.grab(t, p, &cell)
	return nil
}

func (c *Controller) grab(t *tile.Tile, p Pointer, from *board.Cell) {
	c.held = t
	c.heldFrom = from
	t.Dragging = true
	t.DragX, t.DragY = float64(p.X), float64(p.Y)
	var host stockview.Host = c.board
	if c.host != nil {
		host = c.host
	}
	if cb := host.Callbacks().TileMouseover; cb != nil {
		cb(t)
	}
}

func (c *Controller) drop(p Pointer) {
	t := c.held
	from := c.heldFrom
	c.held, c.heldFrom = nil, nil
	t.Dragging = false
	delete(c.bound, t)

	if cell, ok := c.board.CellAt(p.X, p.Y); ok && c.board.At(cell) == nil {
		if err := c.board.Place(t, cell); err == nil {
			c.events.Dispatch(event.Event{
				Type: event.TilePlaced,
				Data: event.TileMove{Name: t.Name, I: cell.I, J: cell.J},
			})
			return
		}
	}

	overPanel := c.panel != nil && image.Pt(p.X, p.Y).In(c.panel.Bounds())
	if from != nil && !overPanel {
		// не туда, возвращаем на прежнюю клетку
		if err := c.board.Place(t, *from); err != nil {
			log.Printf("dnd: cannot restore %s to (%d,%d): %v", t.Name, from.I, from.J, err)
		}
		return
	}

	if c.panel == nil {
		return
	}
	c.panel.UpdateCount(t.Name, +1)
	c.events.Dispatch(event.Event{
		Type: event.TileReturned,
		Data: event.TileMove{Name: t.Name, I: t.I, J: t.J},
	})
}
