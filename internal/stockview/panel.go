// internal/stockview/panel.go
package stockview

import (
	"errors"
	"fmt"
	"image"

	"go-tile-puzzle/internal/config"
	"go-tile-puzzle/internal/defs"
	"go-tile-puzzle/internal/event"
	"go-tile-puzzle/internal/stock"
	"go-tile-puzzle/internal/tile"
)

// ErrNotInitialized is returned by DrawStock before Initialize was called.
var ErrNotInitialized = errors.New("stock panel: no level")

// Callbacks are the hooks the board hands to anything that renders tiles.
type Callbacks struct {
	TileMouseover func(*tile.Tile)
}

// Host is the board side of the panel.
type Host interface {
	Callbacks() Callbacks
}

// DragBinder attaches pickup/drop handling to a freshly rendered tile.
// When a tile leaves a stock slot the binder calls UpdateCount(name, -1)
// and RegenerateTile(slot) on the panel.
type DragBinder interface {
	BindDrag(t *tile.Tile, host Host, panel *Panel)
}

// Slot is one rendered stock position. Slots are owned by the Panel and
// rebuilt by DrawStock.
type Slot struct {
	Name           string
	Index          int
	I, J           int
	Background     image.Rectangle
	Label          string
	LabelX, LabelY int
	Empty          bool
	Tile           *tile.Tile // плитка, которую можно взять из слота
}

// Panel renders the stock column right of the board and keeps the visual
// slot state in sync with the counts.
type Panel struct {
	stock  *stock.Stock
	level  *defs.Level
	host   Host
	binder DragBinder
	events *event.Dispatcher

	originX, originY float64
	maxRows          int
	slots            []*Slot
}

func NewPanel(host Host, binder DragBinder, events *event.Dispatcher) *Panel {
	return &Panel{
		stock:  stock.New(),
		host:   host,
		binder: binder,
		events: events,
	}
}

// SetOrigin sets the screen position of grid cell (0, 0), shared with the board.
func (p *Panel) SetOrigin(x, y float64) {
	p.originX, p.originY = x, y
}

// Initialize seeds the stock from level. Slots are not touched until DrawStock.
func (p *Panel) Initialize(level *defs.Level) {
	p.level = level
	p.stock.Initialize(level)
	p.maxRows = stock.MaxRows(level, config.StockBottomMargin)
}

// DrawStock drops all slots and builds them again from the current stock.
func (p *Panel) DrawStock() error {
	p.slots = nil
	if p.level == nil {
		return ErrNotInitialized
	}

	placements := stock.Placements(p.stock.UsedTileNames(), p.maxRows, p.level.Width)
	slots := make([]*Slot, 0, len(placements))
	for _, pl := range placements {
		slot := &Slot{
			Name:       pl.Name,
			Index:      pl.Index,
			I:          pl.I,
			J:          pl.J,
			Background: p.cellRect(pl.I, pl.J),
		}
		p.refreshSlot(slot)
		if err := p.renderSlotTile(slot); err != nil {
			return fmt.Errorf("stock slot %d: %w", pl.Index, err)
		}
		slots = append(slots, slot)
	}
	p.slots = slots
	return nil
}

// RegenerateTile puts a new draggable tile into slot, replacing whatever
// tile it held.
func (p *Panel) RegenerateTile(slot *Slot) error {
	return p.renderSlotTile(slot)
}

// renderSlotTile is shared by DrawStock and RegenerateTile.
func (p *Panel) renderSlotTile(slot *Slot) error {
	t, err := tile.New(slot.Name, 0, false, slot.I, slot.J)
	if err != nil {
		return err
	}
	t.FromStock = true
	t.Hitbox = slot.Background
	if p.host != nil {
		t.OnHover = p.host.Callbacks().TileMouseover
	}
	slot.Tile = t

	if p.binder != nil {
		p.binder.BindDrag(t, p.host, p)
	}
	return nil
}

// UpdateCount changes the stock of name by delta and refreshes every slot.
func (p *Panel) UpdateCount(name string, delta int) int {
	count := p.stock.UpdateCount(name, delta)
	for _, slot := range p.slots {
		p.refreshSlot(slot)
	}

	p.events.Dispatch(event.Event{
		Type: event.StockChanged,
		Data: event.StockChange{Name: name, Delta: delta, Count: count},
	})
	return count
}

func (p *Panel) refreshSlot(slot *Slot) {
	counts := p.stock.Counts()
	slot.Empty = stock.IsEmpty(counts, slot.Name)
	slot.Label = stock.CountLabel(counts, slot.Name)
	slot.LabelX = int(p.originX+(float64(slot.I)+config.CountLabelOffset)*config.TileSize) - len(slot.Label)*config.TextCharWidth
	slot.LabelY = int(p.originY + (float64(slot.J)+config.CountLabelOffset)*config.TileSize)
}

func (p *Panel) cellRect(i, j int) image.Rectangle {
	x0 := int(p.originX + float64(i)*config.TileSize)
	y0 := int(p.originY + float64(j)*config.TileSize)
	return image.Rect(x0, y0, x0+int(config.TileSize), y0+int(config.TileSize))
}

// Hover runs the hit-test overlay: the tile under (x, y), if any, gets its
// hover callback. Returns the tile that was hit.
func (p *Panel) Hover(x, y int) *tile.Tile {
	for i := len(p.slots) - 1; i >= 0; i-- {
		t := p.slots[i].Tile
		if t != nil && t.Contains(x, y) {
			t.Hover()
			return t
		}
	}
	return nil
}

// SlotAt returns the slot whose background contains (x, y).
func (p *Panel) SlotAt(x, y int) *Slot {
	pt := image.Pt(x, y)
	for _, slot := range p.slots {
		if pt.In(slot.Background) {
			return slot
		}
	}
	return nil
}

// SlotByName returns the slot of a tile type.
func (p *Panel) SlotByName(name string) *Slot {
	for _, slot := range p.slots {
		if slot.Name == name {
			return slot
		}
	}
	return nil
}

// SlotOf returns the slot currently holding t.
func (p *Panel) SlotOf(t *tile.Tile) *Slot {
	for _, slot := range p.slots {
		if slot.Tile == t {
			return slot
		}
	}
	return nil
}

// Bounds is the union of all slot backgrounds.
func (p *Panel) Bounds() image.Rectangle {
	var r image.Rectangle
	for _, slot := range p.slots {
		r = r.Union(slot.Background)
	}
	return r
}

func (p *Panel) Slots() []*Slot      { return p.slots }
func (p *Panel) Stock() *stock.Stock { return p.stock }
func (p *Panel) Level() *defs.Level  { return p.level }

func (p *Panel) Origin() (float64, float64) { return p.originX, p.originY }
