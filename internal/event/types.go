// internal/event/types.go
package event

const (
	StockChanged EventType = "StockChanged" // Data: StockChange
	TilePlaced   EventType = "TilePlaced"   // Data: TileMove
	TileReturned EventType = "TileReturned" // Data: TileMove
	TileHovered  EventType = "TileHovered"  // Data: *tile.Tile
	LevelLoaded  EventType = "LevelLoaded"  // Data: *defs.Level
)

// StockChange is sent after a stock count changes.
type StockChange struct {
	Name  string
	Delta int
	Count int
}

// TileMove describes a tile going to the board or back to stock.
type TileMove struct {
	Name string
	I, J int
}
