// internal/defs/types.go
package defs

import "image/color"

// Shape defines how a tile glyph is drawn.
type Shape string

const (
	ShapeSquare  Shape = "square"
	ShapeCircle  Shape = "circle"
	ShapeLine    Shape = "line"
	ShapeCross   Shape = "cross"
	ShapeDiamond Shape = "diamond"
)

// Visuals contains parameters for rendering a tile.
type Visuals struct {
	Shape       Shape      `json:"shape"`
	Color       color.RGBA `json:"color"`
	ScaleFactor float64    `json:"scale_factor,omitempty"`
	StrokeWidth float64    `json:"stroke_width,omitempty"`
}

// TileDefinition holds all the static data for a specific type of tile.
type TileDefinition struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Rotations   int     `json:"rotations"` // число различимых поворотов, 1 для симметричной плитки
	Visuals     Visuals `json:"visuals"`
}

// StockEntry is the remaining supply of one tile type.
type StockEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TileRecipe describes a tile type used by a level. Frozen tiles are part of
// the fixed board layout and never appear in stock.
type TileRecipe struct {
	Name     string `json:"name"`
	Frozen   bool   `json:"frozen"`
	I        int    `json:"i"`
	J        int    `json:"j"`
	Rotation int    `json:"rotation"`
	Placed   bool   `json:"placed,omitempty"`
}

// Level is a level descriptor as read from a level pack.
type Level struct {
	Name         string       `json:"name"`
	Group        string       `json:"group"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	InitialStock []StockEntry `json:"-"`
	TileRecipes  []TileRecipe `json:"tileRecipes"`
}

// OnBoard reports whether the recipe describes a tile that starts on the board.
func (r TileRecipe) OnBoard() bool {
	return r.Frozen || r.Placed
}
