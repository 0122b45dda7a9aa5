// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1120
	ScreenHeight = 640
	MaxDeltaTime = 0.06

	TileSize          = 48.0
	StockBottomMargin = 1 // строки под колонкой стока, которые остаются пустыми
	BoardOffsetX      = 16
	BoardOffsetY      = 32

	CountLabelOffset = 0.9 // доля клетки, где рисуется "x N"
	TextCharWidth    = 7
	TileGlyphScale   = 0.35
	TileStrokeWidth  = 2.0
	DragLiftAlpha    = 200

	StatusBarHeight = 24
	MenuLineHeight  = 22

	LevelsPath = "assets/levels.json"
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	BoardCellColor     = color.RGBA{45, 55, 70, 255}
	BoardGridColor     = color.RGBA{70, 100, 120, 220}
	StockSlotColor     = color.RGBA{60, 70, 90, 255}
	StockEmptyColor    = color.RGBA{35, 35, 45, 255}
	StockEmptyShade    = color.RGBA{0, 0, 0, 140}
	StockBorderColor   = color.RGBA{110, 130, 150, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	TextDimColor       = color.RGBA{120, 120, 130, 255}
	HoverOutlineColor  = color.RGBA{255, 215, 0, 255}
	FrozenOutlineColor = color.RGBA{128, 128, 128, 255}
	MenuSelectedColor  = color.RGBA{70, 130, 180, 220}
	StrokeWidth        = 2.0
)
