package stockview

import (
	"go-tile-puzzle/internal/config"
	"go-tile-puzzle/pkg/canvas"
	"go-tile-puzzle/pkg/render"
)

// Render paints every slot: background, tile, shade when empty, count label.
func (p *Panel) Render(c canvas.Canvas) {
	for _, slot := range p.slots {
		b := slot.Background
		x, y := float32(b.Min.X), float32(b.Min.Y)
		w, h := float32(b.Dx()), float32(b.Dy())

		bg, border := config.StockSlotColor, config.StockBorderColor
		if slot.Empty {
			bg, border = config.StockEmptyColor, render.DarkenColor(border)
		}
		c.FillRect(x, y, w, h, bg)
		c.StrokeRect(x, y, w, h, 1, border)

		if slot.Tile != nil {
			slot.Tile.Draw(c, p.originX, p.originY)
		}
		if slot.Empty {
			c.FillRect(x, y, w, h, config.StockEmptyShade)
		}

		labelColor := config.TextLightColor
		if slot.Empty {
			labelColor = config.TextDimColor
		}
		c.DrawText(slot.Label, slot.LabelX, slot.LabelY, labelColor)
	}
}
