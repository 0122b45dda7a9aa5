package defs

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/iancoleman/orderedmap"
)

// levelJSON mirrors Level on the wire. initialStock is an object whose key
// order defines the stock order, so it goes through an ordered map.
type levelJSON struct {
	Name         string                 `json:"name"`
	Group        string                 `json:"group"`
	Width        int                    `json:"width"`
	Height       int                    `json:"height"`
	InitialStock *orderedmap.OrderedMap `json:"initialStock"`
	TileRecipes  []TileRecipe           `json:"tileRecipes"`
}

func (l *Level) UnmarshalJSON(data []byte) error {
	raw := levelJSON{InitialStock: orderedmap.New()}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	l.Name = raw.Name
	l.Group = raw.Group
	l.Width = raw.Width
	l.Height = raw.Height
	l.TileRecipes = raw.TileRecipes
	l.InitialStock = nil

	if raw.InitialStock == nil {
		return nil
	}
	for _, name := range raw.InitialStock.Keys() {
		v, _ := raw.InitialStock.Get(name)
		n, ok := v.(float64)
		if !ok || n != math.Trunc(n) {
			return fmt.Errorf("initialStock[%q]: expected integer count, got %v", name, v)
		}
		l.InitialStock = append(l.InitialStock, StockEntry{Name: name, Count: int(n)})
	}
	return nil
}

func (l Level) MarshalJSON() ([]byte, error) {
	stock := orderedmap.New()
	for _, e := range l.InitialStock {
		stock.Set(e.Name, e.Count)
	}
	return json.Marshal(levelJSON{
		Name:         l.Name,
		Group:        l.Group,
		Width:        l.Width,
		Height:       l.Height,
		InitialStock: stock,
		TileRecipes:  l.TileRecipes,
	})
}
