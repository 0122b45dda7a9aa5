// internal/stock/stock.go
package stock

import (
	"fmt"

	"go-tile-puzzle/internal/defs"
)

// Stock tracks how many tiles of each type the player can still take.
// It lives for one level.
type Stock struct {
	counts        map[string]int
	usedTileNames []string
}

func New() *Stock {
	return &Stock{counts: make(map[string]int)}
}

// Initialize seeds counts from level.InitialStock and adds a zero entry for
// every non-frozen recipe that is not already stocked. The resulting key
// order is kept in UsedTileNames and does not change afterwards.
func (s *Stock) Initialize(level *defs.Level) {
	s.counts = make(map[string]int, len(level.InitialStock)+len(level.TileRecipes))
	s.usedTileNames = make([]string, 0, len(level.InitialStock))

	for _, e := range level.InitialStock {
		if _, seen := s.counts[e.Name]; !seen {
			s.usedTileNames = append(s.usedTileNames, e.Name)
		}
		s.counts[e.Name] = e.Count
	}

	for _, r := range level.TileRecipes {
		if r.Frozen {
			continue
		}
		if _, ok := s.counts[r.Name]; !ok {
			s.counts[r.Name] = 0
			s.usedTileNames = append(s.usedTileNames, r.Name)
		}
	}
}

// UpdateCount adds delta to the count of name and returns the new value.
// Counts are not clamped: callers only take a tile when one is available.
func (s *Stock) UpdateCount(name string, delta int) int {
	s.counts[name] += delta
	return s.counts[name]
}

// UsedTileNames returns the stock order fixed at Initialize.
func (s *Stock) UsedTileNames() []string {
	return s.usedTileNames
}

// Counts exposes the live count mapping.
func (s *Stock) Counts() map[string]int {
	return s.counts
}

// Snapshot returns the stocked entries in UsedTileNames order.
func (s *Stock) Snapshot() []defs.StockEntry {
	out := make([]defs.StockEntry, 0, len(s.usedTileNames))
	for _, name := range s.usedTileNames {
		out = append(out, defs.StockEntry{Name: name, Count: s.counts[name]})
	}
	return out
}

// Count returns the stored count for name, 0 if absent.
func Count(counts map[string]int, name string) int {
	return counts[name]
}

// IsEmpty reports whether no tile of this type is left.
func IsEmpty(counts map[string]int, name string) bool {
	return counts[name] <= 0
}

// CountLabel is the text shown under a stock slot.
func CountLabel(counts map[string]int, name string) string {
	return fmt.Sprintf("x %d", counts[name])
}
