package stock

import (
	"reflect"
	"testing"

	"go-tile-puzzle/internal/defs"
)

func level(stock []defs.StockEntry, recipes ...defs.TileRecipe) *defs.Level {
	return &defs.Level{Width: 5, Height: 4, InitialStock: stock, TileRecipes: recipes}
}

func TestInitializeZeroFillsNonFrozenRecipes(t *testing.T) {
	l := level(
		[]defs.StockEntry{{Name: "Mirror", Count: 2}},
		defs.TileRecipe{Name: "Source", Frozen: true},
		defs.TileRecipe{Name: "Mirror"},
		defs.TileRecipe{Name: "Glass"},
		defs.TileRecipe{Name: "Glass"},
		defs.TileRecipe{Name: "Rock", Frozen: true},
	)

	s := New()
	s.Initialize(l)

	want := map[string]int{"Mirror": 2, "Glass": 0}
	if !reflect.DeepEqual(s.Counts(), want) {
		t.Errorf("Expected counts %v, got %v", want, s.Counts())
	}
	if got := s.UsedTileNames(); !reflect.DeepEqual(got, []string{"Mirror", "Glass"}) {
		t.Errorf("Expected used names [Mirror Glass], got %v", got)
	}
}

func TestInitializeKeepsStockOnlyNames(t *testing.T) {
	l := level(
		[]defs.StockEntry{{Name: "Mine", Count: 1}, {Name: "Absorber", Count: 0}},
		defs.TileRecipe{Name: "Mirror"},
	)

	s := New()
	s.Initialize(l)

	want := []string{"Mine", "Absorber", "Mirror"}
	if got := s.UsedTileNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestInitializeFrozenNameAlreadyStocked(t *testing.T) {
	// A frozen recipe never removes an explicit stock entry.
	l := level(
		[]defs.StockEntry{{Name: "Rock", Count: 1}},
		defs.TileRecipe{Name: "Rock", Frozen: true},
	)
	s := New()
	s.Initialize(l)

	if got := Count(s.Counts(), "Rock"); got != 1 {
		t.Errorf("Expected Rock count 1, got %d", got)
	}
}

func TestInitializeReplacesPreviousLevel(t *testing.T) {
	s := New()
	s.Initialize(level([]defs.StockEntry{{Name: "Mirror", Count: 3}}))
	first := s.UsedTileNames()

	s.Initialize(level(nil, defs.TileRecipe{Name: "Glass"}))

	if got := s.UsedTileNames(); !reflect.DeepEqual(got, []string{"Glass"}) {
		t.Errorf("Expected [Glass], got %v", got)
	}
	if _, ok := s.Counts()["Mirror"]; ok {
		t.Error("Mirror from the previous level should be gone")
	}
	if !reflect.DeepEqual(first, []string{"Mirror"}) {
		t.Errorf("Earlier snapshot changed to %v", first)
	}
}

func TestUpdateCountInversePair(t *testing.T) {
	s := New()
	s.Initialize(level([]defs.StockEntry{{Name: "A", Count: 3}}))

	s.UpdateCount("A", 1)
	s.UpdateCount("A", -1)

	if got := Count(s.Counts(), "A"); got != 3 {
		t.Errorf("Expected 3 after +1/-1, got %d", got)
	}
}

func TestUpdateCountDoesNotChangeOrder(t *testing.T) {
	s := New()
	s.Initialize(level([]defs.StockEntry{{Name: "A", Count: 1}}))

	s.UpdateCount("B", 2)

	if got := s.UsedTileNames(); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("Expected [A], got %v", got)
	}
}

func TestEmptinessBoundary(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		delta     int
		wantCount int
		wantEmpty bool
	}{
		{name: "two to one", start: 2, delta: -1, wantCount: 1, wantEmpty: false},
		{name: "one to zero", start: 1, delta: -1, wantCount: 0, wantEmpty: true},
		{name: "zero to minus one", start: 0, delta: -1, wantCount: -1, wantEmpty: true},
		{name: "minus one to zero", start: -1, delta: 1, wantCount: 0, wantEmpty: true},
		{name: "zero to one", start: 0, delta: 1, wantCount: 1, wantEmpty: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Initialize(level([]defs.StockEntry{{Name: "A", Count: tt.start}}))

			if got := s.UpdateCount("A", tt.delta); got != tt.wantCount {
				t.Errorf("Expected count %d, got %d", tt.wantCount, got)
			}
			if got := IsEmpty(s.Counts(), "A"); got != tt.wantEmpty {
				t.Errorf("Expected empty=%v, got %v", tt.wantEmpty, got)
			}
		})
	}
}

func TestDecrementSequence(t *testing.T) {
	s := New()
	s.Initialize(level([]defs.StockEntry{{Name: "A", Count: 3}}))

	wantCounts := []int{2, 1, 0}
	wantEmpty := []bool{false, false, true}
	for step := range wantCounts {
		got := s.UpdateCount("A", -1)
		if got != wantCounts[step] {
			t.Errorf("step %d: expected count %d, got %d", step, wantCounts[step], got)
		}
		if e := IsEmpty(s.Counts(), "A"); e != wantEmpty[step] {
			t.Errorf("step %d: expected empty=%v, got %v", step, wantEmpty[step], e)
		}
	}
}

func TestCountLabel(t *testing.T) {
	counts := map[string]int{"A": 3, "B": -2}
	if got := CountLabel(counts, "A"); got != "x 3" {
		t.Errorf("Expected %q, got %q", "x 3", got)
	}
	if got := CountLabel(counts, "B"); got != "x -2" {
		t.Errorf("Expected %q, got %q", "x -2", got)
	}
	if got := CountLabel(counts, "missing"); got != "x 0" {
		t.Errorf("Expected %q, got %q", "x 0", got)
	}
}

func TestSnapshotFollowsOrder(t *testing.T) {
	s := New()
	s.Initialize(level(
		[]defs.StockEntry{{Name: "B", Count: 1}, {Name: "A", Count: 2}},
		defs.TileRecipe{Name: "C"},
	))
	s.UpdateCount("A", -1)

	want := []defs.StockEntry{{Name: "B", Count: 1}, {Name: "A", Count: 1}, {Name: "C", Count: 0}}
	if got := s.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestEndToEndScenario(t *testing.T) {
	l := &defs.Level{
		Width:        5,
		Height:       4,
		InitialStock: []defs.StockEntry{{Name: "A", Count: 3}},
		TileRecipes: []defs.TileRecipe{
			{Name: "A", Frozen: false},
			{Name: "B", Frozen: true},
		},
	}

	s := New()
	s.Initialize(l)

	if !reflect.DeepEqual(s.Counts(), map[string]int{"A": 3}) {
		t.Fatalf("Expected {A:3}, got %v", s.Counts())
	}
	if !reflect.DeepEqual(s.UsedTileNames(), []string{"A"}) {
		t.Fatalf("Expected [A], got %v", s.UsedTileNames())
	}

	maxRows := MaxRows(l, 1)
	if maxRows != 3 {
		t.Fatalf("Expected maxRows 3, got %d", maxRows)
	}
	p := Placements(s.UsedTileNames(), maxRows, l.Width)
	if p[0].I != 6 || p[0].J != 0 {
		t.Errorf("Expected slot A at (6,0), got (%d,%d)", p[0].I, p[0].J)
	}
}
