package defs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleLevel = `{
	"name": "Order",
	"group": "Test",
	"width": 5,
	"height": 4,
	"initialStock": {"Mirror": 2, "Absorber": 0, "Glass": 5},
	"tileRecipes": [
		{"name": "Source", "frozen": true, "i": 0, "j": 1, "rotation": 2},
		{"name": "Mirror", "frozen": false}
	]
}`

func TestParseLevelKeepsStockOrder(t *testing.T) {
	level, err := ParseLevel([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}

	want := []StockEntry{{"Mirror", 2}, {"Absorber", 0}, {"Glass", 5}}
	if !reflect.DeepEqual(level.InitialStock, want) {
		t.Errorf("Expected stock %v, got %v", want, level.InitialStock)
	}
	if level.Width != 5 || level.Height != 4 {
		t.Errorf("Expected 5x4, got %dx%d", level.Width, level.Height)
	}
	if len(level.TileRecipes) != 2 || !level.TileRecipes[0].Frozen || level.TileRecipes[0].Rotation != 2 {
		t.Errorf("Unexpected recipes %+v", level.TileRecipes)
	}
}

func TestParseLevelWithoutStock(t *testing.T) {
	level, err := ParseLevel([]byte(`{"name": "Empty", "width": 3, "height": 3, "tileRecipes": [{"name": "Mirror"}]}`))
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	if len(level.InitialStock) != 0 {
		t.Errorf("Expected no stock, got %v", level.InitialStock)
	}
}

func TestParseLevelRejectsFractionalCount(t *testing.T) {
	if _, err := ParseLevel([]byte(`{"initialStock": {"Mirror": 1.5}}`)); err == nil {
		t.Error("Expected error for fractional count")
	}
	if _, err := ParseLevel([]byte(`{"initialStock": {"Mirror": "two"}}`)); err == nil {
		t.Error("Expected error for string count")
	}
}

func TestLevelMarshalKeepsOrder(t *testing.T) {
	level, err := ParseLevel([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	data, err := level.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	again, err := ParseLevel(data)
	if err != nil {
		t.Fatalf("ParseLevel(marshalled): %v", err)
	}
	if !reflect.DeepEqual(again.InitialStock, level.InitialStock) {
		t.Errorf("Expected %v, got %v", level.InitialStock, again.InitialStock)
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := LoadLevel(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadLevelPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.json")
	if err := os.WriteFile(path, []byte("["+sampleLevel+","+sampleLevel+"]"), 0o644); err != nil {
		t.Fatal(err)
	}

	levels, err := LoadLevelPack(path)
	if err != nil {
		t.Fatalf("LoadLevelPack: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(levels))
	}
	if levels[1].InitialStock[2].Name != "Glass" {
		t.Errorf("Expected third stock entry Glass, got %v", levels[1].InitialStock)
	}
}

func TestDefaultTileDefinitions(t *testing.T) {
	if err := DefaultTileDefinitions(); err != nil {
		t.Fatalf("DefaultTileDefinitions: %v", err)
	}
	for _, id := range []string{"Source", "Detector", "Mirror", "Rock"} {
		def, ok := TileLibrary[id]
		if !ok {
			t.Errorf("Expected %s in library", id)
			continue
		}
		if def.Rotations < 1 {
			t.Errorf("%s: expected rotations >= 1, got %d", id, def.Rotations)
		}
	}
}

func TestLoadTileDefinitionsDefaultsRotations(t *testing.T) {
	err := LoadTileDefinitionsFrom([]byte(`[{"id": "Blob", "visuals": {"shape": "circle"}}]`))
	if err != nil {
		t.Fatalf("LoadTileDefinitionsFrom: %v", err)
	}
	if got := TileLibrary["Blob"].Rotations; got != 1 {
		t.Errorf("Expected 1 rotation, got %d", got)
	}
}

func TestRecipeOnBoard(t *testing.T) {
	tests := []struct {
		name   string
		recipe TileRecipe
		want   bool
	}{
		{name: "frozen", recipe: TileRecipe{Frozen: true}, want: true},
		{name: "placed", recipe: TileRecipe{Placed: true}, want: true},
		{name: "stock only", recipe: TileRecipe{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.recipe.OnBoard(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
