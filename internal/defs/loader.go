// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
)

//go:embed tiles.json
var defaultTiles []byte

// TileLibrary is a map to hold all tile definitions, keyed by their ID.
var TileLibrary map[string]TileDefinition

// LoadTileDefinitions reads the tile configuration file and populates the TileLibrary.
func LoadTileDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tile definitions file: %w", err)
	}
	return LoadTileDefinitionsFrom(file)
}

// LoadTileDefinitionsFrom populates the TileLibrary from raw JSON.
func LoadTileDefinitionsFrom(data []byte) error {
	var tileDefs []TileDefinition
	if err := json.Unmarshal(data, &tileDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tile definitions: %w", err)
	}

	TileLibrary = make(map[string]TileDefinition, len(tileDefs))
	for _, def := range tileDefs {
		if def.Rotations < 1 {
			def.Rotations = 1
		}
		TileLibrary[def.ID] = def
	}

	log.Printf("Loaded %d tile definitions", len(TileLibrary))
	return nil
}

// DefaultTileDefinitions loads the tile set compiled into the binary.
func DefaultTileDefinitions() error {
	return LoadTileDefinitionsFrom(defaultTiles)
}

// LoadLevel reads a single level descriptor.
func LoadLevel(path string) (*Level, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	return ParseLevel(file)
}

// ParseLevel decodes a single level descriptor.
func ParseLevel(data []byte) (*Level, error) {
	var level Level
	if err := json.Unmarshal(data, &level); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	return &level, nil
}

// LoadLevelPack reads a JSON array of levels.
func LoadLevelPack(path string) ([]*Level, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level pack: %w", err)
	}

	var levels []*Level
	if err := json.Unmarshal(file, &levels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level pack: %w", err)
	}

	log.Printf("Loaded %d levels from %s", len(levels), path)
	return levels, nil
}
