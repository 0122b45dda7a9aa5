// cmd/game_raylib/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	"go-tile-puzzle/internal/board"
	"go-tile-puzzle/internal/config"
	"go-tile-puzzle/internal/defs"
	"go-tile-puzzle/internal/dnd"
	"go-tile-puzzle/internal/event"
	"go-tile-puzzle/internal/stockview"
	"go-tile-puzzle/internal/tile"
	"go-tile-puzzle/pkg/rlrender"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// level: всё, что живёт ровно один уровень
type level struct {
	def   *defs.Level
	board *board.Board
	panel *stockview.Panel
	drag  *dnd.Controller
	hover string
}

func loadLevel(def *defs.Level) (*level, error) {
	events := event.NewDispatcher()
	b, err := board.New(def, events)
	if err != nil {
		return nil, err
	}
	b.SetOrigin(config.BoardOffsetX, config.BoardOffsetY)

	drag := dnd.NewController(b, events)
	panel := stockview.NewPanel(b, drag, events)
	panel.SetOrigin(config.BoardOffsetX, config.BoardOffsetY)
	panel.Initialize(def)
	if err := panel.DrawStock(); err != nil {
		return nil, err
	}

	l := &level{def: def, board: b, panel: panel, drag: drag}
	events.Listen(event.TileHovered, func(e event.Event) {
		if t, ok := e.Data.(*tile.Tile); ok {
			l.hover = fmt.Sprintf("%s: %s", t.Name, t.Def.Description)
		}
	})
	events.Listen(event.StockChanged, func(e event.Event) {
		c := e.Data.(event.StockChange)
		log.Printf("stock %s: %+d -> %d", c.Name, c.Delta, c.Count)
	})
	return l, nil
}

func pointer() dnd.Pointer {
	pos := rl.GetMousePosition()
	return dnd.Pointer{
		X:                int(pos.X),
		Y:                int(pos.Y),
		Pressed:          rl.IsMouseButtonDown(rl.MouseButtonLeft),
		JustPressed:      rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		JustReleased:     rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		RightJustPressed: rl.IsMouseButtonPressed(rl.MouseButtonRight),
	}
}

func main() {
	levelsPath := flag.String("levels", config.LevelsPath, "level pack (JSON array)")
	index := flag.Int("level", 0, "level to open")
	flag.Parse()

	if err := defs.DefaultTileDefinitions(); err != nil {
		log.Fatal(err)
	}
	levels, err := defs.LoadLevelPack(*levelsPath)
	if err != nil {
		log.Fatal(err)
	}
	if *index < 0 || *index >= len(levels) {
		log.Fatalf("level %d out of range (%d levels)", *index, len(levels))
	}

	current, err := loadLevel(levels[*index])
	if err != nil {
		log.Fatal(err)
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Tile Puzzle | PageUp/PageDown - level, right click - rotate")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	c := rlrender.Canvas{FontSize: 10}
	bg := rlrender.ColorToRL(config.BackgroundColor)

	for !rl.WindowShouldClose() {
		// --- Обновление ---
		next := *index
		if rl.IsKeyPressed(rl.KeyPageDown) {
			next = (*index + 1) % len(levels)
		}
		if rl.IsKeyPressed(rl.KeyPageUp) {
			next = (*index - 1 + len(levels)) % len(levels)
		}
		if next != *index {
			l, err := loadLevel(levels[next])
			if err != nil {
				log.Printf("level %d: %v", next, err)
			} else {
				*index, current = next, l
			}
		}

		p := pointer()
		if err := current.drag.Update(p); err != nil {
			log.Fatal(err)
		}
		if current.drag.Dragged() == nil && current.panel.Hover(p.X, p.Y) == nil {
			current.board.Hover(p.X, p.Y)
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(bg)

		current.board.Render(c)
		current.panel.Render(c)
		if t := current.drag.Dragged(); t != nil {
			ox, oy := current.board.Origin()
			t.Draw(c, ox, oy)
		}

		rl.DrawText(current.def.Name, 10, 8, 20, rl.White)
		rl.DrawText(current.hover, 10, config.ScreenHeight-20, 10, rl.LightGray)
		rl.EndDrawing()
	}
}
