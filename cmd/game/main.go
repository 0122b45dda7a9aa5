// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-tile-puzzle/internal/config"
	"go-tile-puzzle/internal/defs"
	"go-tile-puzzle/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	levelsPath := flag.String("levels", config.LevelsPath, "level pack (JSON array)")
	tilesPath := flag.String("tiles", "", "tile definitions, built-in set when empty")
	level := flag.Int("level", -1, "start this level directly instead of the menu")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	if *tilesPath == "" {
		if err := defs.DefaultTileDefinitions(); err != nil {
			log.Fatal(err)
		}
	} else if err := defs.LoadTileDefinitions(*tilesPath); err != nil {
		log.Fatal(err)
	}

	levels, err := defs.LoadLevelPack(*levelsPath)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *level >= 0 {
		ls, err := state.NewLevelState(sm, levels, *level)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(ls)
	} else {
		sm.SetState(state.NewMenuState(sm, levels))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tile Puzzle")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
