// internal/state/menu_state.go
package state

import (
	"log"

	"go-tile-puzzle/internal/config"
	"go-tile-puzzle/internal/defs"
	"go-tile-puzzle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// MenuState: выбор уровня
type MenuState struct {
	sm     *StateMachine
	levels []*defs.Level
	list   *ui.LevelList
	err    string
}

func NewMenuState(sm *StateMachine, levels []*defs.Level) *MenuState {
	return &MenuState{
		sm:     sm,
		levels: levels,
		list:   ui.NewLevelList(48, 72, config.ScreenWidth-96, basicfont.Face7x13, levels),
	}
}

// Select moves the cursor to level i.
func (m *MenuState) Select(i int) {
	m.list.Move(i - m.list.Selected)
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		m.list.Move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		m.list.Move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.start()
	}
}

func (m *MenuState) start() {
	if m.list.Current() == nil {
		return
	}
	next, err := NewLevelState(m.sm, m.levels, m.list.Selected)
	if err != nil {
		log.Printf("cannot start level %q: %v", m.list.Current().Name, err)
		m.err = err.Error()
		return
	}
	m.err = ""
	m.sm.SetState(next)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.list.Draw(screen)
	msg := "Up/Down: choose level, Enter: play"
	if m.err != "" {
		msg += "\n" + m.err
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
