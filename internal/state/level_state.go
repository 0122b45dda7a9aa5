// internal/state/level_state.go
package state

import (
	"fmt"
	"log"

	"go-tile-puzzle/internal/board"
	"go-tile-puzzle/internal/config"
	"go-tile-puzzle/internal/defs"
	"go-tile-puzzle/internal/dnd"
	"go-tile-puzzle/internal/event"
	"go-tile-puzzle/internal/stockview"
	"go-tile-puzzle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// LevelState: один загруженный уровень. Доска, сток и перетаскивание живут
// ровно столько, сколько это состояние.
type LevelState struct {
	sm       *StateMachine
	levels   []*defs.Level
	index    int
	level    *defs.Level
	events   *event.Dispatcher
	board    *board.Board
	panel    *stockview.Panel
	drag     *dnd.Controller
	status   *ui.StatusBar
	fontFace font.Face
}

func NewLevelState(sm *StateMachine, levels []*defs.Level, index int) (*LevelState, error) {
	if index < 0 || index >= len(levels) {
		return nil, fmt.Errorf("level %d out of range (%d levels)", index, len(levels))
	}
	level := levels[index]
	events := event.NewDispatcher()

	b, err := board.New(level, events)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	b.SetOrigin(config.BoardOffsetX, config.BoardOffsetY)

	drag := dnd.NewController(b, events)
	panel := stockview.NewPanel(b, drag, events)
	panel.SetOrigin(config.BoardOffsetX, config.BoardOffsetY)
	panel.Initialize(level)
	if err := panel.DrawStock(); err != nil {
		return nil, fmt.Errorf("stock: %w", err)
	}

	status := ui.NewStatusBar(config.ScreenHeight-config.StatusBarHeight, config.StatusBarHeight, basicfont.Face7x13)
	for _, t := range []event.EventType{event.TileHovered, event.StockChanged, event.TilePlaced, event.TileReturned} {
		events.Subscribe(t, status)
	}
	events.Listen(event.StockChanged, func(e event.Event) {
		c := e.Data.(event.StockChange)
		log.Printf("stock %s: %+d -> %d", c.Name, c.Delta, c.Count)
	})

	return &LevelState{
		sm:       sm,
		levels:   levels,
		index:    index,
		level:    level,
		events:   events,
		board:    b,
		panel:    panel,
		drag:     drag,
		status:   status,
		fontFace: basicfont.Face7x13,
	}, nil
}

func (g *LevelState) Enter() {
	log.Printf("level %q: %dx%d, stock %v", g.level.Name, g.level.Width, g.level.Height, g.panel.Stock().Snapshot())
	g.events.Dispatch(event.Event{Type: event.LevelLoaded, Data: g.level})
}

func (g *LevelState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		menu := NewMenuState(g.sm, g.levels)
		menu.Select(g.index)
		g.sm.SetState(menu)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
		return
	}

	p := pointerFromEbiten()
	if err := g.drag.Update(p); err != nil {
		log.Printf("level %q: %v", g.level.Name, err)
		g.sm.SetState(NewMenuState(g.sm, g.levels))
		return
	}
	if g.drag.Dragged() == nil {
		if g.panel.Hover(p.X, p.Y) == nil {
			g.board.Hover(p.X, p.Y)
		}
	}
}

func (g *LevelState) restart() {
	next, err := NewLevelState(g.sm, g.levels, g.index)
	if err != nil {
		log.Printf("restart: %v", err)
		return
	}
	g.sm.SetState(next)
}

func (g *LevelState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	c := ui.NewScreen(screen, g.fontFace)

	g.board.Render(c)
	g.panel.Render(c)
	if h := g.board.Hovered; h != nil && h.FromStock && !h.Dragging {
		h.DrawOutline(c, config.HoverOutlineColor)
	}
	if t := g.drag.Dragged(); t != nil {
		ox, oy := g.board.Origin()
		t.Draw(c, ox, oy)
	}

	g.status.Draw(screen)
	ebitenutil.DebugPrint(screen, g.level.Name+"  [Esc: menu, R: restart, right click: rotate]")
}

func (g *LevelState) Exit() {
	// Ничего не делаем при выходе
}

func pointerFromEbiten() dnd.Pointer {
	x, y := ebiten.CursorPosition()
	return dnd.Pointer{
		X:                x,
		Y:                y,
		Pressed:          ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:      inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased:     inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		RightJustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
}
