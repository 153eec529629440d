package app

import (
	"context"
	"image/color"
	"time"

	"forest-fire/internal/core"
	"forest-fire/internal/ui"

	"github.com/gdamore/tcell/v2"
)

type glyphProvider interface {
	Glyphs() []rune
}

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to an interactive terminal screen.
type Game struct {
	sim    core.Sim
	screen tcell.Screen
	hud    *ui.HUD
	step   *core.FixedStep

	glyphs []rune
	styles []tcell.Style

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation and screen. The screen
// must already be initialised.
func New(sim core.Sim, screen tcell.Screen, tps int, seed int64) *Game {
	g := &Game{
		sim:    sim,
		screen: screen,
		hud:    ui.NewHUD(sim),
		step:   core.NewFixedStep(tps),
		glyphs: []rune{' ', '#'},
		seed:   seed,
	}
	if gp, ok := sim.(glyphProvider); ok {
		g.glyphs = gp.Glyphs()
	}
	if pp, ok := sim.(paletteProvider); ok {
		for _, c := range pp.Palette() {
			fg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
			g.styles = append(g.styles, tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack))
		}
	}
	return g
}

// Paused reports whether automatic stepping is suspended.
func (g *Game) Paused() bool { return g.paused }

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// HandleEvent applies a terminal event and reports whether the game should
// quit.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			g.paused = false
		case tcell.KeyTab:
			g.hud.Select(1)
		case tcell.KeyBacktab:
			g.hud.Select(-1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				g.paused = !g.paused
			case 'n':
				g.tickOnce = true
			case 'r':
				g.Reset(g.seed)
			case 's':
				g.Reset(time.Now().UnixNano())
			case '+', '=':
				g.hud.Adjust(1)
			case '-', '_':
				g.hud.Adjust(-1)
			}
		}
	}
	return false
}

// Update advances the simulation unless paused.
func (g *Game) Update() {
	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update()
}

// Draw renders the grid with the HUD to its right.
func (g *Game) Draw() {
	g.screen.Clear()
	size := g.sim.Size()
	cells := g.sim.Cells()
	for i, c := range cells {
		x, y := size.Dims().Coords(i)
		g.screen.SetContent(x, y, g.glyphFor(c), nil, g.styleFor(c))
	}
	g.hud.Draw(g.screen, size.W+1)
	g.screen.Show()
}

func (g *Game) glyphFor(c uint8) rune {
	if int(c) < len(g.glyphs) {
		return g.glyphs[c]
	}
	return g.glyphs[len(g.glyphs)-1]
}

func (g *Game) styleFor(c uint8) tcell.Style {
	if len(g.styles) == 0 {
		return tcell.StyleDefault
	}
	if int(c) < len(g.styles) {
		return g.styles[c]
	}
	return g.styles[len(g.styles)-1]
}

// Run draws and steps the game until the user quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go g.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(g.step.Interval())
	defer ticker.Stop()

	g.hud.Update()
	g.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || ev == nil {
				return nil
			}
			if g.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			g.Update()
		}
		g.Draw()
	}
}
