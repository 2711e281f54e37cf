package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/engine"
	"github.com/lixenwraith/zutopia/render"
)

// muter is the slice of the sound manager the host toggles
type muter interface {
	SetMuted(bool)
	Muted() bool
}

// host binds terminal input and the frame ticker to a game
type host struct {
	screen   tcell.Screen
	game     *engine.Game
	renderer *render.TerminalRenderer
	sound    muter // nil without audio
	clock    *engine.FrameClock

	buttons tcell.ButtonMask
}

func newHost(screen tcell.Screen, game *engine.Game, renderer *render.TerminalRenderer, sound muter) *host {
	return &host{
		screen:   screen,
		game:     game,
		renderer: renderer,
		sound:    sound,
		clock:    engine.NewFrameClock(constants.MaxFrameDelta),
	}
}

// handle applies one terminal event, false on quit
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'm':
				if h.sound != nil {
					h.sound.SetMuted(!h.sound.Muted())
				}
			}
		}

	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x, y := h.renderer.Viewport().CellToBoard(cx, cy)
		h.game.MovePointer(x, y)

		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
		h.buttons = buttons
		if pressed && h.game.Start() {
			// First ACTIVE frame must not integrate the idle time before the click
			h.clock.Reset()
		}

	case *tcell.EventResize:
		h.screen.Sync()
		w, hgt := ev.Size()
		h.renderer.UpdateDimensions(w, hgt)
	}
	return true
}

// frame advances the game to now and draws it
func (h *host) frame(now time.Time) {
	dt, ok := h.clock.Delta(now)
	if !ok {
		dt = 0
	}
	h.game.Tick(dt)
	h.renderer.RenderFrame(h.game.Snapshot())
}
