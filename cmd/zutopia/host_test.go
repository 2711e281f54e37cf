package main

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/engine"
	"github.com/lixenwraith/zutopia/render"
)

type fakeMuter struct {
	muted bool
}

func (f *fakeMuter) SetMuted(m bool) { f.muted = m }
func (f *fakeMuter) Muted() bool     { return f.muted }

func newTestHost(t *testing.T, sound muter) (*host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)

	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	game := engine.NewGame(engine.DefaultConfig(),
		engine.WithChooser(func(int) int { return 0 }),
		engine.WithTimeProvider(clock))
	renderer := render.NewTerminalRenderer(screen, clock)
	game.Register(renderer)
	return newHost(screen, game, renderer, sound), screen
}

// TestHostQuitKeys verifies which keys end the loop
func TestHostQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHost(t, nil)
			if got := h.handle(tt.ev); got != tt.want {
				t.Errorf("handle() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestHostMuteToggle verifies 'm' flips the mute state and is harmless without audio
func TestHostMuteToggle(t *testing.T) {
	m := &fakeMuter{}
	h, _ := newTestHost(t, m)

	key := tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)
	h.handle(key)
	if !m.muted {
		t.Error("Expected muted after first toggle")
	}
	h.handle(key)
	if m.muted {
		t.Error("Expected unmuted after second toggle")
	}

	silent, _ := newTestHost(t, nil)
	if !silent.handle(key) {
		t.Error("Mute key without audio should not quit")
	}
}

// TestHostMouseMovesPaddle verifies pointer cells map to board coordinates
func TestHostMouseMovesPaddle(t *testing.T) {
	h, _ := newTestHost(t, nil)

	h.handle(tcell.NewEventMouse(40, 19, tcell.ButtonNone, tcell.ModNone))

	wantX, _ := h.renderer.Viewport().CellToBoard(40, 19)
	cx, cy := h.game.Snapshot().Paddle.Center()
	if math.Abs(cx-wantX) > 1e-9 {
		t.Errorf("Paddle center X = %f, want %f", cx, wantX)
	}
	// Mid-board pointer is clamped to the top of the paddle band
	if wantY := constants.BoardHeight * constants.PaddleMinYFrac; math.Abs(cy-wantY) > 1e-9 {
		t.Errorf("Paddle center Y = %f, want %f", cy, wantY)
	}
	if h.game.State() != engine.StateNew {
		t.Errorf("Motion without a press changed state to %v", h.game.State())
	}
}

// TestHostClickStartsOnPressEdge verifies only a fresh press starts the game
func TestHostClickStartsOnPressEdge(t *testing.T) {
	h, _ := newTestHost(t, nil)

	h.handle(tcell.NewEventMouse(40, 30, tcell.Button1, tcell.ModNone))
	if h.game.State() != engine.StateActive {
		t.Fatalf("State after click = %v, want ACTIVE", h.game.State())
	}

	// A held button during a later NEW must not start another game
	h.game.Restart(engine.StateLost)
	h.handle(tcell.NewEventMouse(41, 30, tcell.Button1, tcell.ModNone))
	if h.game.State() != engine.StateNew {
		t.Errorf("Held button started a game, state %v", h.game.State())
	}

	h.handle(tcell.NewEventMouse(41, 30, tcell.ButtonNone, tcell.ModNone))
	h.handle(tcell.NewEventMouse(41, 30, tcell.Button1, tcell.ModNone))
	if h.game.State() != engine.StateActive {
		t.Errorf("Second press did not start, state %v", h.game.State())
	}
}

// TestHostFrameClockCapsDelta verifies the first frame is idle and long gaps are capped
func TestHostFrameClockCapsDelta(t *testing.T) {
	h, _ := newTestHost(t, nil)
	// Bottom row keeps the paddle clear of the ball
	h.handle(tcell.NewEventMouse(40, 36, tcell.Button1, tcell.ModNone))

	t0 := time.Unix(100, 0)
	h.frame(t0)
	snap := h.game.Snapshot()
	if snap.BallX != constants.BallInitialX || snap.BallY != constants.BallInitialY {
		t.Fatalf("Priming frame moved the ball to (%f, %f)", snap.BallX, snap.BallY)
	}

	h.frame(t0.Add(10 * time.Second))
	snap = h.game.Snapshot()
	dx := math.Abs(snap.BallX - constants.BallInitialX)
	maxDX := constants.BallInitialVX * float64(constants.MaxFrameDelta)
	if dx == 0 || dx > maxDX+1e-9 {
		t.Errorf("Ball moved %f on X, want (0, %f]", dx, maxDX)
	}
}

// TestHostResize verifies the viewport follows the screen size
func TestHostResize(t *testing.T) {
	h, screen := newTestHost(t, nil)

	screen.SetSize(22, 60)
	if !h.handle(tcell.NewEventResize(22, 60)) {
		t.Fatal("Resize should not quit")
	}
	if got, want := h.renderer.Viewport(), render.FitViewport(22, 60); got != want {
		t.Errorf("Viewport = %+v, want %+v", got, want)
	}
}
