// Command zutopia-gui plays the target breaking game in a desktop window
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/zutopia/audio"
	"github.com/lixenwraith/zutopia/config"
	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/engine"
	"github.com/lixenwraith/zutopia/render"
)

// statusHeight is the pixel band below the board for status text
const statusHeight = 40

// Debug font cell size
const (
	glyphW = 6
	glyphH = 16
)

var configFlag = flag.String("config", "", "Path to a TOML config file")

// window adapts a game to ebiten's Update/Draw/Layout cycle
type window struct {
	game    *engine.Game
	flashes *render.FlashTracker
	sound   *audio.SoundManager
	dt      time.Duration
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		w.sound.SetMuted(!w.sound.Muted())
	}

	x, y := ebiten.CursorPosition()
	w.game.MovePointer(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.game.Start()
	}

	w.game.Tick(w.dt)
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(render.ToRGBA(render.ColorBackground))

	scene := render.BuildScene(w.game.Snapshot(), w.flashes.Live())
	for _, s := range scene.Shapes {
		c := render.ToRGBA(s.Color)
		b := s.Bounds
		switch s.Kind {
		case render.ShapeCircle:
			cx, cy := b.Center()
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(b.Width()/2), c, true)
		default:
			vector.DrawFilledRect(screen, float32(b.MinX), float32(b.MinY), float32(b.Width()), float32(b.Height()), c, false)
		}
		if s.Label != 0 {
			cx, cy := b.Center()
			ebitenutil.DebugPrintAt(screen, string(s.Label), int(cx)-glyphW/2, int(cy)-glyphH/2)
		}
	}

	for i, line := range scene.Status {
		x := (constants.BoardWidth - len(line)*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, line, max(x, 0), constants.BoardHeight+i*glyphH+4)
	}
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constants.BoardWidth, constants.BoardHeight + statusHeight
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "ZUTOPIA CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zutopia-gui: %v\n", err)
		os.Exit(1)
	}

	// No terminal UI to protect, debug output goes to stderr
	if !cfg.Log.Debug {
		log.SetOutput(io.Discard)
	}

	clock := engine.NewMonotonicTimeProvider()
	game := engine.NewGame(cfg.Engine(), engine.WithTimeProvider(clock))
	flashes := render.NewFlashTracker(clock)
	game.Register(flashes)

	audioCfg := cfg.AudioSettings()
	sm := audio.NewSoundManager(audioCfg)
	if err := sm.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	} else if sm.Initialized() {
		defer sm.Cleanup()
		game.Register(audio.NewEventHandler(sm, audioCfg.MinSoundGap))
	}

	w := &window{
		game:    game,
		flashes: flashes,
		sound:   sm,
		dt:      time.Second / time.Duration(ebiten.TPS()),
	}

	ebiten.SetWindowSize(constants.BoardWidth, constants.BoardHeight+statusHeight)
	ebiten.SetWindowTitle(constants.GameTitle)
	if err := ebiten.RunGame(w); err != nil {
		log.Printf("Window closed with error: %v", err)
		fmt.Fprintf(os.Stderr, "zutopia-gui: %v\n", err)
		os.Exit(1)
	}
}
