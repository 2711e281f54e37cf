// Command zutopia plays the target breaking game in a terminal
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/zutopia/audio"
	"github.com/lixenwraith/zutopia/config"
	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/engine"
	"github.com/lixenwraith/zutopia/render"
)

var (
	configFlag      = flag.String("config", "", "Path to a TOML config file")
	debugFlag       = flag.Bool("debug", false, "Write a debug log under the log directory")
	seedFlag        = flag.Uint64("seed", 0, "Skin seed, 0 picks one per run")
	muteFlag        = flag.Bool("mute", false, "Start with audio disabled")
	writeConfigFlag = flag.Bool("write-config", false, "Print the effective config as TOML and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zutopia: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "zutopia: %v\n", err)
		os.Exit(1)
	}

	if *writeConfigFlag {
		if err := config.Encode(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "zutopia: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "zutopia: stdout is not a terminal")
		os.Exit(1)
	}

	logDir = cfg.Log.Dir
	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mZUTOPIA CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseMotionEvents)
	screen.HideCursor()

	clock := engine.NewMonotonicTimeProvider()
	game := engine.NewGame(cfg.Engine(), engine.WithTimeProvider(clock))
	renderer := render.NewTerminalRenderer(screen, clock)
	game.Register(renderer)

	var sound muter
	audioCfg := cfg.AudioSettings()
	sm := audio.NewSoundManager(audioCfg)
	if err := sm.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	} else if sm.Initialized() {
		defer sm.Cleanup()
		game.Register(audio.NewEventHandler(sm, audioCfg.MinSoundGap))
		sound = sm
	}

	h := newHost(screen, game, renderer, sound)
	run(screen, h)
	log.Printf("Exiting after %d games", game.Generation())
}

// applyFlags overrides config values only for flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "seed":
			cfg.Game.Seed = *seedFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		}
	})
}

// run polls input on its own goroutine and renders on the frame ticker
func run(screen tcell.Screen, h *host) {
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !h.handle(ev) {
				return
			}

		case now := <-frameTicker.C:
			h.frame(now)
		}
	}
}
