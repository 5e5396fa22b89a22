package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/debugui"
	debugui_ebiten "github.com/plus3/blockfall/tetris/debugui/ebiten"
)

const (
	windowTitle   = "Blockfall"
	overlayWidth  = 640
	historyFrames = 120
)

func main() {
	width := flag.Int("width", 10, "Number of columns in the well.")
	interval := flag.Duration("interval", 500*time.Millisecond, "Time between gravity steps.")
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence. A random seed is used when unset.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	scale := flag.Int("scale", 28, "Size of a cell in pixels.")
	flag.Parse()

	cfg := tetris.DefaultConfig()
	cfg.Width = *width
	cfg.FallInterval = interval.Seconds()
	cfg.Spawn.X = (*width - 1) / 2
	if flagSet("seed") {
		cfg = cfg.WithSeed(*seed)
	}

	session, err := tetris.NewSession(cfg)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	session.Start()
	log.Printf("Starting game with seed %d", session.Seed())

	game := &Game{
		runner: tetris.NewRunner(session),
		layout: newLayout(cfg, *scale),
	}

	screenW, screenH := game.layout.screenSize()
	if *debug {
		game.layout.originX += overlayWidth
		screenW += overlayWidth
		game.imgui = debugui_ebiten.NewImguiBackend(windowTitle, screenW, screenH)
		game.overlay = debugui.NewOverlay(historyFrames)
	} else {
		ebiten.SetWindowSize(screenW, screenH)
		ebiten.SetWindowTitle(windowTitle)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}

	stats := session.Stats()
	log.Printf("Played %d games, %d pieces locked, %d lines cleared", stats.Games, stats.Locks, stats.Lines)
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
