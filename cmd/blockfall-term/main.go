package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	width := flag.Int("width", 10, "Number of columns in the well.")
	interval := flag.Duration("interval", 500*time.Millisecond, "Time between gravity steps.")
	seed := flag.Uint64("seed", 0, "Seed for the piece sequence. A random seed is used when unset.")
	fps := flag.Int("fps", 30, "Frames per second.")
	flag.Parse()

	if *fps <= 0 {
		log.Fatalf("Invalid -fps %d: must be positive", *fps)
	}

	cfg := tetris.DefaultConfig()
	cfg.Width = *width
	cfg.FallInterval = interval.Seconds()
	cfg.Spawn.X = (*width - 1) / 2
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg = cfg.WithSeed(*seed)
		}
	})

	session, err := tetris.NewSession(cfg)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	intents := make(chan tetris.Intent, 16)
	go pollInput(ctx, screen, intents, cancel)

	session.Start()
	runner := tetris.NewRunner(session)
	view := newView(screen, session)
	view.draw()

	err = runner.Run(ctx, time.Second/time.Duration(*fps), intents, func(tetris.TickResult) {
		view.draw()
	})
	screen.Fini()
	if err != nil {
		log.Fatalf("Game stopped: %v", err)
	}

	stats := session.Stats()
	runnerStats := runner.GetStats()
	log.Printf("Seed %d: score %d, %d lines, %d games", session.Seed(), session.Score(), stats.Lines, stats.Games)
	log.Printf("%d frames, avg tick %s, max tick %s", runnerStats.Frames, runnerStats.AvgDuration, runnerStats.MaxDuration)
}

// pollInput translates key events into intents until the screen is
// finalized or the player quits.
func pollInput(ctx context.Context, screen tcell.Screen, intents chan<- tetris.Intent, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		intent := tetris.IntentNone
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				quit()
				return
			case tcell.KeyLeft:
				intent = tetris.IntentMoveLeft
			case tcell.KeyRight:
				intent = tetris.IntentMoveRight
			case tcell.KeyDown:
				intent = tetris.IntentSoftDrop
			case tcell.KeyUp:
				intent = tetris.IntentRotate
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					quit()
					return
				case 'h', 'a':
					intent = tetris.IntentMoveLeft
				case 'l', 'd':
					intent = tetris.IntentMoveRight
				case 'j', 's':
					intent = tetris.IntentSoftDrop
				case 'k', 'w', 'z':
					intent = tetris.IntentRotate
				case 'r':
					intent = tetris.IntentRestart
				}
			}
		case *tcell.EventResize:
			screen.Sync()
		}

		if intent == tetris.IntentNone {
			continue
		}
		select {
		case intents <- intent:
		case <-ctx.Done():
			return
		}
	}
}
