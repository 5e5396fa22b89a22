package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// pair drives a session and a replica fed the same seed and intents.
// Their snapshots must never diverge.
type pair struct {
	primary *tetris.Runner
	replica *tetris.Runner
	driver  *rand.Rand
}

func newPair(cfg tetris.Config, driverSeed uint64) (*pair, error) {
	primary, err := tetris.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	replica, err := tetris.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	primary.Start()
	replica.Start()

	return &pair{
		primary: tetris.NewRunner(primary),
		replica: tetris.NewRunner(replica),
		driver:  rand.New(rand.NewPCG(driverSeed, driverSeed^0x9e3779b97f4a7c15)),
	}, nil
}

var randomIntents = []tetris.Intent{
	tetris.IntentNone,
	tetris.IntentMoveLeft,
	tetris.IntentMoveRight,
	tetris.IntentSoftDrop,
	tetris.IntentRotate,
}

// step queues the same random intents on both runners and ticks them once.
func (p *pair) step(dt float64) (time.Duration, bool, error) {
	if p.primary.Session().IsGameOver() {
		p.primary.Queue(tetris.IntentRestart)
		p.replica.Queue(tetris.IntentRestart)
	}
	for range p.driver.IntN(3) {
		intent := randomIntents[p.driver.IntN(len(randomIntents))]
		p.primary.Queue(intent)
		p.replica.Queue(intent)
	}

	if _, err := p.primary.Once(dt); err != nil {
		return 0, false, fmt.Errorf("primary session %d: %w", p.primary.Session().Seed(), err)
	}
	if _, err := p.replica.Once(dt); err != nil {
		return 0, false, fmt.Errorf("replica session %d: %w", p.replica.Session().Seed(), err)
	}

	match := snapshotsEqual(p.primary.Session().Snapshot(), p.replica.Session().Snapshot())
	return p.primary.GetStats().LastDuration, match, nil
}

func snapshotsEqual(a, b tetris.Snapshot) bool {
	return a.State == b.State &&
		a.Score == b.Score &&
		a.Lines == b.Lines &&
		a.Piece == b.Piece &&
		a.Next == b.Next &&
		slices.Equal(a.Board, b.Board) &&
		slices.Equal(a.PieceCells, b.PieceCells)
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sessions := flag.Int("sessions", 8, "The number of concurrent session pairs to simulate.")
	seed := flag.Uint64("seed", 1, "The seed of the first session; session i uses seed+i.")
	interval := flag.Duration("interval", 50*time.Millisecond, "The gravity interval of every session.")
	dt := flag.Duration("dt", time.Second/60, "The simulated time advanced per frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting blockfall stress test...")

	if *sessions <= 0 {
		log.Fatalf("Invalid -sessions %d: must be positive", *sessions)
	}

	// 1. Setup session pairs
	pairs := make([]*pair, 0, *sessions)
	for i := range *sessions {
		cfg := tetris.DefaultConfig().WithSeed(*seed + uint64(i))
		cfg.FallInterval = interval.Seconds()

		p, err := newPair(cfg, *seed+uint64(i))
		if err != nil {
			log.Fatalf("Failed to create session %d: %v", i, err)
		}
		pairs = append(pairs, p)
	}
	log.Printf("Created %d session pairs starting at seed %d.\n", *sessions, *seed)

	// 2. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Sessions:       *sessions,
		Seed:           *seed,
		Interval:       *interval,
		FrameTime:      *dt,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	frameDT := dt.Seconds()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			for _, p := range pairs {
				tickDuration, match, err := p.step(frameDT)
				if err != nil {
					log.Fatalf("Tick failed: %v", err)
				}
				if !match {
					report.Mismatches++
				}
				report.TickTime.Samples = append(report.TickTime.Samples, tickDuration)
			}
			report.TotalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	for _, p := range pairs {
		report.add(p.primary.Session())
	}

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.Mismatches > 0 {
		log.Fatalf("Determinism check failed: %d mismatched frames", report.Mismatches)
	}
	log.Println("Stress test complete.")
}
