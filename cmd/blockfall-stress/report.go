package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Sessions  int
	Seed      uint64
	Interval  time.Duration
	FrameTime time.Duration

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	TickTime       Stats
	Mismatches     int
	Games          int
	Ticks          int64
	Locks          int
	Lines          int
	Clears         [5]int
	BestScore      int
	BestSeed       uint64
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// add accumulates a session's counters into the report.
func (r *Report) add(session *tetris.Session) {
	stats := session.Stats()
	r.Games += stats.Games
	r.Ticks += stats.Ticks
	r.Locks += stats.Locks
	r.Lines += stats.Lines
	for i, n := range stats.Clears {
		r.Clears[i] += n
	}
	if session.Score() > r.BestScore {
		r.BestScore = session.Score()
		r.BestSeed = session.Seed()
	}
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Session Pairs:** {{.Sessions}}
- **Seeds:** {{.Seed}} to {{seedEnd .Seed .Sessions}}
- **Fall Interval:** {{.Interval}}
- **Frame Delta:** {{.FrameTime}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time (Session):**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Gameplay
- **Games Played:** {{.Games}}
- **Ticks:** {{.Ticks}}
- **Pieces Locked:** {{.Locks}}
- **Lines Cleared:** {{.Lines}}
{{- range $rows, $count := .Clears}}{{if $rows}}
  - **{{$rows}}-row clears:** {{$count}}{{end}}{{end}}
- **Best Current Score:** {{.BestScore}} (seed {{.BestSeed}})

## Determinism
- **Mismatched Frames:** {{.Mismatches}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} ({{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} MB)
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"seedEnd": func(seed uint64, sessions int) uint64 {
			return seed + uint64(sessions) - 1
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
