package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"
)

// ScoreBucketSize is the width of one histogram bucket.
const ScoreBucketSize = 500

type Report struct {
	// Configuration
	Duration  time.Duration
	Workers   int
	Seed      uint64
	Mirror    bool
	BatchSize int
	Strategy  string

	// Results
	Games         int
	Placements    int64
	LinesCleared  int
	Combos        int
	BestMove      int
	TotalTime     time.Duration
	PlaceTime     Stats
	Score         ScoreStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats

	histogram *intmap.Map[int, int]
	buckets   []int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P50     time.Duration
	P99     time.Duration
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
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.P50 = sorted[len(sorted)/2]
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

type ScoreStats struct {
	Min   int
	Max   int
	Avg   float64
	total int
	count int
}

func (s *ScoreStats) Add(score int) {
	if s.count == 0 {
		s.Min, s.Max = score, score
	}
	s.Min = min(s.Min, score)
	s.Max = max(s.Max, score)
	s.total += score
	s.count++
	s.Avg = float64(s.total) / float64(s.count)
}

// Bucket is one histogram row: games scoring in [Low, Low+ScoreBucketSize).
type Bucket struct {
	Low   int
	Games int
}

func NewReport(cfg Config, workers int) *Report {
	r := &Report{
		Duration:  cfg.Duration,
		Workers:   workers,
		Seed:      cfg.Seed,
		Mirror:    cfg.Mirror,
		BatchSize: cfg.BatchSize,
		histogram: intmap.New[int, int](32),
	}
	if cfg.Strategy != nil {
		r.Strategy = cfg.Strategy.Name()
	}
	runtime.ReadMemStats(&r.MemStatsStart)
	return r
}

// Merge folds one worker's results into the report.
func (r *Report) Merge(res workerResult) {
	r.Games += res.games
	r.Placements += res.placements
	r.LinesCleared += res.linesCleared
	r.Combos += res.combos
	r.BestMove = max(r.BestMove, res.bestMove)
	r.PlaceTime.Samples = append(r.PlaceTime.Samples, res.latency...)
	for _, score := range res.scores {
		r.AddScore(score)
	}
}

// AddScore records the final score of one game.
func (r *Report) AddScore(score int) {
	low := score / ScoreBucketSize * ScoreBucketSize
	n, ok := r.histogram.Get(low)
	if !ok {
		r.buckets = append(r.buckets, low)
	}
	r.histogram.Put(low, n+1)
	r.Score.Add(score)
}

// Histogram returns the non-empty score buckets in ascending order.
func (r *Report) Histogram() []Bucket {
	lows := slices.Clone(r.buckets)
	slices.Sort(lows)
	out := make([]Bucket, 0, len(lows))
	for _, low := range lows {
		n, _ := r.histogram.Get(low)
		out = append(out, Bucket{Low: low, Games: n})
	}
	return out
}

func (r *Report) PlacementsPerGame() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Placements) / float64(r.Games)
}

func (r *Report) Finalize() {
	r.PlaceTime.Finalize()
	runtime.ReadMemStats(&r.MemStatsEnd)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfill Self-Play Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Workers:** {{.Workers}}
- **Strategy:** {{.Strategy}}
- **Seed:** {{if .Seed}}{{.Seed}}{{else}}random{{end}}
- **Batch Size:** {{.BatchSize}}
- **Mirroring:** {{.Mirror}}

## Games
- **Finished Games:** {{.Games}}
- **Placements:** {{.Placements}} ({{printf "%.1f" .PlacementsPerGame}} per game)
- **Lines Cleared:** {{.LinesCleared}}
- **Combos:** {{.Combos}}
- **Best Single Move:** +{{.BestMove}}
- **Score:** avg {{printf "%.1f" .Score.Avg}}, min {{.Score.Min}}, max {{.Score.Max}}

## Score Histogram
| Score | Games |
|-------|-------|
{{range .Histogram}}| {{.Low}}-{{add .Low}} | {{.Games}} |
{{end}}
## Placement Latency
- **Total Test Time:** {{.TotalTime}}
- **Avg:** {{.PlaceTime.Avg}}
- **P50:** {{.PlaceTime.P50}}
- **P99:** {{.PlaceTime.P99}}
- **Min:** {{.PlaceTime.Min}}
- **Max:** {{.PlaceTime.Max}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- Total GC Pause: {{.MemStatsEnd.PauseTotalNs | ns}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
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
		"add": func(low int) int {
			return low + ScoreBucketSize - 1
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
