package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{5, 1, 3, 2, 4}}
	s.Finalize()

	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(5), s.Max)
	assert.Equal(t, time.Duration(3), s.Avg)
	assert.Equal(t, time.Duration(3), s.P50)
	assert.Equal(t, time.Duration(4), s.P99)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Max)
}

func TestReportHistogram(t *testing.T) {
	r := NewReport(Config{Strategy: Greedy{}}, 1)
	for _, score := range []int{1200, 40, 499, 500, 1999, 10} {
		r.AddScore(score)
	}

	assert.Equal(t, []Bucket{
		{Low: 0, Games: 3},
		{Low: 500, Games: 1},
		{Low: 1000, Games: 1},
		{Low: 1500, Games: 1},
	}, r.Histogram())
	assert.Equal(t, 10, r.Score.Min)
	assert.Equal(t, 1999, r.Score.Max)
	assert.InDelta(t, 708.0, r.Score.Avg, 0.01)
}

func TestRunProducesReport(t *testing.T) {
	report := Run(context.Background(), Config{
		Duration:  30 * time.Second,
		Workers:   2,
		Seed:      42,
		BatchSize: 3,
		Strategy:  FirstFit{},
		MaxGames:  2,
	}, slog.New(slog.DiscardHandler))

	assert.Equal(t, 4, report.Games)
	assert.Equal(t, "first", report.Strategy)
	assert.Positive(t, report.Placements)
	assert.Len(t, report.PlaceTime.Samples, int(report.Placements))

	total := 0
	for _, b := range report.Histogram() {
		total += b.Games
	}
	assert.Equal(t, report.Games, total)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "# Blockfill Self-Play Report")
	assert.Contains(t, out, "**Finished Games:** 4")
	assert.Contains(t, out, "**Seed:** 42")
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := Run(ctx, Config{Workers: 1, BatchSize: 3, Strategy: Greedy{}}, slog.New(slog.DiscardHandler))
	assert.Zero(t, report.Games)
	assert.Zero(t, report.Placements)
}
