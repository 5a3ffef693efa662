package main

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

func newSimGame(seed int64) *flappy.Game {
	g := flappy.NewGame(config.DefaultFlappyConfig(), sprite.Default())
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

func TestSimulateNeverJumping(t *testing.T) {
	frames := 0
	state := simulate(newSimGame(1), 1000, 0, func(core.GameState) { frames++ })

	if !state.GameOver || state.Reason != flappy.ReasonGround {
		t.Fatalf("expected a ground hit, got %+v", state)
	}
	if frames != state.Ticks {
		t.Errorf("onFrame called %d times for %d ticks", frames, state.Ticks)
	}
}

func TestSimulateStopsAtFrameLimit(t *testing.T) {
	state := simulate(newSimGame(1), 5, 0, nil)
	if state.GameOver || state.Ticks != 5 {
		t.Errorf("expected 5 ticks still flying, got %+v", state)
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	var a, b []int
	simulate(newSimGame(99), 400, 17, func(s core.GameState) { a = append(a, s.Score) })
	simulate(newSimGame(99), 400, 17, func(s core.GameState) { b = append(b, s.Score) })

	if len(a) != len(b) {
		t.Fatalf("runs lasted %d and %d frames", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("frame %d: scores %d and %d differ", i, a[i], b[i])
		}
	}
}
