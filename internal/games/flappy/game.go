// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
// The simulation runs in world pixels (500x800 by default) and knows nothing
// about terminals or windows; frontends feed it input frames and draw it.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// Reasons a session ends, reported in core.GameState.Reason.
const (
	ReasonPipe    = "pipe"
	ReasonGround  = "ground"
	ReasonCeiling = "ceiling"
	ReasonQuit    = "quit"
)

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg        config.FlappyConfig
	assets     *sprite.Assets
	difficulty *config.DifficultyManager

	bird  *Bird
	pipes *PipeManager
	base  *Base

	score    int
	gameOver bool
	reason   string
	ticks    int
}

// NewGame creates a game with the given tuning and art. Call Reset before
// the first Step.
func NewGame(cfg config.FlappyConfig, assets *sprite.Assets) *Game {
	g := &Game{
		cfg:        cfg,
		assets:     assets,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	g.Reset(core.RuntimeConfig{})
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset puts the bird at its start point, lays out fresh pipes from the seed
// and clears the score. Output size in rc is ignored; the world size is fixed
// by the config.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.bird = NewBird(g.cfg.Bird)
	g.pipes = NewPipeManager(rc.Seed, g.cfg.Pipes, g.assets, g.difficulty)
	g.base = NewBase(g.cfg.Base, g.assets.Base.Bounds().Dx())
	g.score = 0
	g.gameOver = false
	g.reason = ""
	g.ticks = 0
}

// Step advances the game by one tick. After the game is over it does nothing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionQuit) {
		g.end(ReasonQuit)
		return core.StepResult{State: g.State()}
	}

	g.ticks++

	if in.Has(core.ActionJump) {
		g.bird.Jump()
	}
	g.bird.Move()

	passed, hit := g.pipes.Update(g.bird, g.assets, g.score, g.ticks)
	g.score += passed
	if hit {
		g.end(ReasonPipe)
	}

	bottom := g.bird.Y + float64(g.bird.Mask(g.assets).Height())
	switch {
	case bottom >= float64(g.base.Y):
		g.end(ReasonGround)
	case bottom < 0:
		g.end(ReasonCeiling)
	}

	g.base.MoveBy(g.difficulty.Speed(g.base.Velocity(), g.score, g.ticks))
	g.bird.Animate()

	return core.StepResult{State: g.State()}
}

// end records the first reason only.
func (g *Game) end(reason string) {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.reason = reason
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Reason:   g.reason,
		Ticks:    g.ticks,
	}
}

// Bird returns the player sprite.
func (g *Game) Bird() *Bird { return g.bird }

// Pipes returns the pipes in flight.
func (g *Game) Pipes() []Pipe { return g.pipes.Pipes() }

// Base returns the ground strip.
func (g *Game) Base() *Base { return g.base }

// Assets returns the images the game is drawn with.
func (g *Game) Assets() *sprite.Assets { return g.assets }

// Config returns the tuning the game was created with.
func (g *Game) Config() config.FlappyConfig { return g.cfg }
