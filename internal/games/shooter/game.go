// Package shooter implements the shared engine behind the three arcade
// shooters: a vertical fighter, a target gallery and a top-down 3D space
// shooter. Games are registered with the registry under their variant name.
package shooter

import (
	"github.com/vovakirdan/arcade-shooters/internal/config"
	"github.com/vovakirdan/arcade-shooters/internal/core"
	"github.com/vovakirdan/arcade-shooters/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	for _, v := range config.Variants {
		registry.Register(v, func() registry.Game { return New(Variant(v)) })
	}
}

// Game adapts an Engine to the registry.Game interface.
type Game struct {
	variant Variant
	engine  *Engine
	last    Frame
	sink    FrameSink
	cfgErr  error
}

// New creates a game for a variant. The engine is built on Reset.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return config.Default(string(g.variant)).Title
}

// SetSink forwards every frame to s, including frames of later resets.
func (g *Game) SetSink(s FrameSink) {
	g.sink = s
	if g.engine != nil {
		g.engine.SetSink(s)
	}
}

// ConfigError returns the error hit while loading the config on the last
// Reset, if any. The game falls back to built-in defaults in that case.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadWithPreset(string(g.variant), configPath, difficultyPreset)
	g.cfgErr = err
	if err != nil {
		cfg = config.Default(string(g.variant))
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	g.engine = NewEngine(cfg, NewRandom(runtime.Seed))
	g.engine.SetSink(g.sink)
	g.last = g.engine.Snapshot()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	f := g.engine.Tick(in)
	g.last = f

	var events []string
	for _, ev := range f.Events {
		events = append(events, ev.Kind.String())
	}
	return core.StepResult{
		State:  g.engine.State(),
		Events: events,
		Quit:   f.Quit,
	}
}

// Render draws the most recent frame.
func (g *Game) Render(dst *core.Screen) {
	RenderFrame(dst, g.last)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Level: 1}
	}
	return g.engine.State()
}
