package shooter

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/arcade-shooters/internal/config"
	"github.com/vovakirdan/arcade-shooters/internal/core"
)

// playActions are the inputs drawn for generated games. Restart and quit
// are left out so a run is one continuous game.
var playActions = []core.Action{
	core.ActionNone,
	core.ActionLeft,
	core.ActionRight,
	core.ActionUp,
	core.ActionDown,
	core.ActionFire,
	core.ActionFire,
	core.ActionStart,
	core.ActionPause,
}

func drawEngine(t *rapid.T) *Engine {
	variant := rapid.SampledFrom(config.Variants).Draw(t, "variant")
	seed := rapid.Int64().Draw(t, "seed")
	cfg := config.Default(variant)
	cfg.Spawn.Interval = rapid.IntRange(1, 60).Draw(t, "interval")
	cfg.Spawn.Floor = 1
	return NewEngine(cfg, NewRandom(seed))
}

func drawInputs(t *rapid.T) []core.InputFrame {
	acts := rapid.SliceOfN(rapid.SampledFrom(playActions), 1, 600).Draw(t, "actions")
	inputs := make([]core.InputFrame, len(acts))
	for i, a := range acts {
		inputs[i] = core.InputOf(a)
	}
	return inputs
}

func TestPropertyInvariantsHold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := drawEngine(t)
		for i, in := range drawInputs(t) {
			e.Tick(in)
			if err := e.CheckInvariants(); err != nil {
				t.Fatalf("tick %d: %v", i, err)
			}
		}
	})
}

func TestPropertyScoreAndLevelMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := drawEngine(t)
		score, level := 0, 1
		for i, in := range drawInputs(t) {
			f := e.Tick(in)
			if f.Score < score {
				t.Fatalf("tick %d: score dropped from %d to %d", i, score, f.Score)
			}
			if f.Level < level {
				t.Fatalf("tick %d: level dropped from %d to %d", i, level, f.Level)
			}
			score, level = f.Score, f.Level
		}
	})
}

func TestPropertyEndedGameIsFrozen(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := drawEngine(t)
		e.state.Phase = rapid.SampledFrom([]Phase{PhaseGameOver, PhaseGameWon}).Draw(t, "phase")

		first := e.Tick(idle())
		for i, in := range drawInputs(t) {
			f := e.Tick(in)
			if !reflect.DeepEqual(f, first) {
				t.Fatalf("tick %d: frame changed after the game ended", i)
			}
		}
	})
}

func TestPropertyRestartStartsFresh(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := drawEngine(t)
		for _, in := range drawInputs(t) {
			e.Tick(in)
		}
		e.state.Phase = PhaseGameOver

		f := e.Tick(core.InputOf(core.ActionRestart))
		if f.Phase != PhasePlaying || f.Score != 0 || f.Level != 1 || f.Tick != 0 {
			t.Fatalf("after restart: phase %v score %d level %d tick %d", f.Phase, f.Score, f.Level, f.Tick)
		}
		if f.Lives != e.cfg.Player.Lives || len(f.Bullets) != 0 || len(f.Particles) != 0 {
			t.Fatalf("after restart: lives %d bullets %d particles %d", f.Lives, len(f.Bullets), len(f.Particles))
		}
	})
}

func TestPropertyIdleTicksKeepScalars(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		variant := rapid.SampledFrom(config.Variants).Draw(t, "variant")
		cfg := config.Default(variant)
		cfg.Spawn.Initial = 0
		cfg.Spawn.Interval = 1 << 30
		cfg.Progression.SkipIntro = rapid.Bool().Draw(t, "skip_intro")
		e := NewEngine(cfg, NewRandom(rapid.Int64().Draw(t, "seed")))

		start := e.Snapshot()
		ticks := rapid.IntRange(1, 2000).Draw(t, "ticks")
		for i := range ticks {
			f := e.Tick(idle())
			if f.Score != start.Score || f.Lives != start.Lives || f.Health != start.Health || f.Level != start.Level {
				t.Fatalf("tick %d: score/lives/health/level = %d/%d/%d/%d, expected %d/%d/%d/%d",
					i, f.Score, f.Lives, f.Health, f.Level, start.Score, start.Lives, start.Health, start.Level)
			}
			if f.Phase != start.Phase || len(f.Events) != 0 {
				t.Fatalf("tick %d: phase %v events %v, expected %v without events", i, f.Phase, f.Events, start.Phase)
			}
		}
	})
}
