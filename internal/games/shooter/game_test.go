package shooter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/arcade-shooters/internal/config"
	"github.com/vovakirdan/arcade-shooters/internal/core"
	"github.com/vovakirdan/arcade-shooters/internal/registry"
)

func TestVariantsRegistered(t *testing.T) {
	titles := registry.Titles()
	for _, v := range config.Variants {
		if !registry.Exists(v) {
			t.Errorf("variant %q not registered", v)
			continue
		}
		if titles[v] != config.Default(v).Title {
			t.Errorf("title of %q = %q, expected %q", v, titles[v], config.Default(v).Title)
		}
	}
}

func TestGameStepAndRender(t *testing.T) {
	g, err := registry.Create(config.VariantFighter)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})

	res := g.Step(core.InputOf(core.ActionFire))
	if res.Quit || res.State.GameOver {
		t.Errorf("Step() = %+v, expected a running game", res)
	}
	if res.State.Ticks != 1 || res.State.Level != 1 {
		t.Errorf("state = %+v, expected tick 1 at level 1", res.State)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if hud := scr.Row(0); !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD = %q, expected the score", hud)
	}

	res = g.Step(core.InputOf(core.ActionQuit))
	if !res.Quit {
		t.Error("Step(quit).Quit = false, expected true")
	}
}

func TestGameReportsEvents(t *testing.T) {
	g := New(VariantTargets)
	g.Reset(core.DefaultConfig())
	e := g.engine
	e.state.Hostiles = []*Hostile{{
		Body:   Body{Pos: e.state.Player.Pos.Add(core.Vec3{Y: -15}), Shape: ShapeSphere, R: 20},
		Health: 1,
		Value:  300,
		Color:  core.ColorRed,
	}}

	res := g.Step(core.InputOf(core.ActionFire))

	found := false
	for _, ev := range res.Events {
		if ev == "kill" {
			found = true
		}
	}
	if !found {
		t.Errorf("Events = %v, expected a kill", res.Events)
	}
	if res.State.Score != 300 {
		t.Errorf("Score = %d, expected 300", res.State.Score)
	}
}

func TestGameBadConfigFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  interval: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New(VariantFighter)
	g.Reset(core.DefaultConfig())

	if g.ConfigError() == nil {
		t.Fatal("ConfigError() = nil, expected the validation error")
	}
	if got := g.engine.cfg.Spawn.Interval; got != 60 {
		t.Errorf("spawn interval = %d, expected default 60", got)
	}
}

func TestGameDifficultyPreset(t *testing.T) {
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New(VariantSpace)
	g.Reset(core.DefaultConfig())

	if err := g.ConfigError(); err != nil {
		t.Fatalf("ConfigError() = %v", err)
	}
	if lives := g.engine.cfg.Player.Lives; lives != 2 {
		t.Errorf("hard lives = %d, expected 2", lives)
	}

	SetDifficultyPreset("brutal")
	if difficultyPreset != "" {
		t.Errorf("unknown preset kept as %q", difficultyPreset)
	}
}
