package shooter

import (
	"strings"
	"testing"

	"github.com/vovakirdan/arcade-shooters/internal/config"
	"github.com/vovakirdan/arcade-shooters/internal/core"
)

func screenText(s *core.Screen) string {
	return s.String()
}

func TestRenderHUD(t *testing.T) {
	e := newTestEngine(t, config.VariantFighter, nil)
	scr := core.NewScreen(80, 24)
	RenderFrame(scr, e.Tick(idle()))

	hud := scr.Row(0)
	for _, want := range []string{"Score: 0", "Lives: 1  HP: 100/100", "Level: 1"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.Contains(screenText(scr), "/A\\") {
		t.Error("fighter sprite not drawn")
	}
}

func TestRenderWaveLabel(t *testing.T) {
	e := newTestEngine(t, config.VariantSpace, nil)
	scr := core.NewScreen(80, 24)
	RenderFrame(scr, e.Tick(idle()))

	if hud := scr.Row(0); !strings.Contains(hud, "Wave: 1") {
		t.Errorf("HUD %q missing wave counter", hud)
	}
	if !strings.Contains(screenText(scr), "<^>") {
		t.Error("space ship sprite not drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	e := newTestEngine(t, config.VariantTargets, nil)
	scr := core.NewScreen(30, 10)
	RenderFrame(scr, e.Tick(idle()))

	if !strings.Contains(screenText(scr), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", screenText(scr))
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
		want  []string
	}{
		{
			name:  "intro",
			setup: func(e *Engine) { e.state.Phase = PhaseIntro },
			want:  []string{"Target Gallery", "Press ENTER to start"},
		},
		{
			name:  "game over",
			setup: func(e *Engine) { e.state.Phase = PhaseGameOver; e.state.Score = 700 },
			want:  []string{"GAME OVER", "Final Score: 700"},
		},
		{
			name:  "won",
			setup: func(e *Engine) { e.state.Phase = PhaseGameWon },
			want:  []string{"YOU WIN!", "Press R to restart"},
		},
		{
			name:  "paused",
			setup: func(e *Engine) { e.state.Paused = true },
			want:  []string{"PAUSED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, config.VariantTargets, nil)
			tt.setup(e)
			scr := core.NewScreen(80, 24)
			RenderFrame(scr, e.Snapshot())

			text := screenText(scr)
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("screen missing %q:\n%s", want, text)
				}
			}
		})
	}
}

func TestRenderHitTarget(t *testing.T) {
	e := newTestEngine(t, config.VariantTargets, nil)
	e.state.Hostiles = []*Hostile{{
		Body:   Body{Pos: core.V2(500, 350), Shape: ShapeSphere, R: 20},
		Size:   40,
		Depth:  3,
		Health: 0,
		Hit:    true,
		Color:  core.ColorRed,
	}}
	scr := core.NewScreen(80, 24)
	RenderFrame(scr, e.Snapshot())

	text := screenText(scr)
	if !strings.Contains(text, string(HitChar)) {
		t.Error("hit ring not drawn")
	}
	if strings.ContainsRune(text, depthGlyphs[2]) {
		t.Error("hit target still drawn as a live target")
	}
}

func TestRenderHealthColor(t *testing.T) {
	tests := []struct {
		health int
		want   core.Color
	}{
		{100, core.ColorDefault},
		{50, core.ColorYellow},
		{20, core.ColorBrightRed},
	}

	for _, tt := range tests {
		e := newTestEngine(t, config.VariantFighter, nil)
		e.state.Player.Health = tt.health
		scr := core.NewScreen(80, 24)
		RenderFrame(scr, e.Snapshot())

		x := strings.Index(scr.Row(0), "Lives:")
		if x < 0 {
			t.Fatalf("health %d: HUD %q missing lives", tt.health, scr.Row(0))
		}
		if c := scr.GetCell(x, 0).Color; c != tt.want {
			t.Errorf("health %d: HUD color = %v, expected %v", tt.health, c, tt.want)
		}
	}
}

func TestRenderClipsHostileAboveField(t *testing.T) {
	e := newTestEngine(t, config.VariantFighter, nil)
	e.state.Hostiles = []*Hostile{{
		Body:   Body{Pos: core.V2(400, -30), Shape: ShapeBox, W: 30, H: 30},
		Health: 10,
		Color:  core.ColorRed,
	}}
	scr := core.NewScreen(80, 24)
	RenderFrame(scr, e.Snapshot())

	if strings.ContainsRune(screenText(scr), 'V') {
		t.Errorf("hostile above the field drawn:\n%s", screenText(scr))
	}
}
