package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-shooters/internal/core"
	"github.com/vovakirdan/arcade-shooters/internal/games/shooter"
)

func newBufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	return logger, &buf
}

func TestEventLogLevels(t *testing.T) {
	logger, buf := newBufferLogger()
	eventLog{logger: logger}.Present(shooter.Frame{
		Tick:  42,
		Score: 300,
		Level: 2,
		Lives: 1,
		Events: []shooter.Event{
			{Kind: shooter.EventKill, Value: 300},
			{Kind: shooter.EventLifeLost, Value: 1},
		},
	})

	out := buf.String()
	if strings.Contains(out, "kill") {
		t.Errorf("kill logged at info level:\n%s", out)
	}
	for _, want := range []string{"life_lost", "tick=42", "score=300", "lives=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

// sinkGame is a scripted game that also publishes frames.
type sinkGame struct {
	scriptedGame
	sink shooter.FrameSink
}

func (g *sinkGame) SetSink(s shooter.FrameSink) { g.sink = s }

func (g *sinkGame) Step(in core.InputFrame) core.StepResult {
	res := g.scriptedGame.Step(in)
	if g.sink != nil && res.State.GameOver {
		g.sink.Present(shooter.Frame{
			Score:  res.State.Score,
			Events: []shooter.Event{{Kind: shooter.EventGameOver, Value: res.State.Score}},
		})
	}
	return res
}

func TestGameModelLogsFramesThroughSink(t *testing.T) {
	logger, buf := newBufferLogger()
	game := &sinkGame{scriptedGame: scriptedGame{states: []core.GameState{
		{Score: 50, Level: 1, Lives: 1},
		{Score: 70, Level: 1, GameOver: true},
	}}}

	m := NewGameModel(game, core.DefaultConfig(), Options{Logger: logger})
	if game.sink == nil {
		t.Fatal("NewGameModel() did not install a frame sink")
	}
	m.Init()
	m = tick(t, m)
	tick(t, m)

	if n := strings.Count(buf.String(), "game_over"); n != 1 {
		t.Errorf("game_over logged %d times, expected once:\n%s", n, buf.String())
	}
}
