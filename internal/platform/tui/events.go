package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-shooters/internal/games/shooter"
)

// sinkSetter is implemented by games that publish every frame.
type sinkSetter interface {
	SetSink(shooter.FrameSink)
}

// eventLog is a frame sink that logs the events carried by each frame.
// Frequent events go to debug, the rest to info.
type eventLog struct {
	logger *log.Logger
}

// Present implements shooter.FrameSink.
func (l eventLog) Present(f shooter.Frame) {
	for _, ev := range f.Events {
		kv := []any{"tick", f.Tick, "value", ev.Value, "score", f.Score}
		switch ev.Kind {
		case shooter.EventKill, shooter.EventPlayerHit:
			l.logger.Debug(ev.Kind.String(), kv...)
		default:
			l.logger.Info(ev.Kind.String(), append(kv, "level", f.Level, "lives", f.Lives)...)
		}
	}
}
