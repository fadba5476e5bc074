package shooter

import (
	"fmt"

	"github.com/vovakirdan/arcade-shooters/internal/core"
)

// Phase is the top-level game phase.
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseGameWon
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	case PhaseGameWon:
		return "won"
	default:
		return "unknown"
	}
}

// Ended reports whether the phase only accepts restart and quit.
func (p Phase) Ended() bool {
	return p == PhaseGameOver || p == PhaseGameWon
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventKill EventKind = iota
	EventPlayerHit
	EventLifeLost
	EventEscape
	EventLevelUp
	EventWaveComplete
	EventGameOver
	EventGameWon
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventKill:
		return "kill"
	case EventPlayerHit:
		return "player_hit"
	case EventLifeLost:
		return "life_lost"
	case EventEscape:
		return "escape"
	case EventLevelUp:
		return "level_up"
	case EventWaveComplete:
		return "wave_complete"
	case EventGameOver:
		return "game_over"
	case EventGameWon:
		return "game_won"
	default:
		return "unknown"
	}
}

// Event is one occurrence reported in a Frame.
type Event struct {
	Kind  EventKind
	Pos   core.Vec3
	Value int // Score gained, damage taken, or the new level
}

// String formats the event for logs.
func (e Event) String() string {
	return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
}

// State owns every live entity and the scalar game state of one engine.
type State struct {
	Player    *Player
	Bullets   []*Bullet
	Hostiles  []*Hostile
	Particles []*Particle
	Stars     []*Star

	Score  int
	Level  int
	Phase  Phase
	Paused bool
	Tick   int // Ticks simulated while playing
	Banner int // Wave-complete banner ticks remaining, spawning is held

	bursts []burst
	events []Event
	nextID int
}

func (st *State) emit(kind EventKind, pos core.Vec3, value int) {
	st.events = append(st.events, Event{Kind: kind, Pos: pos, Value: value})
}

func (st *State) queueBurst(pos core.Vec3, color core.Color) {
	st.bursts = append(st.bursts, burst{Pos: pos, Color: color})
}

func (st *State) addScore(v int) {
	st.Score = max(0, st.Score+v)
}

// pruneBullets drops removed bullets in place.
func (st *State) pruneBullets() {
	live := st.Bullets[:0]
	for _, b := range st.Bullets {
		if !b.Removed {
			live = append(live, b)
		}
	}
	clear(st.Bullets[len(live):])
	st.Bullets = live
}

// pruneHostiles drops removed hostiles in place and returns how many
// of them should be replaced by a recycled hostile.
func (st *State) pruneHostiles(recycle bool) int {
	replaced := 0
	live := st.Hostiles[:0]
	for _, h := range st.Hostiles {
		if !h.Removed {
			live = append(live, h)
			continue
		}
		if recycle && (h.Escaped || h.Hit) {
			replaced++
		}
	}
	clear(st.Hostiles[len(live):])
	st.Hostiles = live
	return replaced
}
