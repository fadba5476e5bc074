package shooter

import (
	"github.com/vovakirdan/arcade-shooters/internal/config"
	"github.com/vovakirdan/arcade-shooters/internal/core"
)

//go:generate go tool mockgen -destination=./mocks/framesink_mock.go -package=mocks . FrameSink

// FrameSink receives the Frame produced by every tick.
type FrameSink interface {
	Present(f Frame)
}

// Engine runs one shooter variant on a fixed timestep.
// It is not safe for concurrent use; the front-end owns pacing.
type Engine struct {
	cfg  config.ShooterConfig
	rng  Random
	diff *config.DifficultyManager

	state     *State
	spawner   *Spawner
	resolver  *Resolver
	particles *ParticleSystem
	sink      FrameSink
	world     world

	playerColor core.Color
	bulletColor core.Color
	starColors  []core.Color
}

// NewEngine creates an engine and resets it to the starting phase.
func NewEngine(cfg config.ShooterConfig, rng Random) *Engine {
	e := &Engine{
		cfg:         cfg,
		rng:         rng,
		diff:        config.NewDifficultyManager(cfg.Difficulty, cfg.Spawn),
		playerColor: config.Color(cfg.Player.Color, core.ColorBrightCyan),
		bulletColor: config.Color(cfg.Bullets.Color, core.ColorYellow),
		starColors:  config.ParseColors(cfg.Stars.Colors),
	}
	e.Reset()
	return e
}

// SetSink registers a receiver for every produced Frame. nil disables it.
func (e *Engine) SetSink(s FrameSink) {
	e.sink = s
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.state.Phase
}

// State returns the scalar game state.
func (e *Engine) State() core.GameState {
	st := e.state
	return core.GameState{
		Score:    st.Score,
		Level:    st.Level,
		Lives:    st.Player.Lives,
		GameOver: st.Phase.Ended(),
		Won:      st.Phase == PhaseGameWon,
		Paused:   st.Paused,
		Ticks:    st.Tick,
	}
}

// Snapshot returns a Frame of the current state without ticking.
func (e *Engine) Snapshot() Frame {
	return e.snapshot(false)
}

// Reset discards all entities and starts a new game, showing the intro
// unless the variant skips it.
func (e *Engine) Reset() {
	e.reset(!e.cfg.Progression.SkipIntro)
}

func (e *Engine) reset(intro bool) {
	cfg := &e.cfg
	st := &State{
		Player: newPlayer(cfg),
		Level:  1,
		Phase:  PhasePlaying,
	}
	if intro {
		st.Phase = PhaseIntro
	}
	e.state = st
	e.spawner = NewSpawner(cfg, e.diff, e.rng)
	e.resolver = NewResolver(cfg)
	e.particles = newParticleSystem(cfg, e.rng, st)
	e.world = world{cfg: cfg, motion: parseMotion(cfg.Hostiles.Motion), rng: e.rng}

	for range cfg.Spawn.Initial {
		st.Hostiles = append(st.Hostiles, e.spawner.New(st, st.Level))
	}
	e.seedStars()
}

func (e *Engine) seedStars() {
	sc := e.cfg.Stars
	a := sc.Area
	e.state.Stars = make([]*Star, 0, sc.Count)
	for range sc.Count {
		e.state.Stars = append(e.state.Stars, &Star{
			Pos: core.Vec3{
				X: uniform(e.rng, a.MinX, a.MaxX),
				Y: uniform(e.rng, a.MinY, a.MaxY),
				Z: uniform(e.rng, a.MinZ, a.MaxZ),
			},
			Speed: uniform(e.rng, sc.Speed.Min, sc.Speed.Max),
			Size:  uniform(e.rng, sc.Size.Min, sc.Size.Max),
			Color: pick(e.rng, e.starColors, core.ColorWhite),
		})
	}
}

// Tick advances the game by one frame and returns the render data.
//
// While playing the order is: input, player movement, spawning, entity
// movement, collisions, pruning, particles, win/loss/level evaluation.
// Finished games only react to restart and quit.
func (e *Engine) Tick(in core.InputFrame) Frame {
	st := e.state
	st.events = st.events[:0]

	if in.Has(core.ActionQuit) {
		return e.present(true)
	}

	switch st.Phase {
	case PhaseIntro:
		if in.Has(core.ActionStart) || in.Has(core.ActionFire) {
			st.Phase = PhasePlaying
		}
		e.advanceStars()
		return e.present(false)
	case PhaseGameOver, PhaseGameWon:
		if in.Has(core.ActionRestart) {
			e.reset(false)
		}
		return e.present(false)
	}

	if in.Has(core.ActionPause) {
		st.Paused = !st.Paused
	}
	if st.Paused {
		return e.present(false)
	}

	e.step(in)
	debugCheck(e)
	return e.present(false)
}

// step runs one playing tick.
func (e *Engine) step(in core.InputFrame) {
	st := e.state
	cfg := &e.cfg
	p := st.Player
	st.Tick++

	// Input and player movement.
	dx, dy := in.Axis()
	p.cool()
	p.Move(cfg, dx, dy)
	if in.Has(core.ActionFire) {
		if b, ok := p.Shoot(cfg); ok {
			st.Bullets = append(st.Bullets, b)
		}
	}

	// Spawning.
	if st.Banner > 0 {
		st.Banner--
		e.spawner.Hold()
	} else if h, ok := e.spawner.Tick(st, st.Level); ok {
		st.Hostiles = append(st.Hostiles, h)
	}

	// Movement.
	e.world.player = p.Pos
	for _, h := range st.Hostiles {
		if h.Advance(&e.world) && h.Escaped {
			e.resolver.escape(st, h)
		}
	}
	for _, b := range st.Bullets {
		b.Advance(&e.world)
	}
	e.advanceStars()

	// Collisions and pruning.
	e.resolver.Resolve(st)
	st.pruneBullets()
	for range st.pruneHostiles(cfg.Hostiles.Recycle) {
		st.Hostiles = append(st.Hostiles, e.spawner.Respawn(st, st.Level))
	}

	e.particles.Update()

	if st.Phase == PhasePlaying {
		e.progress()
	}
}

// progress applies level-ups, wave completion and the win condition.
func (e *Engine) progress() {
	st := e.state
	pc := e.cfg.Progression

	if pc.Waves {
		quotaMet := e.cfg.Spawn.WaveSize == 0 || e.spawner.WaveDone()
		if st.Banner == 0 && len(st.Hostiles) == 0 && quotaMet && e.spawner.Quiet(st.Level) {
			st.Level++
			bonus := pc.WaveBonus * st.Level
			st.addScore(bonus)
			st.Banner = pc.BannerFrames
			e.spawner.NextWave()
			st.emit(EventWaveComplete, core.Vec3{}, st.Level)
		}
	} else if pc.ScorePerLevel > 0 {
		// One level per threshold crossed, even if a single tick crosses several.
		for st.Score > st.Level*pc.ScorePerLevel && (pc.WinLevel == 0 || st.Level < pc.WinLevel) {
			st.Level++
			st.emit(EventLevelUp, core.Vec3{}, st.Level)
		}
	}

	if pc.WinLevel > 0 && st.Level >= pc.WinLevel {
		st.Phase = PhaseGameWon
		st.emit(EventGameWon, core.Vec3{}, st.Score)
	}
}

func (e *Engine) advanceStars() {
	for _, s := range e.state.Stars {
		s.Advance(&e.world)
	}
}

func (e *Engine) present(quit bool) Frame {
	f := e.snapshot(quit)
	if e.sink != nil {
		e.sink.Present(f)
	}
	return f
}
