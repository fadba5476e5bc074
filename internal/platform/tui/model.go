package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-shooters/internal/core"
	"github.com/vovakirdan/arcade-shooters/internal/registry"
	"github.com/vovakirdan/arcade-shooters/internal/storage"
)

// Options configures a game session.
type Options struct {
	Store     *storage.Store // nil disables persistence
	Logger    *log.Logger    // nil discards logs
	HoldTicks int            // See DefaultHoldTicks
	AllowBack bool           // B returns to the menu when paused or finished
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// GameModel is the Bubble Tea model for running one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	input      *InputState
	gameState  core.GameState
	allowBack  bool
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the finished game has been saved
	lastRunID  string
	frameLog   bool // Events are logged by a frame sink
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     opts.Store,
		logger:    opts.logger().With("game", game.ID()),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		input:     NewInputState(opts.HoldTicks),
		allowBack: opts.AllowBack,
	}
	if g, ok := game.(sinkSetter); ok {
		g.SetSink(eventLog{logger: m.logger})
		m.frameLog = true
	}
	return m
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if cfgErr, ok := m.game.(interface{ ConfigError() error }); ok {
		if err := cfgErr.ConfigError(); err != nil {
			m.logger.Warn("using built-in config", "error", err)
		}
	}
	m.logger.Info("game started", "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game draws in world coordinates, so a resize only changes
		// the screen buffer.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.allowBack && msg.String() == "b" && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("game quit", "score", m.gameState.Score, "ticks", m.gameState.Ticks, "run", m.lastRunID)
		return m, tea.Quit
	}
	m.input.Press(action)

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Next())
	m.gameState = result.State

	if !m.frameLog {
		for _, ev := range result.Events {
			m.logEvent(ev)
		}
	}

	if !m.gameState.GameOver {
		m.recorded = false
	} else if !m.recorded {
		m.record()
		m.recorded = true
		m.input.Reset()
	}

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) logEvent(ev string) {
	st := m.gameState
	switch ev {
	case "kill", "player_hit":
		m.logger.Debug(ev, "score", st.Score)
	default:
		m.logger.Info(ev, "score", st.Score, "level", st.Level, "lives", st.Lives)
	}
}

// record saves the score and the run of a finished game. Failures are
// logged; the game continues regardless.
func (m *GameModel) record() {
	st := m.gameState
	if m.store == nil {
		return
	}
	if st.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), st.Score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}
	id, err := m.store.SaveRun(storage.Run{
		GameID: m.game.ID(),
		Score:  st.Score,
		Level:  st.Level,
		Won:    st.Won,
		Ticks:  st.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.lastRunID = id
	m.logger.Debug("run saved", "run", id)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".shooters", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the most recent game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
