package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-birds/internal/core"
	"github.com/vovakirdan/tui-birds/internal/registry"
	"github.com/vovakirdan/tui-birds/internal/replay"
	"github.com/vovakirdan/tui-birds/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Store    *storage.Store // Nil disables recording
	Record   bool
	Source   string // Stored with recorded runs
	Embedded bool   // Back returns to a parent model instead of quitting
	Logger   *log.Logger
}

// GameModel is the Bubble Tea model running one game.
//
// Terminals report key presses but never releases, so a jump key message
// counts as the key held for exactly one tick. Mouse messages carry real
// press and release levels.
type GameModel struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     GameOptions
	sampler  *core.InputSampler
	recorder *replay.Recorder
	keys     GameKeyMap
	help     help.Model
	logger   *log.Logger

	keyTapped  bool
	pointer    pointerLevel
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	savedRunID int64
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		config:  cfg,
		opts:    opts,
		sampler: core.NewInputSampler(core.TickDuration(cfg.TickRate)),
		keys:    DefaultGameKeyMap(),
		help:    h,
		logger:  logger,
	}

	// Reset here so Init can stay a pure command.
	game.Reset(cfg)
	m.gameState = game.State()

	if opts.Record && opts.Store != nil {
		rec, err := replay.NewRecorder(game, cfg, opts.Source)
		if err != nil {
			logger.Warn("recording disabled", "error", err)
		} else {
			m.recorder = rec
		}
	}
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.pointer.Handle(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.finish()
		if m.opts.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Jump):
		m.keyTapped = true
	}

	return m, nil
}

// handleTick samples input and runs one simulation tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	frame := m.sampler.Sample(m.keyTapped, m.pointer.Sample())
	m.keyTapped = false

	if m.recorder != nil {
		m.recorder.Observe(frame)
	}
	result := m.game.Step(frame)
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate)
}

// finish stores the recording, once.
func (m *GameModel) finish() {
	if m.recorder == nil || m.opts.Store == nil {
		return
	}
	rec := m.recorder
	m.recorder = nil
	if rec.Ticks() == 0 {
		return
	}

	id, err := m.opts.Store.SaveRun(rec.Finish(m.game.State()))
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.savedRunID = id
	m.logger.Info("run saved", "id", id, "ticks", rec.Ticks())
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
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

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// SavedRunID returns the ID of the stored recording, or 0.
func (m GameModel) SavedRunID() int64 {
	return m.savedRunID
}

// GameState returns the summary of the last tick.
func (m GameModel) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
// Returns the ID of the stored recording, or 0 if none was stored.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) (int64, error) {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	if m, ok := final.(GameModel); ok {
		return m.SavedRunID(), nil
	}
	return 0, nil
}
