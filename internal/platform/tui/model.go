package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/starfall-arcade/starfall/internal/core"
	"github.com/starfall-arcade/starfall/internal/registry"
	"github.com/starfall-arcade/starfall/internal/storage"
)

// FieldSizer is implemented by games with a logical playfield. It lets
// the platform map terminal cell coordinates to game coordinates for
// mouse input.
type FieldSizer interface {
	FieldSize() (w, h float64)
}

// Model is the Bubble Tea model that drives a game session: it collects
// input between ticks, advances the simulation at the configured rate and
// renders the result.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	difficulty string
	keys       *KeyMapper

	intent    core.Intent
	gameState core.GameState
	lastTick  time.Time

	quitting      bool
	restartQueued bool
	scoreSaved    bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		difficulty: difficulty,
		keys:       NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Apply(msg, &m.intent) {
	case ControlQuit:
		m.quitting = true
		return m, tea.Quit
	case ControlScreenshot:
		m.saveScreenshot()
	case ControlRestart:
		if m.gameState.GameOver {
			m.restartQueued = true
		}
	}

	return m, nil
}

// handleMouse maps cell coordinates into the game's logical playfield and
// keeps the pointer engaged until a movement key takes over. A click on a
// finished session restarts it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	fs, ok := m.game.(FieldSizer)
	if !ok {
		return m, nil
	}

	fw, fh := fs.FieldSize()
	vp := core.Viewport{
		FieldW: fw, FieldH: fh,
		ScreenW: m.config.ScreenW, ScreenH: m.config.ScreenH,
	}
	if !vp.Valid() {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionPress:
		m.intent.PointerActive = true
		m.intent.Pointer = vp.Logical(msg.X, msg.Y)
	case tea.MouseActionRelease:
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.gameState.GameOver {
		m.restartQueued = true
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs on a
// fixed logical playfield, so only the render surface changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one tick, feeding it the wall
// clock time elapsed since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.restartQueued {
		m.restartQueued = false
		if m.gameState.GameOver {
			// Reseed so the next run differs
			m.config.Seed = time.Now().UnixNano()
			m.game.Reset(m.config)
			m.gameState = m.game.State()
			m.scoreSaved = false
			m.intent = core.Intent{}
			return m, tickCmd(m.config.TickRate)
		}
	}

	result := m.game.Step(m.intent, dt)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score, m.difficulty)
		}
		m.scoreSaved = true
	}

	// Key presses apply to exactly one tick; the pointer stays engaged.
	m.intent.ClearTransient()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".starfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) error {
	model := NewModel(game, store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer steering
	)

	_, err := p.Run()
	return err
}
