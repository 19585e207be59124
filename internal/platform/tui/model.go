package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// resizer is implemented by games that keep their state across a terminal
// resize instead of being reset.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	keys        *KeyMapper
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	resultSaved bool // Whether the result has been saved for the current game

	// Set for games hosted inside a SessionModel: Back returns to the menu
	// instead of being ignored.
	embedded   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
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

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// B/Esc leaves a finished or paused game when hosted in a session.
	if m.embedded && m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Fresh seed for every new game after the first
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.resultSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveResult(storage.Result{
				Variant: m.game.ID(),
				Won:     m.gameState.Won,
				MaxTile: m.gameState.MaxTile,
				Moves:   m.gameState.Moves,
			})
		}
		m.resultSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text to the data dir.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.DataPath("screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
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
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// Summary renders the final board as text followed by the outcome, for
// printing once the alternate screen is gone.
func Summary(game registry.Game) string {
	var sb strings.Builder
	if s, ok := game.(fmt.Stringer); ok {
		sb.WriteString(s.String())
	}

	st := game.State()
	switch {
	case st.GameOver && st.Won:
		sb.WriteString("You win!\n")
	case st.GameOver:
		sb.WriteString("Game over!\n")
	}
	fmt.Fprintf(&sb, "Moves: %d  Max tile: %d\n", st.Moves, st.MaxTile)
	return sb.String()
}
