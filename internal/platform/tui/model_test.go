package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/board"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// nearWin returns a 2x2 game one Left move away from 2048.
func nearWin(t *testing.T) *t2048.Game {
	t.Helper()
	g := t2048.New(config.Variant{ID: "2048", Title: "2048", Width: 2, Height: 2})
	if err := g.SetPreload([][]board.Tile{{10, 10}, {0, 0}}); err != nil {
		t.Fatalf("SetPreload() failed: %v", err)
	}
	return g
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tick() TickMsg { return TickMsg(time.Now()) }

func TestModelSavesResultOnce(t *testing.T) {
	store := openStore(t)
	m := NewModel(nearWin(t), store, testRuntime)
	m.Init()

	m = step(t, m, runeKey('h'))
	m = step(t, m, tick())
	if !m.State().GameOver || !m.State().Won {
		t.Fatalf("expected a won game, got %+v", m.State())
	}

	for i := 0; i < 5; i++ {
		m = step(t, m, tick())
	}

	results, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 saved result, got %d", len(results))
	}
	r := results[0]
	if r.Variant != "2048" || !r.Won || r.MaxTile != 2048 || r.Moves != 1 {
		t.Errorf("unexpected result: %+v", r)
	}
}

func TestModelRestart(t *testing.T) {
	store := openStore(t)
	m := NewModel(nearWin(t), store, testRuntime)
	m.Init()

	m = step(t, m, runeKey('h'))
	m = step(t, m, tick())
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	m = step(t, m, runeKey('r'))
	m = step(t, m, tick())
	if m.State().GameOver {
		t.Error("game still over after restart")
	}

	// Winning again records a second result.
	m = step(t, m, runeKey('h'))
	m = step(t, m, tick())
	results, _ := store.RecentResults("", 10)
	if len(results) != 2 {
		t.Errorf("expected 2 results after replaying, got %d", len(results))
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := NewModel(nearWin(t), nil, testRuntime)
	m.Init()

	m = step(t, m, runeKey('h'))
	m = step(t, m, tick())
	if !m.State().GameOver {
		t.Error("expected game over without a store")
	}
	if m.View() == "" {
		t.Error("View() should render while playing")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(nearWin(t), nil, testRuntime)
	m.Init()

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("expected quitting state")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResizeKeepsBoard(t *testing.T) {
	g := nearWin(t)
	m := NewModel(g, nil, testRuntime)
	m.Init()
	before := g.String()

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.String() != before {
		t.Error("resize reset the board")
	}
}

func TestModelBackToMenuOnlyEmbedded(t *testing.T) {
	m := NewModel(nearWin(t), nil, testRuntime)
	m.Init()
	m = step(t, m, runeKey('h'))
	m = step(t, m, tick())

	m = step(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("standalone game should ignore Back")
	}

	m.embedded = true
	m = step(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("embedded finished game should go back on B")
	}
}

func TestSummary(t *testing.T) {
	g := nearWin(t)
	g.Reset(testRuntime)

	if out := Summary(g); strings.Contains(out, "You win!") || strings.Contains(out, "Game over!") {
		t.Errorf("running game should have no outcome line:\n%s", out)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	out := Summary(g)
	if !strings.HasPrefix(out, "+----+----+\n|2048|") {
		t.Errorf("summary should start with the board:\n%s", out)
	}
	if !strings.Contains(out, "You win!") || !strings.Contains(out, "Max tile: 2048") {
		t.Errorf("summary missing outcome:\n%s", out)
	}
}

func TestSessionFlow(t *testing.T) {
	t2048.RegisterVariants(config.Default().AllVariants())

	s := NewSessionModel(nil, testRuntime)
	update := func(msg tea.Msg) {
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	update(tea.KeyMsg{Type: tea.KeyTab})
	if s.view != viewHistory {
		t.Fatalf("Tab should open history, view = %d", s.view)
	}
	if !strings.Contains(s.View(), "HISTORY") {
		t.Errorf("history view missing title:\n%s", s.View())
	}

	update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.view != viewMenu {
		t.Fatalf("Esc should return to menu, view = %d", s.view)
	}

	update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.view != viewGame || s.game == nil {
		t.Fatalf("Enter should start a game, view = %d", s.view)
	}

	update(runeKey('p'))
	update(tick())
	update(runeKey('b'))
	if s.view != viewMenu {
		t.Errorf("B on a paused game should return to menu, view = %d", s.view)
	}

	update(runeKey('q'))
	if !s.quitting {
		t.Error("q in menu should quit the session")
	}
}
