package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-shooters/internal/registry"
	"github.com/vovakirdan/arcade-shooters/internal/storage"
)

func TestScoreboardShowsStats(t *testing.T) {
	store := openTestStore(t)
	games := registry.List()
	if len(games) == 0 {
		t.Fatal("no games registered")
	}
	id := games[0].ID

	if _, err := store.SaveScore(id, 300); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveRun(storage.Run{GameID: id, Score: 300, Level: 4, Won: true}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()
	if !strings.Contains(view, "best 300 | games 1 | avg 300 | wins 1 | best level 4") {
		t.Errorf("stats line missing:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "won") {
		t.Errorf("runs view missing the won run:\n%s", m.View())
	}
}

func TestScoreboardEmptyStore(t *testing.T) {
	m := NewScoreboardModel(openTestStore(t), 60, 30)
	view := m.View()
	if !strings.Contains(view, "No scores recorded yet.") {
		t.Errorf("empty message missing:\n%s", view)
	}
	if strings.Contains(view, "best ") {
		t.Errorf("stats line shown without games:\n%s", view)
	}
}
