package tui

import (
	"path/filepath"
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestScoreboardModes(t *testing.T) {
	if got := ScoreboardModes(nil); !slices.Equal(got, []string{"classic"}) {
		t.Errorf("ScoreboardModes(nil) = %v, expected [classic]", got)
	}

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	for _, mode := range []string{"hard", "classic", "easy"} {
		if _, err := store.SaveScore(mode, "p", 1); err != nil {
			t.Fatal(err)
		}
	}

	expected := []string{"classic", "easy", "hard"}
	if got := ScoreboardModes(store); !slices.Equal(got, expected) {
		t.Errorf("ScoreboardModes() = %v, expected %v", got, expected)
	}

	m := NewScoreboardModel(store, 60, 20, "hard")
	if m.Mode() != "hard" {
		t.Fatalf("opened on %q, expected hard", m.Mode())
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if mode := next.(ScoreboardModel).Mode(); mode != "classic" {
		t.Errorf("tab after the last mode = %q, expected classic", mode)
	}
}

func TestScoreRows(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)
	rows := ScoreRows([]storage.ScoreEntry{
		{Score: 12, Player: "alice", CreatedAt: at},
		{Score: 3, CreatedAt: at},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	tests := []struct {
		row      int
		expected []string
	}{
		{0, []string{"#1", "12", "alice", "Mar 05 14:07"}},
		{1, []string{"#2", "3", "-", "Mar 05 14:07"}},
	}
	for _, tc := range tests {
		if !slices.Equal([]string(rows[tc.row]), tc.expected) {
			t.Errorf("row %d = %v, expected %v", tc.row, rows[tc.row], tc.expected)
		}
	}
}
