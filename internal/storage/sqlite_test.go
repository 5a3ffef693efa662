package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		mode   string
		player string
		score  int
	}{
		{"classic", "alice", 10},
		{"classic", "bob", 5},
		{"classic", "alice", 20},
		{"hard", "carol", 50},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.mode, s.player, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{20, 10, 5}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Player != "alice" || scores[0].Mode != "classic" {
		t.Errorf("unexpected top entry %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 50 {
		t.Errorf("TopScores(\"\") = %+v, expected 4 entries led by 50", all)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("classic", "p", (i+1)*100)
	}

	scores, err := store.TopScores("classic", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.SaveScore("classic", "p", 7)
	store.SaveScore("classic", "p", 12)
	store.SaveScore("easy", "p", 30)

	if high, _ = store.HighScore("classic"); high != 12 {
		t.Errorf("HighScore(classic) = %d, expected 12", high)
	}
	if high, _ = store.HighScore(""); high != 30 {
		t.Errorf("HighScore(all) = %d, expected 30", high)
	}
}

func TestStoreModesAndClear(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("hard", "p", 1)
	store.SaveScore("classic", "p", 2)
	store.SaveScore("hard", "p", 3)

	modes, err := store.Modes()
	if err != nil {
		t.Fatalf("Modes() failed: %v", err)
	}
	if len(modes) != 2 || modes[0] != "classic" || modes[1] != "hard" {
		t.Errorf("Modes() = %v, expected [classic hard]", modes)
	}

	if err := store.ClearScores("hard"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	scores, _ := store.TopScores("hard", 10)
	if len(scores) != 0 {
		t.Errorf("Expected no hard scores after clear, got %d", len(scores))
	}
	scores, _ = store.TopScores("classic", 10)
	if len(scores) != 1 {
		t.Errorf("Clear should not touch other modes, got %d classic scores", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats("classic")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty mode: %+v", empty)
	}

	store.SaveScore("classic", "p", 2)
	store.SaveScore("classic", "p", 4)
	store.SaveScore("hard", "p", 9)

	stats, err := store.GetStats("classic")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 4 || stats.AvgScore != 3 || stats.TotalScore != 6 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, _ := store.GetStats("")
	if all.GamesCount != 3 || all.HighScore != 9 {
		t.Errorf("unexpected overall stats %+v", all)
	}
}
