package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("fighter", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("fighter", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("fighter", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("targets", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for fighter
	scores, err := store.TopScores("fighter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for targets
	targetsScores, err := store.TopScores("targets", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(targetsScores) != 1 {
		t.Errorf("Expected 1 targets score, got %d", len(targetsScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("fighter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("fighter", 100)
	store.SaveScore("fighter", 300)
	store.SaveScore("fighter", 200)

	high, err = store.HighScore("fighter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("fighter", 100)
	store.SaveScore("fighter", 200)
	store.SaveScore("targets", 300)

	// Clear only fighter scores
	err = store.ClearScores("fighter")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Fighter should be empty
	fighterScores, _ := store.TopScores("fighter", 10)
	if len(fighterScores) != 0 {
		t.Errorf("Expected 0 fighter scores after clear, got %d", len(fighterScores))
	}

	// Targets should still have scores
	targetsScores, _ := store.TopScores("targets", 10)
	if len(targetsScores) != 1 {
		t.Errorf("Targets scores should not be affected by clearing fighter")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	first, err := store.SaveRun(Run{GameID: "space", Score: 1200, Level: 2, Ticks: 900})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Errorf("run ID %q is not a UUID: %v", first, err)
	}
	second, _ := store.SaveRun(Run{GameID: "space", Score: 9000, Level: 10, Won: true, Ticks: 5000})
	store.SaveRun(Run{GameID: "targets", Score: 300, Level: 1})

	if first == second {
		t.Error("SaveRun() returned the same ID twice")
	}

	runs, err := store.RecentRuns("space", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 space runs, got %d", len(runs))
	}
	if runs[0].ID != second || !runs[0].Won || runs[0].Level != 10 {
		t.Errorf("newest run = %+v, expected the won run %s", runs[0], second)
	}
	if runs[1].ID != first || runs[1].Won || runs[1].Ticks != 900 {
		t.Errorf("older run = %+v, expected %s", runs[1], first)
	}

	got, err := store.RunByID(first)
	if err != nil || got == nil || got.Score != 1200 {
		t.Errorf("RunByID() = %+v, %v; expected score 1200", got, err)
	}
	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %+v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreGameStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("targets", 100)
	store.SaveScore("targets", 300)
	store.SaveRun(Run{GameID: "targets", Score: 100, Level: 1})
	store.SaveRun(Run{GameID: "targets", Score: 300, Level: 10, Won: true})

	stats, err := store.GetGameStats("targets")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v, expected 2 games, best 300, avg 200", stats)
	}
	if stats.Wins != 1 || stats.BestLevel != 10 {
		t.Errorf("stats = %+v, expected 1 win at level 10", stats)
	}

	if err := store.ClearScores("targets"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	runs, _ := store.RecentRuns("targets", 0)
	if len(runs) != 0 {
		t.Errorf("Expected runs cleared, got %d", len(runs))
	}

	empty, err := store.GetGameStats("space")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}
