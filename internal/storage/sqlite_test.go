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

func mustSave(t *testing.T, s *Store, level, user string, score int, outcome string) {
	t.Helper()
	if _, err := s.SaveScore(ScoreEntry{LevelID: level, Username: user, Score: score, Outcome: outcome}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, "classic", "alice", 120, OutcomeLost)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("Expected 120 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "classic", "alice", 100, OutcomeLost)
	mustSave(t, store, "classic", "bob", 50, OutcomeLost)
	mustSave(t, store, "classic", "alice", 2650, OutcomeWon)
	mustSave(t, store, "small", "bob", 500, OutcomeWon)

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{2650, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Username != "alice" || scores[0].Outcome != OutcomeWon || scores[0].LevelID != "classic" {
		t.Errorf("unexpected top entry: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	small, err := store.TopScores("small", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(small) != 1 || small[0].Score != 500 {
		t.Errorf("small scores = %+v", small)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 15; i++ {
		mustSave(t, store, "classic", "alice", i*10, OutcomeLost)
	}

	scores, err := store.TopScores("classic", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}

	scores, err = store.TopScores("classic", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit 10, got %d", len(scores))
	}
}

func TestStoreHighScoreAndPlayerBest(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty level, got %d", high)
	}

	mustSave(t, store, "classic", "alice", 300, OutcomeLost)
	mustSave(t, store, "classic", "bob", 900, OutcomeLost)
	mustSave(t, store, "small", "alice", 1200, OutcomeWon)

	if high, _ = store.HighScore("classic"); high != 900 {
		t.Errorf("HighScore = %d, want 900", high)
	}

	best, err := store.PlayerBest("alice", "classic")
	if err != nil {
		t.Fatalf("PlayerBest() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("PlayerBest = %d, want 300", best)
	}
	if best, _ = store.PlayerBest("carol", "classic"); best != 0 {
		t.Errorf("PlayerBest for unknown user = %d, want 0", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, "classic", "alice", 100, OutcomeLost)
	mustSave(t, store, "small", "alice", 200, OutcomeLost)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("classic", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	scores, _ = store.TopScores("small", 10)
	if len(scores) != 1 {
		t.Errorf("Other levels should be untouched, got %d", len(scores))
	}
}

func TestStoreAllLevelStats(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, "classic", "alice", 100, OutcomeLost)
	mustSave(t, store, "classic", "bob", 300, OutcomeWon)
	mustSave(t, store, "small", "alice", 50, OutcomeLost)

	stats, err := store.AllLevelStats()
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(stats))
	}

	c := stats["classic"]
	if c.Games != 2 || c.Wins != 1 || c.HighScore != 300 || c.AvgScore != 200 {
		t.Errorf("classic stats = %+v", c)
	}
	if stats["small"].Wins != 0 {
		t.Errorf("small wins = %d, want 0", stats["small"].Wins)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
