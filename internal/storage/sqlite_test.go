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
	store := openTestStore(t)

	runs := []ScoreEntry{
		{Preset: "normal", Score: 100, SurvivedMs: 9000, Dodged: 2, Seed: 1},
		{Preset: "normal", Score: 50, SurvivedMs: 5000},
		{Preset: "hard", Score: 200, SurvivedMs: 12000, Dodged: 8},
		{Score: 75}, // Preset defaults to normal
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 75, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if top := scores[0]; top.Preset != "hard" || top.SurvivedMs != 12000 || top.Dodged != 8 {
		t.Errorf("top entry fields not round-tripped: %+v", top)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	normal, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(normal) != 3 {
		t.Errorf("Expected 3 normal scores, got %d", len(normal))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{Score: (i + 1) * 100})
	}

	tests := []struct {
		limit int
		want  int
	}{
		{3, 3},
		{0, 5}, // default limit of 10
		{-1, 5},
	}
	for _, tt := range tests {
		scores, err := store.TopScores("", tt.limit)
		if err != nil {
			t.Fatalf("TopScores() failed: %v", err)
		}
		if len(scores) != tt.want {
			t.Errorf("limit %d: got %d scores, want %d", tt.limit, len(scores), tt.want)
		}
	}

	scores, _ := store.TopScores("", 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		store.SaveScore(ScoreEntry{Score: s})
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{Score: 100})
	store.SaveScore(ScoreEntry{Score: 200, Preset: "easy"})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore(); high != 0 {
		t.Errorf("Expected high score 0 after clear, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty store: %+v", empty)
	}

	store.SaveScore(ScoreEntry{Score: 100, SurvivedMs: 10000, Dodged: 3})
	store.SaveScore(ScoreEntry{Score: 300, SurvivedMs: 25000, Dodged: 9})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.LongestRunMs != 25000 || stats.TotalDodged != 12 {
		t.Errorf("LongestRunMs=%d TotalDodged=%d", stats.LongestRunMs, stats.TotalDodged)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
