package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/stackduel/internal/core"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("stackduel", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("stackduel_timeattack", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("stackduel", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, e := range scores {
		if e.Score != want[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, e.Score, want[i])
		}
		if e.Mode != "stackduel" {
			t.Errorf("scores[%d].Mode = %q", i, e.Mode)
		}
	}

	other, err := store.TopScores("stackduel_timeattack", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 time attack score, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("stackduel")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveScore("stackduel", 100)
	store.SaveScore("stackduel", 300)
	store.SaveScore("stackduel", 200)

	high, err = store.HighScore("stackduel")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("stackduel", 100)
	store.SaveDuelResult(core.MatchSummary{Mode: "stackduel", Winner: "cpu"})
	store.SaveScore("stackduel_timeattack", 300)

	if err := store.ClearScores("stackduel"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("stackduel", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if results, _ := store.RecentDuelResults("stackduel", 10); len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}
	if scores, _ := store.TopScores("stackduel_timeattack", 10); len(scores) != 1 {
		t.Error("Other modes should not be affected by clearing")
	}
}

func TestStoreDuelResults(t *testing.T) {
	store := openTestStore(t)

	first := core.MatchSummary{
		Mode:            "stackduel",
		Difficulty:      "hard",
		Winner:          "human",
		Score:           1240,
		OpponentScore:   610,
		MaxCombo:        4,
		GarbageSent:     17,
		GarbageReceived: 6,
		Duration:        95*time.Second + 250*time.Millisecond,
	}
	if _, err := store.SaveDuelResult(first); err != nil {
		t.Fatalf("SaveDuelResult() failed: %v", err)
	}
	store.SaveDuelResult(core.MatchSummary{Mode: "stackduel", Winner: "cpu", Score: 90})
	store.SaveDuelResult(core.MatchSummary{Mode: "stackduel_timeattack", Score: 3000})

	results, err := store.RecentDuelResults("stackduel", 10)
	if err != nil {
		t.Fatalf("RecentDuelResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Winner != "cpu" {
		t.Errorf("newest result should come first, got %+v", results[0])
	}

	got := results[1]
	if got.Difficulty != "hard" || got.Winner != "human" || got.Score != 1240 || got.OpponentScore != 610 {
		t.Errorf("result fields = %+v", got)
	}
	if got.MaxCombo != 4 || got.GarbageSent != 17 || got.GarbageReceived != 6 {
		t.Errorf("result stats = %+v", got)
	}
	if got.Duration != first.Duration {
		t.Errorf("Duration = %v, expected %v", got.Duration, first.Duration)
	}

	all, err := store.RecentDuelResults("", 10)
	if err != nil {
		t.Fatalf("RecentDuelResults() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 results across modes, got %d", len(all))
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetModeStats("stackduel")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if empty.Matches != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveDuelResult(core.MatchSummary{Mode: "stackduel", Winner: "human", Score: 400, MaxCombo: 3})
	store.SaveDuelResult(core.MatchSummary{Mode: "stackduel", Winner: "human", Score: 200, MaxCombo: 2})
	store.SaveDuelResult(core.MatchSummary{Mode: "stackduel", Winner: "cpu", Score: 300, MaxCombo: 5})

	stats, err := store.GetModeStats("stackduel")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.Matches != 3 || stats.Wins != 2 || stats.Losses != 1 {
		t.Errorf("record = %+v", stats)
	}
	if stats.HighScore != 400 || stats.AvgScore != 300 || stats.BestCombo != 5 {
		t.Errorf("aggregates = %+v", stats)
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
