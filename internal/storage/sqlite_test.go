package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
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
	_, err = store.SaveScore("solo", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("solo", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("solo", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("solo_god", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for solo
	scores, err := store.TopScores("solo", 10)
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

	// Retrieve top scores for god
	godScores, err := store.TopScores("solo_god", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(godScores) != 1 {
		t.Errorf("Expected 1 god score, got %d", len(godScores))
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
	high, err := store.HighScore("solo")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("solo", 100)
	store.SaveScore("solo", 300)
	store.SaveScore("solo", 200)

	high, err = store.HighScore("solo")
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

	store.SaveScore("solo", 100)
	store.SaveScore("solo", 200)
	store.SaveScore("solo_god", 300)

	// Clear only solo scores
	err = store.ClearScores("solo")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Solo should be empty
	soloScores, _ := store.TopScores("solo", 10)
	if len(soloScores) != 0 {
		t.Errorf("Expected 0 solo scores after clear, got %d", len(soloScores))
	}

	// God should still have scores
	godScores, _ := store.TopScores("solo_god", 10)
	if len(godScores) != 1 {
		t.Errorf("God scores should not be affected by clearing solo")
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

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
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

func TestStoreExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.solo/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".solo", "scores.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	got, err = ExpandHome("/tmp/scores.db")
	if err != nil || got != "/tmp/scores.db" {
		t.Errorf("absolute path should be unchanged, got %q (%v)", got, err)
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{Variant: "solo", Seed: 42, Score: 700, Lives: 0, Elapsed: 61.5, Shots: 90, Destroyed: 7, Escaped: 3})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected a UUID run id, got %q", id)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run.Variant != "solo" || run.Seed != 42 || run.Score != 700 || run.Destroyed != 7 || run.Escaped != 3 {
		t.Errorf("unexpected run: %+v", run)
	}
	if run.Elapsed != 61.5 {
		t.Errorf("Elapsed = %f, expected 61.5", run.Elapsed)
	}
}

func TestStoreSaveRunKeepsExplicitID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{ID: "fixed-id", Variant: "solo_free"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("expected explicit id to be kept, got %q", id)
	}

	if _, err := store.SaveRun(RunRecord{ID: "fixed-id", Variant: "solo_free"}); err == nil {
		t.Error("duplicate run id should fail")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RunByID("nope"); !errors.Is(err, ErrNoRuns) {
		t.Errorf("expected ErrNoRuns, got %v", err)
	}
}

func TestStoreLatestRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.LatestRuns("", 10); !errors.Is(err, ErrNoRuns) {
		t.Fatalf("expected ErrNoRuns on empty table, got %v", err)
	}

	for i, variant := range []string{"solo", "solo_god", "solo", "solo"} {
		if _, err := store.SaveRun(RunRecord{Variant: variant, Score: i * 100}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	all, err := store.LatestRuns("", 10)
	if err != nil {
		t.Fatalf("LatestRuns() failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 runs, got %d", len(all))
	}
	if all[0].Score != 300 {
		t.Errorf("newest run should come first, got score %d", all[0].Score)
	}

	solo, err := store.LatestRuns("solo", 2)
	if err != nil {
		t.Fatalf("LatestRuns() failed: %v", err)
	}
	if len(solo) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(solo))
	}
	for _, r := range solo {
		if r.Variant != "solo" {
			t.Errorf("unexpected variant %q in filtered runs", r.Variant)
		}
	}

	if _, err := store.LatestRuns("solo_free", 10); !errors.Is(err, ErrNoRuns) {
		t.Errorf("expected ErrNoRuns for unknown variant, got %v", err)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("solo", 100)
	store.SaveScore("solo", 300)

	stats, err := store.GetGameStats("solo")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
}
