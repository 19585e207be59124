package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestClearHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, variant := range []string{"2048", "2048_big"} {
		if _, err := store.SaveResult(storage.Result{Variant: variant, MaxTile: 16, Moves: 5}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	var out strings.Builder
	if err := clearHistory(&out, store, "2048_big"); err != nil {
		t.Fatalf("clearHistory() failed: %v", err)
	}
	if !strings.Contains(out.String(), "2048_big") {
		t.Errorf("unexpected output %q", out.String())
	}

	results, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 || results[0].Variant != "2048" {
		t.Errorf("Expected only 2048 to remain, got %+v", results)
	}

	out.Reset()
	if err := clearHistory(&out, store, ""); err != nil {
		t.Fatalf("clearHistory(all) failed: %v", err)
	}
	if !strings.Contains(out.String(), "every board") {
		t.Errorf("unexpected output %q", out.String())
	}
	if results, _ := store.RecentResults("", 10); len(results) != 0 {
		t.Errorf("Expected empty history, got %d results", len(results))
	}
}
