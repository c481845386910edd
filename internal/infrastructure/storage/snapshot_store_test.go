package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"StockNewsCollector/internal/domain"
)

func tempStore(t *testing.T) *SnapshotStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "news.json")
	return NewSnapshotStore(path, 90, nil)
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	t.Parallel()

	store := tempStore(t)
	snap := store.Load(context.Background())

	if snap.Stocks == nil || len(snap.Stocks) != 0 {
		t.Fatalf("expected empty corpus, got %v", snap.Stocks)
	}
	if snap.RetentionDays != 90 {
		t.Fatalf("RetentionDays = %d, want 90", snap.RetentionDays)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store := tempStore(t)
	snapshot := domain.EmptySnapshot(90)
	snapshot.Updated = "2026-09-01T06:00:00+09:00"
	snapshot.Stocks["NVDA"] = []domain.Article{
		{Title: "엔비디아 실적", URL: "https://mk.co.kr/1", PublishedAt: "2026-08-31T10:00:00+09:00", Mentions: []string{"AMD"}},
	}
	snapshot.CoMentions = domain.CoMentionGraph{{Pair: "AMD-NVDA", Count: 2}}
	snapshot.Stats = domain.Stats{TotalArticles: 1, TickersWithNews: 1, TodayNew: 1, CoMentionPairs: 1}

	if err := store.Save(context.Background(), snapshot); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored := store.Load(context.Background())
	if len(restored.Stocks["NVDA"]) != 1 {
		t.Fatalf("corpus not restored: %v", restored.Stocks)
	}
	if restored.Stocks["NVDA"][0].Title != "엔비디아 실적" {
		t.Fatalf("article not restored: %+v", restored.Stocks["NVDA"][0])
	}
	if len(restored.CoMentions) != 1 || restored.CoMentions[0].Pair != "AMD-NVDA" {
		t.Fatalf("graph not restored: %v", restored.CoMentions)
	}
	if restored.Stats.TotalArticles != 1 {
		t.Fatalf("stats not restored: %+v", restored.Stats)
	}
}

func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	t.Parallel()

	store := tempStore(t)
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(store.path, []byte("{ this is not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	snap := store.Load(context.Background())
	if len(snap.Stocks) != 0 {
		t.Fatalf("corrupt state should yield empty corpus, got %v", snap.Stocks)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	store := tempStore(t)
	if err := store.Save(context.Background(), domain.EmptySnapshot(90)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(store.path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the snapshot file, got %d entries", len(entries))
	}
}
