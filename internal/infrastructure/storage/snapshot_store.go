package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"StockNewsCollector/internal/domain"
	"StockNewsCollector/internal/ports"
)

// SnapshotStore persists the corpus snapshot as a single JSON document.
// The file is the entire contract with downstream consumers.
type SnapshotStore struct {
	path          string
	retentionDays int
	logger        *slog.Logger
}

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore wires the output path and the retention default used
// for fresh snapshots.
func NewSnapshotStore(path string, retentionDays int, logger *slog.Logger) *SnapshotStore {
	return &SnapshotStore{path: path, retentionDays: retentionDays, logger: logger}
}

// Load reads the persisted snapshot. Missing or unparseable state
// yields an empty snapshot: prior data is only lost if this run then
// persists over it, an accepted tradeoff of fail-open loading.
func (s *SnapshotStore) Load(ctx context.Context) domain.Snapshot {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log().Info("no prior snapshot, starting fresh", "path", s.path)
		} else {
			s.log().Warn("cannot read snapshot, starting fresh", "path", s.path, "error", err)
		}
		return domain.EmptySnapshot(s.retentionDays)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		s.log().Warn("cannot parse snapshot, starting fresh", "path", s.path, "error", err)
		return domain.EmptySnapshot(s.retentionDays)
	}

	if snapshot.Stocks == nil {
		snapshot.Stocks = domain.Corpus{}
	}
	if snapshot.CoMentions == nil {
		snapshot.CoMentions = domain.CoMentionGraph{}
	}
	if snapshot.RetentionDays == 0 {
		snapshot.RetentionDays = s.retentionDays
	}

	s.log().Info("snapshot loaded",
		"tickers", len(snapshot.Stocks),
		"articles", snapshot.Stocks.TotalArticles())
	return snapshot
}

// Save writes the snapshot to a temp file in the target directory and
// renames it into place, so a failed run never replaces the previous
// file with a half-written one.
func (s *SnapshotStore) Save(ctx context.Context, snapshot domain.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", " ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("chmod temp snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace snapshot: %w", err)
	}

	s.log().Info("snapshot persisted", "path", s.path, "bytes", len(data))
	return nil
}

func (s *SnapshotStore) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}
