package ports

import (
	"context"
	"time"

	"StockNewsCollector/internal/domain"
	"StockNewsCollector/internal/source"
)

// NewsSource pulls raw candidates from the configured search provider.
// A failed query must surface as an error here; the pipeline maps it to
// zero candidates and continues.
type NewsSource interface {
	Search(ctx context.Context, query string, limit int) ([]source.Candidate, error)
}

// SnapshotStore loads and persists the corpus snapshot. Load fails open:
// missing or corrupt state yields an empty snapshot, never an error.
// Save must not leave a half-written file as the canonical state.
type SnapshotStore interface {
	Load(ctx context.Context) domain.Snapshot
	Save(ctx context.Context, snapshot domain.Snapshot) error
}

// RunArchive records runs and accepted articles for audit. Best-effort:
// callers log failures and move on.
type RunArchive interface {
	RecordRun(ctx context.Context, runID string, snapshot domain.Snapshot) error
	RecordArticles(ctx context.Context, runID, ticker string, articles []domain.Article) error
}

// Notifier streams run summaries to Telegram or other channels. The
// adapter owns the channel-specific formatting of the snapshot.
type Notifier interface {
	PublishRunSummary(ctx context.Context, snapshot domain.Snapshot) error
}

// Scheduler controls when runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
