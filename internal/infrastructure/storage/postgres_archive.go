package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"StockNewsCollector/internal/domain"
	"StockNewsCollector/internal/ports"
)

// PostgresArchive keeps an audit trail of runs and accepted articles.
// It is strictly best-effort: the JSON snapshot remains the source of
// truth and archive failures never fail a run.
type PostgresArchive struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.RunArchive = (*PostgresArchive)(nil)

// OpenPostgresArchive connects to the audit database.
func OpenPostgresArchive(dsn string) (*PostgresArchive, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open archive db: %w", err)
	}
	return NewPostgresArchive(db), nil
}

// NewPostgresArchive wires an existing sql.DB.
func NewPostgresArchive(db *sql.DB) *PostgresArchive {
	return &PostgresArchive{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// RecordRun inserts one row describing a completed run.
func (a *PostgresArchive) RecordRun(ctx context.Context, runID string, snapshot domain.Snapshot) error {
	if a.db == nil {
		return nil
	}

	query, args, err := a.builder.
		Insert("news_runs").
		Columns("run_id", "updated_at", "retention_days",
			"total_articles", "tickers_with_news", "today_new", "today_filtered", "co_mention_pairs").
		Values(runID, snapshot.Updated, snapshot.RetentionDays,
			snapshot.Stats.TotalArticles, snapshot.Stats.TickersWithNews,
			snapshot.Stats.TodayNew, snapshot.Stats.TodayFiltered, snapshot.Stats.CoMentionPairs).
		ToSql()
	if err != nil {
		return fmt.Errorf("build run insert: %w", err)
	}

	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// RecordArticles upserts accepted articles keyed by canonical URL, so
// repeated runs touch the same row instead of multiplying it.
func (a *PostgresArchive) RecordArticles(ctx context.Context, runID, ticker string, articles []domain.Article) error {
	if a.db == nil || len(articles) == 0 {
		return nil
	}

	insert := a.builder.
		Insert("archived_articles").
		Columns("canonical_url", "ticker", "title", "published_at", "first_run_id")
	for _, art := range articles {
		insert = insert.Values(art.CanonicalURL(), ticker, art.Title, art.PublishedAt, runID)
	}

	query, args, err := insert.
		Suffix("ON CONFLICT (canonical_url) DO UPDATE SET last_seen_run_id = EXCLUDED.first_run_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build article upsert: %w", err)
	}

	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert articles: %w", err)
	}
	return nil
}
