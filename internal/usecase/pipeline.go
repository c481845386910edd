package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"StockNewsCollector/internal/corpus"
	"StockNewsCollector/internal/domain"
	"StockNewsCollector/internal/ports"
)

const defaultConcurrency = 4

// Options carries the aggregation knobs shared by every run.
type Options struct {
	Tickers        []corpus.TickerQuery
	AllowedDomains []string
	BlockedDomains []string
	RetentionDays  int
	QueryLimit     int
	PerTickerCap   int
	Concurrency    int
	Location       *time.Location
}

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source    ports.NewsSource
	Store     ports.SnapshotStore
	Archive   ports.RunArchive
	Notifier  ports.Notifier
	Filter    *corpus.RelevanceFilter
	Extractor *corpus.MentionExtractor
	Options   Options
	Logger    *slog.Logger
}

// Pipeline implements the aggregation run: load, clean, merge per
// ticker, rebuild the co-mention graph, persist. Stages are strictly
// ordered; any failure before persist leaves the previous on-disk
// snapshot untouched.
type Pipeline struct {
	source    ports.NewsSource
	store     ports.SnapshotStore
	archive   ports.RunArchive
	notifier  ports.Notifier
	filter    *corpus.RelevanceFilter
	extractor *corpus.MentionExtractor
	opts      Options
	logger    *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	opts := deps.Options
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Pipeline{
		source:    deps.Source,
		store:     deps.Store,
		archive:   deps.Archive,
		notifier:  deps.Notifier,
		filter:    deps.Filter,
		extractor: deps.Extractor,
		opts:      opts,
		logger:    deps.Logger,
	}
}

type mergeResult struct {
	accepted []domain.Article
	merged   []domain.Article
	filtered int
}

// Run executes one aggregation pass at the given wall-clock time.
func (p *Pipeline) Run(ctx context.Context, now time.Time) error {
	if p.source == nil || p.store == nil {
		return fmt.Errorf("pipeline missing source or store")
	}

	runID := uuid.NewString()
	logger := p.log().With("run_id", runID)
	cutoff := now.AddDate(0, 0, -p.opts.RetentionDays)

	logger.Info("run started",
		"tickers", len(p.opts.Tickers),
		"retention_days", p.opts.RetentionDays,
		"cutoff", cutoff.Format("2006-01-02"))

	// Loaded
	snapshot := p.store.Load(ctx)
	stocks := snapshot.Stocks

	// Cleaned: re-apply the current rules to persisted history before
	// merging, so duplicate checks read the cleaned state.
	for ticker, articles := range stocks {
		stocks[ticker] = corpus.CleanList(articles, p.filter, cutoff)
	}

	// Merging: per-ticker fetches are independent; each goroutine
	// writes only its own result slot. Graph rebuild and persist wait
	// on the barrier below.
	results := make([]mergeResult, len(p.opts.Tickers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)

	for i, tq := range p.opts.Tickers {
		i, tq := i, tq
		g.Go(func() error {
			results[i] = p.mergeTicker(gctx, logger, tq, stocks[tq.Symbol], cutoff)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("merge phase: %w", err)
	}

	todayNew, todayFiltered := 0, 0
	for i, tq := range p.opts.Tickers {
		stocks[tq.Symbol] = results[i].merged
		todayNew += len(results[i].accepted)
		todayFiltered += results[i].filtered
	}

	// GraphRebuilt: always recomputed from scratch over the full
	// cleaned+merged corpus, never merged incrementally.
	graph := corpus.RebuildGraph(stocks)

	snapshot.Updated = now.Format(time.RFC3339)
	snapshot.UpdatedKST = now.In(p.opts.Location).Format("2006-01-02 15:04")
	snapshot.RetentionDays = p.opts.RetentionDays
	snapshot.Stocks = stocks
	snapshot.CoMentions = graph
	snapshot.Stats = domain.Stats{
		TotalArticles:   stocks.TotalArticles(),
		TickersWithNews: stocks.TickersWithNews(),
		TodayNew:        todayNew,
		TodayFiltered:   todayFiltered,
		CoMentionPairs:  len(graph),
	}

	// Persisted: a write failure must surface, otherwise the run's
	// accumulated work silently vanishes while appearing to succeed.
	if err := p.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}

	logger.Info("run finished",
		"total_articles", snapshot.Stats.TotalArticles,
		"tickers_with_news", snapshot.Stats.TickersWithNews,
		"today_new", todayNew,
		"today_filtered", todayFiltered,
		"co_mention_pairs", snapshot.Stats.CoMentionPairs)

	p.recordRun(ctx, logger, runID, snapshot, results)
	p.notify(ctx, logger, snapshot)
	return nil
}

// mergeTicker fetches candidates for one ticker and merges the accepted
// ones into its existing list, newest first.
func (p *Pipeline) mergeTicker(ctx context.Context, logger *slog.Logger, tq corpus.TickerQuery, existing []domain.Article, cutoff time.Time) mergeResult {
	queries := []string{tq.Query, tq.Symbol + " 주가"}
	seenURLs := map[string]struct{}{}

	var accepted []domain.Article
	filtered := 0

	for _, query := range queries {
		if len(accepted) >= p.opts.PerTickerCap {
			break
		}

		candidates, err := p.source.Search(ctx, query, p.opts.QueryLimit)
		if err != nil {
			// A failed query contributes zero candidates; the run continues.
			logger.Warn("search failed", "ticker", tq.Symbol, "query", query, "error", err)
			continue
		}

		for _, cand := range candidates {
			if len(accepted) >= p.opts.PerTickerCap {
				break
			}
			if cand.URL == "" {
				continue
			}
			canonical := domain.CanonicalURL(cand.URL)
			if _, seen := seenURLs[canonical]; seen {
				continue
			}
			if !p.allowedSource(cand.URL) {
				filtered++
				continue
			}
			seenURLs[canonical] = struct{}{}

			if !p.filter.IsFinancial(cand.Title, cand.Description) {
				filtered++
				continue
			}

			article := domain.Article{
				Title:       cand.Title,
				Description: domain.TruncateRunes(cand.Description, domain.DescriptionLimit),
				URL:         cand.URL,
				PublishedAt: cand.PublishedAt,
			}
			if corpus.IsDuplicateOf(article, existing) {
				filtered++
				continue
			}

			mentions := p.extractor.Extract(cand.Title, cand.Description)
			article.Mentions = corpus.Without(mentions, tq.Symbol)
			accepted = append(accepted, article)
		}
	}

	// New articles first, then the surviving history; one more dedupe
	// pass resolves residual cross-batch collisions with new-wins.
	merged := corpus.Dedupe(append(accepted, existing...))

	// Retention prunes the merged list, fresh candidates included: a
	// stale article resurfacing in today's search results must not
	// re-enter the corpus.
	retained := make([]domain.Article, 0, len(merged))
	for _, a := range merged {
		if corpus.WithinWindow(a.PublishedAt, cutoff) {
			retained = append(retained, a)
		}
	}

	if len(accepted) > 0 {
		logger.Debug("ticker merged", "ticker", tq.Symbol, "new", len(accepted), "kept", len(retained))
	}
	return mergeResult{accepted: accepted, merged: retained, filtered: filtered}
}

// allowedSource applies the domain allow/block lists against the raw URL.
func (p *Pipeline) allowedSource(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, blocked := range p.opts.BlockedDomains {
		if blocked != "" && strings.Contains(lower, blocked) {
			return false
		}
	}
	for _, allowed := range p.opts.AllowedDomains {
		if allowed != "" && strings.Contains(lower, allowed) {
			return true
		}
	}
	return len(p.opts.AllowedDomains) == 0
}

func (p *Pipeline) recordRun(ctx context.Context, logger *slog.Logger, runID string, snapshot domain.Snapshot, results []mergeResult) {
	if p.archive == nil {
		return
	}

	if err := p.archive.RecordRun(ctx, runID, snapshot); err != nil {
		logger.Warn("archive run record failed", "error", err)
		return
	}
	for i, tq := range p.opts.Tickers {
		if len(results[i].accepted) == 0 {
			continue
		}
		if err := p.archive.RecordArticles(ctx, runID, tq.Symbol, results[i].accepted); err != nil {
			logger.Warn("archive article record failed", "ticker", tq.Symbol, "error", err)
		}
	}
}

func (p *Pipeline) notify(ctx context.Context, logger *slog.Logger, snapshot domain.Snapshot) {
	if p.notifier == nil {
		return
	}
	if err := p.notifier.PublishRunSummary(ctx, snapshot); err != nil {
		logger.Warn("notify failed", "error", err)
	}
}

func (p *Pipeline) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}
