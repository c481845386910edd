package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"StockNewsCollector/internal/config"
	"StockNewsCollector/internal/corpus"
	"StockNewsCollector/internal/infrastructure/naver"
	"StockNewsCollector/internal/infrastructure/scheduler"
	"StockNewsCollector/internal/infrastructure/storage"
	"StockNewsCollector/internal/infrastructure/telegram"
	"StockNewsCollector/internal/logging"
	"StockNewsCollector/internal/ports"
	"StockNewsCollector/internal/source"
	"StockNewsCollector/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
	logger   *slog.Logger
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	httpClient := &http.Client{Timeout: time.Duration(cfg.Source.RequestTimeoutSec) * time.Second}
	courtesy := time.Duration(cfg.Source.CourtesyIntervalMS) * time.Millisecond

	registry := source.NewRegistry()
	registry.Register(naver.NewClient(cfg.Naver, httpClient, courtesy))

	searcher, err := registry.Resolve(cfg.Source.Provider)
	if err != nil {
		return nil, fmt.Errorf("resolve provider: %w", err)
	}

	store := storage.NewSnapshotStore(
		cfg.Aggregation.OutputPath,
		cfg.Aggregation.RetentionDays,
		logging.Component(baseLogger, "storage"))

	var archive ports.RunArchive
	if cfg.Archive.DSN != "" {
		pg, err := storage.OpenPostgresArchive(cfg.Archive.DSN)
		if err != nil {
			return nil, fmt.Errorf("open archive: %w", err)
		}
		archive = pg
	}

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.BotToken != "" && cfg.Notifications.Telegram.ChatID != "" {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	table := toTickerQueries(cfg.Tickers)
	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:    searcher,
		Store:     store,
		Archive:   archive,
		Notifier:  notifier,
		Filter:    corpus.NewRelevanceFilter(cfg.Filter.ExcludeKeywords, cfg.Filter.FinanceKeywords),
		Extractor: corpus.NewMentionExtractor(table),
		Options: usecase.Options{
			Tickers:        table,
			AllowedDomains: cfg.Filter.AllowedDomains,
			BlockedDomains: cfg.Filter.BlockedDomains,
			RetentionDays:  cfg.Aggregation.RetentionDays,
			QueryLimit:     cfg.Source.QueryLimit,
			PerTickerCap:   cfg.Source.PerTickerCap,
			Location:       cfg.Aggregation.Location(),
		},
		Logger: logging.Component(baseLogger, "pipeline"),
	})

	return &Application{cfg: cfg, pipeline: pipeline, logger: baseLogger}, nil
}

// Run executes a single aggregation pass, or hands the pipeline to the
// recurring driver when the scheduler is enabled.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	if a.cfg.Scheduler.IsEnabled() {
		driver := scheduler.NewDailyScheduler(a.cfg.Scheduler.CronExpression, a.cfg.Aggregation.Location())
		runner := usecase.NewScheduler(driver, a.pipeline)
		if err := runner.Start(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		return runner.Stop(context.Background())
	}

	now := time.Now().In(a.cfg.Aggregation.Location())
	return a.pipeline.Run(ctx, now)
}

func toTickerQueries(cfg []config.TickerConfig) []corpus.TickerQuery {
	table := make([]corpus.TickerQuery, 0, len(cfg))
	for _, tc := range cfg {
		table = append(table, corpus.TickerQuery{
			Symbol: tc.Symbol,
			Query:  tc.Query,
		})
	}
	return table
}
