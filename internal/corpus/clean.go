package corpus

import (
	"time"

	"StockNewsCollector/internal/domain"
)

// CleanList rewrites one ticker's article list under the current rules:
// relevance filter first (a rule change retroactively prunes history),
// then deduplication, then retention pruning. Running it twice yields
// the same result as running it once.
func CleanList(articles []domain.Article, filter *RelevanceFilter, cutoff time.Time) []domain.Article {
	relevant := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if filter.IsFinancial(a.Title, a.Description) {
			relevant = append(relevant, a)
		}
	}

	deduped := Dedupe(relevant)

	retained := make([]domain.Article, 0, len(deduped))
	for _, a := range deduped {
		if WithinWindow(a.PublishedAt, cutoff) {
			retained = append(retained, a)
		}
	}
	return retained
}
