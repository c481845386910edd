package corpus

import (
	"sort"

	"StockNewsCollector/internal/domain"
)

// RebuildGraph recomputes the co-mention graph from scratch over the
// whole corpus. For every (ticker, article) entry the ticker and the
// article's mentions form a set; every unordered pair inside that set
// increments a global counter. Pairs occurring fewer than twice are
// dropped; the rest are sorted descending by count, ties ascending by
// pair key.
//
// An article stored under several tickers' lists contributes its pairs
// once per list, so one real-world story can count more than once.
// That matches the scale downstream consumers already render and is
// kept deliberately.
func RebuildGraph(corpus domain.Corpus) domain.CoMentionGraph {
	counts := map[string]int{}

	for ticker, articles := range corpus {
		for _, article := range articles {
			members := map[string]struct{}{ticker: {}}
			for _, m := range article.Mentions {
				members[m] = struct{}{}
			}

			symbols := make([]string, 0, len(members))
			for sym := range members {
				symbols = append(symbols, sym)
			}
			sort.Strings(symbols)

			for i := 0; i < len(symbols); i++ {
				for j := i + 1; j < len(symbols); j++ {
					counts[domain.PairKey(symbols[i], symbols[j])]++
				}
			}
		}
	}

	graph := make(domain.CoMentionGraph, 0, len(counts))
	for pair, count := range counts {
		if count >= 2 {
			graph = append(graph, domain.CoMention{Pair: pair, Count: count})
		}
	}
	graph.Sort()
	return graph
}
