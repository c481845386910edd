package corpus

import (
	"sort"
	"strings"
)

const (
	minSymbolLen  = 3
	minKeywordLen = 2
)

// TickerQuery binds one tracked symbol to its search query string.
type TickerQuery struct {
	Symbol string
	Query  string
}

// MentionExtractor detects which tracked tickers a text mentions, by
// symbol and by query keyword.
type MentionExtractor struct {
	symbols        []string
	keywordTickers map[string]string
}

// NewMentionExtractor precomputes the symbol list and the keyword→ticker
// table from the configured queries. Symbols shorter than three
// characters are skipped to avoid false positives against common short
// substrings; query tokens shorter than two characters likewise.
func NewMentionExtractor(table []TickerQuery) *MentionExtractor {
	ex := &MentionExtractor{keywordTickers: map[string]string{}}
	for _, tq := range table {
		if len(tq.Symbol) >= minSymbolLen {
			ex.symbols = append(ex.symbols, tq.Symbol)
		}
		for _, token := range strings.Fields(tq.Query) {
			if len([]rune(token)) >= minKeywordLen {
				ex.keywordTickers[token] = tq.Symbol
			}
		}
	}
	return ex
}

// Extract returns the sorted set of tracked tickers found in the text.
// Symbols match against the upper-cased concatenation; query keywords
// match case-sensitively against the original text (Korean has no
// case). The caller removes the owning ticker where relevant.
func (ex *MentionExtractor) Extract(title, description string) []string {
	combined := title + " " + description
	upper := strings.ToUpper(combined)

	found := map[string]struct{}{}
	for _, sym := range ex.symbols {
		if strings.Contains(upper, sym) {
			found[sym] = struct{}{}
		}
	}
	for keyword, sym := range ex.keywordTickers {
		if strings.Contains(combined, keyword) {
			found[sym] = struct{}{}
		}
	}

	mentions := make([]string, 0, len(found))
	for sym := range found {
		mentions = append(mentions, sym)
	}
	sort.Strings(mentions)
	return mentions
}

// Without returns mentions with the owning symbol removed.
func Without(mentions []string, owner string) []string {
	out := make([]string, 0, len(mentions))
	for _, m := range mentions {
		if m != owner {
			out = append(out, m)
		}
	}
	return out
}
