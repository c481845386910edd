package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// DescriptionLimit caps stored description length in code points.
const DescriptionLimit = 200

// Article is a single news item stored under a ticker's list.
type Article struct {
	Title       string   `json:"title"`
	Description string   `json:"desc"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"date,omitempty"`
	Mentions    []string `json:"mentions"`
}

var titleNoise = regexp.MustCompile(`[^0-9A-Za-z_가-힣]+`)

// CanonicalURL strips the query string, fragment, and one trailing slash.
// Used as the stable deduplication key.
func CanonicalURL(raw string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSuffix(raw, "/")
}

// NormalizeTitle reduces a title to alphanumerics, underscores and Hangul
// syllables, lower-cased. Used for near-duplicate title comparison.
func NormalizeTitle(title string) string {
	return strings.ToLower(titleNoise.ReplaceAllString(title, ""))
}

// CanonicalURL returns the article's deduplication URL key.
func (a Article) CanonicalURL() string {
	return CanonicalURL(a.URL)
}

// TitleKey returns the article's normalized title.
func (a Article) TitleKey() string {
	return NormalizeTitle(a.Title)
}

// TruncateRunes bounds s to at most limit code points.
func TruncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// Corpus maps a ticker symbol to its article list, newest-first.
type Corpus map[string][]Article

// TotalArticles counts articles across all tickers.
func (c Corpus) TotalArticles() int {
	total := 0
	for _, articles := range c {
		total += len(articles)
	}
	return total
}

// TickersWithNews counts tickers holding at least one article.
func (c Corpus) TickersWithNews() int {
	n := 0
	for _, articles := range c {
		if len(articles) > 0 {
			n++
		}
	}
	return n
}

// CoMention is one ticker pair with its co-occurrence count.
type CoMention struct {
	Pair  string
	Count int
}

// PairKey joins two symbols into the canonical unordered pair form.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "-" + b
}

// CoMentionGraph is the pairwise co-mention table, descending by count,
// ties broken by pair key. It marshals as a JSON object preserving that
// order so consumers see the strongest pairs first.
type CoMentionGraph []CoMention

// Sort orders the graph descending by count, ascending by pair key on ties.
func (g CoMentionGraph) Sort() {
	sort.Slice(g, func(i, j int) bool {
		if g[i].Count != g[j].Count {
			return g[i].Count > g[j].Count
		}
		return g[i].Pair < g[j].Pair
	})
}

// MarshalJSON writes an ordered JSON object, not a Go map, so the
// persisted co_mentions block keeps its descending sort.
func (g CoMentionGraph) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, cm := range g {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(cm.Pair)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		fmt.Fprintf(&b, ":%d", cm.Count)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// UnmarshalJSON accepts any JSON object of pair→count and restores the
// canonical sort order.
func (g *CoMentionGraph) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	graph := make(CoMentionGraph, 0, len(raw))
	for pair, count := range raw {
		graph = append(graph, CoMention{Pair: pair, Count: count})
	}
	graph.Sort()
	*g = graph
	return nil
}

// Stats summarizes one aggregation run.
type Stats struct {
	TotalArticles   int `json:"total_articles"`
	TickersWithNews int `json:"tickers_with_news"`
	TodayNew        int `json:"today_new"`
	TodayFiltered   int `json:"today_filtered"`
	CoMentionPairs  int `json:"co_mention_pairs"`
}

// Snapshot is the full persisted unit: the corpus, the graph computed
// from it, and run metadata. It is the sole artifact handed to the next
// run and to downstream consumers, which read stocks and co_mentions.
type Snapshot struct {
	Updated       string         `json:"updated"`
	UpdatedKST    string         `json:"updated_kst,omitempty"`
	RetentionDays int            `json:"retention_days"`
	Stats         Stats          `json:"stats"`
	Stocks        Corpus         `json:"stocks"`
	CoMentions    CoMentionGraph `json:"co_mentions"`
}

// EmptySnapshot returns a snapshot with initialized containers, used
// when no prior state exists or the prior state cannot be parsed.
func EmptySnapshot(retentionDays int) Snapshot {
	return Snapshot{
		RetentionDays: retentionDays,
		Stocks:        Corpus{},
		CoMentions:    CoMentionGraph{},
	}
}
