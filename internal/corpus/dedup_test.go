package corpus

import (
	"testing"

	"StockNewsCollector/internal/domain"
)

func TestDedupeDropsCanonicalURLDuplicates(t *testing.T) {
	t.Parallel()

	articles := []domain.Article{
		{Title: "fresh", URL: "https://mk.co.kr/a?utm=1"},
		{Title: "stale", URL: "https://mk.co.kr/a"},
		{Title: "other", URL: "https://mk.co.kr/b"},
	}

	got := Dedupe(articles)
	if len(got) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(got))
	}
	if got[0].Title != "fresh" {
		t.Fatalf("first-seen article should win, got %q", got[0].Title)
	}
	if got[1].Title != "other" {
		t.Fatalf("unexpected survivor: %q", got[1].Title)
	}
}

func TestDedupeDropsNearDuplicateTitles(t *testing.T) {
	t.Parallel()

	// Same first 20 key runes, different URLs.
	articles := []domain.Article{
		{Title: "엔비디아 삼분기 실적 발표 시장 예상치 상회", URL: "https://mk.co.kr/1"},
		{Title: "엔비디아 삼분기 실적 발표 시장 예상치 상회했다", URL: "https://hankyung.com/2"},
	}

	got := Dedupe(articles)
	if len(got) != 1 {
		t.Fatalf("expected 1 article, got %d", len(got))
	}
	if got[0].URL != "https://mk.co.kr/1" {
		t.Fatalf("first article should survive, got %s", got[0].URL)
	}
}

func TestDedupeShortTitlesNeverPrefixMatched(t *testing.T) {
	t.Parallel()

	// Keys under 15 runes are exempt from prefix comparison.
	articles := []domain.Article{
		{Title: "엔비디아 실적", URL: "https://mk.co.kr/1"},
		{Title: "엔비디아 실적!", URL: "https://mk.co.kr/2"},
	}

	got := Dedupe(articles)
	if len(got) != 2 {
		t.Fatalf("short titles must not collide, got %d articles", len(got))
	}
}

func TestIsDuplicateOfByURL(t *testing.T) {
	t.Parallel()

	existing := []domain.Article{{Title: "kept", URL: "https://mk.co.kr/a"}}
	candidate := domain.Article{Title: "incoming", URL: "https://mk.co.kr/a?utm=1"}

	if !IsDuplicateOf(candidate, existing) {
		t.Fatal("candidate with same canonical URL should be a duplicate")
	}
	if len(existing) != 1 || existing[0].Title != "kept" {
		t.Fatal("existing list must not be mutated")
	}
}

func TestIsDuplicateOfByTitlePrefixAcrossLengths(t *testing.T) {
	t.Parallel()

	// Existing key is 18 runes (eligible, shorter than the 20-rune
	// window); candidate key is 22 runes sharing those 18. Different
	// URLs must not save the candidate.
	existing := []domain.Article{
		{Title: "가나다라마바사아자차카타파하가나다라", URL: "https://mk.co.kr/old"},
	}
	candidate := domain.Article{
		Title: "가나다라마바사아자차카타파하가나다라마바사아",
		URL:   "https://hankyung.com/new",
	}

	if got := len([]rune(existing[0].TitleKey())); got != 18 {
		t.Fatalf("fixture existing key length = %d, want 18", got)
	}
	if got := len([]rune(candidate.TitleKey())); got != 22 {
		t.Fatalf("fixture candidate key length = %d, want 22", got)
	}
	if !IsDuplicateOf(candidate, existing) {
		t.Fatal("candidate sharing the shorter eligible key should be a duplicate")
	}
}

func TestDedupeNewWinsWhenNewFirst(t *testing.T) {
	t.Parallel()

	merged := append([]domain.Article{
		{Title: "new version", URL: "https://mk.co.kr/a", PublishedAt: "2026-09-01"},
	}, domain.Article{Title: "old version", URL: "https://mk.co.kr/a/", PublishedAt: "2026-06-01"})

	got := Dedupe(merged)
	if len(got) != 1 {
		t.Fatalf("expected 1 article, got %d", len(got))
	}
	if got[0].Title != "new version" {
		t.Fatalf("new-first input should keep the new article, got %q", got[0].Title)
	}
}
