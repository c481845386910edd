package corpus

import (
	"strings"

	"StockNewsCollector/internal/domain"
)

const (
	// Title keys shorter than this never participate in prefix matching.
	titleKeyMinRunes = 15
	// Near-duplicate titles are compared on at most this many leading runes.
	titlePrefixRunes = 20
)

// titlePrefix returns the comparison prefix of a normalized title (its
// first 20 runes, or the whole key when shorter) and whether the key is
// long enough to participate.
func titlePrefix(key string) (string, bool) {
	runes := []rune(key)
	if len(runes) < titleKeyMinRunes {
		return "", false
	}
	if len(runes) > titlePrefixRunes {
		runes = runes[:titlePrefixRunes]
	}
	return string(runes), true
}

// prefixesCollide treats two comparison prefixes as the same title when
// either is a leading segment of the other, so an 18-rune key still
// collides with a longer key sharing those 18 runes.
func prefixesCollide(a, b string) bool {
	return strings.HasPrefix(a, b) || strings.HasPrefix(b, a)
}

type seenKeys struct {
	urls     map[string]struct{}
	prefixes []string
}

func newSeenKeys() *seenKeys {
	return &seenKeys{urls: map[string]struct{}{}}
}

func (s *seenKeys) matches(a domain.Article) bool {
	if url := a.CanonicalURL(); url != "" {
		if _, ok := s.urls[url]; ok {
			return true
		}
	}
	if prefix, eligible := titlePrefix(a.TitleKey()); eligible {
		for _, seen := range s.prefixes {
			if prefixesCollide(prefix, seen) {
				return true
			}
		}
	}
	return false
}

func (s *seenKeys) record(a domain.Article) {
	if url := a.CanonicalURL(); url != "" {
		s.urls[url] = struct{}{}
	}
	if prefix, eligible := titlePrefix(a.TitleKey()); eligible {
		s.prefixes = append(s.prefixes, prefix)
	}
}

// Dedupe removes duplicate articles in a single order-preserving pass:
// an article is dropped when its canonical URL or its eligible
// title-key prefix was already seen. Feeding new articles before old
// ones therefore keeps the new article on conflict.
func Dedupe(articles []domain.Article) []domain.Article {
	seen := newSeenKeys()
	kept := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if seen.matches(a) {
			continue
		}
		seen.record(a)
		kept = append(kept, a)
	}
	return kept
}

// IsDuplicateOf reports whether candidate collides with any article in
// the existing list, without mutating it.
func IsDuplicateOf(candidate domain.Article, existing []domain.Article) bool {
	seen := newSeenKeys()
	for _, a := range existing {
		seen.record(a)
	}
	return seen.matches(candidate)
}
