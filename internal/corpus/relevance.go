package corpus

import "strings"

// RelevanceFilter decides whether a piece of text is financial content.
// Exclude keywords carry entertainment/celebrity vocabulary; finance
// keywords carry market vocabulary. Both lists come from configuration.
type RelevanceFilter struct {
	exclude []string
	finance []string
}

// NewRelevanceFilter builds a filter over the configured keyword lists.
func NewRelevanceFilter(exclude, finance []string) *RelevanceFilter {
	return &RelevanceFilter{exclude: exclude, finance: finance}
}

// IsFinancial applies the precedence rule: two or more exclude-keyword
// hits reject outright; a single hit is forgiven only when finance
// vocabulary is also present; zero hits accept. A single incidental
// celebrity mention must not sink an otherwise financial story.
func (f *RelevanceFilter) IsFinancial(title, description string) bool {
	text := title + " " + description

	hits := 0
	for _, kw := range f.exclude {
		if kw != "" && strings.Contains(text, kw) {
			hits++
		}
	}

	switch {
	case hits >= 2:
		return false
	case hits == 1:
		return f.hasFinanceKeyword(text)
	default:
		return true
	}
}

func (f *RelevanceFilter) hasFinanceKeyword(text string) bool {
	for _, kw := range f.finance {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
