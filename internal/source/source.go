package source

import (
	"context"
	"fmt"
)

// Candidate is one raw search result before filtering and merging.
type Candidate struct {
	Title       string
	Description string
	URL         string
	PublishedAt string
}

// Searcher captures a single news-search provider implementation.
type Searcher interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]Candidate, error)
}

// Registry keeps a mapping from provider names to their implementations.
type Registry struct {
	searchers map[string]Searcher
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{searchers: map[string]Searcher{}}
}

// Register adds or replaces a searcher implementation.
func (r *Registry) Register(s Searcher) {
	if r.searchers == nil {
		r.searchers = map[string]Searcher{}
	}
	r.searchers[s.Name()] = s
}

// Resolve returns a searcher by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Searcher, error) {
	if s, ok := r.searchers[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("search provider %s is not registered", name)
}
