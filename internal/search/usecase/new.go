package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"laura-assistant/internal/search"
	pkgLog "laura-assistant/pkg/log"
	"laura-assistant/pkg/serpapi"
)

// Searcher is the live-search capability. *serpapi.Client satisfies it;
// a nil Searcher switches the usecase to mock data entirely.
type Searcher interface {
	Search(ctx context.Context, query string) (*serpapi.Results, error)
}

type implUseCase struct {
	l     pkgLog.Logger
	api   Searcher
	cache *expirable.LRU[string, search.SearchOutput]
	now   func() time.Time
}

// New creates a new search UseCase instance. api may be nil when no API
// key is configured; every query then answers from mock data.
func New(l pkgLog.Logger, api Searcher, cacheSize int, cacheTTL time.Duration) *implUseCase {
	if cacheSize <= 0 {
		cacheSize = 128
	}
	return &implUseCase{
		l:     l,
		api:   api,
		cache: expirable.NewLRU[string, search.SearchOutput](cacheSize, nil, cacheTTL),
		now:   time.Now,
	}
}

// WithClock overrides the time source. Used by tests to pin FetchedAt.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
