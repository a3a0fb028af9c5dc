package usecase

import (
	"context"
	"errors"
	"strings"

	"laura-assistant/internal/search"
	"laura-assistant/pkg/serpapi"
)

const fetchedAtFormat = "20060102_150405"

// Search runs the query against SerpAPI with a response cache in front.
// Backend failures never surface to the caller: the usecase answers with
// mock data and labels the output accordingly.
func (uc *implUseCase) Search(ctx context.Context, query string) (search.SearchOutput, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return search.SearchOutput{}, search.ErrEmptyQuery
	}

	if cached, ok := uc.cache.Get(query); ok {
		uc.l.Debugf(ctx, "search.Search: cache hit for %q", query)
		return cached, nil
	}

	out := uc.fetch(ctx, query)
	uc.cache.Add(query, out)
	return out, nil
}

func (uc *implUseCase) fetch(ctx context.Context, query string) search.SearchOutput {
	fetchedAt := uc.now().Format(fetchedAtFormat)

	if uc.api == nil {
		return search.SearchOutput{
			Query:     query,
			Provider:  search.ProviderMock,
			FetchedAt: fetchedAt,
			Results:   mockResults(query),
		}
	}

	results, err := uc.api.Search(ctx, query)
	if err != nil {
		uc.l.Warnf(ctx, "search.fetch: falling back to mock data (%s): %v", fallbackReason(err), err)
		return search.SearchOutput{
			Query:     query,
			Provider:  search.ProviderFallback,
			FetchedAt: fetchedAt,
			Results:   mockResults(query),
		}
	}

	hits := make([]search.Result, len(results.OrganicResults))
	for i, r := range results.OrganicResults {
		hits[i] = search.Result{
			Position: r.Position,
			Title:    r.Title,
			URL:      r.Link,
			Snippet:  r.Snippet,
		}
	}

	return search.SearchOutput{
		Query:     query,
		Provider:  search.ProviderSerpAPI,
		FetchedAt: fetchedAt,
		Results:   hits,
	}
}

// fallbackReason classifies why a live search failed, for the log line.
func fallbackReason(err error) string {
	var statusErr *serpapi.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case 401:
			return "invalid API key"
		case 402:
			return "quota exhausted"
		case 429:
			return "too many requests"
		}
		return "API error"
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "network error"
}
