package usecase

import (
	"fmt"

	"laura-assistant/internal/search"
)

// mockResults fabricates a plausible result set for the query, so the
// endpoint keeps working in demos and during quota outages.
func mockResults(query string) []search.Result {
	return []search.Result{
		{
			Position: 1,
			Title:    fmt.Sprintf("%s - Wikipedia", query),
			URL:      "https://en.wikipedia.org/wiki/Special:Search?search=" + query,
			Snippet:  fmt.Sprintf("Overview article about %s with history, background and references.", query),
		},
		{
			Position: 2,
			Title:    fmt.Sprintf("%s: the complete guide", query),
			URL:      "https://www.example.com/guides/" + query,
			Snippet:  fmt.Sprintf("Everything you need to know about %s, from basics to advanced topics.", query),
		},
		{
			Position: 3,
			Title:    fmt.Sprintf("Latest news about %s", query),
			URL:      "https://news.example.com/topics/" + query,
			Snippet:  fmt.Sprintf("Recent coverage and analysis related to %s.", query),
		},
	}
}
