package http

import (
	"laura-assistant/internal/search"
)

// --- Request DTOs ---

type searchReq struct {
	UserInput string `form:"user_input"`
}

func (r searchReq) validate() error {
	if r.UserInput == "" {
		return errEmptyUserInput
	}
	return nil
}

// exportReq is a previously returned search response posted back for
// rendering.
type exportReq struct {
	Query     string      `json:"query"`
	FetchedAt string      `json:"fetched_at"`
	Results   []resultDTO `json:"results" binding:"required"`
}

func (r exportReq) validate() error { return nil }

func (r exportReq) toInput() search.ExportInput {
	results := make([]search.Result, len(r.Results))
	for i, hit := range r.Results {
		results[i] = search.Result{
			Position: hit.Position,
			Title:    hit.Title,
			URL:      hit.URL,
			Snippet:  hit.Snippet,
		}
	}
	return search.ExportInput{
		Query:     r.Query,
		FetchedAt: r.FetchedAt,
		Results:   results,
	}
}

// --- Response DTOs ---

type resultDTO struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Snippet  string `json:"snippet"`
}

type searchResp struct {
	Query     string      `json:"query"`
	Provider  string      `json:"provider"`
	FetchedAt string      `json:"fetched_at"`
	Results   []resultDTO `json:"results"`
}

func (h *handler) newSearchResp(out search.SearchOutput) searchResp {
	results := make([]resultDTO, len(out.Results))
	for i, hit := range out.Results {
		results[i] = resultDTO{
			Position: hit.Position,
			Title:    hit.Title,
			URL:      hit.URL,
			Snippet:  hit.Snippet,
		}
	}
	return searchResp{
		Query:     out.Query,
		Provider:  out.Provider,
		FetchedAt: out.FetchedAt,
		Results:   results,
	}
}
