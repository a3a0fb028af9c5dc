package search

// Provider labels recorded on SearchOutput.
const (
	ProviderSerpAPI  = "serpapi"
	ProviderMock     = "mock"
	ProviderFallback = "serpapi-fallback"
)

// Result is a single search hit.
type Result struct {
	Position int
	Title    string
	URL      string
	Snippet  string
}

// SearchOutput is a fetched result set. Provider records where the data
// came from: "serpapi", "mock", or "serpapi-fallback" when a live call
// failed and mock data was substituted.
type SearchOutput struct {
	Query     string
	Provider  string
	FetchedAt string
	Results   []Result
}

// ExportInput is the result set to render into a workbook.
type ExportInput struct {
	Query     string
	FetchedAt string
	Results   []Result
}

// ExportOutput is the rendered workbook.
type ExportOutput struct {
	Filename string
	Content  []byte
}
