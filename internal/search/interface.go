package search

import "context"

// UseCase defines the business logic interface for the search domain.
type UseCase interface {
	// Search runs a web search for the query, falling back to mock data
	// when the backend is unavailable or out of quota.
	Search(ctx context.Context, query string) (SearchOutput, error)

	// ExportExcel renders a previously fetched result set as an .xlsx
	// workbook.
	ExportExcel(ctx context.Context, input ExportInput) (ExportOutput, error)
}
