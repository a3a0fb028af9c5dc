package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"laura-assistant/internal/search"
)

const exportSheet = "Results"

var exportHeader = []string{"Position", "Title", "URL", "Snippet"}

// ExportExcel renders the result set into a single-sheet workbook.
func (uc *implUseCase) ExportExcel(ctx context.Context, input search.ExportInput) (search.ExportOutput, error) {
	if len(input.Results) == 0 {
		return search.ExportOutput{}, search.ErrNoResults
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return search.ExportOutput{}, fmt.Errorf("search: failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return search.ExportOutput{}, fmt.Errorf("search: failed to drop default sheet: %w", err)
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return search.ExportOutput{}, fmt.Errorf("search: header cell: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return search.ExportOutput{}, fmt.Errorf("search: header cell: %w", err)
		}
	}

	for i, r := range input.Results {
		row := i + 2
		values := []any{r.Position, r.Title, r.URL, r.Snippet}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return search.ExportOutput{}, fmt.Errorf("search: result cell: %w", err)
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return search.ExportOutput{}, fmt.Errorf("search: result cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return search.ExportOutput{}, fmt.Errorf("search: failed to write workbook: %w", err)
	}

	fetchedAt := input.FetchedAt
	if fetchedAt == "" {
		fetchedAt = uc.now().Format(fetchedAtFormat)
	}

	uc.l.Infof(ctx, "search.ExportExcel: exported %d results for %q", len(input.Results), input.Query)

	return search.ExportOutput{
		Filename: fmt.Sprintf("search_results_%s.xlsx", fetchedAt),
		Content:  buf.Bytes(),
	}, nil
}
