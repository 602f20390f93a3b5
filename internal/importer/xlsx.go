package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Expected xlsx layout: columns A-E are term, translation, part of speech,
// tier, topic. The first row is treated as a header and skipped.
const xlsxSheet = "Sheet1"

func parseXLSX(path string) ([]Record, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open xlsx file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", xlsxSheet, err)
	}

	var (
		records []Record
		errs    []string
	)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		rec, err := normalizeRecord(cell(row, 0), cell(row, 1), cell(row, 2), cell(row, 3), cell(row, 4))
		if err != nil {
			errs = append(errs, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		records = append(records, rec)
	}
	return records, errs, nil
}

// cell returns the column value or "" when the row is short; excelize trims
// trailing empty cells from each row.
func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
