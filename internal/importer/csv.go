package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Expected CSV layout matches the xlsx one: term, translation, part of
// speech, tier, topic. The first row is treated as a header and skipped.
func parseCSV(path string) ([]Record, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may omit trailing optional columns
	reader.LazyQuotes = true

	var (
		records []Record
		errs    []string
		rowNum  int
	)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read CSV: %w", err)
		}

		rowNum++
		if rowNum == 1 {
			continue
		}
		rec, err := normalizeRecord(cell(row, 0), cell(row, 1), cell(row, 2), cell(row, 3), cell(row, 4))
		if err != nil {
			errs = append(errs, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		records = append(records, rec)
	}
	return records, errs, nil
}
