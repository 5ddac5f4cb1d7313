package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/cashmap/internal/apperrors"
)

// SampleSize is the number of data rows handed to format detection.
const SampleSize = 5

// CSV is a decoded statement file: the first record is the header row and
// every following non-blank record is a data row.
type CSV struct {
	Headers []string
	Rows    [][]string
}

// Sample returns up to n leading data rows.
func (c CSV) Sample(n int) [][]string {
	if len(c.Rows) < n {
		return c.Rows
	}
	return c.Rows[:n]
}

// ReadCSV decodes a statement. Ragged rows are allowed and blank lines are
// ignored. A file without a header and at least one data row yields
// ErrEmptyFile.
func ReadCSV(r io.Reader) (CSV, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return CSV{}, fmt.Errorf("%w: reading statement CSV: %v", apperrors.ErrValidation, err)
	}

	var kept [][]string
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		kept = append(kept, rec)
	}
	if len(kept) < 2 {
		return CSV{}, apperrors.ErrEmptyFile
	}

	headers := make([]string, len(kept[0]))
	for i, h := range kept[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	return CSV{Headers: headers, Rows: kept[1:]}, nil
}

// ReadCSVLimited is ReadCSV with the upload limits applied. maxBytes and
// maxRows of zero disable the respective check.
func ReadCSVLimited(content []byte, maxBytes int64, maxRows int) (CSV, error) {
	if maxBytes > 0 && int64(len(content)) > maxBytes {
		return CSV{}, fmt.Errorf("%w: %d bytes exceeds %d", apperrors.ErrFileTooLarge, len(content), maxBytes)
	}
	parsed, err := ReadCSV(strings.NewReader(string(content)))
	if err != nil {
		return CSV{}, err
	}
	if maxRows > 0 && len(parsed.Rows) > maxRows {
		return CSV{}, fmt.Errorf("%w: %d rows exceeds %d", apperrors.ErrTooManyRows, len(parsed.Rows), maxRows)
	}
	return parsed, nil
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
