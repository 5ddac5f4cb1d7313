package statement

import (
	"fmt"
	"strings"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/core/domain"
)

// DescriptionSeparator joins the values of multiple description columns.
const DescriptionSeparator = " - "

// SkipReason names why a data row was dropped.
type SkipReason string

const (
	SkipShortRow         SkipReason = "short_row"
	SkipEmptyDescription SkipReason = "empty_description"
	SkipBadDate          SkipReason = "bad_date"
	SkipBadAmount        SkipReason = "bad_amount"
)

// NormaliseResult holds the transactions parsed from a batch and the number of
// rows skipped per reason.
type NormaliseResult struct {
	Transactions []domain.ParsedTransaction
	Skipped      map[SkipReason]int
}

// SkippedTotal is the number of rows that produced no transaction.
func (r NormaliseResult) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

// Normalise applies a confirmed mapping to raw data rows. A mapping that names
// a column missing from headers fails the whole batch with ErrMissingColumn;
// any other problem only skips the offending row.
func Normalise(rows [][]string, headers []string, mapping domain.ColumnMapping) (NormaliseResult, error) {
	if mapping.Amount == nil {
		return NormaliseResult{}, fmt.Errorf("%w: mapping has no amount strategy", apperrors.ErrValidation)
	}

	index, err := columnIndex(headers, mapping.RequiredColumns())
	if err != nil {
		return NormaliseResult{}, err
	}

	result := NormaliseResult{
		Transactions: make([]domain.ParsedTransaction, 0, len(rows)),
		Skipped:      make(map[SkipReason]int),
	}

	for _, row := range rows {
		txn, reason, ok := normaliseRow(row, index, mapping)
		if !ok {
			result.Skipped[reason]++
			continue
		}
		result.Transactions = append(result.Transactions, txn)
	}
	return result, nil
}

// CheckColumns reports ErrMissingColumn when the mapping reads a column the
// headers do not have.
func CheckColumns(headers []string, mapping domain.ColumnMapping) error {
	_, err := columnIndex(headers, mapping.RequiredColumns())
	return err
}

// columnIndex resolves each mapped column to its position. Exact header
// matches win; otherwise the comparison ignores case and surrounding space,
// the same equivalence the header fingerprint uses.
func columnIndex(headers, columns []string) (map[string]int, error) {
	exact := make(map[string]int, len(headers))
	loose := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, seen := exact[h]; !seen {
			exact[h] = i
		}
		key := strings.ToLower(strings.TrimSpace(h))
		if _, seen := loose[key]; !seen {
			loose[key] = i
		}
	}

	index := make(map[string]int, len(columns))
	for _, col := range columns {
		if i, ok := exact[col]; ok {
			index[col] = i
			continue
		}
		if i, ok := loose[strings.ToLower(strings.TrimSpace(col))]; ok {
			index[col] = i
			continue
		}
		return nil, fmt.Errorf("%w: %q", apperrors.ErrMissingColumn, col)
	}
	return index, nil
}

func normaliseRow(row []string, index map[string]int, mapping domain.ColumnMapping) (domain.ParsedTransaction, SkipReason, bool) {
	if len(row) < 2 {
		return domain.ParsedTransaction{}, SkipShortRow, false
	}

	// Ragged rows may be shorter than the header; missing cells read as empty.
	cell := func(col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	description := joinDescription(mapping.DescriptionColumns, cell)
	if description == "" {
		return domain.ParsedTransaction{}, SkipEmptyDescription, false
	}

	date := ResolveDate(cell(mapping.DateColumn), mapping.DateFormat)
	if !date.OK {
		return domain.ParsedTransaction{}, SkipBadDate, false
	}

	amount, txnType, ok := resolveAmount(mapping.Amount, cell)
	if !ok {
		return domain.ParsedTransaction{}, SkipBadAmount, false
	}

	return domain.ParsedTransaction{
		Date:           date.Date,
		RawDescription: description,
		Amount:         amount,
		Type:           txnType,
		DedupHash:      DedupHash(date.Date, amount, description),
	}, "", true
}

func joinDescription(columns []string, cell func(string) string) string {
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		if v := strings.TrimSpace(cell(col)); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, DescriptionSeparator)
}
