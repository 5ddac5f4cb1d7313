package statement_test

import (
	"testing"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/SscSPs/cashmap/internal/utils/statement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedMapping() domain.ColumnMapping {
	return domain.ColumnMapping{
		DateColumn:         "Date",
		DateFormat:         "dd/MM/yyyy",
		DescriptionColumns: []string{"Details"},
		Amount:             domain.SignedAmount{Column: "Amount"},
		Currency:           "NZD",
	}
}

func TestNormalise_SignedAmounts(t *testing.T) {
	headers := []string{"Date", "Details", "Amount"}
	rows := [][]string{
		{"15/03/2024", "COUNTDOWN", "-45.00"},
		{"16/03/2024", "REFUND", "32.50"},
	}

	got, err := statement.Normalise(rows, headers, signedMapping())
	require.NoError(t, err)
	require.Len(t, got.Transactions, 2)

	assert.Equal(t, domain.Debit, got.Transactions[0].Type)
	assert.True(t, decimal.RequireFromString("45.00").Equal(got.Transactions[0].Amount))
	assert.Equal(t, domain.Credit, got.Transactions[1].Type)
	assert.True(t, decimal.RequireFromString("32.50").Equal(got.Transactions[1].Amount))
	assert.Equal(t, 0, got.SkippedTotal())
}

func TestNormalise_RoundsAmountsToCents(t *testing.T) {
	headers := []string{"Date", "Details", "Amount"}
	rows := [][]string{
		{"15/03/2024", "FX PURCHASE", "-12.345"},
		{"15/03/2024", "FX PURCHASE", "-12.35"},
		{"15/03/2024", "DUST", "0.004"},
	}

	got, err := statement.Normalise(rows, headers, signedMapping())
	require.NoError(t, err)
	require.Len(t, got.Transactions, 2)

	first, second := got.Transactions[0], got.Transactions[1]
	assert.Equal(t, "12.35", first.Amount.StringFixed(2))
	assert.Equal(t, int32(-statement.AmountScale), first.Amount.Exponent())
	assert.Equal(t, second.DedupHash, first.DedupHash, "rows equal at storage precision must hash alike")
	assert.Equal(t, 1, got.Skipped[statement.SkipBadAmount])
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"$1,234.56", "1234.56", true},
		{"-45", "-45", true},
		{"12.345", "12.35", true},
		{"-12.345", "-12.35", true},
		{"0.1049", "0.1", true},
		{"", "0", false},
		{"abc", "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := statement.ParseAmount(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestNormalise_SkipsBadRowsAndContinues(t *testing.T) {
	headers := []string{"Date", "Details", "Amount"}
	rows := [][]string{
		{"", "NO DATE", "-10.00"},
		{"15/03/2024"},
		{"15/03/2024", "   ", "-10.00"},
		{"15/03/2024", "ZERO", "0.00"},
		{"15/03/2024", "TEXT AMOUNT", "n/a"},
		{"31/02/2024", "BAD CALENDAR", "-5"},
		{"16/03/2024", "NEW WORLD", "$1,234.56-"},
	}

	got, err := statement.Normalise(rows, headers, signedMapping())
	require.NoError(t, err)

	assert.Len(t, got.Transactions, 0)
	assert.Equal(t, 2, got.Skipped[statement.SkipBadDate])
	assert.Equal(t, 1, got.Skipped[statement.SkipShortRow])
	assert.Equal(t, 1, got.Skipped[statement.SkipEmptyDescription])
	assert.Equal(t, 3, got.Skipped[statement.SkipBadAmount])
}

func TestNormalise_BlankDateDoesNotAbortBatch(t *testing.T) {
	headers := []string{"Date", "Details", "Amount"}
	rows := [][]string{
		{"15/03/2024", "COUNTDOWN", "-45.00"},
		{"", "MYSTERY", "-1.00"},
		{"17/03/2024", "Z ENERGY", "-80.00"},
	}

	got, err := statement.Normalise(rows, headers, signedMapping())
	require.NoError(t, err)
	require.Len(t, got.Transactions, 2)
	assert.Equal(t, "Z ENERGY", got.Transactions[1].RawDescription)
	assert.Equal(t, 1, got.Skipped[statement.SkipBadDate])
}

func TestNormalise_SplitColumns(t *testing.T) {
	headers := []string{"Date", "Payee", "Memo", "Debit", "Credit"}
	mapping := domain.ColumnMapping{
		DateColumn:         "Date",
		DateFormat:         "yyyy-MM-dd",
		DescriptionColumns: []string{"Payee", "Memo"},
		Amount:             domain.SplitAmount{DebitColumn: "Debit", CreditColumn: "Credit"},
	}
	rows := [][]string{
		{"2024-03-15", "Countdown", "Groceries", "45.10", ""},
		{"2024-03-16", "Employer", "", "", "2,500.00"},
		{"2024-03-17", "Nothing", "", "", ""},
	}

	got, err := statement.Normalise(rows, headers, mapping)
	require.NoError(t, err)
	require.Len(t, got.Transactions, 2)

	assert.Equal(t, "Countdown - Groceries", got.Transactions[0].RawDescription)
	assert.Equal(t, domain.Debit, got.Transactions[0].Type)
	assert.Equal(t, "Employer", got.Transactions[1].RawDescription)
	assert.Equal(t, domain.Credit, got.Transactions[1].Type)
	assert.True(t, decimal.RequireFromString("2500").Equal(got.Transactions[1].Amount))
	assert.Equal(t, 1, got.Skipped[statement.SkipBadAmount])
}

func TestNormalise_IndicatorColumn(t *testing.T) {
	headers := []string{"Date", "Description", "Amount", "Type"}
	mapping := domain.ColumnMapping{
		DateColumn:         "Date",
		DateFormat:         "MM/dd/yyyy",
		DescriptionColumns: []string{"Description"},
		Amount:             domain.IndicatorAmount{AmountColumn: "Amount", TypeColumn: "Type", DebitIndicator: "dr", CreditIndicator: "CR"},
	}
	rows := [][]string{
		{"03/15/2024", "PAK N SAVE", "45.00", " DR "},
		{"03/16/2024", "INTEREST", "-1.20", "CR"},
	}

	got, err := statement.Normalise(rows, headers, mapping)
	require.NoError(t, err)
	require.Len(t, got.Transactions, 2)

	assert.Equal(t, domain.Debit, got.Transactions[0].Type)
	assert.Equal(t, domain.Credit, got.Transactions[1].Type)
	assert.True(t, decimal.RequireFromString("1.20").Equal(got.Transactions[1].Amount))
}

func TestNormalise_MissingColumnIsFatal(t *testing.T) {
	mapping := signedMapping()
	mapping.DescriptionColumns = []string{"Details", "Reference"}

	_, err := statement.Normalise([][]string{{"15/03/2024", "X", "-1"}}, []string{"Date", "Details", "Amount"}, mapping)
	assert.ErrorIs(t, err, apperrors.ErrMissingColumn)
}

func TestNormalise_ShortRaggedRowReadsMissingCellsAsEmpty(t *testing.T) {
	headers := []string{"Date", "Amount", "Details"}
	mapping := signedMapping()

	got, err := statement.Normalise([][]string{{"15/03/2024", "-3.00"}}, headers, mapping)
	require.NoError(t, err)
	assert.Empty(t, got.Transactions)
	assert.Equal(t, 1, got.Skipped[statement.SkipEmptyDescription])
}

func TestPreview(t *testing.T) {
	txns := []domain.ParsedTransaction{{
		Date:           date(2024, 3, 5),
		RawDescription: "COUNTDOWN",
		Amount:         decimal.RequireFromString("45"),
		Type:           domain.Debit,
	}}

	got := statement.Preview(txns, "")
	require.Len(t, got, 1)
	assert.Equal(t, "05/03/2024", got[0].Date)
	assert.Equal(t, "NZD 45.00", got[0].Amount)
}

func TestNormalise_ColumnsMatchIgnoringCase(t *testing.T) {
	headers := []string{"DATE", " details ", "amount"}

	got, err := statement.Normalise([][]string{{"15/03/2024", "COUNTDOWN", "-45.00"}}, headers, signedMapping())
	require.NoError(t, err)
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, "COUNTDOWN", got.Transactions[0].RawDescription)
}
