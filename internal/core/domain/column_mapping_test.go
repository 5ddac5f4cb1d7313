package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumnMapping_Strategies(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    domain.AmountStrategy
	}{
		{
			name: "signed amount",
			payload: `{"dateColumn":"Date","dateFormat":"dd/MM/yyyy","descriptionColumns":["Details"],
				"amountColumn":"Amount","amountIsSignedNumber":true,"skipColumns":[],"bankName":"ASB","currency":"nzd"}`,
			want: domain.SignedAmount{Column: "Amount"},
		},
		{
			name: "split debit and credit",
			payload: `{"dateColumn":"Date","dateFormat":"yyyy-MM-dd","descriptionColumns":["Payee","Memo"],
				"amountColumn":null,"amountIsSignedNumber":false,"debitColumn":"Debit","creditColumn":"Credit"}`,
			want: domain.SplitAmount{DebitColumn: "Debit", CreditColumn: "Credit"},
		},
		{
			name: "type indicator",
			payload: `{"dateColumn":"Date","dateFormat":"MM/dd/yyyy","descriptionColumns":["Description"],
				"amountColumn":"Amount","amountIsSignedNumber":false,"typeColumn":"Type","debitIndicator":"DR","creditIndicator":"CR"}`,
			want: domain.IndicatorAmount{AmountColumn: "Amount", TypeColumn: "Type", DebitIndicator: "DR", CreditIndicator: "CR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseColumnMapping([]byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Amount)
		})
	}
}

func TestParseColumnMapping_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `Sure! Here is the mapping`},
		{"unknown field", `{"dateColumn":"Date","dateFormat":"dd/MM/yyyy","descriptionColumns":["D"],"amountColumn":"A","amountIsSignedNumber":true,"confidence":0.9}`},
		{"missing date column", `{"dateFormat":"dd/MM/yyyy","descriptionColumns":["D"],"amountColumn":"A","amountIsSignedNumber":true}`},
		{"empty description columns", `{"dateColumn":"Date","dateFormat":"dd/MM/yyyy","descriptionColumns":[],"amountColumn":"A","amountIsSignedNumber":true}`},
		{"no amount strategy", `{"dateColumn":"Date","dateFormat":"dd/MM/yyyy","descriptionColumns":["D"],"amountColumn":"A","amountIsSignedNumber":false}`},
		{"bad currency", `{"dateColumn":"Date","dateFormat":"dd/MM/yyyy","descriptionColumns":["D"],"amountColumn":"A","amountIsSignedNumber":true,"currency":"DOLLARS"}`},
		{"signed and split together", `{"dateColumn":"Date","dateFormat":"dd/MM/yyyy","descriptionColumns":["Details"],"amountColumn":"Amount","amountIsSignedNumber":true,"debitColumn":"Debit","creditColumn":"Credit"}`},
		{"signed and type indicator together", `{"dateColumn":"Date","dateFormat":"dd/MM/yyyy","descriptionColumns":["D"],"amountColumn":"A","amountIsSignedNumber":true,"typeColumn":"T","debitIndicator":"DR"}`},
		{"trailing text after object", `{"dateColumn":"Date","dateFormat":"dd/MM/yyyy","descriptionColumns":["D"],"amountColumn":"A","amountIsSignedNumber":true} trailing garbage`},
		{"two objects", `{"dateColumn":"Date","dateFormat":"dd/MM/yyyy","descriptionColumns":["D"],"amountColumn":"A","amountIsSignedNumber":true}{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseColumnMapping([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}

func TestParseColumnMapping_Defaults(t *testing.T) {
	got, err := domain.ParseColumnMapping([]byte(`{"dateColumn":" Date ","dateFormat":"dd/MM/yyyy","descriptionColumns":["Details"],"amountColumn":"Amount","amountIsSignedNumber":true}`))
	require.NoError(t, err)

	assert.Equal(t, "Date", got.DateColumn)
	assert.Equal(t, domain.DefaultCurrency, got.Currency)
	assert.Equal(t, []string{"Date", "Details", "Amount"}, got.RequiredColumns())
}

func TestParseColumnMapping_EmptyCurrencyFallsBack(t *testing.T) {
	for _, currency := range []string{`""`, `"  "`, `null`} {
		t.Run(currency, func(t *testing.T) {
			got, err := domain.ParseColumnMapping([]byte(`{"dateColumn":"Date","dateFormat":"dd/MM/yyyy","descriptionColumns":["Details"],"amountColumn":"Amount","amountIsSignedNumber":true,"currency":` + currency + `}`))
			require.NoError(t, err)
			assert.Equal(t, domain.DefaultCurrency, got.Currency)
		})
	}
}

func TestParseColumnMapping_AllowsTrailingWhitespace(t *testing.T) {
	_, err := domain.ParseColumnMapping([]byte("{\"dateColumn\":\"Date\",\"dateFormat\":\"dd/MM/yyyy\",\"descriptionColumns\":[\"D\"],\"amountColumn\":\"A\",\"amountIsSignedNumber\":true}\n\n"))
	assert.NoError(t, err)
}

func TestColumnMapping_JSONKeepsStrategy(t *testing.T) {
	original := domain.ColumnMapping{
		DateColumn:         "Transaction Date",
		DateFormat:         "dd/MM/yyyy",
		DescriptionColumns: []string{"Payee", "Particulars"},
		Amount:             domain.IndicatorAmount{AmountColumn: "Amount", TypeColumn: "Dr/Cr", DebitIndicator: "D", CreditIndicator: "C"},
		BankName:           "Kiwibank",
		Currency:           "NZD",
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	// Stored mappings must also satisfy the strict parser.
	strict, err := domain.ParseColumnMapping(data)
	require.NoError(t, err)
	assert.Equal(t, original.Amount, strict.Amount)

	var decoded domain.ColumnMapping
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.Amount, decoded.Amount)
	assert.Equal(t, original.DescriptionColumns, decoded.DescriptionColumns)
	assert.Equal(t, "Kiwibank", decoded.BankName)
}
