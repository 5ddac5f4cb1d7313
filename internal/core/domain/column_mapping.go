package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AmountStrategy describes how the amount and direction of a row are read.
// It is implemented only by SignedAmount, SplitAmount and IndicatorAmount.
type AmountStrategy interface {
	// Columns returns every header this strategy reads from.
	Columns() []string
	isAmountStrategy()
}

// SignedAmount reads a single column where negative values are debits.
type SignedAmount struct {
	Column string `json:"column"`
}

// SplitAmount reads separate debit and credit columns.
type SplitAmount struct {
	DebitColumn  string `json:"debitColumn"`
	CreditColumn string `json:"creditColumn"`
}

// IndicatorAmount reads an absolute amount plus a column whose value says
// whether the row is a debit or a credit.
type IndicatorAmount struct {
	AmountColumn    string `json:"amountColumn"`
	TypeColumn      string `json:"typeColumn"`
	DebitIndicator  string `json:"debitIndicator"`
	CreditIndicator string `json:"creditIndicator"`
}

func (s SignedAmount) Columns() []string    { return []string{s.Column} }
func (s SplitAmount) Columns() []string     { return []string{s.DebitColumn, s.CreditColumn} }
func (s IndicatorAmount) Columns() []string { return []string{s.AmountColumn, s.TypeColumn} }

func (SignedAmount) isAmountStrategy()    {}
func (SplitAmount) isAmountStrategy()     {}
func (IndicatorAmount) isAmountStrategy() {}

// DefaultCurrency is used when neither the classifier nor the user names one.
const DefaultCurrency = "NZD"

// ColumnMapping describes how to read one bank's CSV dialect. Once confirmed for
// a header fingerprint it is cached and never edited.
type ColumnMapping struct {
	DateColumn         string
	DateFormat         string
	DescriptionColumns []string
	Amount             AmountStrategy
	BalanceColumn      string
	SkipColumns        []string
	BankName           string
	Currency           string
	Notes              string
}

// RequiredColumns lists every header the mapping reads, in mapping order.
func (m ColumnMapping) RequiredColumns() []string {
	cols := []string{m.DateColumn}
	cols = append(cols, m.DescriptionColumns...)
	if m.Amount != nil {
		cols = append(cols, m.Amount.Columns()...)
	}
	return cols
}

// columnMappingWire is the flat JSON shape exchanged with the structure
// classifier and with API clients.
type columnMappingWire struct {
	DateColumn           string   `json:"dateColumn" validate:"required"`
	DateFormat           string   `json:"dateFormat" validate:"required"`
	DescriptionColumns   []string `json:"descriptionColumns" validate:"required,min=1,dive,required"`
	AmountColumn         *string  `json:"amountColumn"`
	AmountIsSignedNumber bool     `json:"amountIsSignedNumber"`
	DebitColumn          *string  `json:"debitColumn"`
	CreditColumn         *string  `json:"creditColumn"`
	TypeColumn           *string  `json:"typeColumn"`
	DebitIndicator       *string  `json:"debitIndicator"`
	CreditIndicator      *string  `json:"creditIndicator"`
	BalanceColumn        *string  `json:"balanceColumn"`
	SkipColumns          []string `json:"skipColumns"`
	BankName             *string  `json:"bankName"`
	Currency             *string  `json:"currency" validate:"omitempty,len=3"`
	Notes                *string  `json:"notes"`
}

var mappingValidator = validator.New()

// ParseColumnMapping strictly decodes a classifier or client answer. Unknown
// keys, trailing text, missing required fields and answers that do not name
// exactly one amount strategy are all rejected.
func ParseColumnMapping(data []byte) (ColumnMapping, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var w columnMappingWire
	if err := dec.Decode(&w); err != nil {
		return ColumnMapping{}, fmt.Errorf("decode column mapping: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ColumnMapping{}, fmt.Errorf("decode column mapping: unexpected data after the mapping object")
	}
	// An empty currency guess means "unknown", not an invalid code.
	if w.Currency != nil && strings.TrimSpace(*w.Currency) == "" {
		w.Currency = nil
	}
	if err := mappingValidator.Struct(w); err != nil {
		return ColumnMapping{}, fmt.Errorf("invalid column mapping: %w", err)
	}
	return w.toDomain()
}

// UnmarshalJSON decodes a stored mapping. Stored mappings were validated when
// they were first parsed, so unknown keys are tolerated here.
func (m *ColumnMapping) UnmarshalJSON(data []byte) error {
	var w columnMappingWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	parsed, err := w.toDomain()
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalJSON encodes the mapping in the flat wire shape.
func (m ColumnMapping) MarshalJSON() ([]byte, error) {
	w := columnMappingWire{
		DateColumn:         m.DateColumn,
		DateFormat:         m.DateFormat,
		DescriptionColumns: m.DescriptionColumns,
		SkipColumns:        m.SkipColumns,
		BalanceColumn:      optional(m.BalanceColumn),
		BankName:           optional(m.BankName),
		Currency:           optional(m.Currency),
		Notes:              optional(m.Notes),
	}
	if w.SkipColumns == nil {
		w.SkipColumns = []string{}
	}

	switch a := m.Amount.(type) {
	case SignedAmount:
		w.AmountColumn = optional(a.Column)
		w.AmountIsSignedNumber = true
	case SplitAmount:
		w.DebitColumn = optional(a.DebitColumn)
		w.CreditColumn = optional(a.CreditColumn)
	case IndicatorAmount:
		w.AmountColumn = optional(a.AmountColumn)
		w.TypeColumn = optional(a.TypeColumn)
		w.DebitIndicator = optional(a.DebitIndicator)
		w.CreditIndicator = optional(a.CreditIndicator)
	}
	return json.Marshal(w)
}

// toDomain infers the amount strategy. The answer must describe exactly one
// of signed, split or type-indicator.
func (w columnMappingWire) toDomain() (ColumnMapping, error) {
	m := ColumnMapping{
		DateColumn:         strings.TrimSpace(w.DateColumn),
		DateFormat:         strings.TrimSpace(w.DateFormat),
		DescriptionColumns: w.DescriptionColumns,
		SkipColumns:        w.SkipColumns,
		BalanceColumn:      deref(w.BalanceColumn),
		BankName:           deref(w.BankName),
		Currency:           strings.ToUpper(deref(w.Currency)),
		Notes:              deref(w.Notes),
	}
	if m.Currency == "" {
		m.Currency = DefaultCurrency
	}

	var candidates []AmountStrategy
	if w.AmountIsSignedNumber && deref(w.AmountColumn) != "" {
		candidates = append(candidates, SignedAmount{Column: deref(w.AmountColumn)})
	}
	if deref(w.DebitColumn) != "" && deref(w.CreditColumn) != "" {
		candidates = append(candidates, SplitAmount{DebitColumn: deref(w.DebitColumn), CreditColumn: deref(w.CreditColumn)})
	}
	if deref(w.TypeColumn) != "" && deref(w.AmountColumn) != "" && deref(w.DebitIndicator) != "" {
		candidates = append(candidates, IndicatorAmount{
			AmountColumn:    deref(w.AmountColumn),
			TypeColumn:      deref(w.TypeColumn),
			DebitIndicator:  deref(w.DebitIndicator),
			CreditIndicator: deref(w.CreditIndicator),
		})
	}

	switch len(candidates) {
	case 0:
		return ColumnMapping{}, fmt.Errorf("no amount representation can be inferred from mapping")
	case 1:
		m.Amount = candidates[0]
		return m, nil
	default:
		return ColumnMapping{}, fmt.Errorf("mapping describes %d amount representations, expected exactly one", len(candidates))
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
