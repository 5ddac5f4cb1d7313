package statement

import (
	"regexp"
	"strings"

	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/shopspring/decimal"
)

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// AmountScale is the number of decimal places amounts are stored with.
const AmountScale = 2

// ParseAmount strips currency symbols, thousands separators and whitespace,
// then parses what remains rounded to AmountScale places, so the stored value
// and the dedup hash agree. ok is false for empty or malformed values.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	clean := nonNumeric.ReplaceAllString(raw, "")
	if clean == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, false
	}
	return d.Round(AmountScale), true
}

// resolveAmount applies the mapping's amount strategy to one row. The returned
// amount is always non-negative; ok is false when the row has no usable amount.
func resolveAmount(strategy domain.AmountStrategy, cell func(string) string) (decimal.Decimal, domain.TransactionType, bool) {
	switch s := strategy.(type) {
	case domain.SignedAmount:
		amount, ok := ParseAmount(cell(s.Column))
		if !ok || amount.IsZero() {
			return decimal.Zero, "", false
		}
		if amount.IsNegative() {
			return amount.Abs(), domain.Debit, true
		}
		return amount, domain.Credit, true

	case domain.SplitAmount:
		// An empty or unparseable side counts as zero.
		debit, _ := ParseAmount(cell(s.DebitColumn))
		credit, _ := ParseAmount(cell(s.CreditColumn))
		debit, credit = debit.Abs(), credit.Abs()
		if !debit.IsZero() {
			return debit, domain.Debit, true
		}
		if !credit.IsZero() {
			return credit, domain.Credit, true
		}
		return decimal.Zero, "", false

	case domain.IndicatorAmount:
		amount, ok := ParseAmount(cell(s.AmountColumn))
		if !ok || amount.IsZero() {
			return decimal.Zero, "", false
		}
		indicator := strings.ToUpper(strings.TrimSpace(cell(s.TypeColumn)))
		if indicator == strings.ToUpper(strings.TrimSpace(s.DebitIndicator)) {
			return amount.Abs(), domain.Debit, true
		}
		return amount.Abs(), domain.Credit, true
	}
	return decimal.Zero, "", false
}
