package budgeting

import (
	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	two       = decimal.NewFromInt(2)
	four      = decimal.NewFromInt(4)
	twelve    = decimal.NewFromInt(12)
	twentySix = decimal.NewFromInt(26)
)

// ToFortnightly converts an amount recurring at frequency f into its
// fortnightly equivalent. Unknown frequencies are treated as fortnightly.
func ToFortnightly(amount decimal.Decimal, f domain.Frequency) decimal.Decimal {
	switch f {
	case domain.FrequencyWeekly:
		return amount.Mul(two)
	case domain.FrequencyMonthly:
		return amount.Mul(twelve).Div(twentySix)
	case domain.FrequencyQuarterly:
		return amount.Mul(four).Div(twentySix)
	case domain.FrequencyAnnually:
		return amount.Div(twentySix)
	default:
		return amount
	}
}

// FromFortnightly converts a fortnightly amount into the given period.
// Unknown periods are treated as fortnightly.
func FromFortnightly(fortnightly decimal.Decimal, p domain.BudgetPeriod) decimal.Decimal {
	switch p {
	case domain.PeriodWeekly:
		return fortnightly.Div(two)
	case domain.PeriodMonthly:
		return fortnightly.Mul(twentySix).Div(twelve)
	default:
		return fortnightly
	}
}

// NormaliseAmount converts amount from frequency f to period p. Every
// conversion goes through the fortnightly unit.
func NormaliseAmount(amount decimal.Decimal, f domain.Frequency, p domain.BudgetPeriod) decimal.Decimal {
	return FromFortnightly(ToFortnightly(amount, f), p)
}
