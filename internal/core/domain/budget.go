package domain

import "github.com/shopspring/decimal"

// BudgetSection is one of the fixed, ordered waterfall buckets.
type BudgetSection string

const (
	SectionIncome           BudgetSection = "INCOME"
	SectionFixedCommitments BudgetSection = "FIXED_COMMITMENTS"
	SectionLivingCosts      BudgetSection = "LIVING_COSTS"
	SectionOneOffCosts      BudgetSection = "ONE_OFF_COSTS"
	SectionCommittedExtra   BudgetSection = "COMMITTED_EXTRA"
)

// SectionOrder is the order sections cascade in the waterfall.
var SectionOrder = []BudgetSection{
	SectionIncome,
	SectionFixedCommitments,
	SectionLivingCosts,
	SectionOneOffCosts,
	SectionCommittedExtra,
}

// IsValid reports whether s is a known section.
func (s BudgetSection) IsValid() bool {
	for _, known := range SectionOrder {
		if s == known {
			return true
		}
	}
	return false
}

// Frequency is how often a budget item recurs.
type Frequency string

const (
	FrequencyWeekly      Frequency = "WEEKLY"
	FrequencyFortnightly Frequency = "FORTNIGHTLY"
	FrequencyMonthly     Frequency = "MONTHLY"
	FrequencyQuarterly   Frequency = "QUARTERLY"
	FrequencyAnnually    Frequency = "ANNUALLY"
)

// IsValid reports whether f is a known frequency.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyFortnightly, FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually:
		return true
	}
	return false
}

// BudgetPeriod is the pay period a waterfall is reported in.
type BudgetPeriod string

const (
	PeriodWeekly      BudgetPeriod = "WEEKLY"
	PeriodFortnightly BudgetPeriod = "FORTNIGHTLY"
	PeriodMonthly     BudgetPeriod = "MONTHLY"
)

// IsValid reports whether p is a known period.
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case PeriodWeekly, PeriodFortnightly, PeriodMonthly:
		return true
	}
	return false
}

// BudgetItem is one recurring income or expense line.
type BudgetItem struct {
	BudgetItemID string          `json:"budgetItemID"`
	OwnerID      string          `json:"ownerID"`
	Section      BudgetSection   `json:"section"`
	Label        string          `json:"label"`
	Amount       decimal.Decimal `json:"amount"`
	Frequency    Frequency       `json:"frequency"`
	AuditFields
}

// SectionItem is a budget item with its amount converted to the report period.
type SectionItem struct {
	BudgetItemID     string          `json:"budgetItemID"`
	Label            string          `json:"label"`
	Amount           decimal.Decimal `json:"amount"`
	Frequency        Frequency       `json:"frequency"`
	NormalisedAmount decimal.Decimal `json:"normalisedAmount"`
}

// SectionData holds one section's items and total in the report period.
type SectionData struct {
	Section BudgetSection   `json:"section"`
	Items   []SectionItem   `json:"items"`
	Total   decimal.Decimal `json:"total"`
}

// Waterfall is the cascading budget summary for one period.
type Waterfall struct {
	Period           BudgetPeriod    `json:"period"`
	Sections         []SectionData   `json:"sections"`
	Income           decimal.Decimal `json:"income"`
	FixedCommitments decimal.Decimal `json:"fixedCommitments"`
	LivingCosts      decimal.Decimal `json:"livingCosts"`
	OneOffCosts      decimal.Decimal `json:"oneOffCosts"`
	CommittedExtra   decimal.Decimal `json:"committedExtra"`
	Discretionary    decimal.Decimal `json:"discretionary"` // Never negative
}
