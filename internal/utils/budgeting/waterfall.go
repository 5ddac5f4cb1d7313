package budgeting

import (
	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildSections groups items into the fixed waterfall sections, converting
// every amount to period p. All five sections are always present, in order.
func BuildSections(items []domain.BudgetItem, p domain.BudgetPeriod) []domain.SectionData {
	sections := make([]domain.SectionData, 0, len(domain.SectionOrder))
	for _, section := range domain.SectionOrder {
		data := domain.SectionData{
			Section: section,
			Items:   []domain.SectionItem{},
			Total:   decimal.Zero,
		}
		for _, item := range items {
			if item.Section != section {
				continue
			}
			normalised := NormaliseAmount(item.Amount, item.Frequency, p)
			data.Items = append(data.Items, domain.SectionItem{
				BudgetItemID:     item.BudgetItemID,
				Label:            item.Label,
				Amount:           item.Amount,
				Frequency:        item.Frequency,
				NormalisedAmount: normalised,
			})
			data.Total = data.Total.Add(normalised)
		}
		sections = append(sections, data)
	}
	return sections
}

// CalculateWaterfall cascades section totals from income down to the
// discretionary remainder. Overspend shows in the section totals; the
// discretionary figure never goes below zero.
func CalculateWaterfall(sections []domain.SectionData) domain.Waterfall {
	total := func(s domain.BudgetSection) decimal.Decimal {
		for _, data := range sections {
			if data.Section == s {
				return data.Total
			}
		}
		return decimal.Zero
	}

	w := domain.Waterfall{
		Sections:         sections,
		Income:           total(domain.SectionIncome),
		FixedCommitments: total(domain.SectionFixedCommitments),
		LivingCosts:      total(domain.SectionLivingCosts),
		OneOffCosts:      total(domain.SectionOneOffCosts),
		CommittedExtra:   total(domain.SectionCommittedExtra),
	}
	remainder := w.Income.
		Sub(w.FixedCommitments).
		Sub(w.LivingCosts).
		Sub(w.OneOffCosts).
		Sub(w.CommittedExtra)
	w.Discretionary = decimal.Max(decimal.Zero, remainder)
	return w
}

// Aggregate builds the sections for period p and calculates the waterfall.
func Aggregate(items []domain.BudgetItem, p domain.BudgetPeriod) domain.Waterfall {
	w := CalculateWaterfall(BuildSections(items, p))
	w.Period = p
	return w
}
