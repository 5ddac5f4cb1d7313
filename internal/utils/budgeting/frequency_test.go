package budgeting_test

import (
	"testing"

	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/SscSPs/cashmap/internal/utils/budgeting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var tolerance = decimal.RequireFromString("0.000001")

func assertClose(t *testing.T, want, got decimal.Decimal) {
	t.Helper()
	assert.True(t, want.Sub(got).Abs().LessThanOrEqual(tolerance), "want %s, got %s", want, got)
}

func TestNormaliseAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		from   domain.Frequency
		to     domain.BudgetPeriod
		want   string
	}{
		{"weekly to fortnightly", "100", domain.FrequencyWeekly, domain.PeriodFortnightly, "200"},
		{"weekly to monthly", "100", domain.FrequencyWeekly, domain.PeriodMonthly, "433.333333"},
		{"monthly to fortnightly", "2600", domain.FrequencyMonthly, domain.PeriodFortnightly, "1200"},
		{"monthly to monthly", "1234.56", domain.FrequencyMonthly, domain.PeriodMonthly, "1234.56"},
		{"quarterly to weekly", "260", domain.FrequencyQuarterly, domain.PeriodWeekly, "20"},
		{"annually to fortnightly", "2600", domain.FrequencyAnnually, domain.PeriodFortnightly, "100"},
		{"annually to monthly", "1200", domain.FrequencyAnnually, domain.PeriodMonthly, "100"},
		{"fortnightly to weekly", "500", domain.FrequencyFortnightly, domain.PeriodWeekly, "250"},
		{"unknown frequency is fortnightly", "50", domain.Frequency("DAILY"), domain.PeriodFortnightly, "50"},
		{"unknown period is fortnightly", "50", domain.FrequencyWeekly, domain.BudgetPeriod("YEARLY"), "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := budgeting.NormaliseAmount(decimal.RequireFromString(tt.amount), tt.from, tt.to)
			assertClose(t, decimal.RequireFromString(tt.want), got)
		})
	}
}

func TestNormaliseAmount_RoundTrip(t *testing.T) {
	pairs := []struct {
		frequency domain.Frequency
		period    domain.BudgetPeriod
	}{
		{domain.FrequencyWeekly, domain.PeriodWeekly},
		{domain.FrequencyFortnightly, domain.PeriodFortnightly},
		{domain.FrequencyMonthly, domain.PeriodMonthly},
	}
	targets := []domain.BudgetPeriod{domain.PeriodWeekly, domain.PeriodFortnightly, domain.PeriodMonthly}
	amounts := []string{"0.01", "19.99", "100", "2500", "123456.78"}

	for _, pair := range pairs {
		for _, target := range targets {
			for _, a := range amounts {
				amount := decimal.RequireFromString(a)
				converted := budgeting.NormaliseAmount(amount, pair.frequency, target)
				back := budgeting.NormaliseAmount(converted, domain.Frequency(target), pair.period)
				assertClose(t, amount, back)
			}
		}
	}
}

func TestToFortnightlyInvertsFromFortnightly(t *testing.T) {
	amount := decimal.RequireFromString("987.65")
	for _, f := range []domain.Frequency{domain.FrequencyWeekly, domain.FrequencyFortnightly, domain.FrequencyMonthly} {
		fortnightly := budgeting.ToFortnightly(amount, f)
		assertClose(t, amount, budgeting.FromFortnightly(fortnightly, domain.BudgetPeriod(f)))
	}
}
