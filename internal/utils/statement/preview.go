package statement

import "github.com/SscSPs/cashmap/internal/core/domain"

// Preview renders parsed transactions for display before an import is
// confirmed. Dates use day/month/year and amounts carry the currency code.
func Preview(txns []domain.ParsedTransaction, currency string) []domain.PreviewRow {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	rows := make([]domain.PreviewRow, len(txns))
	for i, t := range txns {
		rows[i] = domain.PreviewRow{
			Date:        t.Date.Format("02/01/2006"),
			Description: t.RawDescription,
			Amount:      currency + " " + t.Amount.StringFixed(2),
			Type:        t.Type,
		}
	}
	return rows
}
