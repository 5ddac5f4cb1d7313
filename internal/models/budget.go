package models

import "github.com/shopspring/decimal"

// BudgetItem is a row of the budget_items table.
type BudgetItem struct {
	BudgetItemID string          `json:"budgetItemID"`
	OwnerID      string          `json:"ownerID"`
	Section      string          `json:"section"`
	Label        string          `json:"label"`
	Amount       decimal.Decimal `json:"amount"`
	Frequency    string          `json:"frequency"`
	AuditFields
}
