package dto

import (
	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetItemRequest defines the data needed to add a budget item.
type CreateBudgetItemRequest struct {
	Section   string          `json:"section" binding:"required"`
	Label     string          `json:"label" binding:"required,max=100"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency string          `json:"frequency" binding:"required"`
}

// WaterfallParams defines the query parameters of the waterfall endpoint.
type WaterfallParams struct {
	Period string `form:"period,default=FORTNIGHTLY"` // WEEKLY, FORTNIGHTLY or MONTHLY
}

// BudgetItemResponse defines the data returned for a budget item.
type BudgetItemResponse struct {
	BudgetItemID string          `json:"budgetItemID"`
	Section      string          `json:"section"`
	Label        string          `json:"label"`
	Amount       decimal.Decimal `json:"amount"`
	Frequency    string          `json:"frequency"`
}

// ToBudgetItemResponse converts a domain.BudgetItem to BudgetItemResponse DTO.
func ToBudgetItemResponse(item *domain.BudgetItem) BudgetItemResponse {
	return BudgetItemResponse{
		BudgetItemID: item.BudgetItemID,
		Section:      string(item.Section),
		Label:        item.Label,
		Amount:       item.Amount,
		Frequency:    string(item.Frequency),
	}
}

// ToListBudgetItemResponse converts a slice of budget items.
func ToListBudgetItemResponse(items []domain.BudgetItem) []BudgetItemResponse {
	res := make([]BudgetItemResponse, len(items))
	for i := range items {
		res[i] = ToBudgetItemResponse(&items[i])
	}
	return res
}
