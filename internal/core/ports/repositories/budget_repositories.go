package repositories

import (
	"context"

	"github.com/SscSPs/cashmap/internal/core/domain"
)

// BudgetReader defines read operations for budget items
type BudgetReader interface {
	// ListBudgetItems returns all of the owner's budget items in creation order.
	ListBudgetItems(ctx context.Context, ownerID string) ([]domain.BudgetItem, error)
}

// BudgetWriter defines write operations for budget items
type BudgetWriter interface {
	// SaveBudgetItem persists a new budget item.
	SaveBudgetItem(ctx context.Context, item domain.BudgetItem) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
