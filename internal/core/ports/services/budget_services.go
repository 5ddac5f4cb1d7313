package services

import (
	"context"

	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/SscSPs/cashmap/internal/dto"
)

// BudgetReaderSvc defines read operations for budgets
type BudgetReaderSvc interface {
	// ListBudgetItems returns the owner's budget items.
	ListBudgetItems(ctx context.Context, ownerID string) ([]domain.BudgetItem, error)

	// GetWaterfall summarises the owner's budget in the given period.
	GetWaterfall(ctx context.Context, ownerID string, period domain.BudgetPeriod) (*domain.Waterfall, error)
}

// BudgetWriterSvc defines write operations for budgets
type BudgetWriterSvc interface {
	// CreateBudgetItem validates and stores a new budget item.
	CreateBudgetItem(ctx context.Context, req dto.CreateBudgetItemRequest, ownerID string) (*domain.BudgetItem, error)
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
