package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/core/domain"
	portsrepo "github.com/SscSPs/cashmap/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/dto"
	"github.com/SscSPs/cashmap/internal/utils/budgeting"
	"github.com/google/uuid"
)

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates a new budget service
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: repo}
}

func (s *budgetService) CreateBudgetItem(ctx context.Context, req dto.CreateBudgetItemRequest, ownerID string) (*domain.BudgetItem, error) {
	section := domain.BudgetSection(strings.ToUpper(strings.TrimSpace(req.Section)))
	if !section.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown budget section %q", req.Section))
	}
	frequency := domain.Frequency(strings.ToUpper(strings.TrimSpace(req.Frequency)))
	if !frequency.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown frequency %q", req.Frequency))
	}
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return nil, apperrors.NewValidationError("label is required")
	}
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationError("amount must not be negative")
	}

	now := time.Now()
	item := domain.BudgetItem{
		BudgetItemID: uuid.NewString(),
		OwnerID:      ownerID,
		Section:      section,
		Label:        label,
		Amount:       req.Amount,
		Frequency:    frequency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.budgetRepo.SaveBudgetItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save budget item", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save budget item: %w", err)
	}

	s.LogInfo(ctx, "Budget item created", slog.String("budget_item_id", item.BudgetItemID))
	return &item, nil
}

func (s *budgetService) ListBudgetItems(ctx context.Context, ownerID string) ([]domain.BudgetItem, error) {
	items, err := s.budgetRepo.ListBudgetItems(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget items", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list budget items: %w", err)
	}
	if items == nil {
		return []domain.BudgetItem{}, nil
	}
	return items, nil
}

func (s *budgetService) GetWaterfall(ctx context.Context, ownerID string, period domain.BudgetPeriod) (*domain.Waterfall, error) {
	if !period.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown budget period %q", period))
	}

	items, err := s.ListBudgetItems(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	waterfall := budgeting.Aggregate(items, period)
	return &waterfall, nil
}
