package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/core/domain"
	portsrepo "github.com/SscSPs/cashmap/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/dto"
	"github.com/google/uuid"
)

const systemAuthor = "system"

// mappingRuleService implements the MappingRuleSvcFacade interface
type mappingRuleService struct {
	BaseService
	ruleRepo     portsrepo.MappingRuleRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewMappingRuleService creates a new mapping rule service
func NewMappingRuleService(ruleRepo portsrepo.MappingRuleRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.MappingRuleSvcFacade {
	return &mappingRuleService{
		ruleRepo:     ruleRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *mappingRuleService) ListRules(ctx context.Context, ownerID string, organisationID *string) ([]domain.MappingRule, error) {
	rules, err := s.ruleRepo.ListVisibleRules(ctx, ownerID, organisationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list mapping rules", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list mapping rules: %w", err)
	}
	if rules == nil {
		return []domain.MappingRule{}, nil
	}
	return rules, nil
}

func (s *mappingRuleService) CreateRule(ctx context.Context, req dto.CreateRuleRequest, ownerID string, organisationID *string) (*domain.MappingRule, error) {
	category, err := s.categoryRepo.FindCategoryByName(ctx, req.CategoryName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown category %q", req.CategoryName))
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	rule := domain.MappingRule{
		RuleID:       uuid.NewString(),
		LookupText:   strings.ToUpper(strings.TrimSpace(req.LookupText)),
		DisplayName:  strings.TrimSpace(req.DisplayName),
		CategoryID:   category.CategoryID,
		CategoryName: category.Name,
		Priority:     domain.RulePriority(req.Priority),
		Source:       domain.RuleSource(req.Source),
		CreatedAt:    time.Now(),
		CreatedBy:    ownerID,
	}
	switch rule.Source {
	case domain.SourceUser:
		rule.OwnerID = &ownerID
	case domain.SourceAdviser:
		rule.OrganisationID = organisationID
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("rules cannot be created with source %q", req.Source))
	}
	if err := rule.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.ruleRepo.SaveRule(ctx, rule); err != nil {
		s.LogError(ctx, err, "Failed to save mapping rule", slog.String("lookup_text", rule.LookupText))
		return nil, fmt.Errorf("failed to save mapping rule: %w", err)
	}

	s.LogInfo(ctx, "Mapping rule created",
		slog.String("rule_id", rule.RuleID),
		slog.String("source", string(rule.Source)),
		slog.Int("priority", int(rule.Priority)))
	return &rule, nil
}

// SeedSystemRules is idempotent: categories are ensured by name and rules
// already present are skipped. It returns the number of rules inserted.
func (s *mappingRuleService) SeedSystemRules(ctx context.Context) (int, error) {
	byName := make(map[string]domain.Category, len(systemCategories))
	for _, c := range systemCategories {
		c.CategoryID = uuid.NewString()
		c.IsSystem = true
		stored, err := s.categoryRepo.EnsureCategory(ctx, c)
		if err != nil {
			s.LogError(ctx, err, "Failed to seed category", slog.String("category", c.Name))
			return 0, fmt.Errorf("failed to seed category %s: %w", c.Name, err)
		}
		byName[strings.ToUpper(stored.Name)] = *stored
	}

	inserted := 0
	now := time.Now()
	for i, seed := range systemRules {
		category, ok := byName[strings.ToUpper(seed.category)]
		if !ok {
			return inserted, fmt.Errorf("seed rule %s names unknown category %s", seed.lookup, seed.category)
		}
		rule := domain.MappingRule{
			RuleID:       uuid.NewString(),
			LookupText:   seed.lookup,
			DisplayName:  seed.display,
			CategoryID:   category.CategoryID,
			CategoryName: category.Name,
			Priority:     seed.priority,
			Source:       domain.SourceSystem,
			CreatedAt:    now.Add(time.Duration(i) * time.Microsecond),
			CreatedBy:    systemAuthor,
		}
		if err := s.ruleRepo.SaveRule(ctx, rule); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			s.LogError(ctx, err, "Failed to seed mapping rule", slog.String("lookup_text", seed.lookup))
			return inserted, fmt.Errorf("failed to seed rule %s: %w", seed.lookup, err)
		}
		inserted++
	}

	s.LogInfo(ctx, "System rules seeded", slog.Int("categories", len(byName)), slog.Int("rules_inserted", inserted))
	return inserted, nil
}
