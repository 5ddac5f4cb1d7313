package repositories

import (
	"context"

	"github.com/SscSPs/cashmap/internal/core/domain"
)

// MappingRuleReader defines read operations for categorisation rules
type MappingRuleReader interface {
	// ListVisibleRules returns the owner's USER rules, the organisation's
	// ADVISER rules (when organisationID is non-nil), and all SYSTEM and
	// AI_LEARNED rules, each with its category name. Rules come back in
	// insertion order.
	ListVisibleRules(ctx context.Context, ownerID string, organisationID *string) ([]domain.MappingRule, error)

	// FindLearnedRule returns the AI_LEARNED rule whose lookup text equals
	// lookupText ignoring case, or apperrors.ErrNotFound.
	FindLearnedRule(ctx context.Context, lookupText string) (*domain.MappingRule, error)
}

// MappingRuleWriter defines write operations for categorisation rules
type MappingRuleWriter interface {
	// SaveRule persists a new rule. Rules are never updated in place. It
	// returns apperrors.ErrDuplicate when an equivalent SYSTEM or AI_LEARNED
	// rule already exists.
	SaveRule(ctx context.Context, rule domain.MappingRule) error
}

// MappingRuleRepositoryFacade combines all rule-related repository interfaces
type MappingRuleRepositoryFacade interface {
	MappingRuleReader
	MappingRuleWriter
}
