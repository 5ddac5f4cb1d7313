package services

import (
	"context"

	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/SscSPs/cashmap/internal/dto"
)

// MappingRuleReaderSvc defines read operations for categorisation rules
type MappingRuleReaderSvc interface {
	// ListRules returns the rules visible to the owner.
	ListRules(ctx context.Context, ownerID string, organisationID *string) ([]domain.MappingRule, error)
}

// MappingRuleWriterSvc defines write operations for categorisation rules
type MappingRuleWriterSvc interface {
	// CreateRule adds a USER rule for the owner or an ADVISER rule for the organisation.
	CreateRule(ctx context.Context, req dto.CreateRuleRequest, ownerID string, organisationID *string) (*domain.MappingRule, error)

	// SeedSystemRules installs the built-in categories and SYSTEM rules.
	SeedSystemRules(ctx context.Context) (int, error)
}

// MappingRuleSvcFacade combines all rule-related service interfaces
type MappingRuleSvcFacade interface {
	MappingRuleReaderSvc
	MappingRuleWriterSvc
}
