package mapping

import (
	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/SscSPs/cashmap/internal/models"
)

// ToModelMappingRule converts a domain MappingRule to a model MappingRule
func ToModelMappingRule(d domain.MappingRule) models.MappingRule {
	return models.MappingRule{
		RuleID:         d.RuleID,
		LookupText:     d.LookupText,
		DisplayName:    d.DisplayName,
		CategoryID:     d.CategoryID,
		CategoryName:   d.CategoryName,
		Priority:       int(d.Priority),
		Source:         string(d.Source),
		OwnerID:        d.OwnerID,
		OrganisationID: d.OrganisationID,
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
	}
}

// ToDomainMappingRule converts a model MappingRule to a domain MappingRule
func ToDomainMappingRule(m models.MappingRule) domain.MappingRule {
	return domain.MappingRule{
		RuleID:         m.RuleID,
		LookupText:     m.LookupText,
		DisplayName:    m.DisplayName,
		CategoryID:     m.CategoryID,
		CategoryName:   m.CategoryName,
		Priority:       domain.RulePriority(m.Priority),
		Source:         domain.RuleSource(m.Source),
		OwnerID:        m.OwnerID,
		OrganisationID: m.OrganisationID,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
}

// ToDomainMappingRuleSlice converts a slice of model MappingRules
func ToDomainMappingRuleSlice(ms []models.MappingRule) []domain.MappingRule {
	ds := make([]domain.MappingRule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMappingRule(m)
	}
	return ds
}

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID: d.CategoryID,
		Name:       d.Name,
		GroupName:  string(d.Group),
		IsSystem:   d.IsSystem,
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Group:      domain.CategoryGroup(m.GroupName),
		IsSystem:   m.IsSystem,
	}
}

// ToDomainCategorySlice converts a slice of model Categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
