package mapping

import (
	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/SscSPs/cashmap/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToModelBudgetItem converts a domain BudgetItem to a model BudgetItem
func ToModelBudgetItem(d domain.BudgetItem) models.BudgetItem {
	return models.BudgetItem{
		BudgetItemID: d.BudgetItemID,
		OwnerID:      d.OwnerID,
		Section:      string(d.Section),
		Label:        d.Label,
		Amount:       d.Amount,
		Frequency:    string(d.Frequency),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudgetItem converts a model BudgetItem to a domain BudgetItem
func ToDomainBudgetItem(m models.BudgetItem) domain.BudgetItem {
	return domain.BudgetItem{
		BudgetItemID: m.BudgetItemID,
		OwnerID:      m.OwnerID,
		Section:      domain.BudgetSection(m.Section),
		Label:        m.Label,
		Amount:       m.Amount,
		Frequency:    domain.Frequency(m.Frequency),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgetItemSlice converts a slice of model BudgetItems
func ToDomainBudgetItemSlice(ms []models.BudgetItem) []domain.BudgetItem {
	ds := make([]domain.BudgetItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudgetItem(m)
	}
	return ds
}
