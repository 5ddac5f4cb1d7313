package services

import (
	"context"

	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/SscSPs/cashmap/internal/dto"
)

// FormatDetectionSvc resolves the column mapping of a statement dialect.
type FormatDetectionSvc interface {
	// Detect returns the cached mapping for this header set, or asks the
	// structure classifier and caches its answer.
	Detect(ctx context.Context, headers []string, sampleRows [][]string) (*domain.DetectionResult, error)
}

// ImportReaderSvc defines read operations for imported statements
type ImportReaderSvc interface {
	// ListTransactions returns one page of the owner's transactions.
	ListTransactions(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// ImportWriterSvc defines the statement import pipeline
type ImportWriterSvc interface {
	// DetectFormat parses an uploaded statement and resolves its mapping.
	DetectFormat(ctx context.Context, ownerID string, content []byte) (*domain.DetectionResult, error)

	// ImportStatement normalises, deduplicates, categorises and stores a statement.
	ImportStatement(ctx context.Context, req dto.ImportRequest) (*domain.ImportSummary, error)

	// DeleteUpload removes an upload batch and its transactions.
	DeleteUpload(ctx context.Context, ownerID, uploadID string) (int, error)
}

// ImportSvcFacade combines all import-related service interfaces
type ImportSvcFacade interface {
	ImportReaderSvc
	ImportWriterSvc
}

// CategorisationSvc resolves descriptions to categories.
type CategorisationSvc interface {
	// LoadRuleSet fetches the rules visible to an owner.
	LoadRuleSet(ctx context.Context, ownerID string, organisationID *string) (*domain.RuleSet, error)

	// CategoriseWithRules resolves one description against a preloaded rule
	// set, falling back to the classifier. A nil result means uncategorised.
	CategoriseWithRules(ctx context.Context, rules *domain.RuleSet, description string) *domain.CategorisationResult

	// Categorise loads the visible rules and resolves one description.
	Categorise(ctx context.Context, description, ownerID string, organisationID *string) (*domain.CategorisationResult, error)

	// CategoriseBatch resolves several descriptions in order.
	CategoriseBatch(ctx context.Context, descriptions []string, ownerID string, organisationID *string) ([]*domain.CategorisationResult, error)
}
