package classifiers

import (
	"context"

	"github.com/SscSPs/cashmap/internal/core/domain"
)

// StructureClassifier infers the column layout of an unknown statement.
// Implementations return the model's raw JSON answer; the caller decodes
// and validates it.
type StructureClassifier interface {
	InferStructure(ctx context.Context, headers []string, sampleRows [][]string) ([]byte, error)
}

// CategoryClassifier picks one of the given categories for a description.
// The raw answer must decode as CategoryAnswer.
type CategoryClassifier interface {
	ClassifyCategory(ctx context.Context, description string, categories []domain.Category) ([]byte, error)
}

// CategoryAnswer is the expected shape of a CategoryClassifier answer.
type CategoryAnswer struct {
	Category    string `json:"category" validate:"required"`
	DisplayName string `json:"displayName"`
}
