package repositories

import (
	"context"

	"github.com/SscSPs/cashmap/internal/core/domain"
)

// CategoryReader defines read operations for the category vocabulary
type CategoryReader interface {
	// ListSystemCategories returns the built-in categories, ordered by name.
	ListSystemCategories(ctx context.Context) ([]domain.Category, error)

	// FindCategoryByName returns the category with this name ignoring case, or
	// apperrors.ErrNotFound.
	FindCategoryByName(ctx context.Context, name string) (*domain.Category, error)
}

// CategoryWriter defines write operations for the category vocabulary
type CategoryWriter interface {
	// EnsureCategory inserts the category if no category with its name exists,
	// and returns the stored version either way.
	EnsureCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
