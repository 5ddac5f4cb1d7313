package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/core/domain"
	portsrepo "github.com/SscSPs/cashmap/internal/core/ports/repositories"
	"github.com/SscSPs/cashmap/internal/models"
	"github.com/SscSPs/cashmap/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for the category vocabulary.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// ListSystemCategories retrieves the built-in categories.
func (r *PgxCategoryRepository) ListSystemCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT category_id, name, group_name, is_system
		FROM categories
		WHERE is_system
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	modelCategories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		var c models.Category
		err := row.Scan(&c.CategoryID, &c.Name, &c.GroupName, &c.IsSystem)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}
	return mapping.ToDomainCategorySlice(modelCategories), nil
}

// FindCategoryByName retrieves a category by name, ignoring case.
func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, group_name, is_system
		FROM categories
		WHERE LOWER(name) = LOWER(TRIM($1));
	`
	var c models.Category
	err := r.Pool.QueryRow(ctx, query, name).Scan(&c.CategoryID, &c.Name, &c.GroupName, &c.IsSystem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", name, err)
	}
	category := mapping.ToDomainCategory(c)
	return &category, nil
}

// EnsureCategory inserts the category when its name is new and returns the stored row.
func (r *PgxCategoryRepository) EnsureCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (category_id, name, group_name, is_system)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ((LOWER(name))) DO NOTHING;
	`
	if _, err := r.Pool.Exec(ctx, query, m.CategoryID, m.Name, m.GroupName, m.IsSystem); err != nil {
		return nil, fmt.Errorf("failed to ensure category %s: %w", m.Name, err)
	}
	return r.FindCategoryByName(ctx, m.Name)
}
