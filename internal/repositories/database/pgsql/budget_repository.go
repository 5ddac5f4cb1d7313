package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cashmap/internal/core/domain"
	portsrepo "github.com/SscSPs/cashmap/internal/core/ports/repositories"
	"github.com/SscSPs/cashmap/internal/models"
	"github.com/SscSPs/cashmap/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget items.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

// SaveBudgetItem inserts a new budget item.
func (r *PgxBudgetRepository) SaveBudgetItem(ctx context.Context, item domain.BudgetItem) error {
	m := mapping.ToModelBudgetItem(item)
	query := `
		INSERT INTO budget_items (
			budget_item_id, owner_id, section, label, amount, frequency,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetItemID,
		m.OwnerID,
		m.Section,
		m.Label,
		m.Amount,
		m.Frequency,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save budget item %s: %w", m.BudgetItemID, err)
	}
	return nil
}

// ListBudgetItems retrieves the owner's budget items in creation order.
func (r *PgxBudgetRepository) ListBudgetItems(ctx context.Context, ownerID string) ([]domain.BudgetItem, error) {
	query := `
		SELECT budget_item_id, owner_id, section, label, amount, frequency,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM budget_items
		WHERE owner_id = $1
		ORDER BY created_at, budget_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget items: %w", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BudgetItem, error) {
		var m models.BudgetItem
		err := row.Scan(
			&m.BudgetItemID,
			&m.OwnerID,
			&m.Section,
			&m.Label,
			&m.Amount,
			&m.Frequency,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan budget items: %w", err)
	}
	return mapping.ToDomainBudgetItemSlice(modelItems), nil
}
