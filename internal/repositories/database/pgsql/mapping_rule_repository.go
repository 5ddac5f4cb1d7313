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

const ruleColumns = `
	r.rule_id, r.lookup_text, r.display_name, r.category_id, c.name, r.priority, r.source,
	r.owner_id, r.organisation_id, r.created_at, r.created_by
`

type PgxMappingRuleRepository struct {
	BaseRepository
}

// newPgxMappingRuleRepository creates a new repository for categorisation rules.
func newPgxMappingRuleRepository(pool *pgxpool.Pool) portsrepo.MappingRuleRepositoryFacade {
	return &PgxMappingRuleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MappingRuleRepositoryFacade = (*PgxMappingRuleRepository)(nil)

func scanRule(row pgx.Row) (models.MappingRule, error) {
	var m models.MappingRule
	err := row.Scan(
		&m.RuleID,
		&m.LookupText,
		&m.DisplayName,
		&m.CategoryID,
		&m.CategoryName,
		&m.Priority,
		&m.Source,
		&m.OwnerID,
		&m.OrganisationID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

// ListVisibleRules returns global rules plus the owner's and organisation's own.
func (r *PgxMappingRuleRepository) ListVisibleRules(ctx context.Context, ownerID string, organisationID *string) ([]domain.MappingRule, error) {
	query := `
		SELECT ` + ruleColumns + `
		FROM mapping_rules r
		JOIN categories c ON c.category_id = r.category_id
		WHERE r.source IN ('SYSTEM', 'AI_LEARNED')
		   OR (r.source = 'USER' AND r.owner_id = $1)
		   OR (r.source = 'ADVISER' AND $2::text IS NOT NULL AND r.organisation_id = $2)
		ORDER BY r.created_at, r.rule_id;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, organisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query mapping rules: %w", err)
	}
	defer rows.Close()

	modelRules, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MappingRule, error) {
		return scanRule(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan mapping rules: %w", err)
	}
	return mapping.ToDomainMappingRuleSlice(modelRules), nil
}

// FindLearnedRule finds an AI_LEARNED rule by lookup text, ignoring case.
func (r *PgxMappingRuleRepository) FindLearnedRule(ctx context.Context, lookupText string) (*domain.MappingRule, error) {
	query := `
		SELECT ` + ruleColumns + `
		FROM mapping_rules r
		JOIN categories c ON c.category_id = r.category_id
		WHERE r.source = 'AI_LEARNED' AND UPPER(r.lookup_text) = UPPER($1)
		ORDER BY r.created_at
		LIMIT 1;
	`
	m, err := scanRule(r.Pool.QueryRow(ctx, query, lookupText))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find learned rule: %w", err)
	}
	rule := mapping.ToDomainMappingRule(m)
	return &rule, nil
}

// SaveRule inserts a rule. The partial unique indexes on SYSTEM and
// AI_LEARNED lookup texts surface as ErrDuplicate.
func (r *PgxMappingRuleRepository) SaveRule(ctx context.Context, rule domain.MappingRule) error {
	m := mapping.ToModelMappingRule(rule)
	query := `
		INSERT INTO mapping_rules (
			rule_id, lookup_text, display_name, category_id, priority, source,
			owner_id, organisation_id, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RuleID,
		m.LookupText,
		m.DisplayName,
		m.CategoryID,
		m.Priority,
		m.Source,
		m.OwnerID,
		m.OrganisationID,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: rule %q already exists", apperrors.ErrDuplicate, m.LookupText)
		}
		return fmt.Errorf("failed to save mapping rule: %w", err)
	}
	return nil
}
