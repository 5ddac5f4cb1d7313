package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/core/domain"
	portsrepo "github.com/SscSPs/cashmap/internal/core/ports/repositories"
	"github.com/SscSPs/cashmap/internal/models"
	"github.com/SscSPs/cashmap/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBankFormatRepository struct {
	BaseRepository
}

// newPgxBankFormatRepository creates a new repository for the column mapping cache.
func newPgxBankFormatRepository(pool *pgxpool.Pool) portsrepo.BankFormatRepositoryFacade {
	return &PgxBankFormatRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BankFormatRepositoryFacade = (*PgxBankFormatRepository)(nil)

// FindByFingerprint looks up a cached mapping.
func (r *PgxBankFormatRepository) FindByFingerprint(ctx context.Context, fingerprint string) (*domain.BankFormat, error) {
	query := `
		SELECT bank_format_id, header_fingerprint, mapping, usage_count, last_used_at, created_at
		FROM bank_formats
		WHERE header_fingerprint = $1;
	`
	var m models.BankFormat
	err := r.Pool.QueryRow(ctx, query, fingerprint).Scan(
		&m.BankFormatID,
		&m.HeaderFingerprint,
		&m.Mapping,
		&m.UsageCount,
		&m.LastUsedAt,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank format %s: %w", fingerprint, err)
	}

	bf, err := mapping.ToDomainBankFormat(m)
	if err != nil {
		return nil, err
	}
	return &bf, nil
}

// TouchUsage bumps the usage counters of a cache entry.
func (r *PgxBankFormatRepository) TouchUsage(ctx context.Context, fingerprint string) error {
	query := `UPDATE bank_formats SET usage_count = usage_count + 1, last_used_at = NOW() WHERE header_fingerprint = $1;`
	if _, err := r.Pool.Exec(ctx, query, fingerprint); err != nil {
		return fmt.Errorf("failed to touch bank format %s: %w", fingerprint, err)
	}
	return nil
}

// UpsertBankFormat caches a mapping. When a concurrent detection cached the
// same fingerprint first, the existing mapping is kept and its usage bumped.
func (r *PgxBankFormatRepository) UpsertBankFormat(ctx context.Context, fingerprint string, columnMapping domain.ColumnMapping) error {
	encoded, err := json.Marshal(columnMapping)
	if err != nil {
		return fmt.Errorf("failed to encode mapping: %w", err)
	}

	query := `
		INSERT INTO bank_formats (bank_format_id, header_fingerprint, mapping, usage_count, last_used_at, created_at)
		VALUES ($1, $2, $3, 1, NOW(), NOW())
		ON CONFLICT (header_fingerprint) DO UPDATE SET
			usage_count = bank_formats.usage_count + 1,
			last_used_at = NOW();
	`
	if _, err := r.Pool.Exec(ctx, query, uuid.NewString(), fingerprint, encoded); err != nil {
		return fmt.Errorf("failed to upsert bank format %s: %w", fingerprint, err)
	}
	return nil
}
