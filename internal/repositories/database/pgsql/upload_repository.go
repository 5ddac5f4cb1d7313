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

type PgxUploadRepository struct {
	BaseRepository
}

// newPgxUploadRepository creates a new repository for CSV upload batches.
func newPgxUploadRepository(pool *pgxpool.Pool) portsrepo.UploadRepositoryFacade {
	return &PgxUploadRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UploadRepositoryFacade = (*PgxUploadRepository)(nil)

// SaveUpload inserts a new upload batch.
func (r *PgxUploadRepository) SaveUpload(ctx context.Context, upload domain.CsvUpload) error {
	m := mapping.ToModelCsvUpload(upload)
	query := `
		INSERT INTO csv_uploads (upload_id, owner_id, filename, bank_format, transaction_count, archive_uri, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UploadID,
		m.OwnerID,
		m.Filename,
		m.BankFormat,
		m.TransactionCount,
		m.ArchiveURI,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save upload %s: %w", m.UploadID, err)
	}
	return nil
}

// FindUploadByID retrieves an upload batch by ID.
func (r *PgxUploadRepository) FindUploadByID(ctx context.Context, uploadID string) (*domain.CsvUpload, error) {
	query := `
		SELECT upload_id, owner_id, filename, bank_format, transaction_count, archive_uri, created_at
		FROM csv_uploads
		WHERE upload_id = $1;
	`
	var m models.CsvUpload
	err := r.Pool.QueryRow(ctx, query, uploadID).Scan(
		&m.UploadID,
		&m.OwnerID,
		&m.Filename,
		&m.BankFormat,
		&m.TransactionCount,
		&m.ArchiveURI,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("upload not found")
		}
		return nil, fmt.Errorf("failed to find upload %s: %w", uploadID, err)
	}

	upload := mapping.ToDomainCsvUpload(m)
	return &upload, nil
}

// UpdateTransactionCount records the number of transactions the batch imported.
func (r *PgxUploadRepository) UpdateTransactionCount(ctx context.Context, uploadID string, count int) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE csv_uploads SET transaction_count = $2 WHERE upload_id = $1;`, uploadID, count)
	if err != nil {
		return fmt.Errorf("failed to update upload %s: %w", uploadID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("upload not found")
	}
	return nil
}

// DeleteUpload removes the batch and its transactions in one database transaction.
func (r *PgxUploadRepository) DeleteUpload(ctx context.Context, ownerID, uploadID string) (int, error) {
	var deleted int
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE csv_upload_id = $1 AND owner_id = $2;`, uploadID, ownerID)
		if err != nil {
			return fmt.Errorf("failed to delete transactions of upload %s: %w", uploadID, err)
		}
		deleted = int(tag.RowsAffected())

		tag, err = tx.Exec(ctx, `DELETE FROM csv_uploads WHERE upload_id = $1 AND owner_id = $2;`, uploadID, ownerID)
		if err != nil {
			return fmt.Errorf("failed to delete upload %s: %w", uploadID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("upload not found")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
