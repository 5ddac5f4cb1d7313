package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/core/domain"
	portsrepo "github.com/SscSPs/cashmap/internal/core/ports/repositories"
	"github.com/SscSPs/cashmap/internal/models"
	"github.com/SscSPs/cashmap/internal/utils/mapping"
	"github.com/SscSPs/cashmap/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for imported transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// ExistsByHash reports whether the owner already holds a transaction with this hash.
func (r *PgxTransactionRepository) ExistsByHash(ctx context.Context, ownerID, dedupHash string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE owner_id = $1 AND dedup_hash = $2);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, ownerID, dedupHash).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check transaction hash: %w", err)
	}
	return exists, nil
}

// InsertTransaction inserts txn unless (owner_id, dedup_hash) already exists.
// The unique constraint settles races between concurrent imports.
func (r *PgxTransactionRepository) InsertTransaction(ctx context.Context, txn *domain.Transaction) (bool, error) {
	if txn.TransactionID == "" {
		txn.TransactionID = uuid.NewString()
	}
	m := mapping.ToModelTransaction(*txn)

	query := `
		INSERT INTO transactions (
			transaction_id, owner_id, csv_upload_id, txn_date, raw_description, cleaned_description,
			amount, txn_type, dedup_hash, category_id, categorisation_method
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (owner_id, dedup_hash) DO NOTHING
		RETURNING created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.CsvUploadID,
		m.TxnDate,
		m.RawDescription,
		m.CleanedDescription,
		m.Amount,
		m.TxnType,
		m.DedupHash,
		m.CategoryID,
		m.CategorisationMethod,
	).Scan(&txn.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return true, nil
}

// ListTransactions retrieves a page of the owner's transactions using token-based pagination.
// Rows are ordered by statement date, then creation time, then ID, all descending.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	fetchLimit := limit + 1

	baseQuery := `
		SELECT t.transaction_id, t.owner_id, t.csv_upload_id, t.txn_date, t.raw_description, t.cleaned_description,
		       t.amount, t.txn_type, t.dedup_hash, t.category_id, c.name, t.categorisation_method, t.created_at
		FROM transactions t
		LEFT JOIN categories c ON c.category_id = t.category_id
		WHERE t.owner_id = $1
	`
	orderByClause := `ORDER BY t.txn_date DESC, t.created_at DESC, t.transaction_id DESC`
	args := []interface{}{ownerID}

	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, decodeErr))
		}
		query += ` AND (t.txn_date, t.created_at, t.transaction_id) < ($2, $3, $4)`
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var t models.Transaction
		err := row.Scan(
			&t.TransactionID,
			&t.OwnerID,
			&t.CsvUploadID,
			&t.TxnDate,
			&t.RawDescription,
			&t.CleanedDescription,
			&t.Amount,
			&t.TxnType,
			&t.DedupHash,
			&t.CategoryID,
			&t.CategoryName,
			&t.CategorisationMethod,
			&t.CreatedAt,
		)
		return t, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		// The token points to the last row included in this page.
		last := results[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.TxnDate, CreatedAt: last.CreatedAt, ID: last.TransactionID})
		nextTokenVal = &token
		results = results[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}
