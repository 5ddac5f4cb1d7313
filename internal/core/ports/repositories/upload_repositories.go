package repositories

import (
	"context"

	"github.com/SscSPs/cashmap/internal/core/domain"
)

// UploadReader defines read operations for CSV upload batches
type UploadReader interface {
	// FindUploadByID retrieves an upload batch. Returns apperrors.ErrNotFound if missing.
	FindUploadByID(ctx context.Context, uploadID string) (*domain.CsvUpload, error)
}

// UploadWriter defines write operations for CSV upload batches
type UploadWriter interface {
	// SaveUpload persists a new upload batch.
	SaveUpload(ctx context.Context, upload domain.CsvUpload) error

	// UpdateTransactionCount records how many transactions the batch imported.
	UpdateTransactionCount(ctx context.Context, uploadID string, count int) error

	// DeleteUpload removes the owner's upload batch together with its
	// transactions. Returns apperrors.ErrNotFound when nothing matched.
	DeleteUpload(ctx context.Context, ownerID, uploadID string) (deletedTransactions int, err error)
}

// UploadRepositoryFacade combines all upload-related repository interfaces
type UploadRepositoryFacade interface {
	UploadReader
	UploadWriter
}
