package repositories

import (
	"context"

	"github.com/SscSPs/cashmap/internal/core/domain"
)

// BankFormatReader defines read operations for the column mapping cache
type BankFormatReader interface {
	// FindByFingerprint returns the cached format for a header fingerprint, or
	// apperrors.ErrNotFound on a cache miss.
	FindByFingerprint(ctx context.Context, fingerprint string) (*domain.BankFormat, error)
}

// BankFormatWriter defines write operations for the column mapping cache
type BankFormatWriter interface {
	// TouchUsage increments the usage count and sets the last-used time.
	TouchUsage(ctx context.Context, fingerprint string) error

	// UpsertBankFormat inserts a new entry, or increments usage when another
	// writer created it first.
	UpsertBankFormat(ctx context.Context, fingerprint string, mapping domain.ColumnMapping) error
}

// BankFormatRepositoryFacade combines all bank-format cache repository interfaces
type BankFormatRepositoryFacade interface {
	BankFormatReader
	BankFormatWriter
}
