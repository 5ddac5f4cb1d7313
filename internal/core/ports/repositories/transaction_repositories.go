package repositories

import (
	"context"

	"github.com/SscSPs/cashmap/internal/core/domain"
)

// TransactionReader defines read operations for imported transactions
type TransactionReader interface {
	// ExistsByHash reports whether the owner already has a transaction with this dedup hash.
	ExistsByHash(ctx context.Context, ownerID, dedupHash string) (bool, error)

	// ListTransactions returns one page of the owner's transactions, newest first,
	// and the token for the next page (nil when there are no more).
	ListTransactions(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for imported transactions
type TransactionWriter interface {
	// InsertTransaction stores txn and fills in its ID and creation time. It
	// returns inserted=false when (owner, dedup hash) already exists.
	InsertTransaction(ctx context.Context, txn *domain.Transaction) (inserted bool, err error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
