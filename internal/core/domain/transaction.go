package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a statement line is money out (Debit) or money in (Credit).
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// ParsedTransaction is one normalised statement row. It is never mutated after
// creation; it is either discarded or persisted as a Transaction.
type ParsedTransaction struct {
	Date           time.Time       `json:"date"`
	RawDescription string          `json:"rawDescription"`
	Amount         decimal.Decimal `json:"amount"` // Always non-negative
	Type           TransactionType `json:"type"`
	DedupHash      string          `json:"dedupHash"`
}

// Transaction is a ParsedTransaction that has been persisted for an owner.
type Transaction struct {
	TransactionID        string                `json:"transactionID"` // Primary Key (UUID)
	OwnerID              string                `json:"ownerID"`
	CsvUploadID          string                `json:"csvUploadID"` // FK -> CsvUpload.uploadID
	Date                 time.Time             `json:"date"`
	RawDescription       string                `json:"rawDescription"`
	CleanedDescription   *string               `json:"cleanedDescription,omitempty"` // Nullable display label
	Amount               decimal.Decimal       `json:"amount"`                       // Non-negative
	Type                 TransactionType       `json:"type"`
	DedupHash            string                `json:"dedupHash"` // Unique per owner
	CategoryID           *string               `json:"categoryID,omitempty"`
	CategoryName         *string               `json:"categoryName,omitempty"`
	CategorisationMethod *CategorisationMethod `json:"categorisationMethod,omitempty"`
	CreatedAt            time.Time             `json:"createdAt"`
}

// NewTransaction builds the persisted form of p. A nil result leaves the
// transaction uncategorised.
func NewTransaction(p ParsedTransaction, ownerID, uploadID string, result *CategorisationResult) Transaction {
	txn := Transaction{
		OwnerID:        ownerID,
		CsvUploadID:    uploadID,
		Date:           p.Date,
		RawDescription: p.RawDescription,
		Amount:         p.Amount,
		Type:           p.Type,
		DedupHash:      p.DedupHash,
	}
	if result != nil {
		categoryID, categoryName, method := result.CategoryID, result.CategoryName, result.Method
		txn.CategoryID = &categoryID
		txn.CategoryName = &categoryName
		txn.CategorisationMethod = &method
		if result.DisplayName != "" {
			displayName := result.DisplayName
			txn.CleanedDescription = &displayName
		}
	}
	return txn
}

// IsCategorised reports whether a category has been assigned.
func (t Transaction) IsCategorised() bool {
	return t.CategoryID != nil
}

// PreviewRow is a display-ready rendering of a ParsedTransaction, shown to the
// user before they confirm a detected mapping.
type PreviewRow struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      string          `json:"amount"`
	Type        TransactionType `json:"type"`
}

// DetectionResult is returned when a statement's format has been resolved.
type DetectionResult struct {
	Mapping   ColumnMapping `json:"mapping"`
	Preview   []PreviewRow  `json:"preview"`
	BankName  string        `json:"bankName"`
	RowCount  int           `json:"rowCount"`
	FromCache bool          `json:"fromCache"`
}

// CsvUpload is the batch record every imported transaction points back to.
type CsvUpload struct {
	UploadID         string    `json:"uploadID"`
	OwnerID          string    `json:"ownerID"`
	Filename         string    `json:"filename"`
	BankFormat       string    `json:"bankFormat"`
	TransactionCount int       `json:"transactionCount"`
	ArchiveURI       *string   `json:"archiveURI,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ImportSummary reports what happened to the rows of one uploaded statement.
type ImportSummary struct {
	UploadID    string `json:"uploadID"`
	Parsed      int    `json:"parsed"`
	Imported    int    `json:"imported"`
	Duplicates  int    `json:"duplicates"`
	Categorised int    `json:"categorised"`
	Skipped     int    `json:"skipped"`
}
