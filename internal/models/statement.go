package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. Category name is joined in
// on read.
type Transaction struct {
	TransactionID        string          `json:"transactionID"`
	OwnerID              string          `json:"ownerID"`
	CsvUploadID          string          `json:"csvUploadID"`
	TxnDate              time.Time       `json:"txnDate"` // DATE column
	RawDescription       string          `json:"rawDescription"`
	CleanedDescription   *string         `json:"cleanedDescription"`
	Amount               decimal.Decimal `json:"amount"`
	TxnType              string          `json:"txnType"`
	DedupHash            string          `json:"dedupHash"`
	CategoryID           *string         `json:"categoryID"`
	CategoryName         *string         `json:"categoryName"`
	CategorisationMethod *string         `json:"categorisationMethod"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// CsvUpload is a row of the csv_uploads table.
type CsvUpload struct {
	UploadID         string    `json:"uploadID"`
	OwnerID          string    `json:"ownerID"`
	Filename         string    `json:"filename"`
	BankFormat       string    `json:"bankFormat"`
	TransactionCount int       `json:"transactionCount"`
	ArchiveURI       *string   `json:"archiveURI"`
	CreatedAt        time.Time `json:"createdAt"`
}

// BankFormat is a row of the bank_formats table. The mapping is stored as
// JSONB in its flat wire form.
type BankFormat struct {
	BankFormatID      string          `json:"bankFormatID"`
	HeaderFingerprint string          `json:"headerFingerprint"`
	Mapping           json.RawMessage `json:"mapping"`
	UsageCount        int             `json:"usageCount"`
	LastUsedAt        time.Time       `json:"lastUsedAt"`
	CreatedAt         time.Time       `json:"createdAt"`
}
