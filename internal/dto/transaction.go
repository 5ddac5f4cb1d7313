package dto

import (
	"time"

	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams defines the query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=50" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for an imported transaction.
type TransactionResponse struct {
	TransactionID        string          `json:"transactionID"`
	Date                 time.Time       `json:"date"`
	RawDescription       string          `json:"rawDescription"`
	CleanedDescription   *string         `json:"cleanedDescription,omitempty"`
	Amount               decimal.Decimal `json:"amount"`
	Type                 string          `json:"type"` // DEBIT or CREDIT
	CategoryID           *string         `json:"categoryID,omitempty"`
	CategoryName         *string         `json:"categoryName,omitempty"`
	CategorisationMethod *string         `json:"categorisationMethod,omitempty"`
	CsvUploadID          string          `json:"csvUploadID"`
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:      txn.TransactionID,
		Date:               txn.Date,
		RawDescription:     txn.RawDescription,
		CleanedDescription: txn.CleanedDescription,
		Amount:             txn.Amount,
		Type:               string(txn.Type),
		CategoryID:         txn.CategoryID,
		CategoryName:       txn.CategoryName,
		CsvUploadID:        txn.CsvUploadID,
	}
	if txn.CategorisationMethod != nil {
		method := string(*txn.CategorisationMethod)
		resp.CategorisationMethod = &method
	}
	return resp
}

// ToListTransactionsResponse converts a page of transactions.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses, NextToken: nextToken}
}
