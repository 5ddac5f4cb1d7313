package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/SscSPs/cashmap/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:      d.TransactionID,
		OwnerID:            d.OwnerID,
		CsvUploadID:        d.CsvUploadID,
		TxnDate:            d.Date,
		RawDescription:     d.RawDescription,
		CleanedDescription: d.CleanedDescription,
		Amount:             d.Amount,
		TxnType:            string(d.Type),
		DedupHash:          d.DedupHash,
		CategoryID:         d.CategoryID,
		CategoryName:       d.CategoryName,
		CreatedAt:          d.CreatedAt,
	}
	if d.CategorisationMethod != nil {
		method := string(*d.CategorisationMethod)
		m.CategorisationMethod = &method
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:      m.TransactionID,
		OwnerID:            m.OwnerID,
		CsvUploadID:        m.CsvUploadID,
		Date:               m.TxnDate,
		RawDescription:     m.RawDescription,
		CleanedDescription: m.CleanedDescription,
		Amount:             m.Amount,
		Type:               domain.TransactionType(m.TxnType),
		DedupHash:          m.DedupHash,
		CategoryID:         m.CategoryID,
		CategoryName:       m.CategoryName,
		CreatedAt:          m.CreatedAt,
	}
	if m.CategorisationMethod != nil {
		method := domain.CategorisationMethod(*m.CategorisationMethod)
		d.CategorisationMethod = &method
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelCsvUpload converts a domain CsvUpload to a model CsvUpload
func ToModelCsvUpload(d domain.CsvUpload) models.CsvUpload {
	return models.CsvUpload{
		UploadID:         d.UploadID,
		OwnerID:          d.OwnerID,
		Filename:         d.Filename,
		BankFormat:       d.BankFormat,
		TransactionCount: d.TransactionCount,
		ArchiveURI:       d.ArchiveURI,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainCsvUpload converts a model CsvUpload to a domain CsvUpload
func ToDomainCsvUpload(m models.CsvUpload) domain.CsvUpload {
	return domain.CsvUpload{
		UploadID:         m.UploadID,
		OwnerID:          m.OwnerID,
		Filename:         m.Filename,
		BankFormat:       m.BankFormat,
		TransactionCount: m.TransactionCount,
		ArchiveURI:       m.ArchiveURI,
		CreatedAt:        m.CreatedAt,
	}
}

// ToDomainBankFormat decodes the stored mapping of a cache entry.
func ToDomainBankFormat(m models.BankFormat) (domain.BankFormat, error) {
	var mapping domain.ColumnMapping
	if err := json.Unmarshal(m.Mapping, &mapping); err != nil {
		return domain.BankFormat{}, fmt.Errorf("decode cached mapping %s: %w", m.HeaderFingerprint, err)
	}
	return domain.BankFormat{
		BankFormatID:      m.BankFormatID,
		HeaderFingerprint: m.HeaderFingerprint,
		Mapping:           mapping,
		UsageCount:        m.UsageCount,
		LastUsedAt:        m.LastUsedAt,
		CreatedAt:         m.CreatedAt,
	}, nil
}
