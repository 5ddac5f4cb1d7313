package dto

import (
	"github.com/SscSPs/cashmap/internal/core/domain"
)

// ImportRequest carries a confirmed mapping and the raw statement to import.
type ImportRequest struct {
	OwnerID        string
	OrganisationID *string
	Filename       string
	Content        []byte
	Mapping        domain.ColumnMapping
}

// DetectResponse is returned by the format detection endpoint.
type DetectResponse struct {
	Mapping   domain.ColumnMapping `json:"mapping"`
	Preview   []domain.PreviewRow  `json:"preview"`
	BankName  string               `json:"bankName"`
	RowCount  int                  `json:"rowCount"`
	FromCache bool                 `json:"fromCache"`
}

// ToDetectResponse converts a domain.DetectionResult to DetectResponse DTO.
func ToDetectResponse(r *domain.DetectionResult) DetectResponse {
	return DetectResponse{
		Mapping:   r.Mapping,
		Preview:   r.Preview,
		BankName:  r.BankName,
		RowCount:  r.RowCount,
		FromCache: r.FromCache,
	}
}

// DeleteUploadResponse reports how many transactions went with the upload.
type DeleteUploadResponse struct {
	UploadID            string `json:"uploadID"`
	DeletedTransactions int    `json:"deletedTransactions"`
}
