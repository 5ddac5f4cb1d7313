package domain

import "time"

// BankFormat is a cached column mapping keyed by header fingerprint. Entries
// never expire; the usage counters exist for observability only.
type BankFormat struct {
	BankFormatID      string        `json:"bankFormatID"`
	HeaderFingerprint string        `json:"headerFingerprint"`
	Mapping           ColumnMapping `json:"mapping"`
	UsageCount        int           `json:"usageCount"`
	LastUsedAt        time.Time     `json:"lastUsedAt"`
	CreatedAt         time.Time     `json:"createdAt"`
}
