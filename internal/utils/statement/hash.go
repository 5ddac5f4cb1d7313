package statement

import (
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/blake2b"
)

// digest returns the hex BLAKE2b-128 sum of s.
func digest(s string) string {
	h, err := blake2b.New(16, nil)
	if err != nil {
		// Only returned for invalid sizes or oversized keys.
		panic(err)
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// DedupKey is the plain text a dedup hash is computed from:
// YYYY-MM-DD_<amount>_<description>.
func DedupKey(date time.Time, amount decimal.Decimal, description string) string {
	return date.Format("2006-01-02") + "_" + amount.String() + "_" + description
}

// DedupHash derives the per-owner uniqueness key of a transaction. Two rows
// with the same date, amount and description always collide.
func DedupHash(date time.Time, amount decimal.Decimal, description string) string {
	return digest(DedupKey(date, amount, description))
}

// HeaderFingerprint identifies a CSV dialect independently of header order,
// casing and surrounding whitespace.
func HeaderFingerprint(headers []string) string {
	normalised := make([]string, len(headers))
	for i, h := range headers {
		normalised[i] = strings.ToLower(strings.TrimSpace(h))
	}
	sort.Strings(normalised)
	return digest(strings.Join(normalised, "|"))
}
