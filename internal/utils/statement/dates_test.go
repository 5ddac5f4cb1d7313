package statement_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cashmap/internal/utils/statement"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		format string
		want   time.Time
		wantOK bool
	}{
		{"iso", "2024-03-15", "yyyy-MM-dd", date(2024, 3, 15), true},
		{"iso with time", "2024-03-15T09:30:00Z", "yyyy-MM-dd", date(2024, 3, 15), true},
		{"iso unpadded", "2024-3-5", "yyyy-MM-dd", date(2024, 3, 5), true},
		{"iso with space time", "2024-03-15 10:32", "yyyy-MM-dd", date(2024, 3, 15), true},
		{"iso impossible day", "2024-02-30", "yyyy-MM-dd", time.Time{}, false},
		{"year first slash", "2024/3/5", "yyyy/MM/dd", date(2024, 3, 5), true},
		{"day first slash", "15/03/2024", "dd/MM/yyyy", date(2024, 3, 15), true},
		{"day first dash", "15-03-2024", "dd-MM-yyyy", date(2024, 3, 15), true},
		{"day first dot", "15.03.2024", "dd.MM.yyyy", date(2024, 3, 15), true},
		{"day without leading zero", "5/03/2024", "d/MM/yyyy", date(2024, 3, 5), true},
		{"month first", "03/15/2024", "MM/dd/yyyy", date(2024, 3, 15), true},
		{"two digit year", "15/03/24", "dd/MM/yy", date(2024, 3, 15), true},
		{"trailing time", "15/03/2024 10:32", "dd/MM/yyyy", date(2024, 3, 15), true},
		{"surrounding whitespace", "  01/02/2024 ", "dd/MM/yyyy", date(2024, 2, 1), true},
		{"month name falls back", "05 Jan 2024", "dd MMM yyyy", date(2024, 1, 5), true},
		{"unknown token falls back", "2024-01-05", "unknown", date(2024, 1, 5), true},
		{"blank", "", "dd/MM/yyyy", time.Time{}, false},
		{"month thirteen", "01/13/2024", "dd/MM/yyyy", time.Time{}, false},
		{"day thirty two", "32/01/2024", "dd/MM/yyyy", time.Time{}, false},
		{"february thirtieth", "30/02/2024", "dd/MM/yyyy", time.Time{}, false},
		{"leap day", "29/02/2024", "dd/MM/yyyy", date(2024, 2, 29), true},
		{"garbage", "yesterday", "dd/MM/yyyy", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statement.ResolveDate(tt.raw, tt.format)
			assert.Equal(t, tt.wantOK, got.OK)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got.Date), "got %s", got.Date)
			}
		})
	}
}
