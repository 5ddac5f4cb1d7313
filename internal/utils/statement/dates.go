package statement

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateResult is the outcome of resolving a statement date. OK is false when
// the value could not be resolved and the row must be skipped.
type DateResult struct {
	Date time.Time
	OK   bool
}

var dateSeparators = regexp.MustCompile(`[/\-.]`)

// genericDateLayouts are tried when the value does not fit the format token.
var genericDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"20060102",
	"02 Jan 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"2-Jan-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
	"Mon, 02 Jan 2006",
}

// ResolveDate parses raw using the classifier's format token. Supported tokens
// are ISO (yyyy-MM-dd), day first (dd..., d/...), month first (MM...) and
// year first (yyyy/...). Two digit years are read as 20yy. Calendar values
// that do not exist, such as 30/02, are rejected.
func ResolveDate(raw, formatToken string) DateResult {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return DateResult{}
	}

	token := strings.ToLower(strings.TrimSpace(formatToken))
	parts := dateSeparators.Split(clean, -1)
	if len(parts) != 3 {
		return parseGeneric(clean)
	}

	var day, month, year string
	switch {
	case strings.HasPrefix(token, "d"):
		day, month, year = parts[0], parts[1], parts[2]
	case strings.HasPrefix(token, "m"):
		month, day, year = parts[0], parts[1], parts[2]
	case strings.HasPrefix(token, "y"):
		year, month, day = parts[0], parts[1], cutTime(parts[2])
	default:
		return parseGeneric(clean)
	}

	if d, ok := buildDate(year, month, day); ok {
		return DateResult{Date: d, OK: true}
	}
	return parseGeneric(clean)
}

func buildDate(year, month, day string) (time.Time, bool) {
	// Drop a trailing time component such as "2024 10:32".
	if i := strings.IndexByte(year, ' '); i >= 0 {
		year = year[:i]
	}

	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return time.Time{}, false
	}
	if len(strings.TrimSpace(year)) == 2 {
		y += 2000
	}
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil || d < 1 || d > daysIn(time.Month(m), y) {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), true
}

// cutTime drops a time component such as "15T09:30:00Z" or "15 10:32".
func cutTime(s string) string {
	if i := strings.IndexAny(s, " T"); i >= 0 {
		return s[:i]
	}
	return s
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func parseGeneric(clean string) DateResult {
	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return DateResult{Date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), OK: true}
		}
	}
	return DateResult{}
}
