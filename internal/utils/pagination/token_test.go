package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := Cursor{
		Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2024, 3, 20, 14, 30, 45, 123456789, time.UTC),
		ID:        "7f9c2ba4-e88f-4a2b-9d3c-1a2b3c4d5e6f",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, cursor.Date.Equal(decoded.Date))
	assert.True(t, cursor.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, cursor.ID, decoded.ID)
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")

	missingID := base64.RawURLEncoding.EncodeToString([]byte("2024-03-15T00:00:00Z|2024-03-15T00:00:00Z"))
	_, err = DecodeToken(missingID)
	assert.ErrorContains(t, err, "split")

	badDate := base64.RawURLEncoding.EncodeToString([]byte("notadate|2024-03-15T00:00:00Z|id"))
	_, err = DecodeToken(badDate)
	assert.ErrorContains(t, err, "date parse")

	badCreatedAt := base64.RawURLEncoding.EncodeToString([]byte("2024-03-15T00:00:00Z|later|id"))
	_, err = DecodeToken(badCreatedAt)
	assert.ErrorContains(t, err, "created_at parse")
}
