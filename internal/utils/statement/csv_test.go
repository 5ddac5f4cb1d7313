package statement_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/utils/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := "\ufeffDate,Details,Amount\n15/03/2024,COUNTDOWN,-45.00\n\n,,\n16/03/2024,SALARY,2500,extra\n"

	got, err := statement.ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Details", "Amount"}, got.Headers)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, []string{"16/03/2024", "SALARY", "2500", "extra"}, got.Rows[1])
	assert.Len(t, got.Sample(5), 2)
	assert.Len(t, got.Sample(1), 1)
}

func TestReadCSV_Empty(t *testing.T) {
	for _, input := range []string{"", "Date,Details,Amount\n", "\n\n"} {
		_, err := statement.ReadCSV(strings.NewReader(input))
		assert.ErrorIs(t, err, apperrors.ErrEmptyFile)
	}
}

func TestReadCSVLimited(t *testing.T) {
	content := []byte("Date,Details,Amount\n1/1/2024,A,1\n2/1/2024,B,2\n3/1/2024,C,3\n")

	_, err := statement.ReadCSVLimited(content, 10, 0)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)

	_, err = statement.ReadCSVLimited(content, 0, 2)
	assert.ErrorIs(t, err, apperrors.ErrTooManyRows)

	got, err := statement.ReadCSVLimited(content, 1024, 3)
	require.NoError(t, err)
	assert.Len(t, got.Rows, 3)
}
