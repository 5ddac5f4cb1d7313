package gcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"asb.csv", "user_1/up_1/asb.csv"},
		{"../../etc/passwd", "user_1/up_1/passwd"},
		{`C:\Users\me\kiwibank.csv`, "user_1/up_1/kiwibank.csv"},
		{"", "user_1/up_1/statement.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectName("user_1", "up_1", tt.filename))
		})
	}
}

func TestURI(t *testing.T) {
	assert.Equal(t, "gs://statements/user_1/up_1/asb.csv", URI("statements", "user_1/up_1/asb.csv"))
}
