package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "clean document",
			raw:      `{"cmd000": {"sig": ["fsid"]}}`,
			expected: `{"cmd000": {"sig": ["fsid"]}}`,
		},
		{
			name:     "leading log noise",
			raw:      "2026-08-30 10:12:01 loading modules\nready\n" + `{"cmd000": {"sig": ["fsid"]}}`,
			expected: `{"cmd000": {"sig": ["fsid"]}}`,
		},
		{
			name:     "noise on same line",
			raw:      `warning: deprecated flag {"cmd000": {"sig": ["fsid"]}}`,
			expected: `{"cmd000": {"sig": ["fsid"]}}`,
		},
		{
			name:     "trailing newline kept out",
			raw:      `{"a": {}}` + "\n",
			expected: `{"a": {}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JSON(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestJSONNoObject(t *testing.T) {
	_, err := JSON("emitter crashed before writing output\n")
	assert.Error(t, err)
}
