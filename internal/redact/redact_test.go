package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/destiny-matrix/internal/redact"
)

func TestRedactString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "center number 8 classified",
			expected: "center number 8 classified",
		},
		{
			name:     "ISO birth date",
			input:    "invalid birth date 1990-02-30: day out of range",
			expected: "invalid birth date [REDACTED_DATE]: day out of range",
		},
		{
			name:     "timestamp with offset",
			input:    "parsing 1990-05-15T23:30:00+03:00 failed",
			expected: "parsing [REDACTED_DATE] failed",
		},
		{
			name:     "UTC timestamp with fraction",
			input:    "got 2000-01-01T00:00:00.123Z",
			expected: "got [REDACTED_DATE]",
		},
		{
			name:     "dotted date",
			input:    "cannot parse 15.05.1990 as date",
			expected: "cannot parse [REDACTED_DATE] as date",
		},
		{
			name:     "slashed date",
			input:    "cannot parse 5/15/1990",
			expected: "cannot parse [REDACTED_DATE]",
		},
		{
			name:     "file path",
			input:    "failed to read config file: open /etc/destiny/config.yaml: permission denied",
			expected: "failed to read config file: open [REDACTED_PATH]: permission denied",
		},
		{
			name:     "Windows path",
			input:    "Access denied to C:\\Program Files\\Destiny\\config.yaml",
			expected: "Access denied to [REDACTED_PATH]",
		},
		{
			name:     "stack trace",
			input:    "panic: runtime error\ngoroutine 1 [running]:\nmain.main()\n\t/app/main.go:42",
			expected: "[STACK_TRACE_REDACTED]",
		},
		{
			name:     "email address",
			input:    "reading for admin@example.com failed",
			expected: "reading for [REDACTED_EMAIL] failed",
		},
		{
			name:     "multiple sensitive data types",
			input:    "user@company.com sent 1999-12-31, see /var/log/destiny/errors.log",
			expected: "[REDACTED_EMAIL] sent [REDACTED_DATE], see [REDACTED_PATH]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", redact.Error(nil))

	base := errors.New("invalid birth date")
	err := fmt.Errorf("%w: 1990-13-01", base)
	assert.Equal(t, "invalid birth date: [REDACTED_DATE]", redact.Error(err))
}
