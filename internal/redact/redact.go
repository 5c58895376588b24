// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. Birth dates are personal
// data, so any date or timestamp is masked along with e-mail addresses, file
// paths and stack traces.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder    = "[REDACTED]"
	RedactedDatePlaceholder = "[REDACTED_DATE]"
	RedactedPathPlaceholder = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order: stack traces first because they contain paths.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		placeholder: "[STACK_TRACE_REDACTED]",
	},
	{
		// ISO dates with an optional time-of-day and offset.
		pattern: regexp.MustCompile(
			`\b\d{4}-\d{1,2}-\d{1,2}(?:[T ]\d{2}:\d{2}(?::\d{2}(?:\.\d+)?)?(?:Z|[+-]\d{2}:?\d{2})?)?`,
		),
		placeholder: RedactedDatePlaceholder,
	},
	{
		// Day-first dotted and slashed dates.
		pattern:     regexp.MustCompile(`\b\d{1,2}[./]\d{1,2}[./]\d{4}\b`),
		placeholder: RedactedDatePlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		placeholder: "[REDACTED_EMAIL]",
	},
	{
		pattern:     regexp.MustCompile(`(/[\w.-]+){2,}`),
		placeholder: RedactedPathPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`),
		placeholder: RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
