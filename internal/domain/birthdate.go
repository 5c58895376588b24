package domain

import (
	"fmt"
	"strings"
	"time"
)

// BirthDate is a civil calendar date with no time-of-day or zone attached.
// It marshals to and from its YYYY-MM-DD text form.
type BirthDate struct {
	Year  int
	Month time.Month
	Day   int
}

// birthDateLayouts are tried in order. Layouts carrying a time or an offset
// are accepted, but only the calendar fields as written are kept.
var birthDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	time.RFC3339Nano,
	"02.01.2006",
}

// ParseBirthDate parses an ISO-8601-like date string into a BirthDate.
//
// The day, month and year are taken exactly as written in the input. A
// timestamp such as "1990-05-15T23:30:00-05:00" yields 15 May 1990: the value
// is never shifted into the local zone or UTC, so the same written date always
// produces the same matrix.
//
// Returns an error wrapping ErrInvalidDate when the string does not describe a
// valid Gregorian date with a four-digit year.
func ParseBirthDate(s string) (BirthDate, error) {
	input := strings.TrimSpace(s)
	if input == "" {
		return BirthDate{}, fmt.Errorf("%w: empty input", ErrInvalidDate)
	}

	for _, layout := range birthDateLayouts {
		t, err := time.Parse(layout, input)
		if err != nil {
			continue
		}

		// time.Parse keeps the written wall clock and offset, so Date()
		// returns the calendar fields exactly as they appear in the input.
		year, month, day := t.Date()
		bd := BirthDate{Year: year, Month: month, Day: day}
		if err := bd.Validate(); err != nil {
			return BirthDate{}, err
		}
		return bd, nil
	}

	return BirthDate{}, fmt.Errorf("%w: %q is not a calendar date", ErrInvalidDate, input)
}

// NewBirthDate builds a BirthDate from its parts, rejecting dates that do not
// exist in the Gregorian calendar (for example 31 April or 29 February 2023).
func NewBirthDate(year int, month time.Month, day int) (BirthDate, error) {
	bd := BirthDate{Year: year, Month: month, Day: day}
	if err := bd.Validate(); err != nil {
		return BirthDate{}, err
	}
	return bd, nil
}

// Validate checks that the date has a four-digit year and exists in the
// calendar.
func (b BirthDate) Validate() error {
	if b.Year < 1 || b.Year > 9999 {
		return fmt.Errorf("%w: year %d must have four digits", ErrInvalidDate, b.Year)
	}
	if b.Month < time.January || b.Month > time.December {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidDate, int(b.Month))
	}

	// time.Date normalises overflow (31 April becomes 1 May), so a round
	// trip that changes the fields means the date does not exist.
	t := time.Date(b.Year, b.Month, b.Day, 0, 0, 0, 0, time.UTC)
	if t.Year() != b.Year || t.Month() != b.Month || t.Day() != b.Day {
		return fmt.Errorf("%w: %04d-%02d-%02d does not exist", ErrInvalidDate, b.Year, int(b.Month), b.Day)
	}

	return nil
}

// String formats the date as YYYY-MM-DD.
func (b BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", b.Year, int(b.Month), b.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (b BirthDate) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseBirthDate.
func (b *BirthDate) UnmarshalText(text []byte) error {
	parsed, err := ParseBirthDate(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
