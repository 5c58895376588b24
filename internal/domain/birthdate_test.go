package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBirthDate(t *testing.T) {
	t.Parallel()

	want := BirthDate{Year: 1990, Month: time.May, Day: 15}

	testCases := []struct {
		name  string
		input string
	}{
		{name: "plain ISO date", input: "1990-05-15"},
		{name: "surrounding whitespace", input: "  1990-05-15\n"},
		{name: "local timestamp", input: "1990-05-15T08:30:00"},
		{name: "timestamp without seconds", input: "1990-05-15T08:30"},
		{name: "UTC timestamp", input: "1990-05-15T00:00:00Z"},
		{name: "late evening west of UTC", input: "1990-05-15T23:30:00-05:00"},
		{name: "early morning east of UTC", input: "1990-05-15T00:10:00+14:00"},
		{name: "fractional seconds", input: "1990-05-15T12:00:00.123456Z"},
		{name: "dotted display format", input: "15.05.1990"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseBirthDate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseBirthDateInvalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "blank", input: "   "},
		{name: "not a date", input: "yesterday"},
		{name: "month out of range", input: "1990-13-01"},
		{name: "day out of range", input: "1990-04-31"},
		{name: "february 29 in a common year", input: "2023-02-29"},
		{name: "year zero", input: "0000-01-01"},
		{name: "two digit year", input: "90-05-15"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseBirthDate(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestNewBirthDate(t *testing.T) {
	t.Parallel()

	bd, err := NewBirthDate(2024, time.February, 29)
	require.NoError(t, err, "2024 is a leap year")
	assert.Equal(t, "2024-02-29", bd.String())

	_, err = NewBirthDate(2023, time.February, 29)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = NewBirthDate(10000, time.January, 1)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = NewBirthDate(2000, time.Month(0), 1)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestBirthDateText(t *testing.T) {
	t.Parallel()

	bd := BirthDate{Year: 812, Month: time.March, Day: 7}
	data, err := json.Marshal(bd)
	require.NoError(t, err)
	assert.JSONEq(t, `"0812-03-07"`, string(data))

	var decoded BirthDate
	require.NoError(t, json.Unmarshal([]byte(`"1990-05-15T10:00:00+03:00"`), &decoded))
	assert.Equal(t, BirthDate{Year: 1990, Month: time.May, Day: 15}, decoded)

	err = json.Unmarshal([]byte(`"1990-02-31"`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
