package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    int
		expected Digit
	}{
		{name: "single digit is unchanged", input: 7, expected: 7},
		{name: "nine is unchanged", input: 9, expected: 9},
		{name: "ten reduces to one", input: 10, expected: 1},
		{name: "two passes for 19", input: 19, expected: 1},
		{name: "year 1990", input: 1990, expected: 1},
		{name: "multiple of nine reduces to nine", input: 99, expected: 9},
		{name: "large multiple of nine", input: 123456789, expected: 9},
		{name: "year 2024", input: 2024, expected: 8},
		{name: "zero passes through", input: 0, expected: 0},
		{name: "negative yields zero", input: -12, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Reduce(tc.input))
		})
	}
}

func TestReduceProperties(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 20000; n++ {
		d := Reduce(n)
		if !d.Valid() {
			t.Fatalf("Reduce(%d) = %d, want a digit in 1..9", n, d)
		}

		if Reduce(d.Int()) != d {
			t.Fatalf("Reduce is not idempotent for %d", n)
		}

		want := Digit(n % 9)
		if want == 0 {
			want = 9
		}
		if d != want {
			t.Fatalf("Reduce(%d) = %d, want %d (congruent mod 9)", n, d, want)
		}
	}

	for n := 1; n <= 9; n++ {
		assert.Equal(t, Digit(n), Reduce(n), "digits 1..9 must be returned unchanged")
	}
}

func TestDigitValid(t *testing.T) {
	t.Parallel()

	assert.False(t, Digit(0).Valid())
	assert.True(t, Digit(1).Valid())
	assert.True(t, Digit(9).Valid())
	assert.False(t, Digit(10).Valid())
}
