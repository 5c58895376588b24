package domain

// Digit is a single reduced number. Valid digits lie in 1..9; the zero value
// marks an absent or unreduced position.
type Digit int

// MinDigit and MaxDigit bound the valid digit range.
const (
	MinDigit Digit = 1
	MaxDigit Digit = 9
)

// Valid reports whether d lies in 1..9.
func (d Digit) Valid() bool {
	return d >= MinDigit && d <= MaxDigit
}

// Int returns d as a plain int.
func (d Digit) Int() int {
	return int(d)
}

// Reduce collapses n to a single digit by repeatedly summing its decimal
// digits.
//
// Values 1..9 are returned unchanged. Zero is passed through as the invalid
// digit 0 rather than reduced, and negative input also yields 0; derivation
// never produces either, since day and month are at least 1 and every year
// has a non-zero digit.
func Reduce(n int) Digit {
	if n <= 0 {
		return 0
	}

	for n > 9 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}

	return Digit(n)
}
