package domain

import (
	"encoding/json"
	"fmt"
)

// Matrix holds the eleven derived digits of a birthdate.
//
// A Matrix is immutable: it is produced by Derive or NewMatrix and exposes
// only copies of its values. The zero value is the empty matrix, which holds
// no positions at all.
type Matrix struct {
	values [PositionCount]Digit
}

// Derive computes the matrix for a birthdate. The order of the steps is fixed:
// later positions are built from earlier ones.
func Derive(b BirthDate) Matrix {
	first := Reduce(b.Day)
	second := Reduce(int(b.Month))
	third := Reduce(b.Year)
	fourth := Reduce(int(first + second + third))

	firstRow := Reduce(int(first + second))
	secondRow := Reduce(int(second + third))
	thirdRow := Reduce(int(first + fourth))
	fourthRow := Reduce(int(fourth + third))

	firstDiagonal := Reduce(int(first + third))
	secondDiagonal := Reduce(int(second + fourth))

	center := Reduce(int(firstRow + secondRow))

	var m Matrix
	m.set(FirstNumber, first)
	m.set(SecondNumber, second)
	m.set(ThirdNumber, third)
	m.set(FourthNumber, fourth)
	m.set(FirstRowSum, firstRow)
	m.set(SecondRowSum, secondRow)
	m.set(ThirdRowSum, thirdRow)
	m.set(FourthRowSum, fourthRow)
	m.set(FirstDiagonal, firstDiagonal)
	m.set(SecondDiagonal, secondDiagonal)
	m.set(CenterNumber, center)
	return m
}

// DeriveFromString parses s with ParseBirthDate and derives its matrix. It
// either returns all eleven positions or an error wrapping ErrInvalidDate.
func DeriveFromString(s string) (Matrix, BirthDate, error) {
	bd, err := ParseBirthDate(s)
	if err != nil {
		return Matrix{}, BirthDate{}, err
	}
	return Derive(bd), bd, nil
}

// NewMatrix rebuilds a matrix from previously derived values, for example a
// matrix decoded from a request body. Every one of the eleven keys must be
// present with a value in 1..9.
func NewMatrix(values map[PositionKey]int) (Matrix, error) {
	var m Matrix
	for key, v := range values {
		if !key.Valid() {
			return Matrix{}, fmt.Errorf("%w: %q", ErrUnknownPosition, key)
		}
		if v < MinDigit.Int() || v > MaxDigit.Int() {
			return Matrix{}, fmt.Errorf("%w: %s=%d", ErrDigitOutOfRange, key, v)
		}
		m.set(key, Reduce(v))
	}

	for _, key := range positionKeys {
		if _, ok := values[key]; !ok {
			return Matrix{}, fmt.Errorf("%w: missing %s", ErrIncompleteMatrix, key)
		}
	}

	return m, nil
}

func (m *Matrix) set(key PositionKey, d Digit) {
	m.values[positionIndex[key]] = d
}

// Value returns the digit stored at key. The boolean is false for unknown keys
// and for positions the matrix does not hold.
func (m Matrix) Value(key PositionKey) (Digit, bool) {
	i, ok := positionIndex[key]
	if !ok {
		return 0, false
	}
	d := m.values[i]
	return d, d.Valid()
}

// Values returns a copy of the held positions.
func (m Matrix) Values() map[PositionKey]Digit {
	out := make(map[PositionKey]Digit, PositionCount)
	for i, key := range positionKeys {
		if d := m.values[i]; d.Valid() {
			out[key] = d
		}
	}
	return out
}

// Len returns the number of positions the matrix holds.
func (m Matrix) Len() int {
	n := 0
	for _, d := range m.values {
		if d.Valid() {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the matrix holds no positions.
func (m Matrix) IsEmpty() bool {
	return m.Len() == 0
}

// MarshalJSON encodes the matrix as an object keyed by position.
func (m Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Values())
}

// UnmarshalJSON decodes an object keyed by position through NewMatrix, so a
// decoded matrix always holds all eleven positions.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var raw map[PositionKey]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := NewMatrix(raw)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

// MarshalYAML encodes the matrix as a mapping keyed by position.
func (m Matrix) MarshalYAML() (interface{}, error) {
	return m.Values(), nil
}
