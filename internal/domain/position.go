package domain

import "fmt"

// PositionKey identifies one of the eleven derived slots of the matrix.
type PositionKey string

// The eleven matrix positions, in canonical order.
const (
	FirstNumber    PositionKey = "firstNumber"
	SecondNumber   PositionKey = "secondNumber"
	ThirdNumber    PositionKey = "thirdNumber"
	FourthNumber   PositionKey = "fourthNumber"
	FirstRowSum    PositionKey = "firstRowSum"
	SecondRowSum   PositionKey = "secondRowSum"
	ThirdRowSum    PositionKey = "thirdRowSum"
	FourthRowSum   PositionKey = "fourthRowSum"
	FirstDiagonal  PositionKey = "firstDiagonal"
	SecondDiagonal PositionKey = "secondDiagonal"
	CenterNumber   PositionKey = "centerNumber"
)

// PositionCount is the size of the closed position set.
const PositionCount = 11

var positionKeys = [PositionCount]PositionKey{
	FirstNumber,
	SecondNumber,
	ThirdNumber,
	FourthNumber,
	FirstRowSum,
	SecondRowSum,
	ThirdRowSum,
	FourthRowSum,
	FirstDiagonal,
	SecondDiagonal,
	CenterNumber,
}

var positionIndex = func() map[PositionKey]int {
	idx := make(map[PositionKey]int, PositionCount)
	for i, k := range positionKeys {
		idx[k] = i
	}
	return idx
}()

// PositionKeys returns the eleven keys in canonical order. The returned slice
// is a fresh copy.
func PositionKeys() []PositionKey {
	keys := make([]PositionKey, PositionCount)
	copy(keys, positionKeys[:])
	return keys
}

// Valid reports whether k is one of the eleven known positions.
func (k PositionKey) Valid() bool {
	_, ok := positionIndex[k]
	return ok
}

// String returns the key identifier.
func (k PositionKey) String() string {
	return string(k)
}

// ParsePositionKey converts s into a PositionKey, returning an error wrapping
// ErrUnknownPosition for anything outside the closed set.
func ParsePositionKey(s string) (PositionKey, error) {
	k := PositionKey(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPosition, s)
	}
	return k, nil
}

// Grid is the 3x3 display layout of the matrix. The diagonals are derived
// values with no cell of their own.
var Grid = [3][3]PositionKey{
	{FirstNumber, SecondNumber, ThirdNumber},
	{FirstRowSum, CenterNumber, SecondRowSum},
	{FourthNumber, ThirdRowSum, FourthRowSum},
}
