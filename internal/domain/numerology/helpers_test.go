package numerology

import (
	"testing"
	"time"

	"github.com/phrazzld/destiny-matrix/internal/domain"
	"github.com/stretchr/testify/require"
)

// exampleDate is 15 May 1990, whose matrix holds
// 6 5 1 3 / rows 2 6 9 4 / diagonals 7 8 / center 8.
var exampleDate = domain.BirthDate{Year: 1990, Month: time.May, Day: 15}

// matrixWith returns the example matrix with the given positions replaced.
func matrixWith(t *testing.T, overrides map[domain.PositionKey]int) domain.Matrix {
	t.Helper()

	values := map[domain.PositionKey]int{}
	for key, d := range domain.Derive(exampleDate).Values() {
		values[key] = d.Int()
	}
	for key, v := range overrides {
		values[key] = v
	}

	m, err := domain.NewMatrix(values)
	require.NoError(t, err)
	return m
}

// uniformMatrix returns a matrix holding d in every position.
func uniformMatrix(t *testing.T, d int) domain.Matrix {
	t.Helper()

	values := map[domain.PositionKey]int{}
	for _, key := range domain.PositionKeys() {
		values[key] = d
	}

	m, err := domain.NewMatrix(values)
	require.NoError(t, err)
	return m
}

func kinds(insights []Insight) []InsightKind {
	out := make([]InsightKind, len(insights))
	for i, in := range insights {
		out[i] = in.Kind
	}
	return out
}
