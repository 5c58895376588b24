package numerology

import (
	"sync"
	"testing"

	"github.com/phrazzld/destiny-matrix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeEmptyMatrix(t *testing.T) {
	t.Parallel()

	interp, err := Compose(domain.Matrix{})
	assert.ErrorIs(t, err, ErrEmptyMatrix)
	assert.Nil(t, interp)
}

func TestComposeExample(t *testing.T) {
	t.Parallel()

	matrix := domain.Derive(exampleDate)
	interp, err := Compose(matrix)
	require.NoError(t, err)

	require.Len(t, interp.Positions, domain.PositionCount)
	for i, key := range domain.PositionKeys() {
		reading := interp.Positions[i]
		value, _ := matrix.Value(key)
		assert.Equal(t, key, reading.Key)
		assert.Equal(t, value, reading.Value)
		assert.Equal(t, Describe(key).Name, reading.Name)
		assert.Equal(t, Interpret(key, value), reading.Text)
	}

	require.Len(t, interp.KeyNumbers, 3)
	assert.Equal(t, domain.CenterNumber, interp.KeyNumbers[0].Key)
	assert.Equal(t, domain.Digit(8), interp.KeyNumbers[0].Value)
	assert.Equal(t, domain.FirstNumber, interp.KeyNumbers[1].Key)
	assert.Equal(t, domain.Digit(6), interp.KeyNumbers[1].Value)
	assert.Equal(t, domain.FourthNumber, interp.KeyNumbers[2].Key)
	assert.Equal(t, domain.Digit(3), interp.KeyNumbers[2].Value)

	assert.Equal(t, domain.PositionCount, interp.Frequencies.Total())
	assert.Equal(t, strongBalanced, interp.Energies.Strong)
	assert.Equal(t, missingNoneFound, interp.Energies.Missing)
	assert.Nil(t, interp.Energies.KarmicPatterns)

	require.Len(t, interp.Insights, 1)
	assert.Equal(t, InsightCenter, interp.Insights[0].Kind)
}

func TestServiceUsesParams(t *testing.T) {
	t.Parallel()

	matrix := domain.Derive(exampleDate)

	defaults, err := NewDefaultService().Compose(matrix)
	require.NoError(t, err)
	assert.Equal(t, strongBalanced, defaults.Energies.Strong)

	svc := NewServiceWithParams(NewParams(ParamsConfig{StrongThreshold: 2}))
	custom, err := svc.Compose(matrix)
	require.NoError(t, err)
	assert.Equal(t, "У вас ярко выражены энергии: 6, 8. Это ваши доминирующие качества.", custom.Energies.Strong)
	assert.Equal(t, custom.Energies, svc.Classify(Analyze(matrix)))

	assert.Equal(t, Catalog(), svc.Catalog())
}

func TestNewServiceWithNilParams(t *testing.T) {
	t.Parallel()

	svc := NewServiceWithParams(nil)
	interp, err := svc.Compose(domain.Derive(exampleDate))
	require.NoError(t, err)
	assert.Equal(t, strongBalanced, interp.Energies.Strong)
}

func TestComposeIsSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	matrix := domain.Derive(exampleDate)
	want, err := Compose(matrix)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Interpretation, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Compose(matrix)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
