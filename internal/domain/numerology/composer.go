package numerology

import (
	"errors"

	"github.com/phrazzld/destiny-matrix/internal/domain"
)

// ErrEmptyMatrix is returned by Compose when there is nothing to interpret.
var ErrEmptyMatrix = errors.New("matrix is empty")

// keyNumbers are summarised ahead of the full position list.
var keyNumbers = []domain.PositionKey{
	domain.CenterNumber,
	domain.FirstNumber,
	domain.FourthNumber,
}

// PositionReading is the interpretation of one position of a matrix.
type PositionReading struct {
	Key   domain.PositionKey `json:"key" yaml:"key"`
	Name  string             `json:"name" yaml:"name"`
	Value domain.Digit       `json:"value" yaml:"value"`
	Text  string             `json:"text" yaml:"text"`
}

// Interpretation bundles everything the presentation layer renders for a
// matrix.
type Interpretation struct {
	Positions   []PositionReading `json:"positions" yaml:"positions"`
	KeyNumbers  []PositionReading `json:"key_numbers" yaml:"key_numbers"`
	Frequencies FrequencyTable    `json:"frequencies" yaml:"frequencies"`
	Energies    EnergyProfile     `json:"energies" yaml:"energies"`
	Insights    []Insight         `json:"insights" yaml:"insights"`
}

// Compose interprets the matrix using the default thresholds. It returns
// ErrEmptyMatrix when the matrix holds no positions.
func Compose(matrix domain.Matrix) (*Interpretation, error) {
	return compose(matrix, NewDefaultParams())
}

func compose(matrix domain.Matrix, params *Params) (*Interpretation, error) {
	if matrix.IsEmpty() {
		return nil, ErrEmptyMatrix
	}

	freq := Analyze(matrix)
	return &Interpretation{
		Positions:   readings(matrix, domain.PositionKeys()),
		KeyNumbers:  readings(matrix, keyNumbers),
		Frequencies: freq,
		Energies:    classify(freq, params),
		Insights:    Detect(matrix),
	}, nil
}

// readings interprets the listed keys the matrix holds, in the given order.
func readings(matrix domain.Matrix, keys []domain.PositionKey) []PositionReading {
	out := make([]PositionReading, 0, len(keys))
	for _, key := range keys {
		value, ok := matrix.Value(key)
		if !ok {
			continue
		}
		out = append(out, PositionReading{
			Key:   key,
			Name:  Describe(key).Name,
			Value: value,
			Text:  Interpret(key, value),
		})
	}
	return out
}
