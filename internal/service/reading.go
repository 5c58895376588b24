package service

import (
	"github.com/phrazzld/destiny-matrix/internal/domain"
	"github.com/phrazzld/destiny-matrix/internal/domain/numerology"
)

// GridCell is one cell of the 3x3 display grid.
type GridCell struct {
	Key   domain.PositionKey `json:"key" yaml:"key"`
	Name  string             `json:"name" yaml:"name"`
	Value domain.Digit       `json:"value" yaml:"value"`
}

// Reading is the complete result for one matrix.
type Reading struct {
	// BirthDate is nil when the matrix was supplied directly.
	BirthDate      *domain.BirthDate          `json:"birthdate,omitempty" yaml:"birthdate,omitempty"`
	Matrix         domain.Matrix              `json:"matrix" yaml:"matrix"`
	Grid           [][]GridCell               `json:"grid" yaml:"grid"`
	Interpretation *numerology.Interpretation `json:"interpretation" yaml:"interpretation"`
}

// BatchItem is the outcome for one input of CalculateBatch. Exactly one of
// Reading and Err is set.
type BatchItem struct {
	Index   int
	Input   string
	Reading *Reading
	Err     error
}

// BuildGrid lays the matrix out in domain.Grid order. The diagonals have no
// cell and are not included.
func BuildGrid(matrix domain.Matrix) [][]GridCell {
	grid := make([][]GridCell, len(domain.Grid))
	for r, row := range domain.Grid {
		grid[r] = make([]GridCell, len(row))
		for c, key := range row {
			value, _ := matrix.Value(key)
			grid[r][c] = GridCell{
				Key:   key,
				Name:  numerology.Describe(key).Name,
				Value: value,
			}
		}
	}
	return grid
}
