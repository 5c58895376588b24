package numerology

import (
	"github.com/phrazzld/destiny-matrix/internal/domain"
)

// Service defines the interface for matrix interpretation
type Service interface {
	// Compose builds the full interpretation of a matrix
	Compose(matrix domain.Matrix) (*Interpretation, error)

	// Classify describes the dominant and missing energies of a frequency table
	Classify(freq FrequencyTable) EnergyProfile

	// Catalog lists the metadata of every position
	Catalog() []PositionInfo
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new interpretation service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new interpretation service with custom parameters
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

// Compose implements the Service interface
func (s *defaultService) Compose(matrix domain.Matrix) (*Interpretation, error) {
	return compose(matrix, s.params)
}

// Classify implements the Service interface
func (s *defaultService) Classify(freq FrequencyTable) EnergyProfile {
	return classify(freq, s.params)
}

// Catalog implements the Service interface
func (s *defaultService) Catalog() []PositionInfo {
	return Catalog()
}
