package api

import (
	"github.com/phrazzld/destiny-matrix/internal/domain/numerology"
	"github.com/phrazzld/destiny-matrix/internal/service"
)

// CalculateRequest defines the payload for POST /api/matrix.
type CalculateRequest struct {
	BirthDate string `json:"birthdate" validate:"required"`
}

// BatchRequest defines the payload for POST /api/matrix/batch. The upper
// bound on the number of dates comes from configuration.
type BatchRequest struct {
	BirthDates []string `json:"birthdates" validate:"required,min=1,dive,required"`
}

// InterpretRequest defines the payload for POST /api/interpretations: a
// previously derived matrix keyed by position.
type InterpretRequest struct {
	Matrix map[string]int `json:"matrix" validate:"required,min=1"`
}

// BatchItemResponse is one entry of a batch response. Exactly one of Reading
// and Error is set.
type BatchItemResponse struct {
	Index   int              `json:"index" yaml:"index"`
	Input   string           `json:"input" yaml:"input"`
	Reading *service.Reading `json:"reading,omitempty" yaml:"reading,omitempty"`
	Error   string           `json:"error,omitempty" yaml:"error,omitempty"`
	Status  int              `json:"status,omitempty" yaml:"status,omitempty"`
}

// BatchResponse defines the successful response for POST /api/matrix/batch.
type BatchResponse struct {
	Items  []BatchItemResponse `json:"items" yaml:"items"`
	Failed int                 `json:"failed" yaml:"failed"`
}

// PositionsResponse defines the response for GET /api/positions.
type PositionsResponse struct {
	Positions []numerology.PositionInfo `json:"positions" yaml:"positions"`
}

// batchToResponse converts service batch items, replacing errors with their
// safe messages and status codes.
func batchToResponse(items []service.BatchItem) BatchResponse {
	resp := BatchResponse{Items: make([]BatchItemResponse, len(items))}
	for i, item := range items {
		out := BatchItemResponse{
			Index:   item.Index,
			Input:   item.Input,
			Reading: item.Reading,
		}
		if item.Err != nil {
			out.Error = GetSafeErrorMessage(item.Err)
			out.Status = MapErrorToStatusCode(item.Err)
			resp.Failed++
		}
		resp.Items[i] = out
	}
	return resp
}
