package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultParams(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()
	assert.Equal(t, 3, params.StrongThreshold)
	assert.Equal(t, 2, params.TriadThreshold)
}

func TestNewParams(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		config         ParamsConfig
		expectedStrong int
		expectedTriad  int
	}{
		{name: "empty config keeps defaults", config: ParamsConfig{}, expectedStrong: 3, expectedTriad: 2},
		{name: "override strong", config: ParamsConfig{StrongThreshold: 4}, expectedStrong: 4, expectedTriad: 2},
		{name: "override triad", config: ParamsConfig{TriadThreshold: 3}, expectedStrong: 3, expectedTriad: 3},
		{name: "negative values ignored", config: ParamsConfig{StrongThreshold: -1, TriadThreshold: -5}, expectedStrong: 3, expectedTriad: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			params := NewParams(tc.config)
			assert.Equal(t, tc.expectedStrong, params.StrongThreshold)
			assert.Equal(t, tc.expectedTriad, params.TriadThreshold)
		})
	}
}
