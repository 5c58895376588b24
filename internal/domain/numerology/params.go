package numerology

// Params defines the thresholds used by the frequency classification.
type Params struct {
	// StrongThreshold is the minimum count for a digit to be reported as a
	// dominant energy.
	StrongThreshold int

	// TriadThreshold is the minimum count each digit of a karmic triad must
	// reach for the triad to fire.
	TriadThreshold int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	StrongThreshold int
	TriadThreshold  int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		StrongThreshold: 3,
		TriadThreshold:  2,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero or negative values keep the defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.StrongThreshold > 0 {
		params.StrongThreshold = config.StrongThreshold
	}
	if config.TriadThreshold > 0 {
		params.TriadThreshold = config.TriadThreshold
	}

	return params
}
