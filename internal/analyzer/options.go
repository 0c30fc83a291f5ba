package analyzer

// AnalysisOptions provides flexible configuration for skin tone analysis
type AnalysisOptions struct {
	// Results below this confidence carry a retry suggestion
	RetryThreshold float64

	// Samples smaller than this get a reliability warning
	MinReliableSampleSize int

	// StrictRange rejects readings outside the nominal channel ranges
	// instead of warning about them
	StrictRange bool
}

const (
	DefaultRetryThreshold        = 0.70
	DefaultMinReliableSampleSize = 100
)

// DefaultOptions returns default analysis options
func DefaultOptions() AnalysisOptions {
	return AnalysisOptions{
		RetryThreshold:        DefaultRetryThreshold,
		MinReliableSampleSize: DefaultMinReliableSampleSize,
	}
}

// StrictOptions returns options that reject out-of-range readings
func StrictOptions() AnalysisOptions {
	return DefaultOptions().WithStrictRange()
}

// WithRetryThreshold sets the advisory retry threshold, clamped to [0,1]
func (opts AnalysisOptions) WithRetryThreshold(threshold float64) AnalysisOptions {
	switch {
	case threshold < 0:
		threshold = 0
	case threshold > 1:
		threshold = 1
	}
	opts.RetryThreshold = threshold
	return opts
}

// WithMinReliableSampleSize sets the small-sample warning level
func (opts AnalysisOptions) WithMinReliableSampleSize(n int) AnalysisOptions {
	if n < 0 {
		n = 0
	}
	opts.MinReliableSampleSize = n
	return opts
}

// WithStrictRange enables strict range checking
func (opts AnalysisOptions) WithStrictRange() AnalysisOptions {
	opts.StrictRange = true
	return opts
}
