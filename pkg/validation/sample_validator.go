package validation

import (
	"fmt"
	"math"
	"strings"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
	"github.com/anime-shed/glowmatch-go/pkg/models"
)

// SampleThresholds defines the nominal ranges of a pixel sample
type SampleThresholds struct {
	// Below this many skin pixels a result is still returned, with a warning
	MinReliableSampleSize int

	MaxSaturation float64
	MaxValue      float64
}

// DefaultSampleThresholds returns the default sample thresholds
func DefaultSampleThresholds() SampleThresholds {
	return SampleThresholds{
		MinReliableSampleSize: 100,
		MaxSaturation:         1.0,
		MaxValue:              255.0,
	}
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue types
const (
	IssueEmptySample    = "empty_sample"
	IssueLengthMismatch = "length_mismatch"
	IssueSampleSize     = "sample_size"
	IssueNotANumber     = "not_a_number"
	IssueNegative       = "negative_value"
	IssueOutOfRange     = "out_of_range"
	IssueSmallSample    = "small_sample"
)

// SampleIssue represents a sample validation issue
type SampleIssue struct {
	Type        string  `json:"type"`
	Message     string  `json:"message"`
	Severity    string  `json:"severity"`
	ActualValue float64 `json:"actual_value,omitempty"`
	Threshold   float64 `json:"threshold,omitempty"`
}

// SampleValidator checks pixel samples before classification
type SampleValidator struct {
	thresholds SampleThresholds
}

func NewSampleValidator() *SampleValidator {
	return &SampleValidator{thresholds: DefaultSampleThresholds()}
}

func NewSampleValidatorWithThresholds(thresholds SampleThresholds) *SampleValidator {
	return &SampleValidator{thresholds: thresholds}
}

func (sv *SampleValidator) Thresholds() SampleThresholds {
	return sv.thresholds
}

// Validate returns every issue found in the sample. An empty sample stops
// further checks.
func (sv *SampleValidator) Validate(s models.PixelSample) []SampleIssue {
	if s.SampleSize <= 0 || len(s.Values) == 0 {
		return []SampleIssue{{
			Type:        IssueEmptySample,
			Message:     "sample contains no skin pixels",
			Severity:    SeverityError,
			ActualValue: float64(s.SampleSize),
		}}
	}

	var issues []SampleIssue

	n := len(s.Values)
	if len(s.Hues) != n || len(s.Saturations) != n {
		issues = append(issues, SampleIssue{
			Type: IssueLengthMismatch,
			Message: fmt.Sprintf("hues, saturations and values must have equal length (got %d, %d, %d)",
				len(s.Hues), len(s.Saturations), n),
			Severity: SeverityError,
		})
		return issues
	}

	if s.SampleSize < n {
		issues = append(issues, SampleIssue{
			Type:        IssueSampleSize,
			Message:     fmt.Sprintf("sampleSize %d is smaller than the %d readings supplied", s.SampleSize, n),
			Severity:    SeverityError,
			ActualValue: float64(s.SampleSize),
			Threshold:   float64(n),
		})
	}

	issues = append(issues, sv.checkChannel("hue", s.Hues, false, 0)...)
	issues = append(issues, sv.checkChannel("saturation", s.Saturations, true, sv.thresholds.MaxSaturation)...)
	issues = append(issues, sv.checkChannel("value", s.Values, true, sv.thresholds.MaxValue)...)

	if s.SampleSize < sv.thresholds.MinReliableSampleSize {
		issues = append(issues, SampleIssue{
			Type:        IssueSmallSample,
			Message:     fmt.Sprintf("only %d skin pixels detected; results may be unreliable", s.SampleSize),
			Severity:    SeverityWarning,
			ActualValue: float64(s.SampleSize),
			Threshold:   float64(sv.thresholds.MinReliableSampleSize),
		})
	}

	return issues
}

// checkChannel reports the first offending reading of each kind only.
func (sv *SampleValidator) checkChannel(name string, readings []float64, nonNegative bool, limit float64) []SampleIssue {
	var issues []SampleIssue
	var sawNaN, sawNeg, sawHigh bool

	for i, v := range readings {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			if !sawNaN {
				sawNaN = true
				issues = append(issues, SampleIssue{
					Type:     IssueNotANumber,
					Message:  fmt.Sprintf("%s reading %d is not a finite number", name, i),
					Severity: SeverityError,
				})
			}
		case nonNegative && v < 0:
			if !sawNeg {
				sawNeg = true
				issues = append(issues, SampleIssue{
					Type:        IssueNegative,
					Message:     fmt.Sprintf("%s reading %d is negative", name, i),
					Severity:    SeverityError,
					ActualValue: v,
				})
			}
		case limit > 0 && v > limit:
			if !sawHigh {
				sawHigh = true
				issues = append(issues, SampleIssue{
					Type:        IssueOutOfRange,
					Message:     fmt.Sprintf("%s reading %d exceeds %g", name, i, limit),
					Severity:    SeverityWarning,
					ActualValue: v,
					Threshold:   limit,
				})
			}
		}
	}
	return issues
}

// HasErrors reports whether any issue has error severity.
func HasErrors(issues []SampleIssue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Warnings returns the messages of warning-level issues.
func Warnings(issues []SampleIssue) []string {
	var out []string
	for _, issue := range issues {
		if issue.Severity == SeverityWarning {
			out = append(out, issue.Message)
		}
	}
	return out
}

// ToError converts error-level issues into an AppError. An empty sample
// becomes EmptySampleError, anything else InvalidInputError. Returns nil when
// there are no errors.
func ToError(issues []SampleIssue) error {
	var msgs []string
	for _, issue := range issues {
		if issue.Severity != SeverityError {
			continue
		}
		if issue.Type == IssueEmptySample {
			return apperrors.NewEmptySampleError(issue.Message)
		}
		msgs = append(msgs, issue.Message)
	}
	if len(msgs) == 0 {
		return nil
	}
	return apperrors.NewInvalidInputError("invalid pixel sample", nil).WithDetails(strings.Join(msgs, "; "))
}
