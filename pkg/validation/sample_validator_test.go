package validation

import (
	"math"
	"testing"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
	"github.com/anime-shed/glowmatch-go/pkg/models"
)

func sample(n int, hue, sat, val float64) models.PixelSample {
	s := models.PixelSample{SampleSize: n}
	for i := 0; i < n; i++ {
		s.Hues = append(s.Hues, hue)
		s.Saturations = append(s.Saturations, sat)
		s.Values = append(s.Values, val)
	}
	return s
}

func issueTypes(issues []SampleIssue) map[string]string {
	out := make(map[string]string)
	for _, i := range issues {
		out[i.Type] = i.Severity
	}
	return out
}

func TestValidateCleanSample(t *testing.T) {
	v := NewSampleValidator()
	issues := v.Validate(sample(150, 20, 0.4, 180))
	if len(issues) != 0 {
		t.Errorf("Expected no issues, got %+v", issues)
	}
	if ToError(issues) != nil {
		t.Error("Expected nil error for clean sample")
	}
}

func TestValidateIssues(t *testing.T) {
	v := NewSampleValidator()

	tests := []struct {
		name     string
		mutate   func(s *models.PixelSample)
		wantType string
		severity string
	}{
		{"zero sample size", func(s *models.PixelSample) { s.SampleSize = 0 }, IssueEmptySample, SeverityError},
		{"no readings", func(s *models.PixelSample) { s.Hues, s.Saturations, s.Values = nil, nil, nil }, IssueEmptySample, SeverityError},
		{"length mismatch", func(s *models.PixelSample) { s.Hues = s.Hues[:3] }, IssueLengthMismatch, SeverityError},
		{"size below readings", func(s *models.PixelSample) { s.SampleSize = 100 }, IssueSampleSize, SeverityError},
		{"nan value", func(s *models.PixelSample) { s.Values[5] = math.NaN() }, IssueNotANumber, SeverityError},
		{"infinite hue", func(s *models.PixelSample) { s.Hues[0] = math.Inf(1) }, IssueNotANumber, SeverityError},
		{"negative saturation", func(s *models.PixelSample) { s.Saturations[1] = -0.1 }, IssueNegative, SeverityError},
		{"value above range", func(s *models.PixelSample) { s.Values[2] = 300 }, IssueOutOfRange, SeverityWarning},
		{"saturation above range", func(s *models.PixelSample) { s.Saturations[2] = 1.5 }, IssueOutOfRange, SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sample(150, 20, 0.4, 180)
			tt.mutate(&s)
			got := issueTypes(v.Validate(s))
			if sev, ok := got[tt.wantType]; !ok || sev != tt.severity {
				t.Errorf("Expected %s issue with severity %s, got %v", tt.wantType, tt.severity, got)
			}
		})
	}
}

func TestNegativeHueIsAllowed(t *testing.T) {
	v := NewSampleValidator()
	s := sample(150, -15, 0.4, 180)
	if issues := v.Validate(s); HasErrors(issues) {
		t.Errorf("Negative hue should normalize, not fail: %+v", issues)
	}
}

func TestSmallSampleIsWarningOnly(t *testing.T) {
	v := NewSampleValidator()
	issues := v.Validate(sample(40, 20, 0.4, 180))

	if HasErrors(issues) {
		t.Fatalf("Expected warnings only, got %+v", issues)
	}
	warnings := Warnings(issues)
	if len(warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %v", warnings)
	}
}

func TestToErrorTypes(t *testing.T) {
	v := NewSampleValidator()

	empty := v.Validate(models.PixelSample{})
	if err := ToError(empty); !apperrors.IsType(err, apperrors.ErrorTypeEmptySample) {
		t.Errorf("Expected empty_sample, got %v", err)
	}

	s := sample(150, 20, 0.4, 180)
	s.Values[0] = math.NaN()
	s.Saturations[0] = -1
	err := ToError(v.Validate(s))
	if !apperrors.IsType(err, apperrors.ErrorTypeInvalidInput) {
		t.Fatalf("Expected invalid_input, got %v", err)
	}
	appErr, _ := apperrors.As(err)
	if appErr.Details == "" {
		t.Error("Expected details listing the problems")
	}
}

func TestCustomThresholds(t *testing.T) {
	v := NewSampleValidatorWithThresholds(SampleThresholds{MinReliableSampleSize: 10, MaxSaturation: 1, MaxValue: 100})
	issues := v.Validate(sample(20, 20, 0.4, 180))
	if got := issueTypes(issues); got[IssueOutOfRange] != SeverityWarning {
		t.Errorf("Expected out_of_range warning with MaxValue 100, got %v", got)
	}
	if v.Thresholds().MaxValue != 100 {
		t.Errorf("Expected MaxValue 100, got %v", v.Thresholds().MaxValue)
	}
}
