package strategy

import (
	"fmt"
	"math"
	"strings"
	"time"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
	"github.com/anime-shed/glowmatch-go/pkg/models"
)

const successMessage = "Skin tone analysis completed successfully"

// ResponseStrategy renders an assembled result into one wire version
type ResponseStrategy interface {
	Render(result models.AnalysisResult) models.VersionedResponse
	Version() string
	GetStrategyName() string
}

// LegacyResponseStrategy renders the 1.0 shape
type LegacyResponseStrategy struct{}

func NewLegacyResponseStrategy() ResponseStrategy {
	return &LegacyResponseStrategy{}
}

func (s *LegacyResponseStrategy) Render(result models.AnalysisResult) models.VersionedResponse {
	return models.AnalysisResponseV1{
		Version:         models.Version1,
		Success:         result.Success,
		Message:         successMessage,
		SkinAnalysis:    result.Legacy,
		Recommendations: result.Palette.Recommendations,
		AnalysisDetails: models.DetailsV1{
			ProcessingTime:     formatDuration(result.ProcessingTime),
			SkinPixelsDetected: result.Details.SkinPixelsDetected,
			Confidence:         fmt.Sprintf("%.2f", result.Details.ConfidenceScore),
		},
	}
}

func (s *LegacyResponseStrategy) Version() string { return models.Version1 }

func (s *LegacyResponseStrategy) GetStrategyName() string { return "legacy_response" }

// ExtendedResponseStrategy renders the 2.0 shape
type ExtendedResponseStrategy struct{}

func NewExtendedResponseStrategy() ResponseStrategy {
	return &ExtendedResponseStrategy{}
}

func (s *ExtendedResponseStrategy) Render(result models.AnalysisResult) models.VersionedResponse {
	extended := result.Extended
	extended.SkinToneConfidence = round2(extended.SkinToneConfidence)

	return models.AnalysisResponseV2{
		ID:      result.ID,
		Version: models.Version2,
		Success: result.Success,
		Message: successMessage,
		SkinAnalysis: models.SkinAnalysisV2{
			LegacyAnalysis:         result.Legacy,
			ExtendedClassification: extended,
		},
		Recommendations: models.RecommendationsV2{
			Recommendations:         result.Palette.Recommendations,
			SeasonalRecommendations: result.Palette.Seasonal,
		},
		AnalysisDetails: models.DetailsV2{
			ProcessingTime:          formatDuration(result.ProcessingTime),
			SkinPixelsDetected:      result.Details.SkinPixelsDetected,
			SamplesAnalyzed:         result.Details.SamplesAnalyzed,
			HueDistribution:         hueDistribution(result.Details),
			HueStdDev:               round2(result.Details.HueStdDev),
			SaturationLevel:         round2(result.Details.SaturationLevel),
			BrightnessLevel:         round2(result.Details.BrightnessLevel),
			ConfidenceScore:         round2(result.Details.ConfidenceScore),
			RecommendedRetryIfBelow: result.Details.RecommendedRetryIfBelow,
			RetrySuggested:          result.Details.RetrySuggested,
		},
		Warnings: result.Warnings,
	}
}

func (s *ExtendedResponseStrategy) Version() string { return models.Version2 }

func (s *ExtendedResponseStrategy) GetStrategyName() string { return "extended_response" }

// NormalizeVersion maps accepted spellings onto "1.0" or "2.0". Empty input
// yields fallback.
func NormalizeVersion(requested, fallback string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(requested))
	if v == "" {
		v = strings.ToLower(strings.TrimSpace(fallback))
	}
	if v == "" {
		return models.Version2, nil
	}
	switch strings.TrimPrefix(v, "v") {
	case "1", "1.0":
		return models.Version1, nil
	case "2", "2.0":
		return models.Version2, nil
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf("unsupported response version %q", requested), nil).
			WithDetails("supported versions are 1.0 and 2.0")
	}
}

// Registry picks the strategy for a requested version
type Registry struct {
	defaultVersion string
	strategies     map[string]ResponseStrategy
}

// NewRegistry registers both response versions. An invalid default falls
// back to 2.0.
func NewRegistry(defaultVersion string) *Registry {
	v, err := NormalizeVersion(defaultVersion, models.Version2)
	if err != nil {
		v = models.Version2
	}
	r := &Registry{
		defaultVersion: v,
		strategies:     make(map[string]ResponseStrategy),
	}
	r.Register(NewLegacyResponseStrategy())
	r.Register(NewExtendedResponseStrategy())
	return r
}

func (r *Registry) Register(s ResponseStrategy) {
	r.strategies[s.Version()] = s
}

func (r *Registry) DefaultVersion() string {
	return r.defaultVersion
}

// ForVersion returns the strategy for requested, or the default when empty
func (r *Registry) ForVersion(requested string) (ResponseStrategy, error) {
	v, err := NormalizeVersion(requested, r.defaultVersion)
	if err != nil {
		return nil, err
	}
	s, ok := r.strategies[v]
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("no renderer for version %s", v), nil)
	}
	return s, nil
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}

// hueDistribution is [whole degrees, mean hue, mean saturation]
func hueDistribution(d models.AnalysisDetails) []float64 {
	return []float64{math.Trunc(d.MeanHue), round2(d.MeanHue), round2(d.SaturationLevel)}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
