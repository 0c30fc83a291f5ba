package analyzer

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
	"github.com/anime-shed/glowmatch-go/internal/logger"
	"github.com/anime-shed/glowmatch-go/internal/skintone"
	"github.com/anime-shed/glowmatch-go/pkg/models"
	"github.com/anime-shed/glowmatch-go/pkg/validation"
)

// coreAnalyzer implements SkinToneAnalyzer and orchestrates all components
type coreAnalyzer struct {
	calculator StatisticsCalculator
	resolver   PaletteResolver
	options    AnalysisOptions
}

// NewSkinToneAnalyzer creates an analyzer that resolves palettes through resolver
func NewSkinToneAnalyzer(resolver PaletteResolver, options AnalysisOptions) SkinToneAnalyzer {
	return &coreAnalyzer{
		calculator: NewStatisticsCalculator(),
		resolver:   resolver,
		options:    options,
	}
}

// Analyze runs with the options the analyzer was built with
func (ca *coreAnalyzer) Analyze(sample models.PixelSample) (models.AnalysisResult, error) {
	return ca.AnalyzeWithOptions(sample, ca.options)
}

// AnalyzeWithOptions validates, classifies, scores and assembles one sample
func (ca *coreAnalyzer) AnalyzeWithOptions(sample models.PixelSample, options AnalysisOptions) (models.AnalysisResult, error) {
	start := time.Now()

	issues := ca.validator(options).Validate(sample)
	if options.StrictRange {
		issues = promoteRangeWarnings(issues)
	}
	if err := validation.ToError(issues); err != nil {
		return models.AnalysisResult{}, err
	}

	stats := ca.calculator.Calculate(sample)
	if !stats.Finite() {
		return models.AnalysisResult{}, apperrors.NewInvalidInputError(
			"sample readings are too large to aggregate", nil).
			WithDetails("hue and value statistics overflowed; check the reading scale")
	}
	category := skintone.Classify(stats.MeanBrightness, stats.MeanHue)
	confidence := skintone.ConfidenceScore(stats.BrightnessStdDev, stats.PixelCount)

	palette, err := ca.resolver.Resolve(category)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"category": category.Key(),
			"error":    err.Error(),
		}).Error("Palette table is missing a canonical category")
		return models.AnalysisResult{}, err
	}

	result := Assemble(stats, category, confidence, palette, options)
	result.ID = uuid.New().String()
	result.Timestamp = start
	result.Warnings = append(validation.Warnings(issues), result.Warnings...)
	result.ProcessingTime = time.Since(start)

	return result, nil
}

// Close releases analyzer resources
func (ca *coreAnalyzer) Close() error {
	return nil
}

func (ca *coreAnalyzer) validator(options AnalysisOptions) *validation.SampleValidator {
	th := validation.DefaultSampleThresholds()
	th.MinReliableSampleSize = options.MinReliableSampleSize
	return validation.NewSampleValidatorWithThresholds(th)
}

func promoteRangeWarnings(issues []validation.SampleIssue) []validation.SampleIssue {
	out := make([]validation.SampleIssue, len(issues))
	for i, issue := range issues {
		if issue.Type == validation.IssueOutOfRange {
			issue.Severity = validation.SeverityError
		}
		out[i] = issue
	}
	return out
}
