package analyzer

import (
	"github.com/anime-shed/glowmatch-go/internal/skintone"
	"github.com/anime-shed/glowmatch-go/pkg/models"
)

// SkinToneAnalyzer defines the main interface for skin tone analysis
type SkinToneAnalyzer interface {
	Analyze(sample models.PixelSample) (models.AnalysisResult, error)
	AnalyzeWithOptions(sample models.PixelSample, options AnalysisOptions) (models.AnalysisResult, error)

	Close() error
}

// StatisticsCalculator reduces a pixel sample to the figures classification needs
type StatisticsCalculator interface {
	Calculate(sample models.PixelSample) SampleStatistics
}

// PaletteResolver looks up recommendations for an extended category
type PaletteResolver interface {
	Resolve(c skintone.Category) (models.PaletteRecommendations, error)
}
