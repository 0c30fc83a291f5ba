package analyzer

import (
	"gonum.org/v1/gonum/stat"

	"github.com/anime-shed/glowmatch-go/internal/skintone"
	"github.com/anime-shed/glowmatch-go/pkg/models"
)

type statisticsCalculator struct{}

func NewStatisticsCalculator() StatisticsCalculator {
	return &statisticsCalculator{}
}

// Calculate uses arithmetic means and population standard deviations. The
// hue mean is taken over raw readings and normalized afterwards. Callers must
// pass a validated, non-empty sample.
func (sc *statisticsCalculator) Calculate(sample models.PixelSample) SampleStatistics {
	meanHue, hueStd := stat.PopMeanStdDev(sample.Hues, nil)
	meanV, stdV := stat.PopMeanStdDev(sample.Values, nil)

	return SampleStatistics{
		MeanHue:          skintone.NormalizeHue(meanHue),
		HueStdDev:        hueStd,
		MeanSaturation:   stat.Mean(sample.Saturations, nil),
		MeanBrightness:   meanV,
		BrightnessStdDev: stdV,
		PixelCount:       sample.SampleSize,
		SamplesAnalyzed:  len(sample.Values),
	}
}
