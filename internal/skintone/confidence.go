package skintone

import "math"

const (
	// LargeSampleThreshold is the pixel count above which a sample earns the bonus.
	LargeSampleThreshold = 500
	// LargeSampleBonus is added to confidence for large samples, capped at 1.
	LargeSampleBonus = 0.1

	brightnessScale = 255.0
)

// ConfidenceScore derives a [0,1] score from the standard deviation of pixel
// brightness and the sample pixel count. Uniform brightness scores high.
func ConfidenceScore(brightnessStdDev float64, sampleCount int) float64 {
	if math.IsNaN(brightnessStdDev) {
		return 0
	}
	c := 1 - brightnessStdDev/brightnessScale
	c = math.Max(0, math.Min(1, c))
	if sampleCount > LargeSampleThreshold {
		c = math.Min(1, c+LargeSampleBonus)
	}
	return c
}
