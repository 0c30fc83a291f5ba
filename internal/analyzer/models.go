package analyzer

import "math"

// SampleStatistics holds the aggregates computed from one pixel sample.
// MeanHue is normalized to [0, 360).
type SampleStatistics struct {
	MeanHue          float64
	HueStdDev        float64
	MeanSaturation   float64
	MeanBrightness   float64
	BrightnessStdDev float64

	// PixelCount is the detected skin-pixel count; SamplesAnalyzed the readings supplied
	PixelCount      int
	SamplesAnalyzed int
}

// Finite reports whether every aggregate is a finite number. Extreme but
// finite readings can still overflow the sums.
func (s SampleStatistics) Finite() bool {
	for _, v := range []float64{s.MeanHue, s.HueStdDev, s.MeanSaturation, s.MeanBrightness, s.BrightnessStdDev} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
