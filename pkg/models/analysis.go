package models

import "time"

// PixelSample is the aggregated input for one classification: parallel
// per-pixel hue (degrees), saturation (0-1) and value (0-255) readings, plus
// the number of skin pixels the extractor found. SampleSize may exceed the
// number of readings when the extractor subsamples.
type PixelSample struct {
	Hues        []float64 `json:"hues"`
	Saturations []float64 `json:"saturations"`
	Values      []float64 `json:"values"`
	SampleSize  int       `json:"sampleSize"`
}

// Len is the number of supplied readings.
func (p PixelSample) Len() int {
	return len(p.Values)
}

// AnalysisResult is the assembled, version-independent classification.
// Response strategies render it into a versioned wire shape.
type AnalysisResult struct {
	ID             string                 `json:"id"`
	Success        bool                   `json:"success"`
	Timestamp      time.Time              `json:"timestamp"`
	ProcessingTime time.Duration          `json:"processingTime"`
	Legacy         LegacyAnalysis         `json:"legacy"`
	Extended       ExtendedClassification `json:"extended"`
	Palette        PaletteRecommendations `json:"palette"`
	Details        AnalysisDetails        `json:"details"`
	Warnings       []string               `json:"warnings,omitempty"`
}

// RGBColor is an 8-bit RGB triple.
type RGBColor struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSVColor uses degrees for H and 0-1 for S and V.
type HSVColor struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// LegacyAnalysis holds the three-by-three classification older clients read.
type LegacyAnalysis struct {
	Depth            string   `json:"depth"`
	Undertone        string   `json:"undertone"`
	SkinToneCategory string   `json:"skinToneCategory"`
	HexColor         string   `json:"hexColor"`
	RGBColor         RGBColor `json:"rgbColor"`
	HSVColor         HSVColor `json:"hsvColor"`
}

// SkinCharacteristics are derived flags over the extended undertone.
type SkinCharacteristics struct {
	HasOliveUndertones bool   `json:"hasOliveUndertones"`
	IsWarmDominant     bool   `json:"isWarmDominant"`
	UndertoneBalance   string `json:"undertoneBalance"`
}

const (
	BalanceStrongWarm = "Strong Warm"
	BalanceStrongCool = "Strong Cool"
	BalanceBalanced   = "Balanced"
)

type ExtendedClassification struct {
	ExtendedDepth       string              `json:"extendedDepth"`
	DepthLevel          int                 `json:"depthLevel"`
	DepthPercentile     string              `json:"depthPercentile"`
	ExtendedUndertone   string              `json:"extendedUndertone"`
	ExtendedCategory    string              `json:"extendedCategory"`
	UndertoneHueRange   [2]int              `json:"undertoneHueRange"`
	UndertoneIntensity  float64             `json:"undertoneIntensity"`
	SkinToneConfidence  float64             `json:"skinToneConfidence"`
	MeasuredColor       string              `json:"measuredColor"`
	HueGapFallback      bool                `json:"hueGapFallback"`
	SkinCharacteristics SkinCharacteristics `json:"skinCharacteristics"`
}

// AnalysisDetails is the statistical metadata behind a classification.
type AnalysisDetails struct {
	SkinPixelsDetected      int     `json:"skinPixelsDetected"`
	SamplesAnalyzed         int     `json:"samplesAnalyzed"`
	MeanHue                 float64 `json:"meanHue"`
	HueStdDev               float64 `json:"hueStdDev"`
	SaturationLevel         float64 `json:"saturationLevel"`
	BrightnessLevel         float64 `json:"brightnessLevel"`
	BrightnessStdDev        float64 `json:"brightnessStdDev"`
	ConfidenceScore         float64 `json:"confidenceScore"`
	RecommendedRetryIfBelow float64 `json:"recommendedRetryIfBelow"`
	RetrySuggested          bool    `json:"retrySuggested"`
}
