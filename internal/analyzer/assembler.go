package analyzer

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/anime-shed/glowmatch-go/internal/skintone"
	"github.com/anime-shed/glowmatch-go/pkg/models"
)

const defaultLegacyHex = "#D4A574"

// representative swatch for each legacy cell
var legacyColors = map[skintone.LegacyCategory]string{
	{Depth: skintone.LegacyFair, Undertone: skintone.LegacyWarm}:      "#F5D7C3",
	{Depth: skintone.LegacyFair, Undertone: skintone.LegacyCool}:      "#F5E6D3",
	{Depth: skintone.LegacyFair, Undertone: skintone.LegacyNeutral}:   "#F5DCC8",
	{Depth: skintone.LegacyMedium, Undertone: skintone.LegacyWarm}:    "#D4A574",
	{Depth: skintone.LegacyMedium, Undertone: skintone.LegacyCool}:    "#C9A57B",
	{Depth: skintone.LegacyMedium, Undertone: skintone.LegacyNeutral}: "#CD9A68",
	{Depth: skintone.LegacyDark, Undertone: skintone.LegacyWarm}:      "#8D5524",
	{Depth: skintone.LegacyDark, Undertone: skintone.LegacyCool}:      "#8B6342",
	{Depth: skintone.LegacyDark, Undertone: skintone.LegacyNeutral}:   "#704214",
}

// LegacyHex returns the representative swatch of a legacy cell.
func LegacyHex(l skintone.LegacyCategory) string {
	if hex, ok := legacyColors[l]; ok {
		return hex
	}
	return defaultLegacyHex
}

// UndertoneBalance labels the spectrum an undertone leans toward.
func UndertoneBalance(u skintone.Undertone) string {
	switch {
	case u.IsWarmSpectrum():
		return models.BalanceStrongWarm
	case u.IsCoolSpectrum():
		return models.BalanceStrongCool
	default:
		return models.BalanceBalanced
	}
}

// Assemble builds the result for an already classified sample. It has no
// side effects; identity and timing are stamped by the caller.
func Assemble(stats SampleStatistics, category skintone.Category, confidence float64,
	palette models.PaletteRecommendations, opts AnalysisOptions) models.AnalysisResult {

	legacy := category.Legacy()
	hex := LegacyHex(legacy)
	hueRange := category.Undertone.HueRange()
	// compared at the two decimals the response shows
	retry := round(confidence, 2) < opts.RetryThreshold
	gap := skintone.InHueGap(stats.MeanHue)

	result := models.AnalysisResult{
		Success: true,
		Legacy: models.LegacyAnalysis{
			Depth:            string(legacy.Depth),
			Undertone:        string(legacy.Undertone),
			SkinToneCategory: legacy.Key(),
			HexColor:         hex,
			RGBColor:         hexToRGB(hex),
			HSVColor: models.HSVColor{
				H: round(stats.MeanHue, 1),
				S: round(stats.MeanSaturation, 2),
				V: round(stats.MeanBrightness/255, 2),
			},
		},
		Extended: models.ExtendedClassification{
			ExtendedDepth:      category.Depth.String(),
			DepthLevel:         category.Depth.Level(),
			DepthPercentile:    category.Depth.Percentile(),
			ExtendedUndertone:  category.Undertone.String(),
			ExtendedCategory:   category.Key(),
			UndertoneHueRange:  [2]int{hueRange.Start, hueRange.End},
			UndertoneIntensity: round(stats.MeanSaturation, 2),
			SkinToneConfidence: confidence,
			MeasuredColor:      measuredColor(stats),
			HueGapFallback:     gap,
			SkinCharacteristics: models.SkinCharacteristics{
				HasOliveUndertones: category.Undertone == skintone.Olive,
				IsWarmDominant:     category.Undertone.IsWarmSpectrum(),
				UndertoneBalance:   UndertoneBalance(category.Undertone),
			},
		},
		Palette: palette,
		Details: models.AnalysisDetails{
			SkinPixelsDetected:      stats.PixelCount,
			SamplesAnalyzed:         stats.SamplesAnalyzed,
			MeanHue:                 stats.MeanHue,
			HueStdDev:               stats.HueStdDev,
			SaturationLevel:         stats.MeanSaturation,
			BrightnessLevel:         stats.MeanBrightness,
			BrightnessStdDev:        stats.BrightnessStdDev,
			ConfidenceScore:         confidence,
			RecommendedRetryIfBelow: opts.RetryThreshold,
			RetrySuggested:          retry,
		},
	}

	if gap {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"mean hue %.1f lies outside every undertone range; undertone defaulted to %s",
			stats.MeanHue, category.Undertone))
	}
	if retry {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"confidence %.2f is below %.2f; consider retrying with a clearer, evenly lit image",
			confidence, opts.RetryThreshold))
	}
	return result
}

func hexToRGB(hex string) models.RGBColor {
	c, err := colorful.Hex(hex)
	if err != nil {
		return models.RGBColor{}
	}
	r, g, b := c.RGB255()
	return models.RGBColor{R: int(r), G: int(g), B: int(b)}
}

// measuredColor renders the mean HSV reading as a hex code.
func measuredColor(stats SampleStatistics) string {
	s := clamp01(stats.MeanSaturation)
	v := clamp01(stats.MeanBrightness / 255)
	return strings.ToUpper(colorful.Hsv(stats.MeanHue, s, v).Clamped().Hex())
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
