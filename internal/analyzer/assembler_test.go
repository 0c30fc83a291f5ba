package analyzer

import (
	"strings"
	"testing"

	"github.com/anime-shed/glowmatch-go/internal/palette"
	"github.com/anime-shed/glowmatch-go/internal/skintone"
	"github.com/anime-shed/glowmatch-go/pkg/models"
)

func defaultResolver(t *testing.T) *palette.Resolver {
	t.Helper()
	table, err := palette.Default()
	if err != nil {
		t.Fatalf("palette.Default: %v", err)
	}
	return palette.NewResolver(table)
}

func baseStats() SampleStatistics {
	return SampleStatistics{
		MeanHue:          20,
		MeanSaturation:   0.5,
		MeanBrightness:   150,
		BrightnessStdDev: 10,
		PixelCount:       400,
		SamplesAnalyzed:  400,
	}
}

func TestAssembleLegacyAgreesWithMapping(t *testing.T) {
	r := defaultResolver(t)
	for _, c := range skintone.AllCategories() {
		pal, err := r.Resolve(c)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", c.Key(), err)
		}
		result := Assemble(baseStats(), c, 0.9, pal, DefaultOptions())
		want := skintone.MapToLegacy(c.Depth, c.Undertone)

		if result.Legacy.Depth != string(want.Depth) {
			t.Errorf("%s: expected legacy depth %s, got %s", c.Key(), want.Depth, result.Legacy.Depth)
		}
		if result.Legacy.Undertone != string(want.Undertone) {
			t.Errorf("%s: expected legacy undertone %s, got %s", c.Key(), want.Undertone, result.Legacy.Undertone)
		}
		if result.Legacy.SkinToneCategory != want.Key() {
			t.Errorf("%s: expected legacy category %s, got %s", c.Key(), want.Key(), result.Legacy.SkinToneCategory)
		}
		if result.Extended.ExtendedCategory != c.Key() {
			t.Errorf("Expected extended category %s, got %s", c.Key(), result.Extended.ExtendedCategory)
		}
	}
}

func TestAssembleCharacteristics(t *testing.T) {
	tests := []struct {
		undertone   skintone.Undertone
		olive, warm bool
		balance     string
	}{
		{skintone.Warm, false, true, models.BalanceStrongWarm},
		{skintone.Golden, false, true, models.BalanceStrongWarm},
		{skintone.Cool, false, false, models.BalanceStrongCool},
		{skintone.Olive, true, false, models.BalanceStrongCool},
		{skintone.Neutral, false, false, models.BalanceBalanced},
	}

	for _, tt := range tests {
		c := skintone.Category{Depth: skintone.Tan, Undertone: tt.undertone}
		got := Assemble(baseStats(), c, 0.9, models.PaletteRecommendations{}, DefaultOptions()).Extended.SkinCharacteristics

		if got.HasOliveUndertones != tt.olive {
			t.Errorf("%s: expected hasOliveUndertones %v", tt.undertone, tt.olive)
		}
		if got.IsWarmDominant != tt.warm {
			t.Errorf("%s: expected isWarmDominant %v", tt.undertone, tt.warm)
		}
		if got.UndertoneBalance != tt.balance {
			t.Errorf("%s: expected balance %q, got %q", tt.undertone, tt.balance, got.UndertoneBalance)
		}
	}
}

func TestAssembleExtendedFields(t *testing.T) {
	c := skintone.Category{Depth: skintone.Dark, Undertone: skintone.Olive}
	got := Assemble(baseStats(), c, 0.85, models.PaletteRecommendations{}, DefaultOptions())

	if got.Extended.DepthLevel != 5 || got.Extended.DepthPercentile != "24-39%" {
		t.Errorf("Unexpected depth level/percentile %d %q", got.Extended.DepthLevel, got.Extended.DepthPercentile)
	}
	if got.Extended.UndertoneHueRange != [2]int{60, 90} {
		t.Errorf("Unexpected hue range %v", got.Extended.UndertoneHueRange)
	}
	if got.Extended.UndertoneIntensity != 0.5 {
		t.Errorf("Expected intensity 0.5, got %f", got.Extended.UndertoneIntensity)
	}
	if got.Legacy.HexColor != "#8B6342" {
		t.Errorf("Expected Dark-Cool swatch #8B6342, got %s", got.Legacy.HexColor)
	}
	if got.Legacy.RGBColor != (models.RGBColor{R: 139, G: 99, B: 66}) {
		t.Errorf("Unexpected RGB %+v", got.Legacy.RGBColor)
	}
	if !got.Success {
		t.Error("Expected success")
	}
}

func TestAssembleLowConfidenceIsAdvisory(t *testing.T) {
	c := skintone.Category{Depth: skintone.Medium, Undertone: skintone.Warm}
	got := Assemble(baseStats(), c, 0.55, models.PaletteRecommendations{}, DefaultOptions())

	if !got.Success {
		t.Error("Low confidence must not fail the result")
	}
	if !got.Details.RetrySuggested {
		t.Error("Expected retry suggestion below threshold")
	}
	if got.Details.RecommendedRetryIfBelow != 0.70 {
		t.Errorf("Expected retry threshold 0.70, got %f", got.Details.RecommendedRetryIfBelow)
	}
	if len(got.Warnings) != 1 || !strings.Contains(got.Warnings[0], "confidence 0.55") {
		t.Errorf("Expected one confidence warning, got %v", got.Warnings)
	}

	high := Assemble(baseStats(), c, 0.70, models.PaletteRecommendations{}, DefaultOptions())
	if high.Details.RetrySuggested {
		t.Error("Confidence equal to the threshold should not suggest retry")
	}

	// 0.6996 is reported as 0.70
	edge := Assemble(baseStats(), c, 0.6996, models.PaletteRecommendations{}, DefaultOptions())
	if edge.Details.RetrySuggested || len(edge.Warnings) != 0 {
		t.Errorf("Confidence that rounds to the threshold should not suggest retry, got %v", edge.Warnings)
	}
}

func TestAssembleFlagsHueGap(t *testing.T) {
	stats := baseStats()
	stats.MeanHue = 200
	c := skintone.Classify(stats.MeanBrightness, stats.MeanHue)

	got := Assemble(stats, c, 0.9, models.PaletteRecommendations{}, DefaultOptions())
	if got.Extended.ExtendedUndertone != "Neutral" {
		t.Errorf("GAP: expected Neutral fallback, got %s", got.Extended.ExtendedUndertone)
	}
	if !got.Extended.HueGapFallback {
		t.Error("GAP: expected hueGapFallback to be set")
	}
	if len(got.Warnings) != 1 || !strings.Contains(got.Warnings[0], "outside every undertone range") {
		t.Errorf("GAP: expected hue gap warning, got %v", got.Warnings)
	}
}

func TestMeasuredColor(t *testing.T) {
	tests := []struct {
		hue, sat, val float64
		want          string
	}{
		{0, 1, 255, "#FF0000"},
		{0, 0, 255, "#FFFFFF"},
		{120, 1, 255, "#00FF00"},
		{0, 2, 400, "#FF0000"},
	}
	for _, tt := range tests {
		got := measuredColor(SampleStatistics{MeanHue: tt.hue, MeanSaturation: tt.sat, MeanBrightness: tt.val})
		if got != tt.want {
			t.Errorf("measuredColor(%v,%v,%v): expected %s, got %s", tt.hue, tt.sat, tt.val, tt.want, got)
		}
	}
}

func TestLegacyHexFallback(t *testing.T) {
	if got := LegacyHex(skintone.LegacyCategory{Depth: "Unknown", Undertone: "Warm"}); got != "#D4A574" {
		t.Errorf("Expected fallback #D4A574, got %s", got)
	}
	for _, l := range skintone.LegacyCategories() {
		if LegacyHex(l) == "" {
			t.Errorf("No swatch for %s", l.Key())
		}
	}
}
