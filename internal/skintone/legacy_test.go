package skintone

import "testing"

func TestMapToLegacy(t *testing.T) {
	tests := []struct {
		depth     DepthLevel
		undertone Undertone
		want      LegacyCategory
	}{
		{VeryFair, Warm, LegacyCategory{LegacyFair, LegacyWarm}},
		{Deep, Olive, LegacyCategory{LegacyDark, LegacyCool}},
		{Medium, Neutral, LegacyCategory{LegacyMedium, LegacyNeutral}},
		{Fair, Golden, LegacyCategory{LegacyFair, LegacyWarm}},
		{Tan, Cool, LegacyCategory{LegacyMedium, LegacyCool}},
		{Dark, Neutral, LegacyCategory{LegacyDark, LegacyNeutral}},
	}

	for _, tt := range tests {
		if got := MapToLegacy(tt.depth, tt.undertone); got != tt.want {
			t.Errorf("MapToLegacy(%s, %s): expected %s, got %s", tt.depth, tt.undertone, tt.want.Key(), got.Key())
		}
	}
}

func TestMapToLegacyUnknownValuesFallBack(t *testing.T) {
	got := MapToLegacy(DepthLevel(42), Undertone(42))
	if got.Depth != LegacyMedium || got.Undertone != LegacyNeutral {
		t.Errorf("Expected Medium-Neutral fallback, got %s", got.Key())
	}
}

func TestEveryCategoryMapsToOneOfNineLegacyCells(t *testing.T) {
	cells := make(map[LegacyCategory]int)
	for _, l := range LegacyCategories() {
		cells[l] = 0
	}
	for _, c := range AllCategories() {
		l := c.Legacy()
		if _, ok := cells[l]; !ok {
			t.Fatalf("%s mapped to unknown legacy cell %s", c.Key(), l.Key())
		}
		cells[l]++
	}
	for l, n := range cells {
		if n == 0 {
			t.Errorf("Legacy cell %s is never produced", l.Key())
		}
	}
}
