package skintone

// LegacyDepth is the three-level depth scheme older clients understand.
type LegacyDepth string

const (
	LegacyFair   LegacyDepth = "Fair"
	LegacyMedium LegacyDepth = "Medium"
	LegacyDark   LegacyDepth = "Dark"
)

// LegacyUndertone is the three-value undertone scheme.
type LegacyUndertone string

const (
	LegacyWarm    LegacyUndertone = "Warm"
	LegacyCool    LegacyUndertone = "Cool"
	LegacyNeutral LegacyUndertone = "Neutral"
)

// LegacyCategory is one of the nine legacy cells.
type LegacyCategory struct {
	Depth     LegacyDepth
	Undertone LegacyUndertone
}

func (l LegacyCategory) Key() string {
	return string(l.Depth) + "-" + string(l.Undertone)
}

// LegacyDepthOf collapses two extended levels into each legacy level.
func LegacyDepthOf(d DepthLevel) LegacyDepth {
	switch d {
	case VeryFair, Fair:
		return LegacyFair
	case Dark, Deep:
		return LegacyDark
	default:
		return LegacyMedium
	}
}

// LegacyUndertoneOf follows the spectrum: Warm and Golden are warm, Cool and
// Olive are cool, everything else is neutral.
func LegacyUndertoneOf(u Undertone) LegacyUndertone {
	switch u {
	case Warm, Golden:
		return LegacyWarm
	case Cool, Olive:
		return LegacyCool
	default:
		return LegacyNeutral
	}
}

// MapToLegacy maps an extended classification onto the legacy grid.
func MapToLegacy(d DepthLevel, u Undertone) LegacyCategory {
	return LegacyCategory{Depth: LegacyDepthOf(d), Undertone: LegacyUndertoneOf(u)}
}

// LegacyCategories returns the nine legacy cells.
func LegacyCategories() []LegacyCategory {
	out := make([]LegacyCategory, 0, 9)
	for _, d := range []LegacyDepth{LegacyFair, LegacyMedium, LegacyDark} {
		for _, u := range []LegacyUndertone{LegacyWarm, LegacyCool, LegacyNeutral} {
			out = append(out, LegacyCategory{Depth: d, Undertone: u})
		}
	}
	return out
}
