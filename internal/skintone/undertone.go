package skintone

import (
	"fmt"
	"math"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
)

// Undertone is one of five hue-based undertone categories.
type Undertone int

const (
	Warm Undertone = iota + 1
	Cool
	Neutral
	Olive
	Golden
)

// HueRange is the nominal hue band of an undertone, in degrees.
type HueRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type undertoneInfo struct {
	name string
	hue  HueRange
	warm bool
	cool bool
}

var undertoneTable = [...]undertoneInfo{
	{},
	{"Warm", HueRange{0, 30}, true, false},
	{"Cool", HueRange{330, 360}, false, true},
	{"Neutral", HueRange{30, 60}, false, false},
	{"Olive", HueRange{60, 90}, false, true},
	{"Golden", HueRange{90, 120}, true, false},
}

// Undertones returns every undertone in declaration order.
func Undertones() []Undertone {
	return []Undertone{Warm, Cool, Neutral, Olive, Golden}
}

func (u Undertone) Valid() bool {
	return u >= Warm && u <= Golden
}

func (u Undertone) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Undertone(%d)", int(u))
	}
	return undertoneTable[u].name
}

func (u Undertone) HueRange() HueRange {
	if !u.Valid() {
		return HueRange{}
	}
	return undertoneTable[u].hue
}

// IsWarmSpectrum is true for Warm and Golden.
func (u Undertone) IsWarmSpectrum() bool {
	return u.Valid() && undertoneTable[u].warm
}

// IsCoolSpectrum is true for Cool and Olive.
func (u Undertone) IsCoolSpectrum() bool {
	return u.Valid() && undertoneTable[u].cool
}

// NormalizeHue folds any finite hue into [0, 360).
func NormalizeHue(hue float64) float64 {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// ClassifyUndertone maps a mean hue in degrees to an undertone. The hue is
// normalized first. Rules are evaluated in order and the first match wins;
// hues in (120, 330) match no rule and resolve to Neutral.
func ClassifyUndertone(hue float64) Undertone {
	h := NormalizeHue(hue)
	switch {
	case h >= 0 && h <= 30:
		return Warm
	case h > 30 && h <= 60:
		return Neutral
	case h > 60 && h <= 90:
		return Olive
	case h > 90 && h <= 120:
		return Golden
	case h >= 330 && h < 360:
		return Cool
	default:
		return Neutral
	}
}

// InHueGap reports whether a hue falls in the band no undertone rule covers,
// so ClassifyUndertone returned Neutral by fallback.
func InHueGap(hue float64) bool {
	h := NormalizeHue(hue)
	return h > 120 && h < 330
}

// ParseUndertone accepts a display name, case-insensitively.
func ParseUndertone(name string) (Undertone, error) {
	want := compact(name)
	for _, u := range Undertones() {
		if compact(u.String()) == want {
			return u, nil
		}
	}
	return 0, apperrors.NewValidationError(fmt.Sprintf("unknown undertone %q", name), nil)
}
