// Package skintone classifies aggregated skin-pixel statistics into depth and
// undertone categories and maps them onto the coarse legacy scheme.
package skintone

import (
	"fmt"
	"strings"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
)

// DepthLevel is one of six ordered depth categories, lightest first.
type DepthLevel int

const (
	VeryFair DepthLevel = iota + 1
	Fair
	Medium
	Tan
	Dark
	Deep
)

type depthInfo struct {
	name       string
	threshold  float64
	percentile string
}

// indexed by DepthLevel; slot 0 is unused
var depthTable = [...]depthInfo{
	{},
	{"Very Fair", 210, "82-100%"},
	{"Fair", 180, "71-82%"},
	{"Medium", 140, "55-71%"},
	{"Tan", 100, "39-55%"},
	{"Dark", 60, "24-39%"},
	{"Deep", 0, "0-24%"},
}

// Depths returns every depth level in ascending level order.
func Depths() []DepthLevel {
	return []DepthLevel{VeryFair, Fair, Medium, Tan, Dark, Deep}
}

func (d DepthLevel) Valid() bool {
	return d >= VeryFair && d <= Deep
}

// String returns the display name.
func (d DepthLevel) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DepthLevel(%d)", int(d))
	}
	return depthTable[d].name
}

// Level is the 1..6 ordinal.
func (d DepthLevel) Level() int {
	return int(d)
}

// Threshold is the brightness a sample must exceed to reach this level.
func (d DepthLevel) Threshold() float64 {
	if !d.Valid() {
		return 0
	}
	return depthTable[d].threshold
}

// Percentile is the population band covered by this level.
func (d DepthLevel) Percentile() string {
	if !d.Valid() {
		return ""
	}
	return depthTable[d].percentile
}

// ClassifyDepth maps a mean brightness on the 0-255 scale to a depth level.
// Comparisons are strict, so a value exactly on a threshold belongs to the
// darker level. Values outside 0-255 and NaN still resolve (NaN to Deep).
func ClassifyDepth(brightness float64) DepthLevel {
	switch {
	case brightness > 210:
		return VeryFair
	case brightness > 180:
		return Fair
	case brightness > 140:
		return Medium
	case brightness > 100:
		return Tan
	case brightness > 60:
		return Dark
	default:
		return Deep
	}
}

// ParseDepth accepts a display name ("Very Fair") or its compact form
// ("veryfair", "very_fair"), case-insensitively.
func ParseDepth(name string) (DepthLevel, error) {
	want := compact(name)
	for _, d := range Depths() {
		if compact(d.String()) == want {
			return d, nil
		}
	}
	return 0, apperrors.NewValidationError(fmt.Sprintf("unknown depth %q", name), nil)
}

func compact(s string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}
