package skintone

import (
	"fmt"
	"strings"

	apperrors "github.com/anime-shed/glowmatch-go/internal/errors"
)

// Category is an extended (depth, undertone) pair.
type Category struct {
	Depth     DepthLevel
	Undertone Undertone
}

// Key is the palette lookup key, "<Depth>-<Undertone>" using display names.
func (c Category) Key() string {
	return c.Depth.String() + "-" + c.Undertone.String()
}

func (c Category) String() string {
	return c.Key()
}

func (c Category) Valid() bool {
	return c.Depth.Valid() && c.Undertone.Valid()
}

// Legacy maps the category onto the nine-cell legacy grid.
func (c Category) Legacy() LegacyCategory {
	return MapToLegacy(c.Depth, c.Undertone)
}

// Classify builds the category for a mean brightness and mean hue.
func Classify(brightness, hue float64) Category {
	return Category{Depth: ClassifyDepth(brightness), Undertone: ClassifyUndertone(hue)}
}

// AllCategories returns the 30 extended categories, depth-major.
func AllCategories() []Category {
	out := make([]Category, 0, len(Depths())*len(Undertones()))
	for _, d := range Depths() {
		for _, u := range Undertones() {
			out = append(out, Category{Depth: d, Undertone: u})
		}
	}
	return out
}

// ParseCategoryKey is the inverse of Key. Depth names contain no hyphen, so
// the key splits on its last one.
func ParseCategoryKey(key string) (Category, error) {
	i := strings.LastIndex(key, "-")
	if i <= 0 || i == len(key)-1 {
		return Category{}, apperrors.NewValidationError(
			fmt.Sprintf("category key %q must look like <Depth>-<Undertone>", key), nil)
	}
	d, err := ParseDepth(key[:i])
	if err != nil {
		return Category{}, err
	}
	u, err := ParseUndertone(key[i+1:])
	if err != nil {
		return Category{}, err
	}
	return Category{Depth: d, Undertone: u}, nil
}
