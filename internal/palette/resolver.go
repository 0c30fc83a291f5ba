package palette

import (
	"fmt"

	"github.com/anime-shed/glowmatch-go/internal/skintone"
	"github.com/anime-shed/glowmatch-go/pkg/models"
)

// Resolver turns table entries into response-ready recommendations. It is
// safe for concurrent use because the table never changes.
type Resolver struct {
	table *Table
}

func NewResolver(table *Table) *Resolver {
	return &Resolver{table: table}
}

func (r *Resolver) Table() *Table {
	return r.table
}

// Resolve returns recommendations for c. A PaletteNotFoundError means the
// table is incomplete, which Decode already rules out.
func (r *Resolver) Resolve(c skintone.Category) (models.PaletteRecommendations, error) {
	entry, err := r.table.Lookup(c)
	if err != nil {
		return models.PaletteRecommendations{}, err
	}

	return models.PaletteRecommendations{
		Category: c.Key(),
		Recommendations: models.Recommendations{
			Clothing: models.ClothingRecommendation{
				BestColors: entry.Clothing,
				Description: fmt.Sprintf("Recommended clothing colors for %s skin with %s undertone",
					c.Depth, c.Undertone),
			},
			Makeup: models.MakeupRecommendation{
				Foundation: shadeSet(entry.Makeup.Foundation),
				Lipstick:   shadeSet(entry.Makeup.Lipstick),
				Eyeshadow:  shadeSet(entry.Makeup.Eyeshadow),
			},
			Jewelry: models.JewelryRecommendation{
				BestMetals:  names(entry.Jewelry.Metals),
				MetalHex:    hexes(entry.Jewelry.Metals),
				StoneColors: names(entry.Jewelry.Stones),
				StoneHex:    hexes(entry.Jewelry.Stones),
			},
		},
		Seasonal: Seasonal(),
	}, nil
}

// CheckComplete resolves every canonical category once.
func (r *Resolver) CheckComplete() error {
	for _, c := range skintone.AllCategories() {
		if _, err := r.Resolve(c); err != nil {
			return err
		}
	}
	return nil
}

func shadeSet(colors []NamedColor) models.ShadeSet {
	return models.ShadeSet{Shades: names(colors), HexCodes: hexes(colors)}
}

func names(colors []NamedColor) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		if c.Name != "" {
			out[i] = c.Name
		} else {
			out[i] = ColorName(c.Hex)
		}
	}
	return out
}

func hexes(colors []NamedColor) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex
	}
	return out
}
