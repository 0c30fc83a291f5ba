package palette

import "github.com/anime-shed/glowmatch-go/pkg/models"

// Seasonal lists are the same for every category.
var (
	springColors = []string{"#FFB6C1", "#98FB98", "#87CEEB", "#FFE4B5"}
	summerColors = []string{"#00CED1", "#87CEEB", "#00FA9A", "#20B2AA"}
	autumnColors = []string{"#8B4513", "#CD853F", "#FFD700", "#FF8C00"}
	winterColors = []string{"#4B0082", "#00008B", "#C0C0C0", "#FFFFFF"}
)

var conditionAdjustments = models.SkinConditionAdjustments{
	Dry:       "Use hydrating makeup with luminous finish for dry skin",
	Oily:      "Choose matte foundation for oily skin",
	Normal:    "Any well-matched shade works",
	Sensitive: "Use hypoallergenic, fragrance-free formulas",
}

// Seasonal returns a fresh copy of the seasonal block.
func Seasonal() models.SeasonalRecommendations {
	return models.SeasonalRecommendations{
		Spring:                   append([]string(nil), springColors...),
		Summer:                   append([]string(nil), summerColors...),
		Autumn:                   append([]string(nil), autumnColors...),
		Winter:                   append([]string(nil), winterColors...),
		SkinConditionAdjustments: conditionAdjustments,
	}
}
