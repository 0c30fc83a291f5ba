package models

type ClothingRecommendation struct {
	BestColors  []string `json:"bestColors"`
	Description string   `json:"description"`
}

// ShadeSet pairs shade names with their hex codes by index.
type ShadeSet struct {
	Shades   []string `json:"shades"`
	HexCodes []string `json:"hexCodes"`
}

type MakeupRecommendation struct {
	Foundation ShadeSet `json:"foundation"`
	Lipstick   ShadeSet `json:"lipstick"`
	Eyeshadow  ShadeSet `json:"eyeshadow"`
}

type JewelryRecommendation struct {
	BestMetals  []string `json:"bestMetals"`
	MetalHex    []string `json:"metalHex"`
	StoneColors []string `json:"stoneColors"`
	StoneHex    []string `json:"stoneHex"`
}

// Recommendations is the legacy-shaped recommendation block.
type Recommendations struct {
	Clothing ClothingRecommendation `json:"clothing"`
	Makeup   MakeupRecommendation   `json:"makeup"`
	Jewelry  JewelryRecommendation  `json:"jewelry"`
}

type SkinConditionAdjustments struct {
	Dry       string `json:"dry"`
	Oily      string `json:"oily"`
	Normal    string `json:"normal"`
	Sensitive string `json:"sensitive"`
}

type SeasonalRecommendations struct {
	Spring                   []string                 `json:"spring"`
	Summer                   []string                 `json:"summer"`
	Autumn                   []string                 `json:"autumn"`
	Winter                   []string                 `json:"winter"`
	SkinConditionAdjustments SkinConditionAdjustments `json:"skinConditionAdjustments"`
}

// PaletteRecommendations is everything resolved for one extended category.
type PaletteRecommendations struct {
	Category        string                  `json:"category"`
	Recommendations Recommendations         `json:"recommendations"`
	Seasonal        SeasonalRecommendations `json:"seasonalRecommendations"`
}
