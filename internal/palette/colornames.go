package palette

import (
	"fmt"
	"strings"
)

var colorNames = map[string]string{
	"#000000": "Black",
	"#0000CD": "Medium Blue",
	"#00008B": "Dark Blue",
	"#000080": "Navy",
	"#006400": "Dark Green",
	"#006666": "Deep Teal",
	"#008080": "Teal",
	"#00CED1": "Turquoise",
	"#00FA9A": "Medium Spring Green",
	"#191970": "Midnight Blue",
	"#20B2AA": "Light Sea Green",
	"#228B22": "Forest Green",
	"#2E8B57": "Sea Green",
	"#3CB371": "Medium Sea Green",
	"#3D3D3D": "Very Dark Gray",
	"#4169E1": "Royal Blue",
	"#4682B4": "Steel Blue",
	"#483D8B": "Dark Slate Blue",
	"#4B0082": "Indigo",
	"#50C878": "Emerald",
	"#545454": "Charcoal",
	"#556B2F": "Dark Olive Green",
	"#5F9EA0": "Cadet Blue",
	"#66CDAA": "Medium Aquamarine",
	"#696969": "Dim Gray",
	"#6B8E23": "Olive Drab",
	"#704214": "Sepia",
	"#708090": "Slate Gray",
	"#722F37": "Wine",
	"#800000": "Maroon",
	"#800080": "Purple",
	"#808000": "Olive",
	"#808080": "Gray",
	"#87CEEB": "Sky Blue",
	"#8A2BE2": "Blue Violet",
	"#8B0000": "Dark Red",
	"#8B008B": "Dark Magenta",
	"#8B4513": "Saddle Brown",
	"#8B6914": "Dark Yellow",
	"#8FBC8F": "Dark Sea Green",
	"#9370DB": "Medium Purple",
	"#9400D3": "Dark Violet",
	"#98FB98": "Pale Green",
	"#9932CC": "Dark Orchid",
	"#A0522D": "Sienna",
	"#A0826D": "Cool Taupe",
	"#A52A2A": "Brown",
	"#A9A9A9": "Dark Gray",
	"#ADD8E6": "Light Blue",
	"#B0E0E6": "Powder Blue",
	"#B22222": "Firebrick",
	"#B76E79": "Rose Gold",
	"#B87333": "Copper",
	"#B8860B": "Dark Goldenrod",
	"#BC8F8F": "Rosy Brown",
	"#BDB76B": "Dark Khaki",
	"#C04000": "Mahogany",
	"#C0C0C0": "Silver",
	"#C71585": "Medium Violet Red",
	"#C9A877": "Honey Beige",
	"#CD5C5C": "Indian Red",
	"#CD7F32": "Bronze",
	"#CD853F": "Peru",
	"#D2691E": "Chocolate",
	"#D2B48C": "Tan",
	"#D4A574": "Warm Tan",
	"#DAA520": "Goldenrod",
	"#DB7093": "Pale Violet Red",
	"#DC143C": "Crimson",
	"#DEB887": "Burlywood",
	"#E0FFFF": "Light Cyan",
	"#E34234": "Vermilion",
	"#E6E6FA": "Lavender",
	"#E75480": "Raspberry",
	"#E8E8E8": "Platinum",
	"#E9967A": "Dark Salmon",
	"#EEE8AA": "Pale Goldenrod",
	"#F08080": "Light Coral",
	"#F0F8FF": "Alice Blue",
	"#F4A460": "Sandy Brown",
	"#F5DEB3": "Wheat",
	"#F5F5DC": "Beige",
	"#FA8072": "Salmon",
	"#FAEBD7": "Antique White",
	"#FF0000": "Red",
	"#FF1493": "Deep Pink",
	"#FF4500": "Orange Red",
	"#FF6347": "Tomato",
	"#FF69B4": "Hot Pink",
	"#FF7F50": "Coral",
	"#FF8C00": "Dark Orange",
	"#FFA07A": "Light Salmon",
	"#FFA500": "Orange",
	"#FFB347": "Peach",
	"#FFB6C1": "Light Pink",
	"#FFBF00": "Amber",
	"#FFD700": "Gold",
	"#FFDAB9": "Peach Puff",
	"#FFE4B5": "Moccasin",
	"#FFFAFA": "Snow",
	"#FFFFFF": "White",
}

// ColorName returns a human-readable name for a hex code. Lookup ignores
// case; unknown codes render as "Color <hex>" with the input unchanged.
func ColorName(hex string) string {
	if name, ok := colorNames[strings.ToUpper(strings.TrimSpace(hex))]; ok {
		return name
	}
	return fmt.Sprintf("Color %s", hex)
}
