package gen

import (
	"image/color"
	"strings"

	"github.com/spritegen/spritegen/frame"
	"github.com/spritegen/spritegen/sprite"
)

// Shade palettes per color word. The four keyed characters carry the
// character's identity, the remaining drawing characters share fixed
// neutral shades. Order matters; the first word found in the description
// wins.
var colorWords = []struct {
	word   string
	shades [4]string
}{
	{"red", [4]string{"#8B0000", "#CD5C5C", "#FFB6C1", "#A52A2A"}},
	{"blue", [4]string{"#00008B", "#4169E1", "#87CEEB", "#1E90FF"}},
	{"green", [4]string{"#006400", "#32CD32", "#90EE90", "#228B22"}},
	{"yellow", [4]string{"#B8860B", "#FFD700", "#FFFFE0", "#DAA520"}},
	{"purple", [4]string{"#4B0082", "#8B008B", "#DDA0DD", "#9370DB"}},
	{"orange", [4]string{"#CC5500", "#FF8C00", "#FFD700", "#FFA500"}},
	{"pink", [4]string{"#C71585", "#FF69B4", "#FFB6C1", "#FF1493"}},
	{"brown", [4]string{"#654321", "#8B4513", "#D2B48C", "#A0522D"}},
	{"gray", [4]string{"#2F4F4F", "#696969", "#D3D3D3", "#808080"}},
	{"black", [4]string{"#000000", "#36454F", "#696969", "#2F2F2F"}},
}

// ColorMap derives a palette from a character description by looking for a
// known color word, falling back to red. The drawing vocabulary never
// varies, only the shades behind it.
func ColorMap(description string) sprite.Palette {
	shades := colorWords[0].shades
	desc := strings.ToLower(description)
	for _, cw := range colorWords {
		if strings.Contains(desc, cw.word) {
			shades = cw.shades
			break
		}
	}

	return sprite.Palette{
		'@':         mustColor(shades[0]),
		'#':         mustColor(shades[1]),
		'+':         mustColor(shades[2]),
		'=':         mustColor(shades[3]),
		'-':         mustColor("#D3D3D3"),
		'.':         mustColor("#696969"),
		frame.Empty: mustColor("#00000000"),
	}
}

func mustColor(s string) color.NRGBA {
	c, err := sprite.ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
