package sprite

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette maps a palette key, a single character, to a color. Characters
// missing from the palette render as fully transparent; that is policy,
// not an error, as the upstream generator invents characters from time to
// time.
type Palette map[rune]color.NRGBA

func (p Palette) color(r rune) color.NRGBA {
	if c, ok := p[r]; ok {
		return c
	}
	return color.NRGBA{}
}

// ParseHexColor parses an RRGGBB or RRGGBBAA hex color with an optional
// leading '#'. Six digits yield an opaque color, eight carry their own
// alpha. Any other length is an error.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("sprite: invalid hex color %q", s)
	}
	switch len(h) {
	case 6:
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	case 8:
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("sprite: invalid hex color %q", s)
	}
}

// HexColor encodes c in the notation accepted by ParseHexColor. Opaque
// colors encode as #RRGGBB, anything else as #RRGGBBAA.
func HexColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParsePalette builds a Palette from a color map of palette keys to hex
// color strings, the shape found in animation artifacts. Keys must be
// exactly one character.
func ParsePalette(m map[string]string) (Palette, error) {
	p := make(Palette, len(m))
	for k, v := range m {
		runes := []rune(k)
		if len(runes) != 1 {
			return nil, fmt.Errorf("sprite: palette key %q is not a single character", k)
		}
		c, err := ParseHexColor(v)
		if err != nil {
			return nil, err
		}
		p[runes[0]] = c
	}
	return p, nil
}
