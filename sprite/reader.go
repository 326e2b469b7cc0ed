package sprite

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/spritegen/spritegen/frame"
)

// FromImage converts an arbitrary image into a canonical frame plus the
// palette needed to rasterize it back. The image is quantized down to at
// most one color per drawing character and colors are assigned to the
// characters darkest first, so @ ends up as the main body color. Mostly
// transparent pixels become the space character.
func FromImage(m image.Image) (frame.Frame, Palette) {
	b := m.Bounds()

	q := quantize.MedianCutQuantizer{AddTransparent: true}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, len(PaletteChars)+1), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	// Split the quantized palette into transparent entries and opaque
	// entries sorted by luminance.
	key := make(map[color.Color]rune, len(pm.Palette))
	opaque := make(color.Palette, 0, len(pm.Palette))
	for _, c := range pm.Palette {
		if _, _, _, a := c.RGBA(); a < 0x8000 {
			key[c] = frame.Empty
			continue
		}
		opaque = append(opaque, c)
	}
	sort.Slice(opaque, func(i, j int) bool {
		return luminance(opaque[i]) < luminance(opaque[j])
	})

	chars := []rune(PaletteChars)
	p := make(Palette, len(opaque)+1)
	p[frame.Empty] = color.NRGBA{}
	for i, c := range opaque {
		if i >= len(chars) {
			break
		}
		key[c] = chars[i]
		p[chars[i]] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}

	rows := make([]string, 0, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := make([]rune, 0, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			r, ok := key[pm.At(x, y)]
			if !ok {
				r = frame.Empty
			}
			row = append(row, r)
		}
		rows = append(rows, string(row))
	}

	return frame.Normalize(rows, b.Dy(), b.Dx()), p
}

func luminance(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return 2126*r + 7152*g + 722*b
}
