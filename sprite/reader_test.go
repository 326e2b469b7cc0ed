package sprite

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spritegen/spritegen/frame"
)

func TestFromImage(t *testing.T) {
	dark := color.NRGBA{0x20, 0x10, 0x10, 0xff}
	light := color.NRGBA{0xe0, 0xe0, 0xf0, 0xff}

	m := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			switch {
			case y < 2:
				m.SetNRGBA(x, y, dark)
			default:
				m.SetNRGBA(x, y, light)
			}
		}
	}

	f, p := FromImage(m)
	require.Equal(t, 4, f.Height())
	require.Equal(t, 4, f.Width())

	// Darkest color claims the first drawing character
	assert.Equal(t, "@@@@", f[0])
	assert.Equal(t, dark, p['@'])

	// Round trip through the rasterizer reproduces the image
	assert.Equal(t, m.Pix, Rasterize(f, p, 1).Pix)
}

func TestFromImageTransparency(t *testing.T) {
	opaque := color.NRGBA{0x80, 0x40, 0x20, 0xff}

	m := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	m.SetNRGBA(0, 0, opaque)

	f, p := FromImage(m)
	require.Equal(t, 1, f.Height())
	require.Equal(t, 2, f.Width())

	cells := []rune(f[0])
	assert.NotEqual(t, rune(frame.Empty), cells[0])
	assert.Equal(t, rune(frame.Empty), cells[1])
	assert.Equal(t, color.NRGBA{}, p[frame.Empty])
}
