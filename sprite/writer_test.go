package sprite

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spritegen/spritegen/frame"
)

func TestRasterizeColorResolution(t *testing.T) {
	p := Palette{
		'@': color.NRGBA{0xff, 0x00, 0x00, 0xff},
		' ': color.NRGBA{},
	}
	f := frame.Normalize([]string{"@ "}, 1, 2)

	m := Rasterize(f, p, 1)
	assert.Equal(t, image.Rect(0, 0, 2, 1), m.Bounds())
	assert.Equal(t, color.NRGBA{0xff, 0x00, 0x00, 0xff}, m.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{}, m.NRGBAAt(1, 0))
}

func TestRasterizeUnknownCharacter(t *testing.T) {
	f := frame.Normalize([]string{"X"}, 1, 1)

	m := Rasterize(f, Palette{}, 1)
	assert.Equal(t, color.NRGBA{}, m.NRGBAAt(0, 0))
}

func TestRasterizeNearestNeighbour(t *testing.T) {
	c := color.NRGBA{0x12, 0x34, 0x56, 0xff}
	f := frame.Normalize([]string{"@"}, 1, 1)

	m := Rasterize(f, Palette{'@': c}, 3)
	require.Equal(t, image.Rect(0, 0, 3, 3), m.Bounds())
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, c, m.NRGBAAt(x, y))
		}
	}
}

func TestRasterizeDeterministic(t *testing.T) {
	p := Palette{'@': color.NRGBA{0x8b, 0x00, 0x00, 0xff}}
	f := frame.Normalize([]string{" @", "@ "}, 2, 2)

	var first []byte
	for i := 0; i < 3; i++ {
		b := new(bytes.Buffer)
		require.NoError(t, Encode(b, Rasterize(f, p, 2)))
		if first == nil {
			first = b.Bytes()
			continue
		}
		assert.Equal(t, first, b.Bytes())
	}
}

func sheetPalette() Palette {
	return Palette{
		'a': color.NRGBA{0xff, 0x00, 0x00, 0xff},
		'b': color.NRGBA{0x00, 0xff, 0x00, 0xff},
		'c': color.NRGBA{0x00, 0x00, 0xff, 0xff},
	}
}

func solid(r rune) frame.Frame {
	s := string([]rune{r, r})
	return frame.Normalize([]string{s, s}, 2, 2)
}

func TestRasterizeSheetPlacement(t *testing.T) {
	frames := map[string]frame.Frame{
		"a": solid('a'),
		"b": solid('b'),
		"c": solid('c'),
	}
	l := Layout{
		{"a", "b"},
		{"c", ""},
	}

	m, err := RasterizeSheet(frames, sheetPalette(), l, 1)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 4), m.Bounds())

	quadrant := func(ox, oy int) []color.NRGBA {
		var cs []color.NRGBA
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				cs = append(cs, m.NRGBAAt(ox+x, oy+y))
			}
		}
		return cs
	}

	red := color.NRGBA{0xff, 0x00, 0x00, 0xff}
	green := color.NRGBA{0x00, 0xff, 0x00, 0xff}
	blue := color.NRGBA{0x00, 0x00, 0xff, 0xff}

	for _, c := range quadrant(0, 0) {
		assert.Equal(t, red, c)
	}
	for _, c := range quadrant(2, 0) {
		assert.Equal(t, green, c)
	}
	for _, c := range quadrant(0, 2) {
		assert.Equal(t, blue, c)
	}
	for _, c := range quadrant(2, 2) {
		assert.Equal(t, color.NRGBA{}, c)
	}
}

func TestRasterizeSheetMissingFrame(t *testing.T) {
	frames := map[string]frame.Frame{
		"a": solid('a'),
	}
	l := Layout{
		{"a", "nonexistent"},
	}

	m, err := RasterizeSheet(frames, sheetPalette(), l, 1)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 2), m.Bounds())
	assert.Equal(t, color.NRGBA{}, m.NRGBAAt(2, 0))
	assert.Equal(t, color.NRGBA{}, m.NRGBAAt(3, 1))
}

func TestRasterizeSheetDimensionMismatch(t *testing.T) {
	frames := map[string]frame.Frame{
		"a": solid('a'),
		"b": frame.Normalize([]string{"bbb"}, 3, 3),
	}
	l := Layout{
		{"a", "b"},
	}

	_, err := RasterizeSheet(frames, sheetPalette(), l, 1)
	assert.Error(t, err)
}

func TestRasterizeSheetNoPlacedFrames(t *testing.T) {
	m, err := RasterizeSheet(nil, nil, CharacterLayout, 1)
	require.NoError(t, err)

	// Falls back to the canonical frame size
	assert.Equal(t, image.Rect(0, 0, 4*frame.Width, 5*frame.Height), m.Bounds())
}

func TestRasterizeSheetScaled(t *testing.T) {
	frames := map[string]frame.Frame{
		"a": solid('a'),
	}
	l := Layout{
		{"", "a"},
	}

	m, err := RasterizeSheet(frames, sheetPalette(), l, 2)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 8, 4), m.Bounds())

	red := color.NRGBA{0xff, 0x00, 0x00, 0xff}
	assert.Equal(t, color.NRGBA{}, m.NRGBAAt(0, 0))
	assert.Equal(t, red, m.NRGBAAt(4, 0))
	assert.Equal(t, red, m.NRGBAAt(7, 3))
}

func TestEncodePNG(t *testing.T) {
	f := frame.Normalize([]string{"@"}, 1, 1)
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, Rasterize(f, sheetPalette(), 4)))

	m, err := png.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), m.Bounds())
}
