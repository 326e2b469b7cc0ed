package gen

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spritegen/spritegen/frame"
)

func TestColorMap(t *testing.T) {
	p := ColorMap("blue wizard")
	assert.Equal(t, color.NRGBA{0x00, 0x00, 0x8b, 0xff}, p['@'])

	// Unrecognised descriptions fall back to red
	p = ColorMap("mysterious stranger")
	assert.Equal(t, color.NRGBA{0x8b, 0x00, 0x00, 0xff}, p['@'])

	// Case insensitive
	p = ColorMap("GREEN goblin")
	assert.Equal(t, color.NRGBA{0x00, 0x64, 0x00, 0xff}, p['@'])
}

func TestColorMapVocabulary(t *testing.T) {
	p := ColorMap("red warrior")

	for _, r := range "@#+=-." {
		c, ok := p[r]
		assert.True(t, ok, string(r))
		assert.Equal(t, uint8(0xff), c.A, string(r))
	}

	assert.Equal(t, color.NRGBA{}, p[frame.Empty])
}
