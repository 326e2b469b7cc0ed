package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spritegen/spritegen/frame"
)

func TestDistinctFrames(t *testing.T) {
	a := frame.Normalize([]string{"a"}, 2, 2)
	b := frame.Normalize([]string{"b"}, 2, 2)

	assert.True(t, DistinctFrames(map[string]frame.Frame{
		"0": a,
		"1": b,
		"2": a,
	}))

	assert.False(t, DistinctFrames(map[string]frame.Frame{
		"0": a,
		"1": a,
		"2": a,
	}))

	// A lone frame has nothing to differ from
	assert.True(t, DistinctFrames(map[string]frame.Frame{"0": a}))
	assert.True(t, DistinctFrames(nil))
}
