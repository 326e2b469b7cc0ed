package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frameResponse struct {
	Frame []string `json:"frame"`
}

func TestExtractJSONDirect(t *testing.T) {
	var v frameResponse
	require.NoError(t, ExtractJSON(`{"frame": ["@@"]}`, &v))
	assert.Equal(t, []string{"@@"}, v.Frame)
}

func TestExtractJSONFenced(t *testing.T) {
	for _, s := range []string{
		"```\n{\"frame\": [\"@@\"]}\n```",
		"```json\n{\"frame\": [\"@@\"]}\n```",
	} {
		var v frameResponse
		require.NoError(t, ExtractJSON(s, &v), s)
		assert.Equal(t, []string{"@@"}, v.Frame)
	}
}

func TestExtractJSONEmbedded(t *testing.T) {
	var v frameResponse
	s := "Here is your sprite:\n{\"frame\": [\"@@\"]}\nEnjoy!"
	require.NoError(t, ExtractJSON(s, &v))
	assert.Equal(t, []string{"@@"}, v.Frame)
}

func TestExtractJSONFailure(t *testing.T) {
	var v frameResponse
	assert.Error(t, ExtractJSON("", &v))
	assert.Error(t, ExtractJSON("no json here", &v))
	assert.Error(t, ExtractJSON("{broken", &v))
}
