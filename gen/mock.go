package gen

import (
	"context"
	"encoding/json"
	"strings"
)

// Mock is an offline Client returning a fixed humanoid drawing. It answers
// walk prompts with three genuinely different poses and idle prompts with
// the standing pose, so the full pipeline, including the distinct-frames
// check, can run without network access or an API key.
type Mock struct{}

var mockStride = []string{
	"                ",
	"      ....      ",
	"     .@@@@.     ",
	"     .@##@.     ",
	"      .@@.      ",
	"    ==+##+==    ",
	"   =- +##+ -=   ",
	"      +##+      ",
	"      +##+      ",
	"     -=  =-     ",
	"    -=    =-    ",
	"   -=      =-   ",
	"  .=        =.  ",
	"  ..        ..  ",
	"                ",
	"                ",
}

var mockStand = []string{
	"                ",
	"      ....      ",
	"     .@@@@.     ",
	"     .@##@.     ",
	"      .@@.      ",
	"    =+=##=+=    ",
	"    = +##+ =    ",
	"      +##+      ",
	"      +##+      ",
	"      =  =      ",
	"      =  =      ",
	"      =  =      ",
	"      .  .      ",
	"      .  .      ",
	"                ",
	"                ",
}

// mirror flips a frame horizontally, giving the opposite stride.
func mirror(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		runes := []rune(line)
		for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
			runes[l], runes[r] = runes[r], runes[l]
		}
		out[i] = string(runes)
	}
	return out
}

// Complete inspects the prompt for the shape it asks for and fabricates a
// matching JSON response.
func (Mock) Complete(_ context.Context, prompt string) (string, error) {
	var v interface{}
	if strings.Contains(prompt, `"f0"`) {
		v = map[string][]string{
			"f0": mockStride,
			"f1": mockStand,
			"f2": mirror(mockStride),
		}
	} else {
		v = map[string][]string{
			"frame": mockStand,
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
