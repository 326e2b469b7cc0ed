/*
Package frame implements the canonical text frame used as the intermediate
representation for ASCII sprite art.

A canonical frame is an exact grid of single characters, one character per
pixel. Frames coming back from a language model routinely arrive with
ragged line lengths or the wrong number of lines, so construction goes
through Normalize which clips and pads the input to the requested size.
Normalize is total; it cannot fail and always returns a well-formed frame.
*/
package frame

import "strings"

const (
	// Width and Height are the frame dimensions used by the character
	// sprite pipeline. Normalize accepts any target size; these are
	// only the defaults used throughout.
	Width  = 16
	Height = 16

	// Empty is the padding character, rendered as fully transparent.
	Empty = ' '
)

// Frame is a canonical text frame, one string per row. Every row holds the
// same number of characters and the row count is fixed at construction.
type Frame []string

// Normalize clips and pads lines into a canonical height by width frame.
// Trailing whitespace is stripped from each line before padding. Lines
// longer than width are truncated, shorter ones padded with spaces on the
// right. Missing rows are appended as all-space rows and excess rows are
// discarded. An empty input yields an all-space frame.
func Normalize(lines []string, height, width int) Frame {
	f := make(Frame, 0, height)
	for _, line := range lines {
		if len(f) == height {
			break
		}
		f = append(f, fitLine(line, width))
	}
	for len(f) < height {
		f = append(f, strings.Repeat(string(Empty), width))
	}
	return f
}

func fitLine(line string, width int) string {
	line = strings.TrimRight(line, " \t\r")
	runes := []rune(line)
	if len(runes) > width {
		return string(runes[:width])
	}
	return line + strings.Repeat(string(Empty), width-len(runes))
}

// Blank returns an all-space frame of the given size.
func Blank(height, width int) Frame {
	return Normalize(nil, height, width)
}

// Height returns the number of rows.
func (f Frame) Height() int {
	return len(f)
}

// Width returns the number of characters per row.
func (f Frame) Width() int {
	if len(f) == 0 {
		return 0
	}
	return len([]rune(f[0]))
}

// Equal reports whether two frames hold identical cells. The generator
// uses it to spot a model returning the same drawing for every walk phase.
func (f Frame) Equal(g Frame) bool {
	if len(f) != len(g) {
		return false
	}
	for i := range f {
		if f[i] != g[i] {
			return false
		}
	}
	return true
}
