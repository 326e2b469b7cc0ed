/*
Package artifact reads and writes the animation interchange JSON produced
by the frame generator.

An artifact carries a color_map of palette keys to hex color strings and
either a single frame or a named set of frames, each frame a list of text
lines. Frame content is never trusted; every frame is normalized to the
requested dimensions on decode. The color map on the other hand is
configuration, so an invalid hex color is reported rather than repaired.
*/
package artifact

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/spritegen/spritegen/frame"
	"github.com/spritegen/spritegen/sprite"
)

// SingleName is the frame name given to the bare frame field of a single
// frame artifact.
const SingleName = "frame"

// Animation is a decoded artifact: a palette plus named canonical frames.
type Animation struct {
	Palette sprite.Palette
	Frames  map[string]frame.Frame
}

type artifactJSON struct {
	ColorMap map[string]string   `json:"color_map"`
	Frame    []string            `json:"frame,omitempty"`
	Frames   map[string][]string `json:"frames,omitempty"`
}

// Decode reads an artifact from r, normalizing every frame to height rows
// by width columns.
func Decode(r io.Reader, height, width int) (*Animation, error) {
	var raw artifactJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	p, err := sprite.ParsePalette(raw.ColorMap)
	if err != nil {
		return nil, err
	}

	frames := make(map[string]frame.Frame, len(raw.Frames)+1)
	for name, lines := range raw.Frames {
		frames[name] = frame.Normalize(lines, height, width)
	}
	if raw.Frame != nil {
		frames[SingleName] = frame.Normalize(raw.Frame, height, width)
	}
	if len(frames) == 0 {
		return nil, errors.New("artifact: no frames")
	}

	return &Animation{Palette: p, Frames: frames}, nil
}

// Load reads an artifact file from disk.
func Load(path string, height, width int) (*Animation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, height, width)
}

// Encode writes the animation to w in artifact form.
func (a *Animation) Encode(w io.Writer) error {
	raw := artifactJSON{
		ColorMap: make(map[string]string, len(a.Palette)),
		Frames:   make(map[string][]string, len(a.Frames)),
	}
	for k, c := range a.Palette {
		raw.ColorMap[string(k)] = sprite.HexColor(c)
	}
	for name, f := range a.Frames {
		raw.Frames[name] = f
	}

	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(&raw)
}

// Save writes the animation to an artifact file.
func (a *Animation) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := a.Encode(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// WriteSheet composites the animation into a single sheet PNG at path.
func (a *Animation) WriteSheet(path string, l sprite.Layout, scale int) error {
	m, err := sprite.RasterizeSheet(a.Frames, a.Palette, l, scale)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := sprite.Encode(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// WriteFrames rasterizes each frame to its own PNG named after the frame
// key inside dir, creating dir if needed.
func (a *Animation) WriteFrames(dir string, scale int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for name, fr := range a.Frames {
		f, err := os.Create(filepath.Join(dir, name+".png"))
		if err != nil {
			return err
		}

		if err := sprite.Encode(f, sprite.Rasterize(fr, a.Palette, scale)); err != nil {
			f.Close()
			return err
		}

		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
