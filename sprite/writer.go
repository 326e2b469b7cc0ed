package sprite

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/spritegen/spritegen/frame"
)

// Rasterize converts a frame to an RGBA image at an integer scale factor.
// Each character becomes a scale by scale block of a single color; unknown
// characters become transparent blocks. The output is deterministic for a
// given frame, palette and scale.
func Rasterize(f frame.Frame, p Palette, scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	m := image.NewNRGBA(image.Rect(0, 0, f.Width()*scale, f.Height()*scale))
	for y, row := range f {
		x := 0
		for _, r := range row {
			c := p.color(r)
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					m.SetNRGBA(x*scale+dx, y*scale+dy, c)
				}
			}
			x++
		}
	}
	return m
}

// RasterizeSheet composites named frames into a single sheet image
// according to the layout. Empty slots and slots naming a missing frame
// are left fully transparent. All placed frames must share the same
// dimensions; the normalizer guarantees this upstream, but a mismatch here
// would silently shear the sheet so it is rejected outright.
func RasterizeSheet(frames map[string]frame.Frame, p Palette, l Layout, scale int) (*image.NRGBA, error) {
	if scale < 1 {
		scale = 1
	}

	fw, fh, err := frameSize(frames, l)
	if err != nil {
		return nil, err
	}

	m := image.NewNRGBA(image.Rect(0, 0, l.Columns()*fw*scale, len(l)*fh*scale))
	for row, names := range l {
		for col, name := range names {
			f, ok := frames[name]
			if name == "" || !ok {
				continue
			}
			src := Rasterize(f, p, scale)

			// Regions never overlap so a straight copy is correct,
			// no blending against the sheet.
			r := src.Bounds().Add(image.Pt(col*fw*scale, row*fh*scale))
			draw.Draw(m, r, src, image.Point{}, draw.Src)
		}
	}
	return m, nil
}

func frameSize(frames map[string]frame.Frame, l Layout) (int, int, error) {
	w, h := 0, 0
	for _, row := range l {
		for _, name := range row {
			f, ok := frames[name]
			if name == "" || !ok {
				continue
			}
			if w == 0 && h == 0 {
				w, h = f.Width(), f.Height()
				continue
			}
			if f.Width() != w || f.Height() != h {
				return 0, 0, fmt.Errorf("sprite: frame %q is %dx%d, want %dx%d", name, f.Width(), f.Height(), w, h)
			}
		}
	}
	if w == 0 && h == 0 {
		w, h = frame.Width, frame.Height
	}
	return w, h, nil
}

// Encode writes the image m to w as a PNG.
func Encode(w io.Writer, m image.Image) error {
	return png.Encode(w, m)
}
