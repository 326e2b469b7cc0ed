/*
Package sprite converts canonical text frames into RGBA pixel images.

Each character in a frame maps through a palette to exactly one pixel.
Frames can be rendered individually or composited into a sprite sheet
according to a layout, an ordered grid of frame names describing where each
frame is placed. Scaling is nearest-neighbour only; pixel art must keep its
hard edges, so each source pixel is replicated into a scale by scale block
with no blending.
*/
package sprite

// PaletteChars is the canonical drawing vocabulary, ordered dark to light.
// FromImage assigns quantized colors to these keys in this order. The
// space character is the transparent pixel and is not part of the set.
const PaletteChars = "@#+=-."
