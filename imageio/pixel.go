package imageio

import "image/color"

// Pixel is an 8-bit RGB color, the Cell type imageio extracts patterns
// over. It drops alpha: pattern matching treats a fully-opaque source
// image as the common case, so pixels are sampled and re-encoded with no
// alpha channel in play.
type Pixel struct {
	R, G, B uint8
}

// MarshalBinary implements geom.Cell.
func (p Pixel) MarshalBinary() ([]byte, error) {
	return []byte{p.R, p.G, p.B}, nil
}

// RGBA implements color.Color, so a Pixel can be written directly with
// image.RGBA.Set.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}.RGBA()
}

// PixelFromColor samples c at 8 bits per channel, discarding alpha.
func PixelFromColor(c color.Color) Pixel {
	r, g, b, _ := c.RGBA()
	return Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
