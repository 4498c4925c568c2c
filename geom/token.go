package geom

import "encoding/binary"

// Token is a small value type implementing Cell, suitable for grids whose
// cells are tile indices, palette entries, or any other value that fits
// in a uint32 rather than pixel data. imageio provides a Cell
// implementation for pixels; Token covers everything else.
type Token uint32

// MarshalBinary implements encoding.BinaryMarshaler.
func (t Token) MarshalBinary() ([]byte, error) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(t))
	return b[:], nil
}
