package openqmc

// Encoding packs a (x, y, z) coordinate triple into a 16-bit identifier,
// masking each axis to its own bit width and tiling it modulo the axis
// resolution. The core always uses PixelEncoding; the width parameters are
// exposed as a type so the encode/decode round trip can be exercised
// independently of that one instance.
type Encoding struct {
	XBits, YBits, ZBits byte
}

// PixelEncoding is the (6,6,4) encoding used throughout the package: a
// 64x64 pixel tile and 16 time slots.
var PixelEncoding = Encoding{XBits: 6, YBits: 6, ZBits: 4}

func maskWidth(bits byte) uint32 {
	return (uint32(1) << bits) - 1
}

// Encode packs (x, y, z) into a 16-bit identifier. Coordinates outside the
// mask range tile modulo the axis resolution, by design: the blue-noise
// tables tile spatially and temporally.
func (e Encoding) Encode(x, y, z int32) uint16 {
	xm := uint32(x) & maskWidth(e.XBits)
	ym := uint32(y) & maskWidth(e.YBits)
	zm := uint32(z) & maskWidth(e.ZBits)
	return uint16(xm | (ym << e.XBits) | (zm << (e.XBits + e.YBits)))
}

// Decode is the inverse of Encode.
func (e Encoding) Decode(v uint16) (x, y, z int32) {
	u := uint32(v)
	x = int32(u & maskWidth(e.XBits))
	y = int32((u >> e.XBits) & maskWidth(e.YBits))
	z = int32((u >> (e.XBits + e.YBits)) & maskWidth(e.ZBits))
	return
}

// EncodeBits16 packs (x, y, z) using the fixed (6,6,4) core encoding.
func EncodeBits16(x, y, z int32) uint16 {
	return PixelEncoding.Encode(x, y, z)
}

// DecodeBits16 is the inverse of EncodeBits16.
func DecodeBits16(v uint16) (x, y, z int32) {
	return PixelEncoding.Decode(v)
}
