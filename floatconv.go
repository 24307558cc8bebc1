package openqmc

import (
	"math/bits"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Unsigned bounds the integer types usable as a ranged-draw output width.
type Unsigned = constraints.Unsigned

// maxFloatBelowOne is the largest float32 strictly less than 1.0 — the
// value 0x1.fffffep-1, i.e. math32.Nextafter(1, 0).
var maxFloatBelowOne = math32.Nextafter(1, 0)

// uintToFloat maps a uniform uint32 to [0,1), clamping the top of the range
// to the last representable float32 below 1 rather than rounding up to it.
func uintToFloat(v uint32) float32 {
	f := float32(v) * 0x1p-32
	return math32.Min(f, maxFloatBelowOne)
}

// uintToRange maps a uniform uint32 to [0, r) via a multiply-shift, with no
// rejection: a minor non-uniformity is traded for determinism and for
// preserving the low-discrepancy structure of the input. The product v*r is
// computed as a full 128-bit wide multiply (v is always < 2^32, so the high
// word never exceeds 2^32 and the shifted-down result always fits back into
// T) so the map stays exact for range widths wider than 32 bits, not just
// uint32.
func uintToRange[T Unsigned](v uint32, r T) T {
	hi, lo := bits.Mul64(uint64(v), uint64(r))
	return T(hi<<32 | lo>>32)
}
