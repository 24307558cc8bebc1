package openqmc

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// tableChecksum hashes a precomputed table with blake3, the fast tree hash
// the rest of this package's corpus reaches for whenever it needs a cheap
// integrity digest over a large buffer. It runs once per process, at
// package init, over the package-level Sobol direction vectors and is
// pinned by a test — it exists to catch an accidental edit to the
// direction-vector table surviving review, not to defend against anything
// adversarial.
func tableChecksum(data []byte) [32]byte {
	return blake3.Sum256(data)
}

// directionsTableBytes serialises a direction-vector table to bytes for
// checksumming. It takes the table as a parameter (rather than closing
// over the package-level sobolDirections) so a test can compute the same
// digest over an independently transcribed reference copy and compare it
// against the live table, instead of checksumming sobolDirections against
// itself.
func directionsTableBytes(table [3][16]uint16) []byte {
	buf := make([]byte, 0, len(table)*16*2)
	var word [2]byte
	for _, m := range table {
		for _, row := range m {
			binary.LittleEndian.PutUint16(word[:], row)
			buf = append(buf, word[:]...)
		}
	}
	return buf
}

func sobolDirectionsBytes() []byte {
	return directionsTableBytes(sobolDirections)
}

// sobolDirectionsChecksum is computed once at init and asserted against in
// tests; it is not otherwise consulted at runtime, since the direction
// vectors are a compile-time constant with no untrusted load path.
var sobolDirectionsChecksum = tableChecksum(sobolDirectionsBytes())
