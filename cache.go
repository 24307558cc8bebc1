package openqmc

import "unsafe"

// The cache layer reinterprets a caller-owned byte buffer as a typed table
// in place, with no copy: the buffer is the storage. This is the same
// contract the resource-model section of this package's design promises —
// an opaque, 4-byte-aligned byte buffer that may be copied freely once
// initialised (including across a process boundary, e.g. host to device)
// — so the typed view has to be a reinterpretation of exactly those bytes,
// not a decoded copy of them.

// assertAligned4 checks the debug-only 4-byte alignment precondition the
// resource model places on every cache buffer.
func assertAligned4(buf []byte) {
	if len(buf) == 0 {
		return
	}
	assertf(uintptr(unsafe.Pointer(&buf[0]))%4 == 0, "openqmc: cache buffer is not 4-byte aligned")
}

// bytesToBlueNoiseTables reinterprets a SobolBnCacheSize-length buffer as
// the two-table blue-noise cache layout.
func bytesToBlueNoiseTables(buf []byte) *blueNoiseTables {
	assertAligned4(buf)
	return (*blueNoiseTables)(unsafe.Pointer(&buf[0]))
}

// bytesToPmjTable reinterprets a PmjCacheSize-length buffer as the (0,2)
// progressive-jittered table layout.
func bytesToPmjTable(buf []byte) *[tableSize][maxDimension]uint32 {
	assertAligned4(buf)
	return (*[tableSize][maxDimension]uint32)(unsafe.Pointer(&buf[0]))
}
