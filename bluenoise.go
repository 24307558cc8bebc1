package openqmc

// blueNoiseTables holds the two 2^16-entry (key, rank) arrays shared by
// every blue-noise sampler variant. The tables are keyed by
// encoded-pixel + encoded-shift: since the pixel encoding wraps each axis
// at its own mask, that addition is implicitly modulo the tile — exactly
// the toroidal shift the lookup needs.
type blueNoiseTables struct {
	keys  [tableSize]uint32
	ranks [tableSize]uint32
}

// buildBlueNoiseTables constructs a deterministic, fully-bijective
// (key, rank) table pair. The published, perceptually-optimised tables
// this sampler is modelled on are produced by an offline optimiser that is
// out of scope for this package (see DESIGN.md); what is reproduced here
// is the structural contract every consumer of the tables relies on —
// fixed size, one key and one rank per encoded pixel, and toroidal tiling
// — using the package's own Owen-style Shuffle permutation as the
// generator so the tables are bijections over their domain rather than
// arbitrary data.
func buildBlueNoiseTables() *blueNoiseTables {
	const keySeed = uint32(0x5bd1e995)
	const rankSeed = uint32(0x27d4eb2f)
	t := &blueNoiseTables{}
	for i := uint32(0); i < tableSize; i++ {
		t.keys[i] = Shuffle(i, keySeed) & (tableSize - 1)
		t.ranks[i] = Shuffle(i, rankSeed) & (tableSize - 1)
	}
	return t
}

// blueNoiseLookup computes a pixel shift from patternID and looks up the
// (key, rank) pair at the toroidally-shifted pixel.
func blueNoiseLookup(tables *blueNoiseTables, pixelID uint16, patternID uint32) (key, rank uint32) {
	assertf(PixelEncoding.XBits == PixelEncoding.YBits, "blue-noise tables require a square spatial resolution (XBits == YBits)")
	shift := uint16(PCGOutput(patternID))
	px, py, pz := PixelEncoding.Decode(pixelID)
	sx, sy, sz := PixelEncoding.Decode(shift)
	idx := PixelEncoding.Encode(px+sx, py+sy, pz+sz)
	return tables.keys[idx], tables.ranks[idx]
}
