package openqmc

// latticeGenerator is the rank-1 lattice generator vector (Hickernell et
// al.), one coefficient per dimension.
var latticeGenerator = [maxDimension]uint32{1, 364981, 245389, 97823}

// latticeValue returns the d-dimensional coordinate of a rank-1 lattice
// point at a (bit-reversed, already-shuffled) index, before the per-call
// toroidal shift is added.
func latticeValue(reversedIndex uint32, d int) uint32 {
	assertf(d >= 0 && d < maxDimension, "latticeValue: dimension out of range: %d", d)
	return latticeGenerator[d] * reversedIndex
}

// LatticeDraw draws up to maxDimension dimensions of the rank-1 lattice
// sequence. patternID seeds both the progressive index shuffle and a
// stateful PCG stream that supplies a fresh per-dimension toroidal shift —
// the lattice is intrinsically correlated across pixels, and (unlike
// NewSobol, which pixel-decorrelates its state) NewLattice adds no
// pixel-decorrelation step; callers that need it apply NewDomain(pixelID)
// externally first.
func LatticeDraw(index, patternID uint32) [maxDimension]uint32 {
	seed := PCGOutput(patternID)
	idx := ReverseAndShuffle(index, seed)
	stream := patternID
	var sample [maxDimension]uint32
	for d := 0; d < maxDimension; d++ {
		sample[d] = latticeValue(idx, d) + PCGNext(&stream)
	}
	return sample
}
