package openqmc

// pmjXors holds the round-based XOR offsets the stochastic (0,2)
// construction (Helmer et al.) uses to pick each new sample's partner
// stratum, one row set per base coordinate (x, y) and one column per
// round of the doubling recurrence below.
var pmjXors = [2][16]uint16{
	{
		0b0000000000000000,
		0b0000000000000000,
		0b0000000000000010,
		0b0000000000000110,
		0b0000000000000110,
		0b0000000000001110,
		0b0000000000110110,
		0b0000000001001110,
		0b0000000000010110,
		0b0000000000101110,
		0b0000001001110110,
		0b0000011011001110,
		0b0000011100010110,
		0b0000110000101110,
		0b0011000001110110,
		0b0100000011001110,
	},
	{
		0b0000000000000000,
		0b0000000000000001,
		0b0000000000000011,
		0b0000000000000011,
		0b0000000000000111,
		0b0000000000011011,
		0b0000000000100111,
		0b0000000000001011,
		0b0000000000010111,
		0b0000000100111011,
		0b0000001101100111,
		0b0000001110001011,
		0b0000011000010111,
		0b0001100000111011,
		0b0010000001100111,
		0b0000000010001011,
	},
}

// buildPMJStratifiedPairs runs the round-doubling stratification
// recurrence: starting from a single random point, each round doubles the
// point count by giving every existing sample i1 a partner i2 = i1 +
// prevLen, placed in the sibling stratum selected by pmjXors and jittered
// within it by a fresh PCG draw. After all 16 rounds this is a
// progressive (0,2)-net in two dimensions — the two base coordinates the
// rest of the table is built from.
func buildPMJStratifiedPairs() *[tableSize][2]uint32 {
	var buffer [tableSize][2]uint32

	state := PCGInit()
	for k := 0; k < 2; k++ {
		buffer[0][k] = PCGNext(&state)
	}

	for prevLen, logN := 1, 0; prevLen < tableSize; prevLen, logN = prevLen*2, logN+1 {
		for i1, i2 := 0, prevLen; i1 < prevLen && i2 < tableSize; i1, i2 = i1+1, i2+1 {
			for k := 0; k < 2; k++ {
				swapBit := uint32(0x80000000) >> uint32(logN)
				bitMask := swapBit - 1

				j := uint32(i1) ^ uint32(pmjXors[k][logN])

				prevStratum := buffer[j][k] &^ bitMask
				nextStratum := prevStratum ^ swapBit

				buffer[i2][k] = nextStratum | (PCGNext(&state) & bitMask)
			}
		}
	}

	return &buffer
}

// shuffledScrambledLookup2 is the two-column specialisation of the
// shuffled-scrambled table lookup (see table.go's tableLookup) used to
// read a pair of coordinates out of the stratified-pairs buffer, which is
// narrower than the package's usual four-column tables.
func shuffledScrambledLookup2(index, seed uint32, buffer *[tableSize][2]uint32) (a, b uint32) {
	idx := Shuffle(index, seed)
	row := &buffer[idx&(tableSize-1)]
	a = row[0] ^ RotateBytes(seed, 0)
	b = row[1] ^ RotateBytes(seed, 1)
	return a, b
}

// buildPMJTable constructs the stochastic progressive-jittered (0,2)
// table: the first pair of columns is read from the stratified-pairs
// buffer under one hashed seed, and the second pair — dimensions 3 and 4
// — is the same buffer read again under a different hashed seed, so the
// two pairs are mutually decorrelated rather than literally duplicated.
//
// The stratified-pairs buffer is scratch: it is built, consumed by the
// two lookup passes below, and then released before the table is
// returned, matching the "constructed once at cache initialisation, not
// retained" lifetime the rest of the cache layer assumes.
func buildPMJTable() *[tableSize][maxDimension]uint32 {
	buffer := buildPMJStratifiedPairs()

	hash0 := PCGHash(0)
	hash1 := PCGHash(1)

	var table [tableSize][maxDimension]uint32
	for i := uint32(0); i < tableSize; i++ {
		table[i][0], table[i][1] = shuffledScrambledLookup2(i, hash0, buffer)
		table[i][2], table[i][3] = shuffledScrambledLookup2(i, hash1, buffer)
	}
	buffer = nil

	return &table
}

// pmjDraw looks up the four-dimensional progressive-jittered sample at
// index under seed, applying the same shuffle-and-scramble treatment as
// every other table-backed sequence in this package. Callers supply seed
// already hashed the way the base sequence expects it — pcg_output(patternId)
// for the plain variant, the blue-noise key directly for the Bn variant —
// mirroring how SobolDraw's seed argument is produced at each call site.
func pmjDraw(table *[tableSize][maxDimension]uint32, index, seed uint32) [maxDimension]uint32 {
	return tableLookup(table, index, seed, maxDimension)
}
