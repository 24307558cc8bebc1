package openqmc

// tableLookup implements the shuffled-scrambled table lookup that pmjDraw
// (and so both Pmj and PmjBn) reads the PMJ table through: shuffle the index, then XOR each of the first
// n columns of the selected row with a per-dimension byte rotation of the
// seed (a random digit scramble that also decorrelates dimensions from one
// another).
func tableLookup(table *[tableSize][maxDimension]uint32, index, seed uint32, n int) [maxDimension]uint32 {
	assertf(n >= 1 && n <= maxDimension, "tableLookup: n must be in [1,%d], got %d", maxDimension, n)
	idx := Shuffle(index, seed)
	row := &table[idx&(tableSize-1)]
	var out [maxDimension]uint32
	for d := 0; d < n; d++ {
		out[d] = row[d] ^ RotateBytes(seed, uint32(d))
	}
	return out
}
