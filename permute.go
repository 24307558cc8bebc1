package openqmc

// LaineKarrasPermutation is the Vegdahl-improved Laine-Karras hash: a fast
// avalanching permutation of a 32-bit value under a seed, with the property
// that lower bits of the input only ever affect higher bits of the output —
// the property that makes it safe to use as a progressive Owen scramble.
func LaineKarrasPermutation(v, seed uint32) uint32 {
	v ^= v * 0x3d20adea
	v += seed
	v *= (seed >> 16) | 1
	v ^= v * 0x05526c56
	v ^= v * 0x53a22864
	return v
}

// ReverseAndShuffle bit-reverses v and then applies LaineKarrasPermutation.
func ReverseAndShuffle(v, seed uint32) uint32 {
	return LaineKarrasPermutation(ReverseBits32(v), seed)
}

// Shuffle is the standard progressive-friendly permutation used throughout
// the package: reverse, permute, reverse again.
func Shuffle(v, seed uint32) uint32 {
	return ReverseBits32(ReverseAndShuffle(v, seed))
}
