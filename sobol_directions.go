package openqmc

// sobolDirections holds the three non-identity 16x16 binary direction
// vector matrices used by the Owen-scrambled Sobol' base sequence — one
// row set per dimension 1, 2 and 3 (dimension 0's direction matrix is
// itself a bit-reversal permutation matrix, so it is computed directly by
// ReverseBits16 in sobolReversedIndex and needs no table here). Row j is
// XORed into the result when bit j of the (bit-reversed) sample index is
// set.
//
// These are the published direction-vector constants embedded byte-for-
// byte from the upstream reference rather than re-derived, so the
// sequence reproduces the same low-discrepancy quality as the original
// tables.
var sobolDirections = [3][16]uint16{
	{
		0b1111111111111111,
		0b0101010101010101,
		0b0011001100110011,
		0b0001000100010001,
		0b0000111100001111,
		0b0000010100000101,
		0b0000001100000011,
		0b0000000100000001,
		0b0000000011111111,
		0b0000000001010101,
		0b0000000000110011,
		0b0000000000010001,
		0b0000000000001111,
		0b0000000000000101,
		0b0000000000000011,
		0b0000000000000001,
	},
	{
		0b1010101000001001,
		0b0111011100000110,
		0b0011100100000011,
		0b0001011000000001,
		0b0000100110101010,
		0b0000011001110111,
		0b0000001100111001,
		0b0000000100010110,
		0b0000000010100011,
		0b0000000001110001,
		0b0000000000111010,
		0b0000000000010111,
		0b0000000000001001,
		0b0000000000000110,
		0b0000000000000011,
		0b0000000000000001,
	},
	{
		0b1010000011000011,
		0b0100000001000001,
		0b0011000000101101,
		0b0001000000011110,
		0b0000101101100111,
		0b0000011110011010,
		0b0000001010100100,
		0b0000000100011011,
		0b0000000011001001,
		0b0000000001000101,
		0b0000000000101110,
		0b0000000000011111,
		0b0000000000001010,
		0b0000000000000100,
		0b0000000000000011,
		0b0000000000000001,
	},
}
