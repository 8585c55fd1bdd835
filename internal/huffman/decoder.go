// Package huffman implements the SBR envelope and noise floor Huffman
// decoding.
//
// Each code is stored as a binary tree of [2]int8 rows. Walking starts at
// row 0 and follows the bit read from the stream; a non-negative entry is
// the next row, a negative entry is a leaf holding value-64.
package huffman

// BitReader is the bit source the decoder consumes.
type BitReader interface {
	ReadBit() uint8
}

// Tree is a Huffman code in row form.
type Tree [][2]int8

// Decode reads one codeword and returns its signed delta value.
func Decode(r BitReader, t Tree) int {
	var index int8
	for index >= 0 {
		index = t[index][r.ReadBit()]
	}
	return int(index) + 64
}

// Envelope returns the trees for envelope data: time-differential first,
// frequency-differential second. Balance trees are used for the second
// channel of a coupled pair; their values are in units of the doubled
// balance step and the caller shifts them back.
func Envelope(balance, ampRes30 bool) (t, f Tree) {
	switch {
	case balance && ampRes30:
		return tEnvBal30, fEnvBal30
	case balance:
		return tEnvBal15, fEnvBal15
	case ampRes30:
		return tEnv30, fEnv30
	default:
		return tEnv15, fEnv15
	}
}

// Noise returns the trees for noise floor data. Noise floors are always
// coded at 3.0 dB and share the frequency-differential envelope trees.
func Noise(balance bool) (t, f Tree) {
	if balance {
		return tNoiseBal30, fEnvBal30
	}
	return tNoise30, fEnv30
}
