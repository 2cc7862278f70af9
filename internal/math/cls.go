package math

import "math/bits"

// CLS16 returns the number of leading sign bits of x, counting the sign bit.
// CLS16(0) and CLS16(-1) are both 16.
func CLS16(x int16) int {
	return bits.LeadingZeros16(uint16(x ^ (x >> 15)))
}

// CLS32 returns the number of leading sign bits of x, counting the sign bit.
func CLS32(x int32) int {
	return bits.LeadingZeros32(uint32(x ^ (x >> 31)))
}

// HR16 returns the headroom of x: the left shift that keeps its value intact.
func HR16(x int16) int {
	return CLS16(x) - 1
}

// HR32 returns the headroom of x.
func HR32(x int32) int {
	return CLS32(x) - 1
}

// SignMask folds v so that its leading zeros equal its leading sign bits in
// a 64-bit word. OR-ing the masks of a block gives the block's headroom
// through HeadroomOfMask.
func SignMask(v int64) uint64 {
	return uint64(v ^ (v >> 63))
}

// HeadroomOfMask converts an accumulated SignMask into the headroom of a
// width-bit mantissa. A zero mask yields width-1.
func HeadroomOfMask(mask uint64, width int) int {
	return bits.LeadingZeros64(mask) - (64 - width) - 1
}
