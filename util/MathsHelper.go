package util

import (
	"golang.org/x/exp/constraints"
)

// Clamp limits v to the closed range [lo, hi].
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampByte clamps an int into a byte.
func ClampByte(v int) byte {
	return byte(Clamp(v, 0, 255))
}

// Scale maps v in [0, max] onto [0, 255] with integer division.
func Scale[T constraints.Unsigned](v T, max T) byte {
	return byte(uint32(v) * 255 / uint32(max))
}

// Expand4 replicates a 4 bit value into 8 bits (v*17).
func Expand4(v uint64) int {
	v &= 0xf
	return int(v<<4 | v)
}

func Expand5(v uint64) int {
	v &= 0x1f
	return int(v<<3 | v>>2)
}

func Expand6(v uint64) int {
	v &= 0x3f
	return int(v<<2 | v>>4)
}

func Expand7(v uint64) int {
	v &= 0x7f
	return int(v<<1 | v>>6)
}

// SignExtend interprets the low n bits of v as two's complement.
func SignExtend(v uint64, n uint) int {
	shift := 64 - n
	return int(int64(v<<shift) >> shift)
}
