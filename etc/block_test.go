package etc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func px(blk *block, x int, y int) [4]byte {
	i := (y*4 + x) * 4
	return [4]byte{blk[i], blk[i+1], blk[i+2], blk[i+3]}
}

func TestTexelCodeOrder(t *testing.T) {
	// lsb of texel j lives at bit j, msb at bit 16+j, texels counted down columns
	w := uint64(1)<<1 | uint64(1)<<(16+4)
	assert.Equal(t, 1, texelCode(w, 0, 1))
	assert.Equal(t, 2, texelCode(w, 1, 0))
	assert.Equal(t, 0, texelCode(w, 0, 0))
}

func TestDecodeColorIndividual(t *testing.T) {
	// red 15 in the first colour, black in the second, tables 0/0, codes 0, flip 0
	w := uint64(0xF) << 60

	var blk block
	decodeColor(w, &blk)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				assert.Equal(t, [4]byte{255, 2, 2, 255}, px(&blk, x, y), "texel %d,%d", x, y)
			} else {
				assert.Equal(t, [4]byte{2, 2, 2, 255}, px(&blk, x, y), "texel %d,%d", x, y)
			}
		}
	}
}

func TestDecodeColorDifferentialFlip(t *testing.T) {
	w := uint64(31)<<59 | uint64(4)<<56 | // R 31, delta -4
		uint64(3)<<48 | // G 0, delta +3
		uint64(1)<<33 | uint64(1)<<32 | // diff, flip
		uint64(0xFFFF)<<16 | 0xFFFF // every code 3

	var blk block
	decodeColor(w, &blk)

	for x := 0; x < 4; x++ {
		assert.Equal(t, [4]byte{247, 0, 0, 255}, px(&blk, x, 0))
		assert.Equal(t, [4]byte{247, 0, 0, 255}, px(&blk, x, 1))
		assert.Equal(t, [4]byte{214, 16, 0, 255}, px(&blk, x, 2))
		assert.Equal(t, [4]byte{214, 16, 0, 255}, px(&blk, x, 3))
	}
}

func TestDecodeColorDifferentialClamps(t *testing.T) {
	// R 0 with delta -4 clamps the second colour to 0
	w := uint64(4)<<56 | uint64(1)<<33 | uint64(7)<<34 | uint64(0xFFFF)

	var blk block
	decodeColor(w, &blk)
	// second half uses table 7 code 1 (+183)
	assert.Equal(t, [4]byte{183, 183, 183, 255}, px(&blk, 3, 0))
	// first half uses table 0 code 1 (+8)
	assert.Equal(t, [4]byte{8, 8, 8, 255}, px(&blk, 0, 0))
}

func TestPunchthroughCompatAlphaMask(t *testing.T) {
	w := uint64(1) << 63 // alpha bit for texel 0, also the top bit of R1

	var blk block
	decodePunchthroughCompat(w, &blk)

	assert.Equal(t, [4]byte{138, 2, 2, 255}, px(&blk, 0, 0))
	for i := 1; i < 16; i++ {
		assert.Equal(t, byte(0), px(&blk, i%4, i/4)[3], "texel %d", i)
	}
}

func TestDecodeAlphaCompat(t *testing.T) {

	for _, tc := range []struct {
		name     string
		sub      []byte
		expected func(i int) byte
	}{
		{
			name:     "zero multiplier",
			sub:      []byte{128, 0x05, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			expected: func(int) byte { return 128 },
		},
		{
			name: "first texel code 3",
			sub:  []byte{100, 0x20, 0x03, 0, 0, 0, 0, 0},
			expected: func(i int) byte {
				if i == 0 {
					return 134
				}
				return 100
			},
		},
		{
			name:     "clamps high",
			sub:      []byte{250, 0xF0, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			expected: func(int) byte { return 255 },
		},
		{
			name: "clamps low",
			// code 6 (-29) for every texel
			sub:      []byte{10, 0x10, 0xB6, 0x6D, 0xDB, 0xB6, 0x6D, 0xDB},
			expected: func(int) byte { return 0 },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var blk block
			decodeAlphaCompat(tc.sub, &blk)
			for i := 0; i < 16; i++ {
				assert.Equal(t, tc.expected(i), px(&blk, i%4, i/4)[3], "texel %d", i)
			}
		})
	}
}

func TestDecodeAlphaStrict(t *testing.T) {
	// base 128, multiplier 1, table 13 {-1,-2,-3,-10,0,1,2,9}; texel (0,0)
	// code 7, texel (0,1) code 4, the rest code 0
	w := uint64(0x80)<<56 | uint64(1)<<52 | uint64(13)<<48 |
		uint64(7)<<45 | uint64(4)<<42

	var blk block
	decodeAlphaStrict(w, &blk)

	assert.Equal(t, byte(137), px(&blk, 0, 0)[3])
	assert.Equal(t, byte(128), px(&blk, 0, 1)[3])
	assert.Equal(t, byte(127), px(&blk, 1, 0)[3])
	assert.Equal(t, byte(127), px(&blk, 3, 3)[3])
}

func TestETC2Modes(t *testing.T) {
	diff := uint64(1) << 33

	for _, tc := range []struct {
		name     string
		w        uint64
		punch    bool
		expected etc2Mode
	}{
		{name: "individual", w: uint64(4) << 56, expected: modeDifferential},
		{name: "differential", w: diff | uint64(31)<<59 | uint64(4)<<56, expected: modeDifferential},
		{name: "t", w: diff | uint64(4)<<56, expected: modeT},
		{name: "h", w: diff | uint64(4)<<48, expected: modeH},
		{name: "planar", w: diff | uint64(4)<<40, expected: modePlanar},
		{name: "punch t without diff", w: uint64(4) << 56, punch: true, expected: modeT},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, etc2ModeOf(tc.w, tc.punch))
		})
	}
}

func TestDecodeETC2T(t *testing.T) {
	// T mode: R overflows. Paint colours c0 = black, c1 = (15,0,0), distance 3
	w := uint64(4)<<56 | uint64(0xF)<<44 | uint64(1)<<33 | 0xFFFF

	var strict block
	decodeETC2(w, false, &strict)
	assert.Equal(t, [4]byte{255, 3, 3, 255}, px(&strict, 2, 1))

	var compat block
	decodeColor(w, &compat)
	assert.Equal(t, [4]byte{8, 8, 255, 255}, px(&compat, 2, 1))
}

func TestDecodeETC2Planar(t *testing.T) {
	// B overflows; only the vertical blue component is non-zero
	w := uint64(1)<<42 | uint64(1)<<33 | 0x3F

	var blk block
	decodeETC2(w, false, &blk)

	expected := []byte{0, 64, 128, 191}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, [4]byte{0, 0, expected[y], 255}, px(&blk, x, y))
		}
	}
}

func TestDecodeETC2Punchthrough(t *testing.T) {
	// texel (0,0) has code 2; everything else code 0
	transparent := uint64(1) << 16

	var blk block
	decodeETC2(transparent, true, &blk)
	assert.Equal(t, [4]byte{0, 0, 0, 0}, px(&blk, 0, 0))
	assert.Equal(t, [4]byte{0, 0, 0, 255}, px(&blk, 1, 1))

	// the same codes in an opaque block are ordinary modifiers
	decodeETC2(transparent|uint64(1)<<33, true, &blk)
	assert.Equal(t, [4]byte{0, 0, 0, 255}, px(&blk, 0, 0))
	assert.Equal(t, [4]byte{2, 2, 2, 255}, px(&blk, 1, 1))
}

func TestWordIsBigEndian(t *testing.T) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, 0x0102030405060708)
	assert.Equal(t, uint64(0x0102030405060708), word(b))
}
