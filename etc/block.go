package etc

import (
	"encoding/binary"

	"github.com/kpfaulkner/gdxtex/util"
)

// block is one decoded 4x4 tile, RGBA, row-major.
type block [64]byte

func (b *block) set(x int, y int, r, g, bl, a int) {
	i := (y*4 + x) * 4
	b[i] = util.ClampByte(r)
	b[i+1] = util.ClampByte(g)
	b[i+2] = util.ClampByte(bl)
	b[i+3] = util.ClampByte(a)
}

func (b *block) setAlpha(x int, y int, a byte) {
	b[(y*4+x)*4+3] = a
}

// texelCode returns the 2 bit modifier index of texel (x, y). Texels are
// numbered column by column: the lsb lives in bits 0-15 and the msb in bits
// 16-31.
func texelCode(w uint64, x int, y int) int {
	j := uint(x*4 + y)
	return int((w>>j)&1 | (w>>(15+j))&2)
}

// decodeColor decodes an ETC1 individual or differential block. Differential
// second colours are clamped to the 5 bit range.
func decodeColor(w uint64, blk *block) {
	var c [2][3]int
	if w>>33&1 != 0 {
		for i := 0; i < 3; i++ {
			shift := uint(59 - 8*i)
			a := (w >> shift) & 0x1f
			d := util.SignExtend(w>>(shift-3), 3)
			b := util.Clamp(int(a)+d, 0, 31)
			c[0][i] = util.Expand5(a)
			c[1][i] = util.Expand5(uint64(b))
		}
	} else {
		for i := 0; i < 3; i++ {
			c[0][i] = util.Expand4(w >> uint(60-8*i))
			c[1][i] = util.Expand4(w >> uint(56-8*i))
		}
	}
	writeSubblocks(w, c, &modifierTables, false, blk)
}

// writeSubblocks paints the two halves of an individual/differential block.
// The flip bit splits the halves by row instead of by column.
func writeSubblocks(w uint64, c [2][3]int, tables *[8][4]int, punchthrough bool, blk *block) {
	flip := w>>32&1 != 0
	mods := [2]*[4]int{&tables[(w>>37)&7], &tables[(w>>34)&7]}

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			half := util.IfThenElse(flip, y>>1, x>>1)
			code := texelCode(w, x, y)
			if punchthrough && code == 2 {
				blk.set(x, y, 0, 0, 0, 0)
				continue
			}
			m := mods[half][code]
			blk.set(x, y, c[half][0]+m, c[half][1]+m, c[half][2]+m, 255)
		}
	}
}

// decodePunchthroughCompat decodes the colour as an ETC1 block and takes each
// texel's alpha from bit 63-(y*4+x) of the same word.
func decodePunchthroughCompat(w uint64, blk *block) {
	decodeColor(w, blk)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			bit := (w >> uint(63-(y*4+x))) & 1
			blk.setAlpha(x, y, byte(bit*255))
		}
	}
}

// decodeAlphaCompat reads an EAC alpha sub-block the way the libGDX editor
// tooling does: unsigned base, a single modifier row and little-endian codes
// with texel 0 (top left, row-major) first.
func decodeAlphaCompat(b []byte, blk *block) {
	base := int(b[0])
	mul := int(b[1] >> 4)
	mods := &eacCompatModifiers[b[1]&0xf]

	var bits uint64
	for i := 0; i < 6; i++ {
		bits |= uint64(b[2+i]) << (8 * i)
	}
	for i := 0; i < 16; i++ {
		code := (bits >> uint(i*3)) & 7
		blk.setAlpha(i%4, i/4, util.ClampByte(base+mods[code]*mul))
	}
}

// decodeAlphaStrict reads a Khronos EAC alpha block: big-endian word, codes
// stored most significant first in column order.
func decodeAlphaStrict(w uint64, blk *block) {
	base := int(w >> 56)
	mul := int((w >> 52) & 0xf)
	mods := &eacModifiers[(w>>48)&0xf]

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			j := uint(x*4 + y)
			code := (w >> (45 - 3*j)) & 7
			blk.setAlpha(x, y, util.ClampByte(base+mods[code]*mul))
		}
	}
}

func word(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}
