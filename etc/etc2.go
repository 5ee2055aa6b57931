package etc

import (
	"github.com/kpfaulkner/gdxtex/util"
)

type etc2Mode int

const (
	modeDifferential etc2Mode = iota
	modeT
	modeH
	modePlanar
)

// etc2ModeOf picks the ETC2 mode from the differential flag and which
// channel, if any, overflows when its delta is applied.
func etc2ModeOf(w uint64, punchthrough bool) etc2Mode {
	if !punchthrough && w>>33&1 == 0 {
		return modeDifferential
	}
	for i := 0; i < 3; i++ {
		shift := uint(59 - 8*i)
		b := int((w>>shift)&0x1f) + util.SignExtend(w>>(shift-3), 3)
		if b < 0 || b > 31 {
			return etc2Mode(i + 1)
		}
	}
	return modeDifferential
}

// decodeETC2 decodes an ETC2 RGB block. For punch-through blocks the
// differential bit is the opaque flag and individual mode does not exist.
func decodeETC2(w uint64, punchthrough bool, blk *block) {
	opaque := !punchthrough || w>>33&1 != 0

	switch etc2ModeOf(w, punchthrough) {
	case modeT:
		decodeT(w, opaque, blk)
	case modeH:
		decodeH(w, opaque, blk)
	case modePlanar:
		decodePlanar(w, blk)
	default:
		if !punchthrough {
			decodeColor(w, blk)
			return
		}
		var c [2][3]int
		for i := 0; i < 3; i++ {
			shift := uint(59 - 8*i)
			a := (w >> shift) & 0x1f
			b := int(a) + util.SignExtend(w>>(shift-3), 3)
			c[0][i] = util.Expand5(a)
			c[1][i] = util.Expand5(uint64(b))
		}
		tables := util.IfThenElse(opaque, &modifierTables, &punchthroughModifierTables)
		writeSubblocks(w, c, tables, !opaque, blk)
	}
}

// writePaint paints texels from four paint colours selected by texel code.
func writePaint(w uint64, p [4][3]int, opaque bool, blk *block) {
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			code := texelCode(w, x, y)
			if !opaque && code == 2 {
				blk.set(x, y, 0, 0, 0, 0)
				continue
			}
			blk.set(x, y, p[code][0], p[code][1], p[code][2], 255)
		}
	}
}

func decodeT(w uint64, opaque bool, blk *block) {
	c0 := [3]int{
		util.Expand4((w>>57)&0xc | (w>>56)&0x3),
		util.Expand4(w >> 52),
		util.Expand4(w >> 48),
	}
	c1 := [3]int{
		util.Expand4(w >> 44),
		util.Expand4(w >> 40),
		util.Expand4(w >> 36),
	}
	d := thDistances[(w>>33)&6|(w>>32)&1]

	var p [4][3]int
	for i := 0; i < 3; i++ {
		p[0][i] = c0[i]
		p[1][i] = c1[i] + d
		p[2][i] = c1[i]
		p[3][i] = c1[i] - d
	}
	writePaint(w, p, opaque, blk)
}

func decodeH(w uint64, opaque bool, blk *block) {
	c0 := [3]int{
		util.Expand4(w >> 59),
		util.Expand4((w>>55)&0xe | (w>>52)&0x1),
		util.Expand4((w>>48)&0x8 | (w>>47)&0x7),
	}
	c1 := [3]int{
		util.Expand4(w >> 43),
		util.Expand4(w >> 39),
		util.Expand4(w >> 35),
	}
	idx := (w>>32)&4 | (w>>31)&2
	if c0[0]<<16|c0[1]<<8|c0[2] >= c1[0]<<16|c1[1]<<8|c1[2] {
		idx++
	}
	d := thDistances[idx]

	var p [4][3]int
	for i := 0; i < 3; i++ {
		p[0][i] = c0[i] + d
		p[1][i] = c0[i] - d
		p[2][i] = c1[i] + d
		p[3][i] = c1[i] - d
	}
	writePaint(w, p, opaque, blk)
}

// decodePlanar interpolates the origin, horizontal and vertical colours.
// Planar blocks are always opaque.
func decodePlanar(w uint64, blk *block) {
	o := [3]int{
		util.Expand6(w >> 57),
		util.Expand7((w>>50)&0x40 | (w>>49)&0x3f),
		util.Expand6((w>>43)&0x20 | (w>>40)&0x18 | (w>>39)&0x7),
	}
	h := [3]int{
		util.Expand6((w>>33)&0x3e | (w>>32)&0x1),
		util.Expand7(w >> 25),
		util.Expand6(w >> 19),
	}
	v := [3]int{
		util.Expand6(w >> 13),
		util.Expand7(w >> 6),
		util.Expand6(w),
	}

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			var c [3]int
			for i := 0; i < 3; i++ {
				c[i] = (x*(h[i]-o[i]) + y*(v[i]-o[i]) + 4*o[i] + 2) >> 2
			}
			blk.set(x, y, c[0], c[1], c[2], 255)
		}
	}
}
