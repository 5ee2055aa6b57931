// Package etc decodes ETC1, ETC2 and ETC2+EAC block compressed textures to
// RGBA8888.
//
// By default blocks are decoded the way the libGDX editor tooling
// decodes them: ETC2 RGB blocks are treated as ETC1, punch-through alpha comes from
// a per-texel bit mask, and EAC alpha uses a single modifier row. Setting
// options.DecodeOptions.StrictETC2 switches to the Khronos definitions.
package etc

import (
	"fmt"

	"github.com/kpfaulkner/gdxtex/image"
	"github.com/kpfaulkner/gdxtex/options"
	"github.com/kpfaulkner/gdxtex/texerr"
	"github.com/kpfaulkner/gdxtex/util"
)

// Format is an OpenGL glInternalFormat handled by this package.
type Format uint32

const (
	ETC1RGB8   Format = 0x8D64 // ETC1_RGB8_OES
	ETC2RGB8   Format = 0x9274 // COMPRESSED_RGB8_ETC2
	ETC2RGB8A1 Format = 0x9276 // COMPRESSED_RGB8_PUNCHTHROUGH_ALPHA1_ETC2
	ETC2RGBA8  Format = 0x9278 // COMPRESSED_RGBA8_ETC2_EAC
)

// BlockDim is the width and height of a block in texels.
const BlockDim = 4

// IsFormat reports whether glInternalFormat is decoded by this package.
func IsFormat(glInternalFormat uint32) bool {
	return Format(glInternalFormat).BlockSize() != 0
}

// BlockSize is the number of bytes per 4x4 block, or 0 if f is not an ETC
// format.
func (f Format) BlockSize() int {
	switch f {
	case ETC1RGB8, ETC2RGB8, ETC2RGB8A1:
		return 8
	case ETC2RGBA8:
		return 16
	}
	return 0
}

func (f Format) String() string {
	switch f {
	case ETC1RGB8:
		return "ETC1_RGB8_OES"
	case ETC2RGB8:
		return "COMPRESSED_RGB8_ETC2"
	case ETC2RGB8A1:
		return "COMPRESSED_RGB8_PUNCHTHROUGH_ALPHA1_ETC2"
	case ETC2RGBA8:
		return "COMPRESSED_RGBA8_ETC2_EAC"
	}
	return fmt.Sprintf("0x%X", uint32(f))
}

// DataSize is the number of compressed bytes a width x height image needs.
func (f Format) DataSize(width int, height int) int {
	return (width / BlockDim) * (height / BlockDim) * f.BlockSize()
}

// Decode decompresses a width x height image. Both dimensions must be
// non-zero multiples of 4.
func Decode(src []byte, width int, height int, format Format, opts *options.DecodeOptions) (*image.PixelBuffer, error) {
	blockSize := format.BlockSize()
	if blockSize == 0 {
		return nil, texerr.Format(texerr.UnsupportedFormat, uint32(format), "etc: glInternalFormat %s", format)
	}
	if width <= 0 || height <= 0 || width%BlockDim != 0 || height%BlockDim != 0 {
		return nil, texerr.New(texerr.InvalidDimensions, "etc: %dx%d is not a whole number of %dx%d blocks", width, height, BlockDim, BlockDim)
	}
	if need := format.DataSize(width, height); len(src) < need {
		return nil, texerr.New(texerr.TruncatedData, "etc: %s %dx%d needs %d bytes, have %d", format, width, height, need, len(src))
	}

	buf, err := image.NewPixelBuffer(width, height)
	if err != nil {
		return nil, texerr.Wrap(texerr.InvalidDimensions, err, "etc")
	}

	decodeBlock := blockDecoder(format, opts != nil && opts.StrictETC2)
	blocksX := width / BlockDim
	blocksY := height / BlockDim

	err = util.ForEachBand(blocksY, opts.Workers(), func(lo int, hi int) error {
		var blk block
		for by := lo; by < hi; by++ {
			for bx := 0; bx < blocksX; bx++ {
				off := (by*blocksX + bx) * blockSize
				decodeBlock(src[off:off+blockSize], &blk)
				writeBlock(buf, bx*BlockDim, by*BlockDim, &blk)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return buf, nil
}

type blockFunc func(b []byte, blk *block)

func blockDecoder(format Format, strict bool) blockFunc {
	switch format {
	case ETC1RGB8:
		return func(b []byte, blk *block) {
			decodeColor(word(b), blk)
		}
	case ETC2RGB8:
		if strict {
			return func(b []byte, blk *block) {
				decodeETC2(word(b), false, blk)
			}
		}
		return func(b []byte, blk *block) {
			decodeColor(word(b), blk)
		}
	case ETC2RGB8A1:
		if strict {
			return func(b []byte, blk *block) {
				decodeETC2(word(b), true, blk)
			}
		}
		return func(b []byte, blk *block) {
			decodePunchthroughCompat(word(b), blk)
		}
	case ETC2RGBA8:
		if strict {
			return func(b []byte, blk *block) {
				decodeETC2(word(b[8:]), false, blk)
				decodeAlphaStrict(word(b), blk)
			}
		}
		return func(b []byte, blk *block) {
			decodeColor(word(b[8:]), blk)
			decodeAlphaCompat(b[:8], blk)
		}
	}
	panic(fmt.Sprintf("etc: no block decoder for %s", format))
}

func writeBlock(buf *image.PixelBuffer, x int, y int, blk *block) {
	for row := 0; row < BlockDim; row++ {
		off := buf.Offset(x, y+row)
		copy(buf.Pix[off:off+BlockDim*4], blk[row*16:(row+1)*16])
	}
}
