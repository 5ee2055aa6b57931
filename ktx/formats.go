package ktx

import (
	"fmt"

	"github.com/kpfaulkner/gdxtex/etc"
	"github.com/kpfaulkner/gdxtex/pixel"
)

// glInternalFormat values that decode to pixels.
const (
	GLRGB8   = 0x8051
	GLRGB10  = 0x8052
	GLRGB12  = 0x8053
	GLRGB16  = 0x8054
	GLRGBA8  = 0x8058
	GLRGBA12 = 0x805A
	GLRGBA16 = 0x805B
)

// internalFormatNames covers every glInternalFormat the reader knows about,
// decodable or not.
var internalFormatNames = map[uint32]string{
	GLRGB8:   "GL_RGB8",
	GLRGB10:  "GL_RGB10",
	GLRGB12:  "GL_RGB12",
	GLRGB16:  "GL_RGB16",
	GLRGBA8:  "GL_RGBA8",
	GLRGBA12: "GL_RGBA12",
	GLRGBA16: "GL_RGBA16",

	uint32(etc.ETC1RGB8):   etc.ETC1RGB8.String(),
	uint32(etc.ETC2RGB8):   etc.ETC2RGB8.String(),
	uint32(etc.ETC2RGB8A1): etc.ETC2RGB8A1.String(),
	uint32(etc.ETC2RGBA8):  etc.ETC2RGBA8.String(),

	0x83F0: "COMPRESSED_RGB_S3TC_DXT1_EXT",
	0x83F1: "COMPRESSED_RGBA_S3TC_DXT1_EXT",
	0x83F2: "COMPRESSED_RGBA_S3TC_DXT3_EXT",
	0x83F3: "COMPRESSED_RGBA_S3TC_DXT5_EXT",

	0x8C00: "COMPRESSED_RGB_PVRTC_4BPPV1_IMG",
	0x8C01: "COMPRESSED_RGB_PVRTC_2BPPV1_IMG",
	0x8C02: "COMPRESSED_RGBA_PVRTC_4BPPV1_IMG",
	0x8C03: "COMPRESSED_RGBA_PVRTC_2BPPV1_IMG",

	0x93B0: "COMPRESSED_RGBA_ASTC_4x4_KHR",
	0x93B1: "COMPRESSED_RGBA_ASTC_5x4_KHR",
	0x93B2: "COMPRESSED_RGBA_ASTC_5x5_KHR",
	0x93B3: "COMPRESSED_RGBA_ASTC_6x5_KHR",
	0x93B4: "COMPRESSED_RGBA_ASTC_6x6_KHR",
	0x93B5: "COMPRESSED_RGBA_ASTC_8x5_KHR",
	0x93B6: "COMPRESSED_RGBA_ASTC_8x6_KHR",
	0x93B7: "COMPRESSED_RGBA_ASTC_8x8_KHR",
	0x93B8: "COMPRESSED_RGBA_ASTC_10x5_KHR",
	0x93B9: "COMPRESSED_RGBA_ASTC_10x6_KHR",
	0x93BA: "COMPRESSED_RGBA_ASTC_10x8_KHR",
	0x93BB: "COMPRESSED_RGBA_ASTC_10x10_KHR",
	0x93BC: "COMPRESSED_RGBA_ASTC_12x10_KHR",
	0x93BD: "COMPRESSED_RGBA_ASTC_12x12_KHR",

	0x8C70: "COMPRESSED_LUMINANCE_LATC1_EXT",
	0x8C71: "COMPRESSED_SIGNED_LUMINANCE_LATC1_EXT",
	0x8C72: "COMPRESSED_LUMINANCE_ALPHA_LATC2_EXT",
	0x8C73: "COMPRESSED_SIGNED_LUMINANCE_ALPHA_LATC2_EXT",

	0x9270: "COMPRESSED_R11_EAC",
	0x9271: "COMPRESSED_SIGNED_R11_EAC",
	0x9272: "COMPRESSED_RG11_EAC",
	0x9273: "COMPRESSED_SIGNED_RG11_EAC",

	0x8C40: "SRGB_EXT",
	0x8C41: "SRGB8_EXT",
	0x8C42: "SRGB_ALPHA_EXT",
	0x8C43: "SRGB8_ALPHA8_EXT",
	0x8C44: "SLUMINANCE_ALPHA_EXT",
	0x8C45: "SLUMINANCE8_ALPHA8_EXT",
	0x8C46: "SLUMINANCE_EXT",
	0x8C47: "SLUMINANCE8_EXT",
	0x8C48: "COMPRESSED_SRGB_EXT",
	0x8C49: "COMPRESSED_SRGB_ALPHA_EXT",
	0x9279: "COMPRESSED_SRGB8_ALPHA8_ETC2_EAC",
	0x93D0: "COMPRESSED_SRGB8_ALPHA8_ASTC_4x4_KHR",
}

// InternalFormatName names a glInternalFormat, falling back to its hex value.
func InternalFormatName(v uint32) string {
	if name, ok := internalFormatNames[v]; ok {
		return name
	}
	return fmt.Sprintf("0x%X", v)
}

// Known reports whether v is a glInternalFormat the reader recognises, even
// if it cannot decode it.
func Known(v uint32) bool {
	_, ok := internalFormatNames[v]
	return ok
}

// uncompressedFormat maps the RGB and RGBA families to a source pixel
// encoding. Every member of a family is read with the 8 bit stride.
func uncompressedFormat(v uint32) (pixel.Format, bool) {
	switch v {
	case GLRGBA8, GLRGBA12, GLRGBA16:
		return pixel.RGBA8888, true
	case GLRGB8, GLRGB10, GLRGB12, GLRGB16:
		return pixel.RGB888, true
	}
	return pixel.Unknown, false
}

// Decodable reports whether Decode can produce pixels for v.
func Decodable(v uint32) bool {
	_, ok := uncompressedFormat(v)
	return ok || etc.IsFormat(v)
}
