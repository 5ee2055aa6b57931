// Package pixel converts uncompressed pixel encodings to RGBA8888.
package pixel

import (
	"encoding/binary"

	"github.com/kpfaulkner/gdxtex/util"
)

// Format is an uncompressed source pixel encoding.
type Format uint8

const (
	Unknown Format = iota
	Alpha
	Intensity
	LuminanceAlpha
	RGB565
	RGBA4444
	RGBA4444BE
	RGB888
	RGBA8888
)

// unpackFunc converts one source pixel to one RGBA destination pixel.
type unpackFunc func(dst []byte, src []byte)

type formatInfo struct {
	name   string
	stride int
	unpack unpackFunc
}

var formats = [...]formatInfo{
	Alpha:          {"Alpha", 1, unpackAlpha},
	Intensity:      {"Intensity", 1, unpackIntensity},
	LuminanceAlpha: {"LuminanceAlpha", 2, unpackLuminanceAlpha},
	RGB565:         {"RGB565", 2, unpackRGB565},
	RGBA4444:       {"RGBA4444", 2, unpackRGBA4444LE},
	RGBA4444BE:     {"RGBA4444", 2, unpackRGBA4444BE},
	RGB888:         {"RGB888", 3, unpackRGB888},
	RGBA8888:       {"RGBA8888", 4, unpackRGBA8888},
}

func (f Format) info() (formatInfo, bool) {
	if f == Unknown || int(f) >= len(formats) {
		return formatInfo{}, false
	}
	return formats[f], true
}

// Valid reports whether f is one of the known encodings.
func (f Format) Valid() bool {
	_, ok := f.info()
	return ok
}

// BytesPerPixel is the source stride, or 0 for an unknown format.
func (f Format) BytesPerPixel() int {
	fi, _ := f.info()
	return fi.stride
}

func (f Format) String() string {
	if fi, ok := f.info(); ok {
		return fi.name
	}
	return "Unknown"
}

func unpackAlpha(dst []byte, src []byte) {
	dst[0], dst[1], dst[2], dst[3] = 255, 255, 255, src[0]
}

func unpackIntensity(dst []byte, src []byte) {
	dst[0], dst[1], dst[2], dst[3] = src[0], src[0], src[0], 255
}

func unpackLuminanceAlpha(dst []byte, src []byte) {
	dst[0], dst[1], dst[2], dst[3] = src[0], src[0], src[0], src[1]
}

func unpackRGB565(dst []byte, src []byte) {
	v := binary.LittleEndian.Uint16(src)
	dst[0] = util.Scale((v>>11)&0x1f, 0x1f)
	dst[1] = util.Scale((v>>5)&0x3f, 0x3f)
	dst[2] = util.Scale(v&0x1f, 0x1f)
	dst[3] = 255
}

func unpack4444(dst []byte, v uint16) {
	dst[0] = byte((v>>12)&0xf) * 17
	dst[1] = byte((v>>8)&0xf) * 17
	dst[2] = byte((v>>4)&0xf) * 17
	dst[3] = byte(v&0xf) * 17
}

func unpackRGBA4444LE(dst []byte, src []byte) {
	unpack4444(dst, binary.LittleEndian.Uint16(src))
}

func unpackRGBA4444BE(dst []byte, src []byte) {
	unpack4444(dst, binary.BigEndian.Uint16(src))
}

func unpackRGB888(dst []byte, src []byte) {
	dst[0], dst[1], dst[2], dst[3] = src[0], src[1], src[2], 255
}

func unpackRGBA8888(dst []byte, src []byte) {
	copy(dst[:4], src[:4])
}
