// Package cim reads libGDX CIM files: a zlib wrapped, big-endian 12 byte
// header followed by uncompressed pixmap data stored bottom row first.
package cim

import (
	"encoding/binary"
	"fmt"

	"github.com/kpfaulkner/gdxtex/compression"
	"github.com/kpfaulkner/gdxtex/image"
	"github.com/kpfaulkner/gdxtex/options"
	"github.com/kpfaulkner/gdxtex/pixel"
	"github.com/kpfaulkner/gdxtex/texerr"
	"github.com/kpfaulkner/gdxtex/texio"
)

// HeaderSize is the size of the width, height and format fields.
const HeaderSize = 12

type Header struct {
	Width  uint32
	Height uint32

	// Tag is the raw format number as stored in the file.
	Tag uint32

	// Format is Tag resolved under the header's numbering, or pixel.Unknown.
	Format pixel.Format

	Version options.CIMVersion
}

// gdx2dFormats is the numbering written by PixmapIO.writeCIM, which stores the
// native gdx2d format constants.
var gdx2dFormats = map[uint32]pixel.Format{
	1: pixel.Alpha,
	2: pixel.LuminanceAlpha,
	3: pixel.RGB888,
	4: pixel.RGBA8888,
	5: pixel.RGB565,
	6: pixel.RGBA4444,
}

// ordinalFormats numbers formats by their Pixmap.Format declaration order.
var ordinalFormats = map[uint32]pixel.Format{
	0: pixel.Alpha,
	1: pixel.Intensity,
	2: pixel.LuminanceAlpha,
	3: pixel.RGB565,
	4: pixel.RGBA4444BE,
	5: pixel.RGB888,
	6: pixel.RGBA8888,
}

// ResolveFormat maps a stored format number to a pixel format.
func ResolveFormat(version options.CIMVersion, tag uint32) (pixel.Format, bool) {
	var f pixel.Format
	var ok bool
	switch version {
	case options.CIMGdx2D:
		f, ok = gdx2dFormats[tag]
	case options.CIMOrdinal:
		f, ok = ordinalFormats[tag]
	}
	return f, ok
}

// FormatName names a stored format number, "Unknown(n)" when it is not
// recognised.
func FormatName(version options.CIMVersion, tag uint32) string {
	if f, ok := ResolveFormat(version, tag); ok {
		return f.String()
	}
	return fmt.Sprintf("Unknown(%d)", tag)
}

// unwrap removes the optional whole-file zlib wrapper.
func unwrap(b []byte) ([]byte, error) {
	if !compression.IsZlib(b) {
		return b, nil
	}
	return compression.DecompressZlibRaw(b)
}

// readHeader parses the header of an already unwrapped file and returns the
// remaining payload.
func readHeader(b []byte, version options.CIMVersion) (Header, []byte, error) {
	r := texio.NewReader(b, binary.BigEndian)

	var h Header
	var err error
	h.Version = version
	if h.Width, err = r.Uint32(); err != nil {
		return h, nil, fmt.Errorf("cim width: %w", err)
	}
	if h.Height, err = r.Uint32(); err != nil {
		return h, nil, fmt.Errorf("cim height: %w", err)
	}
	if h.Tag, err = r.Uint32(); err != nil {
		return h, nil, fmt.Errorf("cim format: %w", err)
	}
	h.Format, _ = ResolveFormat(version, h.Tag)
	return h, r.Rest(), nil
}

// ReadHeader unwraps b if needed and returns its header. The format number
// is not validated.
func ReadHeader(b []byte, version options.CIMVersion) (Header, error) {
	data, err := unwrap(b)
	if err != nil {
		return Header{}, err
	}
	h, _, err := readHeader(data, version)
	return h, err
}

// Decode reads a complete CIM file and returns its pixels top row first.
func Decode(b []byte, opts *options.DecodeOptions) (*image.PixelBuffer, Header, error) {
	opts = options.NewDecodeOptions(opts)

	data, err := unwrap(b)
	if err != nil {
		return nil, Header{}, err
	}
	h, payload, err := readHeader(data, opts.CIMVersion)
	if err != nil {
		return nil, h, err
	}

	if h.Width == 0 || h.Height == 0 || h.Width > image.MaxDimension || h.Height > image.MaxDimension {
		return nil, h, texerr.New(texerr.InvalidDimensions, "cim: image %dx%d", h.Width, h.Height)
	}
	if h.Format == pixel.Unknown {
		return nil, h, texerr.Format(texerr.UnknownFormat, h.Tag, "cim: %s format %s", opts.CIMVersion, FormatName(opts.CIMVersion, h.Tag))
	}

	if compression.IsCompressed(payload) {
		if payload, err = compression.Decompress(payload); err != nil {
			return nil, h, err
		}
	}

	buf, err := pixel.Unpack(payload, int(h.Width), int(h.Height), h.Format, opts)
	if err != nil {
		return nil, h, fmt.Errorf("cim: %w", err)
	}
	buf.FlipVertical()
	return buf, h, nil
}
