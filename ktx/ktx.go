// Package ktx reads the first image of a Khronos KTX (version 1) texture, as
// written by libGDX either as a plain .ktx or as a GZIP wrapped .zktx.
package ktx

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/kpfaulkner/gdxtex/compression"
	"github.com/kpfaulkner/gdxtex/etc"
	"github.com/kpfaulkner/gdxtex/image"
	"github.com/kpfaulkner/gdxtex/options"
	"github.com/kpfaulkner/gdxtex/pixel"
	"github.com/kpfaulkner/gdxtex/texerr"
	"github.com/kpfaulkner/gdxtex/texio"
)

// FileIdentifier opens every KTX 1.1 file.
var FileIdentifier = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x31, 0x31, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

// EndiannessMarker reads as this value when the file matches the reader's
// (little-endian) byte order.
const EndiannessMarker = 0x04030201

// headerFields is the size of the fields after the identifier, from the
// endianness marker up to bytesOfKeyValueData.
const headerFields = 13 * 4

type Header struct {
	// FileSize is the uncompressed length prefix of the libGDX zktx layout.
	// Prefixed is false and FileSize zero for plain KTX files.
	FileSize uint32
	Prefixed bool

	Identifier [12]byte
	Endianness uint32
	Order      binary.ByteOrder

	GLType                uint32
	GLTypeSize            uint32
	GLFormat              uint32
	GLInternalFormat      uint32
	GLBaseInternalFormat  uint32
	PixelWidth            uint32
	PixelHeight           uint32
	PixelDepth            uint32
	NumberOfArrayElements uint32
	NumberOfFaces         uint32
	NumberOfMipmapLevels  uint32
	BytesOfKeyValueData   uint32
}

// MarkerValid reports whether the endianness marker is 0x04030201 in either
// byte order. Other values are still read as big-endian.
func (h Header) MarkerValid() bool {
	return h.Endianness == EndiannessMarker || texio.Reverse32(h.Endianness) == EndiannessMarker
}

// FormatName names the header's glInternalFormat.
func (h Header) FormatName() string {
	return InternalFormatName(h.GLInternalFormat)
}

// Image is the first image of a KTX file: its header, raw key/value block
// and the encoded pixels of mip level 0, face 0, array element 0.
type Image struct {
	Header
	KeyValueData []byte
	Data         []byte
}

func unwrap(b []byte) ([]byte, error) {
	if !compression.IsCompressed(b) {
		return b, nil
	}
	return compression.Decompress(b)
}

// ReadImage parses the header, key/value block and first image of a KTX or
// zKTX file without decoding pixels. A file starting with the KTX identifier
// is read as is; anything else is read as the libGDX layout, a 4 byte
// big-endian size followed by an identifier that must contain "KTX".
func ReadImage(b []byte) (*Image, error) {
	data, err := unwrap(b)
	if err != nil {
		return nil, err
	}

	var h Header
	var id []byte
	if bytes.HasPrefix(data, FileIdentifier[:]) {
		id = data[:len(FileIdentifier)]
		data = data[len(FileIdentifier):]
	} else {
		if len(data) < 4+len(FileIdentifier) {
			return nil, texerr.New(texerr.InvalidIdentifier, "ktx: %d byte file has no identifier", len(data))
		}
		h.Prefixed = true
		h.FileSize = binary.BigEndian.Uint32(data)
		id = data[4 : 4+len(FileIdentifier)]
		data = data[4+len(FileIdentifier):]
	}
	copy(h.Identifier[:], id)
	if !bytes.Contains(id, []byte("KTX")) {
		return nil, texerr.New(texerr.InvalidIdentifier, "ktx: identifier %q", id)
	}

	r := texio.NewReader(data, binary.LittleEndian)
	if err := readHeader(r, &h); err != nil {
		return nil, fmt.Errorf("ktx header: %w", err)
	}

	img := &Image{Header: h}
	if img.KeyValueData, err = r.Bytes(int(h.BytesOfKeyValueData)); err != nil {
		return nil, fmt.Errorf("ktx key/value data: %w", err)
	}
	imageSize, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("ktx imageSize: %w", err)
	}
	if img.Data, err = r.Bytes(int(imageSize)); err != nil {
		return nil, fmt.Errorf("ktx imageData: %w", err)
	}
	return img, nil
}

// readHeader reads the endianness marker and the twelve fields after it.
// Any marker other than EndiannessMarker means the file is big-endian.
func readHeader(r *texio.Reader, h *Header) error {
	if r.Remaining() < headerFields {
		return texerr.New(texerr.TruncatedData, "need %d bytes, have %d", headerFields, r.Remaining())
	}

	var err error
	if h.Endianness, err = r.Uint32(); err != nil {
		return err
	}
	h.Order = binary.LittleEndian
	if h.Endianness != EndiannessMarker {
		h.Order = binary.BigEndian
	}
	r.SetOrder(h.Order)

	for _, f := range []*uint32{
		&h.GLType, &h.GLTypeSize, &h.GLFormat, &h.GLInternalFormat, &h.GLBaseInternalFormat,
		&h.PixelWidth, &h.PixelHeight, &h.PixelDepth,
		&h.NumberOfArrayElements, &h.NumberOfFaces, &h.NumberOfMipmapLevels,
		&h.BytesOfKeyValueData,
	} {
		if *f, err = r.Uint32(); err != nil {
			return err
		}
	}
	return nil
}

// ReadHeader returns just the header of a KTX or zKTX file.
func ReadHeader(b []byte) (Header, error) {
	img, err := ReadImage(b)
	if err != nil {
		return Header{}, err
	}
	return img.Header, nil
}

// Decode reads a KTX or zKTX file and decodes its first image to RGBA8888.
func Decode(b []byte, opts *options.DecodeOptions) (*image.PixelBuffer, Header, error) {
	opts = options.NewDecodeOptions(opts)

	img, err := ReadImage(b)
	if err != nil {
		return nil, Header{}, err
	}
	h := img.Header

	if !Decodable(h.GLInternalFormat) {
		return nil, h, texerr.Format(texerr.UnsupportedFormat, h.GLInternalFormat,
			"ktx: unsupported glInternalFormat %s (%d)", InternalFormatName(h.GLInternalFormat), h.GLInternalFormat)
	}
	if h.PixelWidth == 0 || h.PixelHeight == 0 || h.PixelWidth > image.MaxDimension || h.PixelHeight > image.MaxDimension {
		return nil, h, texerr.New(texerr.InvalidDimensions, "ktx: image %dx%d", h.PixelWidth, h.PixelHeight)
	}
	width, height := int(h.PixelWidth), int(h.PixelHeight)

	var buf *image.PixelBuffer
	if f, ok := uncompressedFormat(h.GLInternalFormat); ok {
		buf, err = pixel.Unpack(img.Data, width, height, f, opts)
	} else {
		buf, err = etc.Decode(img.Data, width, height, etc.Format(h.GLInternalFormat), opts)
	}
	if err != nil {
		return nil, h, fmt.Errorf("ktx %s: %w", h.FormatName(), err)
	}
	return buf, h, nil
}
