package core

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/gdxtex/ktx"
	"github.com/kpfaulkner/gdxtex/options"
	"github.com/kpfaulkner/gdxtex/texerr"
)

func cimBytes(width uint32, height uint32, tag uint32, payload []byte) []byte {
	b := make([]byte, 12)
	binary.BigEndian.PutUint32(b[0:], width)
	binary.BigEndian.PutUint32(b[4:], height)
	binary.BigEndian.PutUint32(b[8:], tag)
	return append(b, payload...)
}

func ktxBytes(internalFormat uint32, width uint32, height uint32, data []byte) []byte {
	var b bytes.Buffer
	b.Write(ktx.FileIdentifier[:])
	for _, v := range []uint32{
		ktx.EndiannessMarker, 0, 1, 0, internalFormat, 0,
		width, height, 0, 0, 1, 1, 0,
		uint32(len(data)),
	} {
		_ = binary.Write(&b, binary.LittleEndian, v)
	}
	b.Write(data)
	return b.Bytes()
}

func TestDecodeCIM(t *testing.T) {
	// bottom row first
	file := cimBytes(1, 2, 3, []byte{1, 2, 3, 4, 5, 6})

	res, err := Decode(file, KindCIM)
	require.NoError(t, err)
	assert.Equal(t, KindCIM, res.Kind)
	assert.Equal(t, "RGB888", res.FormatName)
	assert.Equal(t, uint32(3), res.Tag)
	assert.Equal(t, uint32(0), res.GLInternalFormat)
	assert.Equal(t, 1, res.Width())
	assert.Equal(t, 2, res.Height())
	assert.Equal(t, [4]byte{4, 5, 6, 255}, res.Buffer.At(0, 0))
	assert.Equal(t, [4]byte{1, 2, 3, 255}, res.Buffer.At(0, 1))
}

func TestDecodeCIMOrdinal(t *testing.T) {
	dec, err := NewDecoder(WithCIMVersion(options.CIMOrdinal))
	require.NoError(t, err)

	res, err := dec.Decode(cimBytes(1, 1, 1, []byte{0x80}), KindCIM)
	require.NoError(t, err)
	assert.Equal(t, "Intensity", res.FormatName)
	assert.Equal(t, [4]byte{0x80, 0x80, 0x80, 255}, res.Buffer.At(0, 0))
}

func TestDecodeKTX(t *testing.T) {
	res, err := Decode(ktxBytes(ktx.GLRGBA8, 1, 1, []byte{9, 8, 7, 6}), KindKTX)
	require.NoError(t, err)
	assert.Equal(t, KindKTX, res.Kind)
	assert.Equal(t, uint32(ktx.GLRGBA8), res.GLInternalFormat)
	assert.Equal(t, "GL_RGBA8", res.FormatName)
	assert.Equal(t, [4]byte{9, 8, 7, 6}, res.Buffer.At(0, 0))

	img := res.ToImage()
	assert.Equal(t, 1, img.Bounds().Dx())
}

func TestDecodeFailures(t *testing.T) {

	for _, tc := range []struct {
		name string
		data []byte
		kind ContainerKind
		err  error
	}{
		{name: "cim unknown tag", data: cimBytes(1, 1, 42, []byte{0}), kind: KindCIM, err: texerr.ErrUnknownFormat},
		{name: "ktx unsupported", data: ktxBytes(0x8C00, 4, 4, make([]byte, 8)), kind: KindKTX, err: texerr.ErrUnsupported},
		{name: "ktx as cim", data: ktxBytes(ktx.GLRGBA8, 1, 1, []byte{1, 2, 3, 4}), kind: KindCIM, err: texerr.ErrInvalidDimensions},
		{name: "cim as ktx", data: cimBytes(1, 1, 4, []byte{1, 2, 3, 4}), kind: KindKTX, err: texerr.ErrInvalidIdentifier},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Decode(tc.data, tc.kind)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tc.err), "got %v", err)
		})
	}

	_, err := Decode(nil, ContainerKind(9))
	assert.Error(t, err)
}

func TestNewDecoderOptions(t *testing.T) {
	dec, err := NewDecoder(WithStrictETC2(true), WithParallelism(4), WithCIMVersion(options.CIMOrdinal))
	require.NoError(t, err)
	assert.Equal(t, options.DecodeOptions{CIMVersion: options.CIMOrdinal, StrictETC2: true, Parallelism: 4}, dec.Options())

	_, err = NewDecoder(WithParallelism(-1))
	assert.Error(t, err)
	_, err = NewDecoder(WithCIMVersion(7))
	assert.Error(t, err)
}

func TestFormatName(t *testing.T) {
	assert.Equal(t, "RGBA8888", FormatName(KindCIM, 4))
	assert.Equal(t, "Unknown(0)", FormatName(KindCIM, 0))
	assert.Equal(t, "COMPRESSED_RGB8_ETC2", FormatName(KindKTX, 0x9274))

	dec, err := NewDecoder(WithCIMVersion(options.CIMOrdinal))
	require.NoError(t, err)
	assert.Equal(t, "Alpha", dec.FormatName(KindCIM, 0))
}

func TestInfo(t *testing.T) {
	dec, err := NewDecoder()
	require.NoError(t, err)

	info, err := dec.Info(ktxBytes(0x93B0, 64, 32, nil), KindKTX)
	require.NoError(t, err)
	assert.Equal(t, 64, info.Width)
	assert.Equal(t, 32, info.Height)
	assert.Equal(t, "COMPRESSED_RGBA_ASTC_4x4_KHR", info.FormatName)
	assert.False(t, info.Decodable)
	require.NotNil(t, info.KTX)
	assert.Equal(t, uint32(1), info.KTX.NumberOfFaces)

	info, err = dec.Info(cimBytes(8, 8, 6, nil), KindCIM)
	require.NoError(t, err)
	assert.Equal(t, "RGBA4444", info.FormatName)
	assert.True(t, info.Decodable)
	assert.Nil(t, info.KTX)
}

func TestKinds(t *testing.T) {

	for _, tc := range []struct {
		path     string
		expected ContainerKind
		fails    bool
	}{
		{path: "atlas/page0.cim", expected: KindCIM},
		{path: "atlas/page0.KTX", expected: KindKTX},
		{path: "atlas/page0.zktx", expected: KindKTX},
		{path: "atlas/page0.png", fails: true},
		{path: "atlas/page0", fails: true},
	} {
		t.Run(tc.path, func(t *testing.T) {
			kind, err := KindFromPath(tc.path)
			if tc.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, kind)
		})
	}

	kind, err := ParseKind("cim")
	require.NoError(t, err)
	assert.Equal(t, "cim", kind.String())
}
