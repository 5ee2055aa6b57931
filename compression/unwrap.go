package compression

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"

	"github.com/kpfaulkner/gdxtex/texerr"
)

// Kind is an outer wrapper format.
type Kind int

const (
	None Kind = iota
	GZIP
	Zlib
	Zstd
	LZ4
	XZ
)

// MaxUnwrapDepth bounds how many nested wrappers Unwrap will peel.
const MaxUnwrapDepth = 4

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
	xzMagic   = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case GZIP:
		return "gzip"
	case Zlib:
		return "zlib"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	case XZ:
		return "xz"
	default:
		return "unknown"
	}
}

// Sniff identifies the wrapper around b from its magic bytes.
func Sniff(b []byte) Kind {
	switch {
	case IsCompressed(b):
		return GZIP
	case bytes.HasPrefix(b, zstdMagic):
		return Zstd
	case bytes.HasPrefix(b, lz4Magic):
		return LZ4
	case bytes.HasPrefix(b, xzMagic):
		return XZ
	case IsZlib(b):
		return Zlib
	default:
		return None
	}
}

// Unwrap repeatedly strips recognised wrappers from b and returns the inner
// payload together with the wrappers removed, outermost first.
func Unwrap(b []byte) ([]byte, []Kind, error) {
	var peeled []Kind
	for depth := 0; depth < MaxUnwrapDepth; depth++ {
		kind := Sniff(b)
		if kind == None {
			return b, peeled, nil
		}
		out, err := inflate(kind, b)
		if err != nil {
			return nil, peeled, err
		}
		peeled = append(peeled, kind)
		b = out
	}
	return b, peeled, nil
}

func inflate(kind Kind, b []byte) ([]byte, error) {
	switch kind {
	case GZIP:
		return Decompress(b)
	case Zlib:
		return DecompressZlibRaw(b)
	case Zstd:
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, texerr.Wrap(texerr.CorruptStream, err, "zstd")
		}
		defer dec.Close()
		out, err := dec.DecodeAll(b, nil)
		if err != nil {
			return nil, texerr.Wrap(texerr.CorruptStream, err, "zstd")
		}
		return out, nil
	case LZ4:
		out, err := readAll(lz4.NewReader(bytes.NewReader(b)), len(b)*4)
		if err != nil {
			return nil, texerr.Wrap(texerr.CorruptStream, err, "lz4")
		}
		return out, nil
	case XZ:
		xr, err := xz.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, texerr.Wrap(texerr.CorruptStream, err, "xz")
		}
		out, err := readAll(xr, len(b)*4)
		if err != nil {
			return nil, texerr.Wrap(texerr.CorruptStream, err, "xz")
		}
		return out, nil
	}
	return b, nil
}
