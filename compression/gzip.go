// Package compression detects and inflates the wrappers that texture
// containers are shipped in.
package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"

	"github.com/kpfaulkner/gdxtex/texerr"
	"github.com/kpfaulkner/gdxtex/util"
)

var (
	gzipMagic = []byte{0x1F, 0x8B}
)

// IsCompressed reports whether b looks like a GZIP stream.
func IsCompressed(b []byte) bool {
	return len(b) > 2 && bytes.HasPrefix(b, gzipMagic)
}

// Decompress inflates a complete GZIP stream into memory.
func Decompress(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, texerr.Wrap(texerr.CorruptStream, err, "gzip header")
	}
	defer zr.Close()

	out, err := readAll(zr, len(b)*4)
	if err != nil {
		return nil, texerr.Wrap(texerr.CorruptStream, err, "gzip body")
	}
	return out, nil
}

// IsZlib reports whether b starts with a valid zlib (RFC 1950) header using
// the DEFLATE method.
func IsZlib(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	cmf, flg := b[0], b[1]
	return cmf&0x0F == 8 && cmf>>4 <= 7 && (uint16(cmf)<<8|uint16(flg))%31 == 0
}

// DecompressZlibRaw skips the two byte zlib header (0x78 0x9C) and inflates
// the DEFLATE data that follows. The trailing Adler-32 is not checked.
func DecompressZlibRaw(b []byte) ([]byte, error) {
	if len(b) < 2 {
		return nil, texerr.New(texerr.CorruptStream, "zlib: %d byte stream", len(b))
	}
	fr := flate.NewReader(bytes.NewReader(b[2:]))
	defer fr.Close()

	out, err := readAll(fr, len(b)*4)
	if err != nil {
		return nil, texerr.Wrap(texerr.CorruptStream, err, "zlib body")
	}
	return out, nil
}

// scratch holds inflate buffers between calls; outputs are copied out at
// their exact size.
var scratch = util.NewBufferPool(64 << 20)

// PoolMetrics reports how often inflate scratch buffers were reused.
func PoolMetrics() (hits, misses int64) {
	return scratch.GetMetrics()
}

func readAll(r io.Reader, sizeHint int) ([]byte, error) {
	buf := scratch.Get()
	defer scratch.Put(buf)

	buf.Grow(sizeHint)
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}
