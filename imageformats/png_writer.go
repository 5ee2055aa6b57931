package imageformats

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"
	"sort"

	"github.com/klauspost/compress/zlib"

	"github.com/kpfaulkner/gdxtex/image"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// PNGWriter writes 8 bit RGBA PNGs directly from a PixelBuffer, which lets
// us attach tEXt metadata that image/png has no way to emit.
type PNGWriter struct {
	// Text is written as one tEXt chunk per entry, sorted by key. Keys must
	// be 1-79 Latin-1 characters.
	Text map[string]string

	// Level is the zlib level for IDAT; zero means zlib.DefaultCompression.
	Level int
}

// WritePNG writes buf with default settings and no text.
func WritePNG(buf *image.PixelBuffer, output io.Writer) error {
	return PNGWriter{}.WritePNG(buf, output)
}

func (p PNGWriter) WritePNG(buf *image.PixelBuffer, output io.Writer) error {
	if _, err := output.Write(pngHeader); err != nil {
		return err
	}
	if err := writeIHDR(buf, output); err != nil {
		return err
	}
	if err := writeSRGB(output); err != nil {
		return err
	}
	if err := p.writeText(output); err != nil {
		return err
	}
	if err := p.writeIDAT(buf, output); err != nil {
		return err
	}
	return writeChunk(output, "IEND", nil)
}

// writeChunk emits length, type, data and the CRC over type and data.
func writeChunk(output io.Writer, kind string, data []byte) error {
	b := make([]byte, 8, 12+len(data))
	binary.BigEndian.PutUint32(b, uint32(len(data)))
	copy(b[4:8], kind)
	b = append(b, data...)
	b = binary.BigEndian.AppendUint32(b, crc32.ChecksumIEEE(b[4:]))
	_, err := output.Write(b)
	return err
}

func writeIHDR(buf *image.PixelBuffer, output io.Writer) error {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], uint32(buf.Width))
	binary.BigEndian.PutUint32(ihdr[4:], uint32(buf.Height))
	ihdr[8] = 8  // bit depth
	ihdr[9] = 6  // truecolour with alpha
	ihdr[10] = 0 // deflate
	ihdr[11] = 0 // adaptive filtering
	ihdr[12] = 0 // no interlace
	return writeChunk(output, "IHDR", ihdr)
}

// writeSRGB marks the samples as sRGB, relative colorimetric intent.
func writeSRGB(output io.Writer) error {
	return writeChunk(output, "sRGB", []byte{0x01})
}

func (p PNGWriter) writeText(output io.Writer) error {
	keys := make([]string, 0, len(p.Text))
	for k := range p.Text {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		var data bytes.Buffer
		data.WriteString(k)
		data.WriteByte(0)
		data.WriteString(p.Text[k])
		if err := writeChunk(output, "tEXt", data.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func (p PNGWriter) writeIDAT(buf *image.PixelBuffer, output io.Writer) error {
	level := p.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}

	var compressed bytes.Buffer
	w, err := zlib.NewWriterLevel(&compressed, level)
	if err != nil {
		return err
	}

	// every row uses filter type 0
	stride := buf.Stride()
	for y := 0; y < buf.Height; y++ {
		if _, err := w.Write([]byte{0}); err != nil {
			return err
		}
		if _, err := w.Write(buf.Pix[y*stride : (y+1)*stride]); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return writeChunk(output, "IDAT", compressed.Bytes())
}
