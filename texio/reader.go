package texio

import (
	"encoding/binary"

	"github.com/kpfaulkner/gdxtex/texerr"
)

// Reverse32 swaps the byte order of a 32-bit value.
func Reverse32(v uint32) uint32 {
	return (v&0xff)<<24 |
		((v>>8)&0xff)<<16 |
		((v>>16)&0xff)<<8 |
		(v >> 24)
}

// Reader walks a byte slice, decoding integers in a switchable byte order.
// All reads are bounds checked and fail with a TruncatedData error.
type Reader struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

func NewReader(data []byte, order binary.ByteOrder) *Reader {
	return &Reader{data: data, order: order}
}

func (r *Reader) SetOrder(order binary.ByteOrder) {
	r.order = order
}

// Pos is the offset of the next unread byte.
func (r *Reader) Pos() int {
	return r.pos
}

func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

func (r *Reader) need(n int, what string) error {
	if n < 0 || r.Remaining() < n {
		return texerr.New(texerr.TruncatedData, "%s: need %d bytes at offset %d, have %d", what, n, r.pos, r.Remaining())
	}
	return nil
}

func (r *Reader) Uint32() (uint32, error) {
	if err := r.need(4, "uint32"); err != nil {
		return 0, err
	}
	v := r.order.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// Bytes returns the next n bytes without copying.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n, "bytes"); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *Reader) Skip(n int) error {
	if err := r.need(n, "skip"); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// Rest returns every unread byte and leaves the reader at the end.
func (r *Reader) Rest() []byte {
	b := r.data[r.pos:]
	r.pos = len(r.data)
	return b
}
