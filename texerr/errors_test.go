package texerr

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIsKind(t *testing.T) {
	err := Format(UnsupportedFormat, 0x83F0, "glInternalFormat 0x%X", 0x83F0)
	wrapped := fmt.Errorf("decoding foo.ktx: %w", err)

	assert.True(t, errors.Is(wrapped, ErrUnsupported))
	assert.False(t, errors.Is(wrapped, ErrUnknownFormat))
	assert.Equal(t, UnsupportedFormat, KindOf(wrapped))

	v, ok := ValueOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x83F0), v)
}

func TestWrapUnwrapsCause(t *testing.T) {
	err := Wrap(CorruptStream, io.ErrUnexpectedEOF, "gzip")
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.True(t, errors.Is(err, ErrCorruptStream))
	assert.Equal(t, "gdxtex: gzip: unexpected EOF", err.Error())
}

func TestKindOfUntyped(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
	_, ok := ValueOf(New(TruncatedData, "short"))
	assert.False(t, ok)
}
