package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPixelBuffer(t *testing.T) {
	buf, err := NewPixelBuffer(5, 3)
	require.NoError(t, err)
	assert.Equal(t, 5*3*4, len(buf.Pix))
	assert.Equal(t, 20, buf.Stride())

	_, err = NewPixelBuffer(0, 3)
	assert.Error(t, err)
	_, err = NewPixelBuffer(3, -1)
	assert.Error(t, err)
}

func TestSetAt(t *testing.T) {
	buf, err := NewPixelBuffer(2, 2)
	require.NoError(t, err)

	buf.Set(1, 1, 10, 20, 30, 40)
	assert.Equal(t, [4]byte{10, 20, 30, 40}, buf.At(1, 1))
	assert.Equal(t, [4]byte{0, 0, 0, 0}, buf.At(0, 1))
	assert.Equal(t, byte(10), buf.Pix[12])
}

func TestEquals(t *testing.T) {
	a, _ := NewPixelBuffer(2, 2)
	b, _ := NewPixelBuffer(2, 2)
	assert.True(t, a.Equals(b))

	b.Set(0, 0, 1, 0, 0, 0)
	assert.False(t, a.Equals(b))

	c, _ := NewPixelBuffer(4, 1)
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}

func TestToImage(t *testing.T) {
	buf, _ := NewPixelBuffer(3, 2)
	buf.Set(2, 1, 1, 2, 3, 4)

	img := buf.ToImage()
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	c := img.NRGBAAt(2, 1)
	assert.Equal(t, []uint8{1, 2, 3, 4}, []uint8{c.R, c.G, c.B, c.A})
}
