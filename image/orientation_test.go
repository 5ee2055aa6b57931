package image

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rowFilled(width int, height int) []byte {
	pix := make([]byte, width*height*BytesPerPixel)
	for y := 0; y < height; y++ {
		for i := 0; i < width*BytesPerPixel; i++ {
			pix[y*width*BytesPerPixel+i] = byte(y*16 + i)
		}
	}
	return pix
}

func TestFlipVertical(t *testing.T) {

	for _, tc := range []struct {
		name   string
		width  int
		height int
	}{
		{name: "even", width: 3, height: 4},
		{name: "odd", width: 2, height: 5},
		{name: "single row", width: 4, height: 1},
		{name: "single column", width: 1, height: 7},
	} {
		t.Run(tc.name, func(t *testing.T) {
			orig := rowFilled(tc.width, tc.height)
			pix := bytes.Clone(orig)
			stride := tc.width * BytesPerPixel

			FlipVertical(pix, tc.width, tc.height)
			for y := 0; y < tc.height; y++ {
				src := orig[(tc.height-1-y)*stride : (tc.height-y)*stride]
				assert.Equal(t, src, pix[y*stride:(y+1)*stride], "row %d", y)
			}

			FlipVertical(pix, tc.width, tc.height)
			assert.Equal(t, orig, pix)
		})
	}
}

func TestFlipVerticalMiddleRowUntouched(t *testing.T) {
	buf, _ := NewPixelBuffer(2, 3)
	copy(buf.Pix, rowFilled(2, 3))
	middle := bytes.Clone(buf.Pix[8:16])

	buf.FlipVertical()
	assert.Equal(t, middle, buf.Pix[8:16])
}
