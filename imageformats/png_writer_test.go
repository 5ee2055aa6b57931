package imageformats

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/gdxtex/image"
)

func testBuffer(t *testing.T) *image.PixelBuffer {
	buf, err := image.NewPixelBuffer(3, 2)
	require.NoError(t, err)
	buf.Set(0, 0, 255, 0, 0, 255)
	buf.Set(1, 0, 0, 255, 0, 128)
	buf.Set(2, 0, 0, 0, 255, 0)
	buf.Set(0, 1, 1, 2, 3, 4)
	buf.Set(2, 1, 250, 251, 252, 253)
	return buf
}

func TestWritePNGDecodesBack(t *testing.T) {
	buf := testBuffer(t)

	var out bytes.Buffer
	require.NoError(t, WritePNG(buf, &out))

	img, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			expected := buf.ToImage().At(x, y)
			er, eg, eb, ea := expected.RGBA()
			assert.Equal(t, [4]uint32{er, eg, eb, ea}, [4]uint32{r, g, b, a}, "pixel %d,%d", x, y)
		}
	}
}

func TestWritePNGText(t *testing.T) {
	var out bytes.Buffer
	w := PNGWriter{Text: map[string]string{"Source": "ktx", "Format": "ETC1_RGB8_OES"}, Level: 9}
	require.NoError(t, w.WritePNG(testBuffer(t), &out))

	data := out.String()
	format := strings.Index(data, "tEXtFormat\x00ETC1_RGB8_OES")
	source := strings.Index(data, "tEXtSource\x00ktx")
	assert.True(t, format > 0)
	assert.True(t, source > format, "tEXt chunks are sorted by key")

	_, err := png.Decode(&out)
	assert.NoError(t, err)
}

func TestWritePAM(t *testing.T) {
	buf := testBuffer(t)

	var out bytes.Buffer
	require.NoError(t, WritePAM(buf, &out))

	header := "P7\nWIDTH 3\nHEIGHT 2\nDEPTH 4\nMAXVAL 255\nTUPLTYPE RGB_ALPHA\nENDHDR\n"
	assert.True(t, strings.HasPrefix(out.String(), header))
	assert.Equal(t, buf.Pix, out.Bytes()[len(header):])
}
