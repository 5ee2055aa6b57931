package pixel

import (
	"github.com/kpfaulkner/gdxtex/image"
	"github.com/kpfaulkner/gdxtex/options"
	"github.com/kpfaulkner/gdxtex/texerr"
	"github.com/kpfaulkner/gdxtex/util"
)

// Unpack converts width*height pixels of src, encoded as format, into a new
// RGBA8888 buffer. Trailing bytes beyond the image are ignored.
func Unpack(src []byte, width int, height int, format Format, opts *options.DecodeOptions) (*image.PixelBuffer, error) {
	fi, ok := format.info()
	if !ok {
		return nil, texerr.Format(texerr.UnknownFormat, uint32(format), "pixel format %d", format)
	}
	if err := CheckSize(src, width, height, format); err != nil {
		return nil, err
	}

	buf, err := image.NewPixelBuffer(width, height)
	if err != nil {
		return nil, texerr.Wrap(texerr.InvalidDimensions, err, "%s", format)
	}

	rowIn := width * fi.stride
	rowOut := buf.Stride()
	err = util.ForEachBand(height, opts.Workers(), func(lo int, hi int) error {
		for y := lo; y < hi; y++ {
			in := src[y*rowIn : (y+1)*rowIn]
			out := buf.Pix[y*rowOut : (y+1)*rowOut]
			for x := 0; x < width; x++ {
				fi.unpack(out[x*4:x*4+4], in[x*fi.stride:(x+1)*fi.stride])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// CheckSize verifies src holds at least width*height pixels of format.
func CheckSize(src []byte, width int, height int, format Format) error {
	if width <= 0 || height <= 0 {
		return texerr.New(texerr.InvalidDimensions, "%s image %dx%d", format, width, height)
	}
	need := width * height * format.BytesPerPixel()
	if len(src) < need {
		return texerr.New(texerr.TruncatedData, "%s %dx%d needs %d bytes, have %d", format, width, height, need, len(src))
	}
	return nil
}
