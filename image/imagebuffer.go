package image

import (
	"fmt"
	goimage "image"
)

// BytesPerPixel of every PixelBuffer: RGBA8888.
const BytesPerPixel = 4

// PixelBuffer is a decoded image: Width*Height RGBA quadruplets, row-major,
// top-left origin.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a zeroed buffer for a width x height image.
func NewPixelBuffer(width int, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}, nil
}

// Stride is the number of bytes in one row.
func (pb *PixelBuffer) Stride() int {
	return pb.Width * BytesPerPixel
}

// Offset returns the index of the pixel at (x, y) in Pix.
func (pb *PixelBuffer) Offset(x int, y int) int {
	return y*pb.Stride() + x*BytesPerPixel
}

// Set writes one RGBA pixel.
func (pb *PixelBuffer) Set(x int, y int, r, g, b, a byte) {
	i := pb.Offset(x, y)
	p := pb.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = r, g, b, a
}

// At returns the RGBA pixel at (x, y).
func (pb *PixelBuffer) At(x int, y int) [4]byte {
	i := pb.Offset(x, y)
	return [4]byte{pb.Pix[i], pb.Pix[i+1], pb.Pix[i+2], pb.Pix[i+3]}
}

// Equals compares two PixelBuffers and returns true if they are equal.
func (pb *PixelBuffer) Equals(other *PixelBuffer) bool {
	if other == nil || pb.Width != other.Width || pb.Height != other.Height || len(pb.Pix) != len(other.Pix) {
		return false
	}
	for i := range pb.Pix {
		if pb.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}

// FlipVertical swaps row y with row Height-1-y in place.
func (pb *PixelBuffer) FlipVertical() {
	FlipVertical(pb.Pix, pb.Width, pb.Height)
}

// ToImage wraps the pixels in a standard library image without copying.
// The samples are straight (non-premultiplied) alpha.
func (pb *PixelBuffer) ToImage() *goimage.NRGBA {
	return &goimage.NRGBA{
		Pix:    pb.Pix,
		Stride: pb.Stride(),
		Rect:   goimage.Rect(0, 0, pb.Width, pb.Height),
	}
}

// MaxDimension bounds width and height accepted from container headers.
const MaxDimension = 1 << 16
