package image

// FlipVertical reverses the row order of an RGBA8888 buffer in place. The
// middle row of an odd-height image is left untouched.
func FlipVertical(pix []byte, width int, height int) {
	stride := width * BytesPerPixel
	tmp := make([]byte, stride)
	for y := 0; y < height/2; y++ {
		top := pix[y*stride : (y+1)*stride]
		bottom := pix[(height-1-y)*stride : (height-y)*stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
