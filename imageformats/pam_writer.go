package imageformats

import (
	"fmt"
	"io"

	"github.com/kpfaulkner/gdxtex/image"
)

// WritePAM writes buf as a Netpbm PAM with TUPLTYPE RGB_ALPHA. Rows go out
// top first and samples unmodified, which makes it handy for diffing
// decoder output byte for byte.
func WritePAM(buf *image.PixelBuffer, output io.Writer) error {
	header := fmt.Sprintf("P7\nWIDTH %d\nHEIGHT %d\nDEPTH 4\nMAXVAL 255\nTUPLTYPE RGB_ALPHA\nENDHDR\n", buf.Width, buf.Height)
	if _, err := io.WriteString(output, header); err != nil {
		return err
	}
	_, err := output.Write(buf.Pix)
	return err
}
