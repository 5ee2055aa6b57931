package gdxtex

import (
	"image"
	"image/color"
	"io"

	"github.com/kpfaulkner/gdxtex/core"
)

// ktxHeader is the start of the KTX identifier. CIM and zKTX files have no
// distinctive magic so they are not registered.
const ktxHeader = "\xabKTX 11\xbb"

func init() {
	image.RegisterFormat("ktx", ktxHeader, Decode, DecodeConfig)
}

// Decode reads a whole KTX file from r and decodes its first image.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	res, err := core.Decode(data, core.KindKTX)
	if err != nil {
		return nil, err
	}
	return res.ToImage(), nil
}

func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, err
	}

	dec, err := core.NewDecoder()
	if err != nil {
		return image.Config{}, err
	}
	info, err := dec.Info(data, core.KindKTX)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      info.Width,
		Height:     info.Height,
	}, nil
}
