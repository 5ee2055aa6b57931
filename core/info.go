package core

import (
	"fmt"

	"github.com/kpfaulkner/gdxtex/cim"
	"github.com/kpfaulkner/gdxtex/ktx"
	"github.com/kpfaulkner/gdxtex/pixel"
)

// Info describes a container without decoding its pixels.
type Info struct {
	Kind       ContainerKind
	Width      int
	Height     int
	Tag        uint32
	FormatName string

	// Decodable is false when Decode would reject the format.
	Decodable bool

	// KTX is the full header of a KTX file.
	KTX *ktx.Header
}

// Info reads only the header of data.
func (d *Decoder) Info(data []byte, kind ContainerKind) (*Info, error) {
	switch kind {
	case KindCIM:
		h, err := cim.ReadHeader(data, d.opts.CIMVersion)
		if err != nil {
			return nil, err
		}
		return &Info{
			Kind:       kind,
			Width:      int(h.Width),
			Height:     int(h.Height),
			Tag:        h.Tag,
			FormatName: cim.FormatName(d.opts.CIMVersion, h.Tag),
			Decodable:  h.Format != pixel.Unknown,
		}, nil

	case KindKTX:
		h, err := ktx.ReadHeader(data)
		if err != nil {
			return nil, err
		}
		return &Info{
			Kind:       kind,
			Width:      int(h.PixelWidth),
			Height:     int(h.PixelHeight),
			Tag:        h.GLInternalFormat,
			FormatName: h.FormatName(),
			Decodable:  ktx.Decodable(h.GLInternalFormat),
			KTX:        &h,
		}, nil
	}
	return nil, fmt.Errorf("unknown container kind %s", kind)
}
