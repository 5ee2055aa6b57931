package core

import (
	"fmt"
	goimage "image"

	"github.com/kpfaulkner/gdxtex/cim"
	"github.com/kpfaulkner/gdxtex/image"
	"github.com/kpfaulkner/gdxtex/ktx"
	"github.com/kpfaulkner/gdxtex/options"
)

type DecoderOption func(d *Decoder) error

// WithCIMVersion selects the CIM format numbering. Defaults to
// options.CIMGdx2D.
func WithCIMVersion(v options.CIMVersion) DecoderOption {
	return func(d *Decoder) error {
		if v != options.CIMGdx2D && v != options.CIMOrdinal {
			return fmt.Errorf("unknown CIM version %d", v)
		}
		d.opts.CIMVersion = v
		return nil
	}
}

// WithStrictETC2 decodes ETC2 and EAC blocks per the Khronos definitions.
func WithStrictETC2(strict bool) DecoderOption {
	return func(d *Decoder) error {
		d.opts.StrictETC2 = strict
		return nil
	}
}

// WithParallelism spreads unpacking and block decoding over n goroutines.
func WithParallelism(n int) DecoderOption {
	return func(d *Decoder) error {
		if n < 0 {
			return fmt.Errorf("parallelism must not be negative, got %d", n)
		}
		d.opts.Parallelism = n
		return nil
	}
}

// Decoder turns CIM and KTX bytes into RGBA8888 pixels. A Decoder holds no
// state between calls and may be shared between goroutines.
type Decoder struct {
	opts options.DecodeOptions
}

func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Options returns a copy of the decoder's settings.
func (d *Decoder) Options() options.DecodeOptions {
	return d.opts
}

// Result is one decoded image and the format it was stored in.
type Result struct {
	Buffer *image.PixelBuffer
	Kind   ContainerKind

	// Tag is the CIM format number or the KTX glInternalFormat.
	Tag        uint32
	FormatName string

	// GLInternalFormat is only set for KTX.
	GLInternalFormat uint32
}

func (r *Result) Width() int {
	return r.Buffer.Width
}

func (r *Result) Height() int {
	return r.Buffer.Height
}

func (r *Result) ToImage() goimage.Image {
	return r.Buffer.ToImage()
}

// Decode decodes data as the declared container. On failure no buffer is
// returned.
func (d *Decoder) Decode(data []byte, kind ContainerKind) (*Result, error) {
	opts := d.opts

	switch kind {
	case KindCIM:
		buf, h, err := cim.Decode(data, &opts)
		if err != nil {
			return nil, err
		}
		return &Result{
			Buffer:     buf,
			Kind:       kind,
			Tag:        h.Tag,
			FormatName: cim.FormatName(opts.CIMVersion, h.Tag),
		}, nil

	case KindKTX:
		buf, h, err := ktx.Decode(data, &opts)
		if err != nil {
			return nil, err
		}
		return &Result{
			Buffer:           buf,
			Kind:             kind,
			Tag:              h.GLInternalFormat,
			FormatName:       h.FormatName(),
			GLInternalFormat: h.GLInternalFormat,
		}, nil
	}
	return nil, fmt.Errorf("unknown container kind %s", kind)
}

// FormatName names a format number of kind under the decoder's CIM
// numbering.
func (d *Decoder) FormatName(kind ContainerKind, tag uint32) string {
	switch kind {
	case KindCIM:
		return cim.FormatName(d.opts.CIMVersion, tag)
	case KindKTX:
		return ktx.InternalFormatName(tag)
	}
	return fmt.Sprintf("Unknown(%d)", tag)
}

var defaultDecoder = &Decoder{}

// Decode decodes data with the default settings.
func Decode(data []byte, kind ContainerKind) (*Result, error) {
	return defaultDecoder.Decode(data, kind)
}

// FormatName names a format number with the default CIM numbering.
func FormatName(kind ContainerKind, tag uint32) string {
	return defaultDecoder.FormatName(kind, tag)
}
