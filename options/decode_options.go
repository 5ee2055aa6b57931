package options

// CIMVersion selects which producer's format numbering a CIM file uses.
type CIMVersion uint8

const (
	// CIMGdx2D numbers formats 1..6 as the native gdx2d pixmap formats
	// (Alpha, LuminanceAlpha, RGB888, RGBA8888, RGB565, RGBA4444). This is what
	// PixmapIO.writeCIM emits.
	CIMGdx2D CIMVersion = iota

	// CIMOrdinal numbers formats 0..6 by Pixmap.Format ordinal (Alpha,
	// Intensity, LuminanceAlpha, RGB565, RGBA4444, RGB888, RGBA8888) with
	// RGBA4444 stored big-endian.
	CIMOrdinal
)

func (v CIMVersion) String() string {
	switch v {
	case CIMGdx2D:
		return "gdx2d"
	case CIMOrdinal:
		return "ordinal"
	default:
		return "unknown"
	}
}

type DecodeOptions struct {
	// CIMVersion picks the CIM format numbering.
	CIMVersion CIMVersion

	// StrictETC2 decodes ETC2 T/H/planar blocks, punch-through transparency
	// and EAC alpha as Khronos specifies them, rather than the simplified
	// compat behaviour.
	StrictETC2 bool

	// Parallelism is the number of goroutines used for unpacking and block
	// decoding. Values below 2 decode on the calling goroutine.
	Parallelism int
}

func NewDecodeOptions(options *DecodeOptions) *DecodeOptions {

	opt := &DecodeOptions{}
	if options != nil {
		*opt = *options
	}
	return opt
}

// Workers returns how many goroutines to fan work out to, never less than 1.
func (o *DecodeOptions) Workers() int {
	if o == nil || o.Parallelism < 1 {
		return 1
	}
	return o.Parallelism
}
