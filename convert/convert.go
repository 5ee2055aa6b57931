// Package convert turns texture files on disk into PNG or PAM images.
package convert

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/gdxtex/compression"
	"github.com/kpfaulkner/gdxtex/core"
	"github.com/kpfaulkner/gdxtex/image"
	"github.com/kpfaulkner/gdxtex/imageformats"
)

// Converter reads, decodes and writes one file at a time. It is safe for
// concurrent use once configured.
type Converter struct {
	Decoder *core.Decoder

	// Kind overrides picking the container from the input extension.
	Kind core.ContainerKind

	// Unwrap strips zstd, lz4, xz and other outer wrappers before decoding.
	Unwrap bool

	// Metadata adds tEXt chunks naming the source file and format to PNGs.
	Metadata bool
}

// Outcome is what happened to one input.
type Outcome struct {
	Input  string
	Output string
	Width  int
	Height int
	Format string
	Size   int64
	Err    error
}

// OutputPath swaps the extension of in for ext and, when dir is set, moves
// it into dir.
func OutputPath(in string, dir string, ext string) string {
	out := strings.TrimSuffix(in, filepath.Ext(in)) + ext
	if dir != "" {
		out = filepath.Join(dir, filepath.Base(out))
	}
	return out
}

// ReadTexture loads and decodes a texture file.
func (c *Converter) ReadTexture(path string) (*core.Result, error) {
	kind := c.Kind
	if kind == 0 {
		var err error
		if kind, err = core.KindFromPath(path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if c.Unwrap {
		var peeled []compression.Kind
		if data, peeled, err = compression.Unwrap(data); err != nil {
			return nil, fmt.Errorf("unwrapping %s: %w", path, err)
		}
		if len(peeled) > 0 {
			log.Debugf("%s: removed wrappers %v", path, peeled)
		}
	}

	dec := c.Decoder
	if dec == nil {
		if dec, err = core.NewDecoder(); err != nil {
			return nil, err
		}
	}
	res, err := dec.Decode(data, kind)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return res, nil
}

// Convert decodes inPath and writes outPath, as PAM when outPath ends in
// .pam and as PNG otherwise.
func (c *Converter) Convert(inPath string, outPath string) Outcome {
	o := Outcome{Input: inPath, Output: outPath}

	res, err := c.ReadTexture(inPath)
	if err != nil {
		o.Err = err
		return o
	}
	o.Width, o.Height, o.Format = res.Width(), res.Height(), res.FormatName

	var out bytes.Buffer
	if strings.EqualFold(filepath.Ext(outPath), ".pam") {
		err = imageformats.WritePAM(res.Buffer, &out)
	} else {
		err = c.pngWriter(inPath, res).WritePNG(res.Buffer, &out)
	}
	if err != nil {
		o.Err = fmt.Errorf("encoding %s: %w", outPath, err)
		return o
	}

	if err := os.WriteFile(outPath, out.Bytes(), 0666); err != nil {
		o.Err = err
		return o
	}
	o.Size = int64(out.Len())
	log.Infof("Converted %s (%dx%d), %s", inPath, o.Width, o.Height, o.Format)
	log.Debugf("wrote %s", outPath)
	return o
}

func (c *Converter) pngWriter(inPath string, res *core.Result) imageformats.PNGWriter {
	if !c.Metadata {
		return imageformats.PNGWriter{}
	}
	return imageformats.PNGWriter{Text: map[string]string{
		"Source": filepath.Base(inPath),
		"Format": res.FormatName,
	}}
}

// ToPNG converts a single file with a default Converter around dec.
func ToPNG(inPath string, outPath string, dec *core.Decoder) error {
	c := &Converter{Decoder: dec}
	return c.Convert(inPath, outPath).Err
}

// Buffer decodes a file straight to pixels.
func Buffer(path string, dec *core.Decoder) (*image.PixelBuffer, error) {
	c := &Converter{Decoder: dec}
	res, err := c.ReadTexture(path)
	if err != nil {
		return nil, err
	}
	return res.Buffer, nil
}
