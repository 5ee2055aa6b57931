package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kpfaulkner/gdxtex/compression"
	"github.com/kpfaulkner/gdxtex/core"
	"github.com/kpfaulkner/gdxtex/ktx"
)

var infoCmd = &cobra.Command{
	Use:   "info <texture>...",
	Short: "Print container headers without decoding pixels",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dec, err := newDecoder()
		if err != nil {
			return err
		}
		for _, path := range args {
			if err := printInfo(dec, path); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	},
}

func printInfo(dec *core.Decoder, path string) error {
	kind, err := core.KindFromPath(path)
	if kindFlag != "" {
		kind, err = core.ParseKind(kindFlag)
	}
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", path)
	fmt.Printf("  file size:  %s\n", humanize.Bytes(uint64(len(data))))
	if w := compression.Sniff(data); w != compression.None {
		fmt.Printf("  wrapper:    %s\n", w)
	}
	if unwrap {
		if data, _, err = compression.Unwrap(data); err != nil {
			return err
		}
	}

	info, err := dec.Info(data, kind)
	if err != nil {
		return err
	}
	fmt.Printf("  container:  %s\n", info.Kind)
	fmt.Printf("  size:       %dx%d\n", info.Width, info.Height)
	fmt.Printf("  format:     %s (%d)\n", info.FormatName, info.Tag)
	fmt.Printf("  decodable:  %t\n", info.Decodable)
	if info.Kind == core.KindKTX && !ktx.Known(info.Tag) {
		fmt.Printf("  glInternalFormat 0x%X is not a known constant\n", info.Tag)
	}
	fmt.Printf("  rgba size:  %s\n", humanize.Bytes(uint64(info.Width)*uint64(info.Height)*4))

	if h := info.KTX; h != nil {
		fmt.Printf("  byte order: %s\n", h.Order)
		if !h.MarkerValid() {
			fmt.Printf("  endianness marker 0x%08X not recognised, read as big-endian\n", h.Endianness)
		}
		fmt.Printf("  mip levels: %d, faces: %d, array elements: %d\n", h.NumberOfMipmapLevels, h.NumberOfFaces, h.NumberOfArrayElements)
		if h.BytesOfKeyValueData > 0 {
			img, err := ktx.ReadImage(data)
			if err != nil {
				return err
			}
			kvs, err := img.KeyValues()
			if err != nil {
				return err
			}
			if v, ok := ktx.Lookup(kvs, "KTXorientation"); ok {
				fmt.Printf("  orientation: %s\n", bytes.TrimRight(v, "\x00"))
			}
			for _, kv := range kvs {
				fmt.Printf("  %s = %q\n", kv.Key, kv.Value)
			}
		}
	}
	return nil
}
