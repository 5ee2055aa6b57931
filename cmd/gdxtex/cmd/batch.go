package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	outDir  string
	workers int
	pam     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <texture or dir>...",
	Short: "Convert many textures concurrently",
	Long:  "Convert every .cim, .ktx and .zktx given, descending into directories.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newConverter()
		if err != nil {
			return err
		}
		c.Metadata = metadata

		paths, err := collect(args)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no textures found")
		}
		if outDir != "" {
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}
		}
		log.Debugf("converting %d files with %d workers", len(paths), workers)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		ext := ".png"
		if pam {
			ext = ".pam"
		}
		outcomes, err := c.Batch(ctx, paths, outDir, ext, workers)
		var total int64
		converted := 0
		for _, o := range outcomes {
			if o.Err == nil {
				total += o.Size
				converted++
			}
		}
		fmt.Printf("converted %d of %d files, wrote %s\n", converted, len(paths), humanize.Bytes(uint64(total)))
		return err
	},
}

func init() {
	batchCmd.Flags().StringVarP(&outDir, "out-dir", "d", "", "write outputs here instead of next to the inputs")
	batchCmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "files converted at once")
	batchCmd.Flags().BoolVar(&pam, "pam", false, "write PAM instead of PNG")
	batchCmd.Flags().BoolVar(&metadata, "metadata", false, "record source name and format in PNG tEXt chunks")
}

var textureExts = map[string]bool{".cim": true, ".ktx": true, ".zktx": true}

// collect expands directories to the texture files beneath them.
func collect(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			paths = append(paths, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && textureExts[filepath.Ext(path)] {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}
