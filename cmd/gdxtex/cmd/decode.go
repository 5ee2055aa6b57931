package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kpfaulkner/gdxtex/convert"
)

var (
	outPath  string
	metadata bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode <texture>",
	Short: "Convert one texture to PNG (or PAM with a .pam output)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newConverter()
		if err != nil {
			return err
		}
		c.Metadata = metadata

		out := outPath
		if out == "" {
			out = convert.OutputPath(args[0], "", ".png")
		}

		start := time.Now()
		o := c.Convert(args[0], out)
		if o.Err != nil {
			return o.Err
		}
		log.Debugf("took %s", time.Since(start))
		fmt.Printf("%s: %dx%d %s, wrote %s (%s)\n", o.Input, o.Width, o.Height, o.Format, o.Output, humanize.Bytes(uint64(o.Size)))
		return nil
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: input with .png extension)")
	decodeCmd.Flags().BoolVar(&metadata, "metadata", false, "record source name and format in PNG tEXt chunks")
}
