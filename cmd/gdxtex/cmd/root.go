package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kpfaulkner/gdxtex/convert"
	"github.com/kpfaulkner/gdxtex/core"
	"github.com/kpfaulkner/gdxtex/options"
)

var (
	// Verbose turns on debug logging
	Verbose bool

	cimVersion  string
	strictETC2  bool
	parallelism int
	unwrap      bool
	kindFlag    string
)

var rootCmd = &cobra.Command{
	Use:           "gdxtex",
	Short:         "Decode libGDX CIM and KTX/zKTX textures",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if Verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&cimVersion, "cim-version", "gdx2d", "CIM format numbering: gdx2d or ordinal")
	rootCmd.PersistentFlags().BoolVar(&strictETC2, "strict-etc2", false, "decode ETC2 T/H/planar modes, punch-through and EAC per Khronos")
	rootCmd.PersistentFlags().IntVarP(&parallelism, "parallel", "p", 1, "goroutines per image")
	rootCmd.PersistentFlags().BoolVar(&unwrap, "unwrap", false, "strip zstd/lz4/xz/gzip/zlib wrappers before decoding")
	rootCmd.PersistentFlags().StringVar(&kindFlag, "kind", "", "container kind (cim, ktx); default from the file extension")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

func parseCIMVersion(s string) (options.CIMVersion, error) {
	switch s {
	case options.CIMGdx2D.String():
		return options.CIMGdx2D, nil
	case options.CIMOrdinal.String():
		return options.CIMOrdinal, nil
	}
	return 0, fmt.Errorf("--cim-version must be gdx2d or ordinal, got %q", s)
}

func newDecoder() (*core.Decoder, error) {
	v, err := parseCIMVersion(cimVersion)
	if err != nil {
		return nil, err
	}
	return core.NewDecoder(
		core.WithCIMVersion(v),
		core.WithStrictETC2(strictETC2),
		core.WithParallelism(parallelism),
	)
}

func newConverter() (*convert.Converter, error) {
	dec, err := newDecoder()
	if err != nil {
		return nil, err
	}
	c := &convert.Converter{Decoder: dec, Unwrap: unwrap}
	if kindFlag != "" {
		if c.Kind, err = core.ParseKind(kindFlag); err != nil {
			return nil, err
		}
	}
	return c, nil
}
