package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/gdxtex/compression"
	"github.com/kpfaulkner/gdxtex/core"
	"github.com/kpfaulkner/gdxtex/etc"
	"github.com/kpfaulkner/gdxtex/options"
)

func main() {
	files := flag.String("i", "", "comma separated textures to decode; empty decodes a synthetic ETC2 image")
	size := flag.Int("size", 2048, "width and height of the synthetic image")
	format := flag.String("format", "rgba8", "synthetic ETC format: etc1, rgb8, rgb8a1, rgba8")
	iterations := flag.Int("n", 10, "decodes per file")
	parallel := flag.Int("p", 1, "goroutines per decode")
	strict := flag.Bool("strict", false, "strict ETC2")
	prof := flag.String("profile", "", "cpu or mem")
	flag.Parse()

	switch *prof {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileHeap, profile.ProfilePath(".")).Stop()
	case "":
	default:
		log.Fatalf("unknown profile %q", *prof)
	}

	dec, err := core.NewDecoder(core.WithParallelism(*parallel), core.WithStrictETC2(*strict))
	if err != nil {
		log.Fatal(err)
	}

	if *files == "" {
		f, err := parseFormat(*format)
		if err != nil {
			log.Fatal(err)
		}
		benchETC(f, *size, *iterations, dec.Options())
		return
	}

	for _, file := range strings.Split(*files, ",") {
		kind, err := core.KindFromPath(file)
		if err != nil {
			log.Fatal(err)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("reading %s: %v", file, err)
		}

		start := time.Now()
		var res *core.Result
		for count := 0; count < *iterations; count++ {
			if res, err = dec.Decode(data, kind); err != nil {
				log.Fatalf("decoding %s: %v", file, err)
			}
		}
		elapsed := time.Since(start)
		fmt.Printf("%s: %dx%d %s, %d ms per decode\n", file, res.Width(), res.Height(), res.FormatName, elapsed.Milliseconds()/int64(*iterations))
	}

	hits, misses := compression.PoolMetrics()
	log.Infof("inflate buffers: %d reused, %d allocated", hits, misses)
}

func parseFormat(s string) (etc.Format, error) {
	switch s {
	case "etc1":
		return etc.ETC1RGB8, nil
	case "rgb8":
		return etc.ETC2RGB8, nil
	case "rgb8a1":
		return etc.ETC2RGB8A1, nil
	case "rgba8":
		return etc.ETC2RGBA8, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

// benchETC decodes random blocks, which exercise every block mode.
func benchETC(format etc.Format, size int, iterations int, opts options.DecodeOptions) {
	src := make([]byte, format.DataSize(size, size))
	rand.New(rand.NewSource(1)).Read(src)

	start := time.Now()
	for count := 0; count < iterations; count++ {
		if _, err := etc.Decode(src, size, size, format, &opts); err != nil {
			log.Fatal(err)
		}
	}
	elapsed := time.Since(start)
	perDecode := elapsed / time.Duration(iterations)
	mpix := float64(size*size) / perDecode.Seconds() / 1e6
	fmt.Printf("%s %dx%d: %s per decode, %.1f Mpixel/s\n", format, size, size, perDecode, mpix)
}
