package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	_ "github.com/kpfaulkner/gdxtex"
)

// ktxtopng goes through image.Decode, so only plain KTX files (not CIM or
// zKTX) are recognised.
func main() {
	infile := flag.String("i", "", "input ktx file")
	outfile := flag.String("o", "", "output png file")
	flag.Parse()

	if *infile == "" || *outfile == "" {
		fmt.Printf("both input and output files must be specified\n")
		os.Exit(1)
	}

	f, err := os.Open(*infile)
	if err != nil {
		log.Fatalf("Error opening file: %v", err)
	}
	defer f.Close()

	start := time.Now()
	img, format, err := image.Decode(f)
	if err != nil {
		log.Fatalf("Error decoding: %v", err)
	}
	fmt.Printf("decoding %s took %d ms\n", format, time.Since(start).Milliseconds())

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		log.Fatalf("Error encoding: %v", err)
	}
	if err := os.WriteFile(*outfile, buf.Bytes(), 0666); err != nil {
		log.Fatalf("Error writing: %v", err)
	}
}
