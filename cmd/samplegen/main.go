// Command samplegen converts a directory of 16-bit mono 11025 Hz WAV/FLAC
// files into a Go source file holding the sample IDs and PCM data.
//
// Usage:
//
//	samplegen [-pkg name] <audio_dir> <output_dir>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/audible-altimeter/internal/errmsg"
	"github.com/llehouerou/audible-altimeter/internal/sample"
	"github.com/llehouerou/audible-altimeter/internal/samplegen"
)

func main() {
	pkg := flag.String("pkg", "sounds", "package name of the generated file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-pkg name] <audio_dir> <output_dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	audioDir, outputDir := flag.Arg(0), flag.Arg(1)

	bank, err := sample.LoadDir(audioDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpSamplesLoad, audioDir, err))
		os.Exit(1)
	}

	path, err := samplegen.WriteFile(outputDir, *pkg, bank)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpGenerate, err))
		os.Exit(1)
	}

	fmt.Printf("Generated %s: %d samples, %s of PCM\n",
		path, bank.Len(), humanize.Bytes(uint64(bank.TotalBytes())))
}
