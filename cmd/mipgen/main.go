// Command mipgen builds the mip pyramid of an image and writes every level
// to disk.
//
// Usage:
//
//	mipgen -in texture.png -out mips/ [-format webp|png] [-workers n] [-cpuprofile dir] [-v]
//
// Input may be PNG, JPEG, GIF, BMP, TIFF or WebP. Levels are written as
// level_<k>_<w>x<h>.<ext>.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/pkg/profile"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/gpuprep"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout))
}

// realMain returns the process exit code so that deferred cleanup, such as
// flushing the CPU profile, runs before exit.
func realMain(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("mipgen", flag.ContinueOnError)
	var (
		input      = fs.String("in", "", "input image")
		outDir     = fs.String("out", "mips", "output directory")
		format     = fs.String("format", "webp", "output format: webp or png")
		workers    = fs.Int("workers", 0, "reduction workers (0 = GOMAXPROCS, 1 = serial)")
		cpuProfile = fs.String("cpuprofile", "", "write a CPU profile to this directory")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *input == "" {
		fs.Usage()
		return 2
	}
	if *format != "webp" && *format != "png" {
		log.Printf("mipgen: unknown format %q", *format)
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	gpuprep.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	if err := run(stdout, *input, *outDir, *format, *workers); err != nil {
		log.Printf("mipgen: %v", err)
		return 1
	}
	return 0
}

func run(stdout io.Writer, input, outDir, format string, workers int) error {
	img, err := decode(input)
	if err != nil {
		return err
	}

	start := time.Now()
	p, err := gpuprep.MipPyramidFromImage(img, gpuprep.WithWorkers(workers))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	total := 0
	for k, l := range p.Levels() {
		name := filepath.Join(outDir, fmt.Sprintf("level_%d_%dx%d.%s", k, l.Width, l.Height, format))
		if err := writeLevel(name, l, format); err != nil {
			return fmt.Errorf("level %d: %w", k, err)
		}
		total += len(l.Data)
	}

	base := p.Base()
	pr := message.NewPrinter(language.English)
	pr.Fprintf(stdout, "%s: %dx%d, %d levels, %d bytes of texel data, built in %v\n",
		input, base.Width, base.Height, p.NumLevels(), total, elapsed.Round(time.Microsecond))
	return nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func writeLevel(name string, l gpuprep.MipLevel, format string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img := l.Image()
	if format == "png" {
		return png.Encode(f, img)
	}
	return nativewebp.Encode(f, img, nil)
}
