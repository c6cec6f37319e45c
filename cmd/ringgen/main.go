// Command ringgen builds ring geometry and writes its vertex and index
// buffers to disk.
//
// Usage:
//
//	ringgen -out ring/ [-outer 1] [-inner 0] [-subdivisions 24] [-indexed] [-nocolor] [-v]
//
// vertices.bin holds the packed vertices; indices.bin (indexed only) holds
// little-endian uint32 indices.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/gpuprep"
)

func main() {
	var (
		outDir       = flag.String("out", "ring", "output directory")
		outer        = flag.Float64("outer", gpuprep.DefaultOuterRadius, "outer radius")
		inner        = flag.Float64("inner", gpuprep.DefaultInnerRadius, "inner radius")
		subdivisions = flag.Int("subdivisions", gpuprep.DefaultSubdivisions, "quads around the ring")
		indexed      = flag.Bool("indexed", false, "emit shared vertices and an index buffer")
		noColor      = flag.Bool("nocolor", false, "position-only vertices")
		verbose      = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	gpuprep.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts := []gpuprep.RingOption{
		gpuprep.WithOuterRadius(float32(*outer)),
		gpuprep.WithInnerRadius(float32(*inner)),
		gpuprep.WithSubdivisions(*subdivisions),
	}
	if *noColor {
		opts = append(opts, gpuprep.WithoutColor())
	}

	build := gpuprep.BuildRing
	if *indexed {
		build = gpuprep.BuildIndexedRing
	}
	g, err := build(opts...)
	if err != nil {
		log.Fatalf("ringgen: %v", err)
	}

	if err := write(*outDir, g); err != nil {
		log.Fatalf("ringgen: %v", err)
	}

	pr := message.NewPrinter(language.English)
	pr.Printf("vertices: %d (%d bytes, stride %d)\n", g.VertexCount(), g.VertexCount()*g.VertexStride(), g.VertexStride())
	if g.Indexed() {
		pr.Printf("indices:  %d (%v)\n", g.IndexCount(), g.IndexFormat())
	}
	pr.Printf("draw:     %d\n", g.DrawCount())
	for _, a := range g.VertexBufferLayout().Attributes {
		pr.Printf("  @location(%d) %v at offset %d\n", a.ShaderLocation, a.Format, a.Offset)
	}
}

func write(dir string, g *gpuprep.RingGeometry) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "vertices.bin"), g.VertexBytes(), 0o644); err != nil {
		return err
	}
	if !g.Indexed() {
		return nil
	}
	return os.WriteFile(filepath.Join(dir, "indices.bin"), g.IndexBytes(), 0o644)
}
