// Package gpuprep prepares CPU-side data for a WebGPU renderer.
//
// # Overview
//
// gpuprep produces finished byte buffers, counts and [gputypes] descriptors;
// creating textures and buffers, building pipelines and submitting draws is
// left to the caller's graphics backend.
//
// Two generators are provided:
//
//   - Mip pyramids: [GenerateMipPyramid] halves an RGBA8 image with a single
//     bilinear pass per level until it reaches 1x1.
//   - Ring geometry: [BuildRing] and [BuildIndexedRing] triangulate an
//     annulus (or a disc, with inner radius 0) for instanced drawing.
//
// # Mip pyramids
//
//	p, err := gpuprep.GenerateMipPyramid(rgba, width)
//	if err != nil {
//	    return err
//	}
//	desc := p.TextureDescriptor("checker")
//	for k, l := range p.Levels() {
//	    // queue.WriteTexture(mip level k, l.Data, l.DataLayout(), l.Extent())
//	}
//
// Level reduction runs on a shared worker pool for large levels. The
// output is byte-identical regardless of worker count; see [WithWorkers].
//
// # Ring geometry
//
//	g, err := gpuprep.BuildIndexedRing(
//	    gpuprep.WithOuterRadius(0.5),
//	    gpuprep.WithInnerRadius(0.25),
//	)
//	// vertex buffer: g.VertexBytes(), layout g.VertexBufferLayout()
//	// index buffer:  g.IndexBytes(), format g.IndexFormat()
//	// draw:          g.DrawCount() elements per instance
//
// [RingCache] shares geometry between callers that ask for the same ring.
//
// # Errors
//
// Degenerate input fails with an error wrapping [ErrInvalidParameter].
// All functions are pure and safe to call concurrently.
//
// # Logging
//
// gpuprep is silent by default. Use [SetLogger] to route debug records to
// a [log/slog] handler.
//
// [gputypes]: https://pkg.go.dev/github.com/gogpu/gputypes
package gpuprep
