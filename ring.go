package gpuprep

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpuprep/internal/ring"
)

// RingColor is an 8-bit RGB vertex color.
type RingColor = ring.Color

// RingVertex is one ring corner: a 2D position and, for two-tone geometry,
// the outer or inner color.
type RingVertex = ring.Vertex

// RingGeometry is the immutable output of BuildRing or BuildIndexedRing.
type RingGeometry struct {
	vertices []RingVertex
	indices  []uint32
	colored  bool
	params   ring.Params
}

// BuildRing builds a ring as a flat triangle list: six vertices per
// subdivision, triangles (outer1, outer2, inner1) and (inner1, outer2,
// inner2), shared corners repeated. Draw it with VertexCount vertices.
//
// Defaults: outer radius 1, inner radius 0, 24 subdivisions, two-tone
// color. Returns an error wrapping ErrInvalidParameter for zero
// subdivisions or invalid radii (negative, non-finite, or an inner radius
// larger than the outer one).
func BuildRing(opts ...RingOption) (*RingGeometry, error) {
	p := ringParams(opts)
	g, err := ring.BuildDuplicated(p)
	if err != nil {
		return nil, invalid("BuildRing", err)
	}
	return newRingGeometry(g, p), nil
}

// BuildIndexedRing builds a ring with (N+1)*2 shared vertices and N*6
// indices. Boundary N repeats boundary 0 to close the seam. It draws the
// same triangles as BuildRing with half the vertex storage.
func BuildIndexedRing(opts ...RingOption) (*RingGeometry, error) {
	p := ringParams(opts)
	g, err := ring.BuildIndexed(p)
	if err != nil {
		return nil, invalid("BuildIndexedRing", err)
	}
	return newRingGeometry(g, p), nil
}

func newRingGeometry(g ring.Geometry, p ring.Params) *RingGeometry {
	rg := &RingGeometry{
		vertices: g.Vertices,
		indices:  g.Indices,
		colored:  p.Colored,
		params:   p,
	}
	Logger().Debug("gpuprep: ring geometry built",
		"indexed", rg.Indexed(),
		"subdivisions", p.Subdivisions,
		"vertices", rg.VertexCount(),
		"indices", rg.IndexCount(),
	)
	return rg
}

// Vertices returns a copy of the vertex list.
func (g *RingGeometry) Vertices() []RingVertex {
	out := make([]RingVertex, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// Indices returns a copy of the index list, or nil for non-indexed geometry.
func (g *RingGeometry) Indices() []uint32 {
	if g.indices == nil {
		return nil
	}
	out := make([]uint32, len(g.indices))
	copy(out, g.indices)
	return out
}

// VertexCount returns the number of vertices.
func (g *RingGeometry) VertexCount() int { return len(g.vertices) }

// IndexCount returns the number of indices (0 when not indexed).
func (g *RingGeometry) IndexCount() int { return len(g.indices) }

// Indexed reports whether the geometry carries an index list.
func (g *RingGeometry) Indexed() bool { return g.indices != nil }

// HasColor reports whether vertices carry a color attribute.
func (g *RingGeometry) HasColor() bool { return g.colored }

// Subdivisions returns the number of quads around the ring.
func (g *RingGeometry) Subdivisions() int { return g.params.Subdivisions }

// Radii returns the outer and inner radius.
func (g *RingGeometry) Radii() (outer, inner float32) {
	return g.params.OuterRadius, g.params.InnerRadius
}

// DrawCount is the element count for the draw call: IndexCount for
// indexed geometry, VertexCount otherwise.
func (g *RingGeometry) DrawCount() int {
	if g.Indexed() {
		return g.IndexCount()
	}
	return g.VertexCount()
}

// VertexStride returns the packed vertex size in bytes: 12 with color,
// 8 without.
func (g *RingGeometry) VertexStride() int {
	return ring.Stride(g.colored)
}

// VertexBytes packs the vertices for upload: little-endian float32x2
// position followed, for colored geometry, by unorm8x4 color (alpha 255).
func (g *RingGeometry) VertexBytes() []byte {
	return ring.PackVertices(g.vertices, g.colored)
}

// IndexBytes packs the indices as little-endian uint32, or returns nil for
// non-indexed geometry.
func (g *RingGeometry) IndexBytes() []byte {
	return ring.PackIndices(g.indices)
}

// VertexBufferLayout describes VertexBytes for a render pipeline:
// position at location 0 and, if present, color at location 1.
func (g *RingGeometry) VertexBufferLayout() gputypes.VertexBufferLayout {
	attrs := []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
	}
	if g.colored {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format: gputypes.VertexFormatUnorm8x4, Offset: ring.ColorOffset, ShaderLocation: 1, // color
		})
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: uint64(g.VertexStride()),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

// IndexFormat returns IndexFormatUint32 for indexed geometry and
// IndexFormatUndefined otherwise.
func (g *RingGeometry) IndexFormat() gputypes.IndexFormat {
	if g.Indexed() {
		return gputypes.IndexFormatUint32
	}
	return gputypes.IndexFormatUndefined
}

// VertexBufferUsage is the buffer usage for uploading VertexBytes.
func (g *RingGeometry) VertexBufferUsage() gputypes.BufferUsage {
	return gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
}

// IndexBufferUsage is the buffer usage for uploading IndexBytes.
func (g *RingGeometry) IndexBufferUsage() gputypes.BufferUsage {
	return gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst
}
