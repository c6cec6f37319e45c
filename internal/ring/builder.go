// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ring

// Geometry is the output of a ring builder.
// Indices is nil for the duplicated-vertex layout.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// VerticesPerSubdivision is the vertex count of one quad in the
// duplicated-vertex layout.
const VerticesPerSubdivision = 6

// BuildDuplicated emits a flat triangle list, six vertices per subdivision:
//
//	0--1 4
//	| / /|
//	|/ / |
//	2 3--5
//
// Triangles are (outer1, outer2, inner1) and (inner1, outer2, inner2).
// Neighboring subdivisions repeat their shared corners.
func BuildDuplicated(p Params) (Geometry, error) {
	if err := p.Validate(); err != nil {
		return Geometry{}, err
	}

	verts := make([]Vertex, p.Subdivisions*VerticesPerSubdivision)
	for i := range p.Subdivisions {
		c := Emit(p, i)
		v := verts[i*VerticesPerSubdivision:]
		v[0], v[1], v[2] = c.Outer1, c.Outer2, c.Inner1
		v[3], v[4], v[5] = c.Inner1, c.Outer2, c.Inner2
	}
	return Geometry{Vertices: verts}, nil
}

// BuildIndexed emits one outer and one inner vertex per boundary, N+1
// boundaries in all, and six indices per subdivision.
//
// Boundary N repeats boundary 0 instead of wrapping the indices, so every
// subdivision i uses (2i, 2i+1, 2i+2) and (2i+2, 2i+1, 2i+3).
func BuildIndexed(p Params) (Geometry, error) {
	if err := p.Validate(); err != nil {
		return Geometry{}, err
	}

	n := p.Subdivisions
	verts := make([]Vertex, (n+1)*2)
	for i := range n {
		verts[2*i], verts[2*i+1] = p.boundary(i)
	}
	verts[2*n], verts[2*n+1] = verts[0], verts[1]

	indices := make([]uint32, n*6)
	for i := range n {
		base := uint32(2 * i)
		idx := indices[i*6:]
		idx[0], idx[1], idx[2] = base, base+1, base+2
		idx[3], idx[4], idx[5] = base+2, base+1, base+3
	}
	return Geometry{Vertices: verts, Indices: indices}, nil
}
