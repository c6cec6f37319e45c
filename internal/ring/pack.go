// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ring

import (
	"encoding/binary"
	"math"
)

// Byte layout of a packed vertex: float32x2 position, then (if colored)
// unorm8x4 color with alpha fixed at 255.
const (
	PositionSize = 8
	ColorSize    = 4
	ColorOffset  = PositionSize
	IndexSize    = 4
)

// Stride returns the packed vertex size in bytes.
func Stride(colored bool) int {
	if colored {
		return PositionSize + ColorSize
	}
	return PositionSize
}

// PackVertices writes vertices into a new little-endian buffer.
func PackVertices(verts []Vertex, colored bool) []byte {
	stride := Stride(colored)
	buf := make([]byte, len(verts)*stride)
	for i, v := range verts {
		off := i * stride
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v.Position[0]))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(v.Position[1]))
		if colored {
			c := buf[off+ColorOffset : off+ColorOffset+ColorSize]
			c[0], c[1], c[2], c[3] = v.Color[0], v.Color[1], v.Color[2], 255
		}
	}
	return buf
}

// PackIndices writes uint32 indices into a new little-endian buffer.
// Returns nil for nil input.
func PackIndices(indices []uint32) []byte {
	if indices == nil {
		return nil
	}
	buf := make([]byte, len(indices)*IndexSize)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*IndexSize:], idx)
	}
	return buf
}
