// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ring generates annulus geometry for instanced 2D drawing.
//
// A ring of N subdivisions is split into N quads between the inner and
// outer radius, each quad made of two triangles. Two layouts are produced:
// a flat triangle list with duplicated corners, and an indexed list that
// shares the corners between neighboring quads.
package ring

import (
	"errors"
	"math"
)

// Errors returned by Params.Validate.
var (
	// ErrInvalidSubdivisions is returned when the subdivision count is not positive.
	ErrInvalidSubdivisions = errors.New("ring: subdivisions must be positive")

	// ErrInvalidRadius is returned for negative or non-finite radii, or an
	// inner radius larger than the outer one.
	ErrInvalidRadius = errors.New("ring: invalid radius")
)

// Color is an 8-bit RGB vertex color.
type Color [3]uint8

// Vertex is one ring corner. Color is zero for colorless geometry.
type Vertex struct {
	Position [2]float32
	Color    Color
}

// Params describes a ring.
type Params struct {
	OuterRadius  float32
	InnerRadius  float32
	Subdivisions int

	// Colored selects the two-tone variant.
	Colored    bool
	OuterColor Color
	InnerColor Color
}

// Validate checks the subdivision count and radii. Radii must be finite and
// non-negative with InnerRadius <= OuterRadius.
func (p Params) Validate() error {
	if p.Subdivisions <= 0 {
		return ErrInvalidSubdivisions
	}
	if !validRadius(p.OuterRadius) || !validRadius(p.InnerRadius) || p.InnerRadius > p.OuterRadius {
		return ErrInvalidRadius
	}
	return nil
}

func validRadius(r float32) bool {
	f := float64(r)
	return f >= 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Corners holds the four corners of subdivision i: the outer and inner
// points at the start angle (1) and end angle (2).
type Corners struct {
	Outer1, Outer2 Vertex
	Inner1, Inner2 Vertex
}

// Emit computes the corners of subdivision i of p.Subdivisions.
// The start angle is i/N*2π and the end angle is (i+1)/N*2π.
func Emit(p Params, i int) Corners {
	o1, in1 := p.boundary(i)
	o2, in2 := p.boundary(i + 1)
	return Corners{Outer1: o1, Outer2: o2, Inner1: in1, Inner2: in2}
}

// boundary returns the outer and inner vertex at angle i/N*2π.
func (p Params) boundary(i int) (outer, inner Vertex) {
	angle := float64(i) / float64(p.Subdivisions) * 2 * math.Pi
	s, c := math.Sincos(angle)

	outer.Position = [2]float32{float32(c) * p.OuterRadius, float32(s) * p.OuterRadius}
	inner.Position = [2]float32{float32(c) * p.InnerRadius, float32(s) * p.InnerRadius}
	if p.Colored {
		outer.Color = p.OuterColor
		inner.Color = p.InnerColor
	}
	return outer, inner
}
