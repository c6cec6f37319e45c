// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ring

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

const eps = 1e-6

func defaultParams() Params {
	return Params{
		OuterRadius:  0.5,
		InnerRadius:  0.25,
		Subdivisions: 24,
		Colored:      true,
		OuterColor:   Color{25, 25, 25},
		InnerColor:   Color{255, 255, 255},
	}
}

func dist(v Vertex) float64 {
	return math.Hypot(float64(v.Position[0]), float64(v.Position[1]))
}

func near(a, b Vertex) bool {
	return math.Abs(float64(a.Position[0]-b.Position[0])) < eps &&
		math.Abs(float64(a.Position[1]-b.Position[1])) < eps &&
		a.Color == b.Color
}

func TestParams_Validate(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name   string
		modify func(*Params)
		want   error
	}{
		{"defaults", func(*Params) {}, nil},
		{"disc", func(p *Params) { p.InnerRadius = 0 }, nil},
		{"degenerate band", func(p *Params) { p.InnerRadius = p.OuterRadius }, nil},
		{"zero subdivisions", func(p *Params) { p.Subdivisions = 0 }, ErrInvalidSubdivisions},
		{"negative subdivisions", func(p *Params) { p.Subdivisions = -4 }, ErrInvalidSubdivisions},
		{"negative outer", func(p *Params) { p.OuterRadius = -1 }, ErrInvalidRadius},
		{"negative inner", func(p *Params) { p.InnerRadius = -0.1 }, ErrInvalidRadius},
		{"inner beyond outer", func(p *Params) { p.InnerRadius = 0.75 }, ErrInvalidRadius},
		{"NaN radius", func(p *Params) { p.OuterRadius = nan }, ErrInvalidRadius},
		{"infinite radius", func(p *Params) { p.OuterRadius = inf }, ErrInvalidRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultParams()
			tt.modify(&p)
			if err := p.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEmit(t *testing.T) {
	p := Params{OuterRadius: 2, InnerRadius: 1, Subdivisions: 4, Colored: true,
		OuterColor: Color{1, 2, 3}, InnerColor: Color{4, 5, 6}}

	c := Emit(p, 0)
	want := Corners{
		Outer1: Vertex{Position: [2]float32{2, 0}, Color: Color{1, 2, 3}},
		Outer2: Vertex{Position: [2]float32{0, 2}, Color: Color{1, 2, 3}},
		Inner1: Vertex{Position: [2]float32{1, 0}, Color: Color{4, 5, 6}},
		Inner2: Vertex{Position: [2]float32{0, 1}, Color: Color{4, 5, 6}},
	}
	if !near(c.Outer1, want.Outer1) || !near(c.Outer2, want.Outer2) ||
		!near(c.Inner1, want.Inner1) || !near(c.Inner2, want.Inner2) {
		t.Errorf("Emit(0) = %+v, want %+v", c, want)
	}

	c = Emit(p, 2)
	if !near(c.Outer1, Vertex{Position: [2]float32{-2, 0}, Color: Color{1, 2, 3}}) {
		t.Errorf("Emit(2).Outer1 = %+v, want (-2, 0)", c.Outer1)
	}
}

func TestEmit_Colorless(t *testing.T) {
	p := defaultParams()
	p.Colored = false

	c := Emit(p, 3)
	for _, v := range []Vertex{c.Outer1, c.Outer2, c.Inner1, c.Inner2} {
		if v.Color != (Color{}) {
			t.Errorf("colorless vertex has color %v", v.Color)
		}
	}
}

func TestBuildDuplicated(t *testing.T) {
	g, err := BuildDuplicated(defaultParams())
	if err != nil {
		t.Fatalf("BuildDuplicated() error = %v", err)
	}
	if len(g.Vertices) != 144 {
		t.Errorf("len(Vertices) = %d, want 144", len(g.Vertices))
	}
	if g.Indices != nil {
		t.Errorf("Indices = %v, want nil", g.Indices)
	}

	minD, maxD := math.Inf(1), 0.0
	for _, v := range g.Vertices {
		d := dist(v)
		minD, maxD = math.Min(minD, d), math.Max(maxD, d)
		switch {
		case math.Abs(d-0.5) < eps:
			if v.Color != (Color{25, 25, 25}) {
				t.Errorf("outer vertex color = %v, want outer color", v.Color)
			}
		case math.Abs(d-0.25) < eps:
			if v.Color != (Color{255, 255, 255}) {
				t.Errorf("inner vertex color = %v, want inner color", v.Color)
			}
		default:
			t.Errorf("vertex at distance %v is on neither ring", d)
		}
	}
	if math.Abs(maxD-0.5) > eps || math.Abs(minD-0.25) > eps {
		t.Errorf("distance range = [%v, %v], want [0.25, 0.5]", minD, maxD)
	}
}

func TestBuildDuplicated_TriangleOrder(t *testing.T) {
	p := defaultParams()
	g, _ := BuildDuplicated(p)

	for i := range p.Subdivisions {
		c := Emit(p, i)
		v := g.Vertices[i*6 : i*6+6]
		want := []Vertex{c.Outer1, c.Outer2, c.Inner1, c.Inner1, c.Outer2, c.Inner2}
		for k := range want {
			if v[k] != want[k] {
				t.Fatalf("subdivision %d vertex %d = %+v, want %+v", i, k, v[k], want[k])
			}
		}
		if i > 0 && g.Vertices[i*6] != g.Vertices[(i-1)*6+1] {
			t.Errorf("subdivision %d does not start where %d ended", i, i-1)
		}
	}
}

func TestBuildIndexed(t *testing.T) {
	p := defaultParams()
	g, err := BuildIndexed(p)
	if err != nil {
		t.Fatalf("BuildIndexed() error = %v", err)
	}
	if len(g.Vertices) != 50 {
		t.Errorf("len(Vertices) = %d, want 50", len(g.Vertices))
	}
	if len(g.Indices) != 144 {
		t.Errorf("len(Indices) = %d, want 144", len(g.Indices))
	}

	n := p.Subdivisions
	if g.Vertices[2*n] != g.Vertices[0] || g.Vertices[2*n+1] != g.Vertices[1] {
		t.Error("seam boundary does not repeat boundary 0")
	}

	for i := range n {
		b := uint32(2 * i)
		want := []uint32{b, b + 1, b + 2, b + 2, b + 1, b + 3}
		for k, idx := range g.Indices[i*6 : i*6+6] {
			if idx != want[k] {
				t.Errorf("subdivision %d index %d = %d, want %d", i, k, idx, want[k])
			}
		}
	}

	for _, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestBuildIndexed_MatchesDuplicated(t *testing.T) {
	p := defaultParams()
	dup, _ := BuildDuplicated(p)
	ind, _ := BuildIndexed(p)

	for i, idx := range ind.Indices {
		if !near(ind.Vertices[idx], dup.Vertices[i]) {
			t.Fatalf("triangle vertex %d = %+v, duplicated layout has %+v",
				i, ind.Vertices[idx], dup.Vertices[i])
		}
	}
}

func TestBuild_InvalidParams(t *testing.T) {
	p := defaultParams()
	p.Subdivisions = 0

	if g, err := BuildDuplicated(p); !errors.Is(err, ErrInvalidSubdivisions) || g.Vertices != nil {
		t.Errorf("BuildDuplicated() = (%d verts, %v), want (0, ErrInvalidSubdivisions)", len(g.Vertices), err)
	}
	if g, err := BuildIndexed(p); !errors.Is(err, ErrInvalidSubdivisions) || g.Vertices != nil {
		t.Errorf("BuildIndexed() = (%d verts, %v), want (0, ErrInvalidSubdivisions)", len(g.Vertices), err)
	}
}

func TestPackVertices(t *testing.T) {
	verts := []Vertex{
		{Position: [2]float32{1.5, -2}, Color: Color{10, 20, 30}},
		{Position: [2]float32{0, 0.25}, Color: Color{40, 50, 60}},
	}

	colored := PackVertices(verts, true)
	if len(colored) != 2*12 {
		t.Fatalf("len(colored) = %d, want 24", len(colored))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(colored[12+4:])); got != 0.25 {
		t.Errorf("vertex 1 y = %v, want 0.25", got)
	}
	if got := colored[ColorOffset : ColorOffset+ColorSize]; got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 255 {
		t.Errorf("vertex 0 color = %v, want [10 20 30 255]", got)
	}

	plain := PackVertices(verts, false)
	if len(plain) != 2*8 {
		t.Fatalf("len(plain) = %d, want 16", len(plain))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(plain[8:])); got != 0 {
		t.Errorf("vertex 1 x = %v, want 0", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(plain[4:])); got != -2 {
		t.Errorf("vertex 0 y = %v, want -2", got)
	}
}

func TestPackIndices(t *testing.T) {
	if PackIndices(nil) != nil {
		t.Error("PackIndices(nil) should be nil")
	}
	buf := PackIndices([]uint32{1, 0x01020304})
	want := []byte{1, 0, 0, 0, 4, 3, 2, 1}
	if string(buf) != string(want) {
		t.Errorf("PackIndices() = %v, want %v", buf, want)
	}
}

func BenchmarkBuildDuplicated(b *testing.B) {
	p := defaultParams()
	p.Subdivisions = 256
	b.ReportAllocs()
	for b.Loop() {
		_, _ = BuildDuplicated(p)
	}
}

func BenchmarkBuildIndexed(b *testing.B) {
	p := defaultParams()
	p.Subdivisions = 256
	b.ReportAllocs()
	for b.Loop() {
		_, _ = BuildIndexed(p)
	}
}
