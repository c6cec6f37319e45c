package gpuprep

import "github.com/gogpu/gpuprep/internal/ring"

// MipOption configures GenerateMipPyramid.
//
// Example:
//
//	// Reduce on the calling goroutine only
//	p, err := gpuprep.GenerateMipPyramid(data, 256, gpuprep.WithWorkers(1))
type MipOption func(*mipOptions)

type mipOptions struct {
	workers           int
	minParallelTexels int
}

func defaultMipOptions() mipOptions {
	return mipOptions{
		workers:           0, // shared pool sized to GOMAXPROCS
		minParallelTexels: 0, // image.DefaultMinParallelTexels
	}
}

// WithWorkers sets how many goroutines reduce each level.
// 0 (the default) uses a shared pool sized to GOMAXPROCS, 1 reduces
// serially, and n > 1 runs on a dedicated pool of n workers for this call.
func WithWorkers(n int) MipOption {
	return func(o *mipOptions) {
		o.workers = max(0, n)
	}
}

// WithMinParallelTexels sets the smallest level (in texels) that is split
// across workers. Smaller levels are reduced serially.
func WithMinParallelTexels(n int) MipOption {
	return func(o *mipOptions) {
		o.minParallelTexels = n
	}
}

// RingOption configures BuildRing, BuildIndexedRing and RingCache.Get.
//
// Example:
//
//	g, err := gpuprep.BuildIndexedRing(
//	    gpuprep.WithOuterRadius(0.5),
//	    gpuprep.WithInnerRadius(0.25),
//	)
type RingOption func(*ring.Params)

// Ring defaults.
const (
	DefaultOuterRadius  = 1.0
	DefaultInnerRadius  = 0.0
	DefaultSubdivisions = 24
)

// Default two-tone ring colors.
var (
	DefaultOuterColor = RingColor{25, 25, 25}
	DefaultInnerColor = RingColor{255, 255, 255}
)

func defaultRingParams() ring.Params {
	return ring.Params{
		OuterRadius:  DefaultOuterRadius,
		InnerRadius:  DefaultInnerRadius,
		Subdivisions: DefaultSubdivisions,
		Colored:      true,
		OuterColor:   DefaultOuterColor,
		InnerColor:   DefaultInnerColor,
	}
}

func ringParams(opts []RingOption) ring.Params {
	p := defaultRingParams()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithOuterRadius sets the outer radius (default 1).
func WithOuterRadius(r float32) RingOption {
	return func(p *ring.Params) {
		p.OuterRadius = r
	}
}

// WithInnerRadius sets the inner radius (default 0, a filled disc).
// It may equal the outer radius but not exceed it: BuildRing and
// BuildIndexedRing reject an inner radius larger than the outer one with
// ErrInvalidRadius.
func WithInnerRadius(r float32) RingOption {
	return func(p *ring.Params) {
		p.InnerRadius = r
	}
}

// WithSubdivisions sets the number of quads around the ring (default 24).
func WithSubdivisions(n int) RingOption {
	return func(p *ring.Params) {
		p.Subdivisions = n
	}
}

// WithRingColors enables two-tone vertex colors with the given outer and
// inner colors.
func WithRingColors(outer, inner RingColor) RingOption {
	return func(p *ring.Params) {
		p.Colored = true
		p.OuterColor = outer
		p.InnerColor = inner
	}
}

// WithoutColor produces position-only vertices.
func WithoutColor() RingOption {
	return func(p *ring.Params) {
		p.Colored = false
		p.OuterColor = RingColor{}
		p.InnerColor = RingColor{}
	}
}
