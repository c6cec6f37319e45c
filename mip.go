package gpuprep

import (
	"math"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpuprep/internal/image"
	"github.com/gogpu/gpuprep/internal/parallel"
)

// MipLevel is one RGBA8 level of a mip pyramid: Width*Height texels, row
// major, four bytes per texel, no row padding.
//
// Levels returned by this package own their Data and must be treated as
// read-only.
type MipLevel struct {
	Width  int
	Height int
	Data   []byte
}

// NewMipLevel copies packed RGBA8 bytes into a level, inferring the height
// as len(data)/4/width.
func NewMipLevel(data []byte, width int) (MipLevel, error) {
	l, err := image.LevelFromBytes(data, width)
	if err != nil {
		return MipLevel{}, invalid("NewMipLevel", err)
	}
	return MipLevel(l), nil
}

// Extent returns the level size as a single-layer extent.
func (l MipLevel) Extent() gputypes.Extent3D {
	return gputypes.NewExtent2D(uint32(l.Width), uint32(l.Height))
}

// DataLayout describes Data for a queue texture write.
func (l MipLevel) DataLayout() gputypes.TextureDataLayout {
	return gputypes.TextureDataLayout{
		BytesPerRow:  uint32(image.Level(l).RowBytes()),
		RowsPerImage: uint32(l.Height),
	}
}

// MipPyramid is an immutable sequence of levels, level 0 being the base
// image and the last level 1x1. Level k is
// max(1, W>>k) x max(1, H>>k).
type MipPyramid struct {
	levels []MipLevel
}

// GenerateMipPyramid builds the pyramid of a packed RGBA8 image of the
// given width. The height is len(data)/4/width.
//
// Each level is a single bilinear 2:1 reduction of the one before it. The
// input buffer is copied into level 0 and never modified.
//
// Returns an error wrapping ErrInvalidParameter if width is not positive,
// data is empty, or len(data) is not a multiple of width*4.
func GenerateMipPyramid(data []byte, width int, opts ...MipOption) (*MipPyramid, error) {
	base, err := image.WrapBytes(data, width)
	if err != nil {
		return nil, invalid("GenerateMipPyramid", err)
	}
	return generate(base, opts)
}

// GenerateMipPyramidFromLevel builds the pyramid of base.
// base.Data must hold exactly Width*Height*4 bytes.
func GenerateMipPyramidFromLevel(base MipLevel, opts ...MipOption) (*MipPyramid, error) {
	l := image.Level(base)
	if err := l.Validate(); err != nil {
		return nil, invalid("GenerateMipPyramidFromLevel", err)
	}
	return generate(l, opts)
}

func generate(base image.Level, opts []MipOption) (*MipPyramid, error) {
	o := defaultMipOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &image.Reducer{MinParallelTexels: o.minParallelTexels}
	switch {
	case o.workers == 0:
		r.Pool = sharedPool()
	case o.workers > 1:
		pool := parallel.NewWorkerPool(o.workers)
		defer pool.Close()
		r.Pool = pool
	}

	levels, err := r.Pyramid(base)
	if err != nil {
		return nil, invalid("GenerateMipPyramid", err)
	}

	p := &MipPyramid{levels: make([]MipLevel, len(levels))}
	for i, l := range levels {
		p.levels[i] = MipLevel(l)
	}

	Logger().Debug("gpuprep: mip pyramid generated",
		"width", base.Width,
		"height", base.Height,
		"levels", len(p.levels),
		"parallel", r.Pool != nil,
	)
	return p, nil
}

var sharedPool = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// MipLevelCount returns the number of levels a pyramid of a w x h base
// has: floor(log2(max(w, h))) + 1, or 0 for an empty size.
func MipLevelCount(w, h int) int {
	return image.LevelCount(w, h)
}

// Levels returns the levels in order, base first.
// The returned slice is a copy; the level data is shared and read-only.
func (p *MipPyramid) Levels() []MipLevel {
	if p == nil {
		return nil
	}
	out := make([]MipLevel, len(p.levels))
	copy(out, p.levels)
	return out
}

// Level returns level n, or false if n is out of range.
func (p *MipPyramid) Level(n int) (MipLevel, bool) {
	if p == nil || n < 0 || n >= len(p.levels) {
		return MipLevel{}, false
	}
	return p.levels[n], true
}

// NumLevels returns the number of levels. Returns 0 for a nil pyramid.
func (p *MipPyramid) NumLevels() int {
	if p == nil {
		return 0
	}
	return len(p.levels)
}

// Base returns level 0.
func (p *MipPyramid) Base() MipLevel {
	l, _ := p.Level(0)
	return l
}

// LevelForScale picks the level for drawing the image at the given scale
// (displayed size / base size): floor(-log2(scale)), clamped to the
// available levels. Scales of 1 or more select the base.
func (p *MipPyramid) LevelForScale(scale float64) MipLevel {
	if p == nil || len(p.levels) == 0 {
		return MipLevel{}
	}
	if scale >= 1 || math.IsNaN(scale) {
		return p.levels[0]
	}
	if scale <= 0 {
		return p.levels[len(p.levels)-1]
	}

	level := int(math.Floor(-math.Log2(scale)))
	level = min(max(level, 0), len(p.levels)-1)
	return p.levels[level]
}

// TextureDescriptor describes a 2D RGBA8 texture that can hold every level
// of the pyramid, for upload with one write per mip level.
func (p *MipPyramid) TextureDescriptor(label string) gputypes.TextureDescriptor {
	base := p.Base()
	return gputypes.TextureDescriptor{
		Label:         label,
		Size:          base.Extent(),
		MipLevelCount: uint32(p.NumLevels()),
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}
