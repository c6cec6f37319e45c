package image

import (
	"math/bits"

	"github.com/gogpu/gpuprep/internal/parallel"
)

// DefaultMinParallelTexels is the destination size below which a reduction
// always runs serially.
const DefaultMinParallelTexels = 64 * 64

// Reducer halves levels with a single bilinear pass.
//
// The zero value reduces serially. Set Pool to spread rows across workers;
// the output is byte-identical either way.
type Reducer struct {
	// Pool runs row bands concurrently. Nil means serial.
	Pool *parallel.WorkerPool

	// MinParallelTexels is the smallest destination (in texels) that is
	// worth splitting. Zero means DefaultMinParallelTexels.
	MinParallelTexels int
}

// ReducedSize returns the size of the level below a w x h level.
func ReducedSize(w, h int) (int, int) {
	return max(1, w/2), max(1, h/2)
}

// LevelCount returns how many levels a pyramid built from a w x h base has,
// counting the base and the final 1x1 level.
func LevelCount(w, h int) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return bits.Len(uint(max(w, h)))
}

// Reduce produces the next level of src.
//
// Each destination texel center (x+0.5)/dstW is mapped back into the source
// as u*srcW-0.5 and sampled bilinearly from the four surrounding texels.
// This is not a box filter: odd and non-power-of-two sources alias.
func (r *Reducer) Reduce(src Level) Level {
	dstW, dstH := ReducedSize(src.Width, src.Height)
	dst := Level{
		Width:  dstW,
		Height: dstH,
		Data:   make([]byte, dstW*dstH*BytesPerPixel),
	}

	minTexels := r.MinParallelTexels
	if minTexels <= 0 {
		minTexels = DefaultMinParallelTexels
	}
	pool := r.Pool
	if dstW*dstH < minTexels {
		pool = nil
	}

	parallel.ForEachBand(pool, dstH, func(b parallel.Band) {
		reduceRows(dst, src, b.Y0, b.Y1)
	})
	return dst
}

// reduceRows fills destination rows [y0, y1).
func reduceRows(dst, src Level, y0, y1 int) {
	sw, sh := float64(src.Width), float64(src.Height)
	dw, dh := float64(dst.Width), float64(dst.Height)

	// au and av are never negative because dst is at most as large as src,
	// so int() truncation is floor.
	for y := y0; y < y1; y++ {
		v := (float64(y) + 0.5) / dh
		av := v*sh - 0.5
		ty := int(av)
		t2 := av - float64(ty)

		row := dst.PixelOffset(0, y)
		for x := range dst.Width {
			u := (float64(x) + 0.5) / dw
			au := u*sw - 0.5
			tx := int(au)
			t1 := au - float64(tx)

			off := row + x*BytesPerPixel
			SampleBilinear(dst.Data[off:off+BytesPerPixel], src, tx, ty, t1, t2)
		}
	}
}

// Pyramid builds the full level sequence starting at base.
//
// Level 0 is a copy of base. Each following level is the reduction of the
// previous one, and the sequence ends with (and always includes) a 1x1
// level. base must be valid.
func (r *Reducer) Pyramid(base Level) ([]Level, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}

	levels := make([]Level, 0, LevelCount(base.Width, base.Height))
	cur := base.Clone()
	for {
		levels = append(levels, cur)
		if cur.IsUnit() {
			return levels, nil
		}
		cur = r.Reduce(cur)
	}
}
