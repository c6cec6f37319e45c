package parallel

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides height rows into at most parts contiguous bands of
// near-equal size. The first height%parts bands get one extra row.
// Returns nil if height is not positive.
func SplitRows(height, parts int) []Band {
	if height <= 0 {
		return nil
	}
	parts = max(1, min(parts, height))

	bands := make([]Band, parts)
	base, extra := height/parts, height%parts
	y := 0
	for i := range bands {
		n := base
		if i < extra {
			n++
		}
		bands[i] = Band{Y0: y, Y1: y + n}
		y += n
	}
	return bands
}

// ForEachBand splits height rows into bands and calls fn for each one.
// With a nil pool, or when only one band results, fn runs on the calling
// goroutine. fn must only touch state owned by its band.
func ForEachBand(pool *WorkerPool, height int, fn func(Band)) {
	parts := 1
	if pool != nil {
		// A few bands per worker so stealing can even out the tail.
		parts = pool.Workers() * 2
	}
	bands := SplitRows(height, parts)
	if pool == nil || len(bands) <= 1 {
		for _, b := range bands {
			fn(b)
		}
		return
	}

	tasks := make([]func(), len(bands))
	for i, b := range bands {
		tasks[i] = func() { fn(b) }
	}
	pool.ExecuteAll(tasks)
}
