package image

import "testing"

// newGradient returns a w x h level where R = x*step, G = y*step, B = 128, A = 255.
func newGradient(t testing.TB, w, h, step int) Level {
	t.Helper()
	l, err := NewLevel(w, h)
	if err != nil {
		t.Fatalf("NewLevel(%d, %d) error = %v", w, h, err)
	}
	for y := range h {
		for x := range w {
			l.SetRGBA(x, y, byte(x*step), byte(y*step), 128, 255)
		}
	}
	return l
}

func TestSampleBilinear_TexelCenter(t *testing.T) {
	img := newGradient(t, 4, 4, 60)

	for y := range 3 {
		for x := range 3 {
			r, g, b, a := SampleBilinearRGBA(img, x, y, 0, 0)
			wr, wg, wb, wa := img.RGBA(x, y)
			if r != wr || g != wg || b != wb || a != wa {
				t.Errorf("sample at (%d, %d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					x, y, r, g, b, a, wr, wg, wb, wa)
			}
		}
	}
}

func TestSampleBilinear_Blend(t *testing.T) {
	img, _ := NewLevel(2, 2)
	img.SetRGBA(0, 0, 0, 0, 0, 255)
	img.SetRGBA(1, 0, 100, 10, 0, 255)
	img.SetRGBA(0, 1, 200, 20, 0, 255)
	img.SetRGBA(1, 1, 255, 30, 0, 255)

	tests := []struct {
		name   string
		t1, t2 float64
		wantR  byte
		wantG  byte
	}{
		{"top-left", 0, 0, 0, 0},
		{"halfway across top", 0.5, 0, 50, 5},
		{"halfway down left", 0, 0.5, 100, 10},
		// top = 50, bottom = 227.5, mix = 138.75, truncated.
		{"center", 0.5, 0.5, 138, 15},
		// top = 25, bottom = 213.75, mix = 72.1875.
		{"quarter", 0.25, 0.25, 72, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, _, a := SampleBilinearRGBA(img, 0, 0, tt.t1, tt.t2)
			if r != tt.wantR || g != tt.wantG {
				t.Errorf("SampleBilinear(t1=%v, t2=%v) = (%d, %d), want (%d, %d)",
					tt.t1, tt.t2, r, g, tt.wantR, tt.wantG)
			}
			if a != 255 {
				t.Errorf("alpha = %d, want 255", a)
			}
		})
	}
}

func TestSampleBilinear_ChannelsIndependent(t *testing.T) {
	img, _ := NewLevel(2, 1)
	img.SetRGBA(0, 0, 0, 255, 10, 0)
	img.SetRGBA(1, 0, 255, 0, 10, 200)

	r, g, b, a := SampleBilinearRGBA(img, 0, 0, 0.5, 0)
	if r != 127 || g != 127 || b != 10 || a != 100 {
		t.Errorf("got (%d, %d, %d, %d), want (127, 127, 10, 100)", r, g, b, a)
	}
}

func TestSampleBilinear_EdgeClamp(t *testing.T) {
	// A single column: tx+1 would be out of range without clamping.
	img, _ := NewLevel(1, 2)
	img.SetRGBA(0, 0, 40, 0, 0, 255)
	img.SetRGBA(0, 1, 80, 0, 0, 255)

	r, _, _, _ := SampleBilinearRGBA(img, 0, 0, 0, 0.5)
	if r != 60 {
		t.Errorf("R = %d, want 60", r)
	}

	// Bottom-right corner of a 2x2: both neighbors clamp back to the corner.
	img2 := newGradient(t, 2, 2, 100)
	r, g, _, _ := SampleBilinearRGBA(img2, 1, 1, 0, 0)
	if r != 100 || g != 100 {
		t.Errorf("corner = (%d, %d), want (100, 100)", r, g)
	}
}

func TestMix(t *testing.T) {
	tests := []struct {
		a, b, t float64
		want    float64
	}{
		{0, 255, 0, 0},
		{0, 255, 1, 255},
		{100, 200, 0.5, 150},
		{200, 100, 0.25, 175},
	}
	for _, tt := range tests {
		if got := mix(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("mix(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func BenchmarkSampleBilinear(b *testing.B) {
	img := newGradient(b, 64, 64, 4)
	var px [BytesPerPixel]byte

	b.ReportAllocs()
	for b.Loop() {
		SampleBilinear(px[:], img, 31, 17, 0.3, 0.7)
	}
}
