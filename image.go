// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuprep

import (
	"image"

	"golang.org/x/image/draw"
)

// MipLevelFromImage converts img to a tightly packed, non-premultiplied
// RGBA8 level suitable as a pyramid base.
//
// Any image.Image is accepted; formats other than *image.NRGBA are
// converted with draw.Src. Returns an error wrapping ErrInvalidParameter
// for an empty image.
func MipLevelFromImage(img image.Image) (MipLevel, error) {
	if img == nil {
		return MipLevel{}, invalid("MipLevelFromImage", ErrInvalidDimensions)
	}
	b := img.Bounds()
	if b.Empty() {
		return MipLevel{}, invalid("MipLevelFromImage", ErrInvalidDimensions)
	}

	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	if src, ok := img.(*image.NRGBA); ok {
		for y := range h {
			start := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[start:start+w*4])
		}
	} else {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	}

	return MipLevel{Width: w, Height: h, Data: dst.Pix}, nil
}

// Image returns a copy of the level as an *image.NRGBA.
func (l MipLevel) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, l.Width, l.Height))
	copy(img.Pix, l.Data)
	return img
}

// MipPyramidFromImage is MipLevelFromImage followed by
// GenerateMipPyramidFromLevel.
func MipPyramidFromImage(img image.Image, opts ...MipOption) (*MipPyramid, error) {
	base, err := MipLevelFromImage(img)
	if err != nil {
		return nil, err
	}
	return GenerateMipPyramidFromLevel(base, opts...)
}
