// Package image implements the RGBA8 level buffer and the mip pyramid
// generator used by gpuprep.
//
// A Level is a tightly packed, row-major RGBA8 buffer with no row padding.
// Levels produced by this package are freshly allocated and never shared
// with their source.
package image

import (
	"errors"
	"math"
)

// Common errors for level construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataSize is returned when the byte length does not describe whole rows.
	ErrDataSize = errors.New("image: data length does not match dimensions")
)

// BytesPerPixel is the size of one RGBA8 texel.
const BytesPerPixel = 4

// Level is a single RGBA8 image level.
type Level struct {
	Width  int
	Height int
	Data   []byte // len = Width*Height*BytesPerPixel
}

// NewLevel allocates a zeroed level of the given size.
func NewLevel(width, height int) (Level, error) {
	if !validSize(width, height) {
		return Level{}, ErrInvalidDimensions
	}
	return Level{
		Width:  width,
		Height: height,
		Data:   make([]byte, width*height*BytesPerPixel),
	}, nil
}

// WrapBytes views packed RGBA8 bytes as a level without copying, inferring
// the height as len(data)/4/width.
func WrapBytes(data []byte, width int) (Level, error) {
	if !validSize(width, 1) || len(data) == 0 {
		return Level{}, ErrInvalidDimensions
	}
	rowBytes := width * BytesPerPixel
	if len(data)%rowBytes != 0 {
		return Level{}, ErrDataSize
	}
	return Level{Width: width, Height: len(data) / rowBytes, Data: data}, nil
}

// LevelFromBytes is WrapBytes followed by a copy of the data.
func LevelFromBytes(data []byte, width int) (Level, error) {
	l, err := WrapBytes(data, width)
	if err != nil {
		return Level{}, err
	}
	return l.Clone(), nil
}

// Validate reports whether the level has positive dimensions and a data
// slice of exactly Width*Height*4 bytes.
func (l Level) Validate() error {
	if !validSize(l.Width, l.Height) {
		return ErrInvalidDimensions
	}
	if len(l.Data) != l.Width*l.Height*BytesPerPixel {
		return ErrDataSize
	}
	return nil
}

// validSize reports whether both dimensions are positive and the byte size
// of a width x height level fits in an int.
func validSize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	return height <= math.MaxInt/BytesPerPixel/width
}

// RowBytes returns the number of bytes in one row.
func (l Level) RowBytes() int {
	return l.Width * BytesPerPixel
}

// PixelOffset returns the byte offset of texel (x, y).
// Coordinates are not checked.
func (l Level) PixelOffset(x, y int) int {
	return (y*l.Width + x) * BytesPerPixel
}

// RGBA returns the texel at (x, y).
func (l Level) RGBA(x, y int) (r, g, b, a uint8) {
	i := l.PixelOffset(x, y)
	return l.Data[i], l.Data[i+1], l.Data[i+2], l.Data[i+3]
}

// SetRGBA writes the texel at (x, y).
func (l Level) SetRGBA(x, y int, r, g, b, a uint8) {
	i := l.PixelOffset(x, y)
	l.Data[i] = r
	l.Data[i+1] = g
	l.Data[i+2] = b
	l.Data[i+3] = a
}

// Clone returns a deep copy of the level.
func (l Level) Clone() Level {
	data := make([]byte, len(l.Data))
	copy(data, l.Data)
	return Level{Width: l.Width, Height: l.Height, Data: data}
}

// IsUnit reports whether the level is 1x1, the last level of a pyramid.
func (l Level) IsUnit() bool {
	return l.Width == 1 && l.Height == 1
}
