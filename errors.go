package gpuprep

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpuprep/internal/image"
	"github.com/gogpu/gpuprep/internal/ring"
)

// ErrInvalidParameter is returned for degenerate input: an empty or
// zero-sized base image, a buffer that does not hold whole rows, zero
// subdivisions, or negative, non-finite or inverted radii.
//
// Errors wrap ErrInvalidParameter together with one of the more specific
// causes below, so errors.Is succeeds for both. On error no partial output
// is returned.
var ErrInvalidParameter = errors.New("gpuprep: invalid parameter")

// Specific causes wrapped alongside ErrInvalidParameter.
var (
	ErrInvalidDimensions   = image.ErrInvalidDimensions
	ErrDataSize            = image.ErrDataSize
	ErrInvalidSubdivisions = ring.ErrInvalidSubdivisions
	ErrInvalidRadius       = ring.ErrInvalidRadius
)

// invalid wraps cause with ErrInvalidParameter and logs the rejection.
func invalid(op string, cause error) error {
	Logger().Warn("gpuprep: rejected input", "op", op, "err", cause)
	return fmt.Errorf("%w: %s: %w", ErrInvalidParameter, op, cause)
}
