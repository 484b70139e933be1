package fourier

import "errors"

// ErrInvalidInput is returned when a path cannot be transformed: it has no
// samples, or one of its samples is NaN or infinite.
var ErrInvalidInput = errors.New("fourier: invalid input")
