package batch

import "errors"

// ErrHasherReleased indicates the worker pool behind the hasher has been
// released.
var ErrHasherReleased = errors.New("batch hasher is released")
