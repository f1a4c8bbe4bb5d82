package sha256

import "errors"

var (
	// ErrLengthOverflow indicates that a message is longer than the padding
	// trailer can record, 2^61-1 bytes.
	ErrLengthOverflow = errors.New("message length over 2^61-1 bytes")

	// ErrMalformedPadding indicates that a padded buffer is not a whole
	// positive number of blocks.
	ErrMalformedPadding = errors.New("padded length not a positive multiple of the block size")

	// ErrUnknownStrategy indicates an unrecognized schedule strategy.
	ErrUnknownStrategy = errors.New("unknown schedule strategy")

	// ErrInvalidHashState indicates a marshaled hash state with a bad
	// identifier or size.
	ErrInvalidHashState = errors.New("invalid hash state")
)
