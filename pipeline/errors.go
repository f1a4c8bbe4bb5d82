package pipeline

import "errors"

var (
	// ErrCoreBusy indicates that a block transfer arrived while the core
	// was still stepping through the previous one.
	ErrCoreBusy = errors.New("core is not idle")

	// ErrBlockSize indicates a block transfer that is not exactly one
	// 64-byte block.
	ErrBlockSize = errors.New("block transfer must be exactly 64 bytes")

	// ErrNoResult indicates that no digest has been latched yet.
	ErrNoResult = errors.New("no digest latched")
)
