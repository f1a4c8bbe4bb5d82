package pipeline

import (
	"github.com/pkg/errors"
	"massnet.org/sha256"
)

// Hasher drives a Core over whole messages. It frames the message with the
// engine preprocessor and feeds the blocks through the core strictly in
// order, one block per transfer.
type Hasher struct {
	core *Core
}

// NewHasher returns a Hasher over a fresh core.
func NewHasher() *Hasher {
	return &Hasher{core: NewCore()}
}

// Sum256 returns the SHA256 checksum of msg computed by the staged core.
func (h *Hasher) Sum256(msg []byte) ([sha256.Size]byte, error) {
	var zero [sha256.Size]byte

	padded, _, err := sha256.Pad(msg)
	if err != nil {
		return zero, errors.Wrap(err, "pad message")
	}
	blocks, err := sha256.Blocks(padded)
	if err != nil {
		return zero, errors.Wrap(err, "split padded message")
	}

	for i, blk := range blocks {
		last := i == len(blocks)-1
		if err := h.core.LoadBlock(blk, last); err != nil {
			return zero, errors.Wrapf(err, "load block %d", i)
		}
		h.core.Run()
	}
	return h.core.Digest()
}

// Cycles reports the total cycles the underlying core has consumed.
func (h *Hasher) Cycles() uint64 {
	return h.core.Cycles()
}
