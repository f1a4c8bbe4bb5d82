package sha256

// MaxMessageBytes is the largest message the preprocessing stage can frame.
// The padding trailer records the message length in bits as a uint64.
const MaxMessageBytes = 1<<61 - 1

// Pad returns msg extended with FIPS 180-4 padding: a single 0x80 byte, the
// shortest run of zero bytes reaching 56 bytes mod 64, and the message
// length in bits as a big-endian uint64. The returned buffer is freshly
// allocated, msg is never modified, and the padded length is a positive
// multiple of BlockSize even for an empty message. The bit length is
// returned alongside the buffer.
func Pad(msg []byte) ([]byte, uint64, error) {
	if uint64(len(msg)) > MaxMessageBytes {
		return nil, 0, ErrLengthOverflow
	}
	bitLen := uint64(len(msg)) << 3
	n := len(msg) + 1 + 8
	if r := n % BlockSize; r != 0 {
		n += BlockSize - r
	}
	padded := make([]byte, n)
	copy(padded, msg)
	padded[len(msg)] = 0x80
	for i := uint(0); i < 8; i++ {
		padded[n-8+int(i)] = byte(bitLen >> (56 - 8*i))
	}
	return padded, bitLen, nil
}

// Blocks splits a padded buffer into its consecutive 64-byte blocks, in
// message order. The returned slices are views into padded, not copies.
func Blocks(padded []byte) ([][]byte, error) {
	if len(padded) == 0 || len(padded)%BlockSize != 0 {
		return nil, ErrMalformedPadding
	}
	blocks := make([][]byte, 0, len(padded)/BlockSize)
	for off := 0; off < len(padded); off += BlockSize {
		blocks = append(blocks, padded[off:off+BlockSize])
	}
	return blocks, nil
}
