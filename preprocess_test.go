package sha256

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestPadLength(t *testing.T) {
	tests := []struct {
		msgLen int
		blocks int
	}{
		{0, 1},
		{1, 1},
		{54, 1},
		{55, 1},
		{56, 2},
		{57, 2},
		{63, 2},
		{64, 2},
		{119, 2},
		{120, 3},
		{128, 3},
	}

	for i, test := range tests {
		padded, bitLen, err := Pad(make([]byte, test.msgLen))
		if err != nil {
			t.Fatalf("%d, Pad failed: %v", i, err)
		}
		if bitLen != uint64(test.msgLen)*8 {
			t.Errorf("%d, bit length not equal, got = %d, want = %d", i, bitLen, test.msgLen*8)
		}
		if got := len(padded) / BlockSize; got != test.blocks {
			t.Errorf("%d, block count not equal, got = %d, want = %d", i, got, test.blocks)
		}
	}
}

func TestPadLengthFormula(t *testing.T) {
	for l := 0; l <= 300; l++ {
		padded, _, err := Pad(make([]byte, l))
		if err != nil {
			t.Fatal(err)
		}
		if len(padded) == 0 || len(padded)%BlockSize != 0 {
			t.Fatalf("length %d, padded size %d not a positive block multiple", l, len(padded))
		}
		want := (l*8 + 1 + 64 + 511) / 512
		if got := len(padded) / BlockSize; got != want {
			t.Errorf("length %d, block count not equal, got = %d, want = %d", l, got, want)
		}
	}
}

func TestPadFormat(t *testing.T) {
	msg := []byte("abc")
	padded, bitLen, err := Pad(msg)
	if err != nil {
		t.Fatal(err)
	}
	if bitLen != 24 {
		t.Errorf("bit length not equal, got = %d, want = 24", bitLen)
	}
	if len(padded) != BlockSize {
		t.Fatalf("padded size not equal, got = %d, want = %d", len(padded), BlockSize)
	}
	if !bytes.Equal(padded[:3], msg) {
		t.Errorf("message prefix not preserved, got = %x", padded[:3])
	}
	if padded[3] != 0x80 {
		t.Errorf("delimiter byte not equal, got = %#x, want = 0x80", padded[3])
	}
	for i := 4; i < 56; i++ {
		if padded[i] != 0 {
			t.Errorf("zero run broken at byte %d, got = %#x", i, padded[i])
		}
	}
	trailer := []byte{0, 0, 0, 0, 0, 0, 0, 24}
	if !bytes.Equal(padded[56:], trailer) {
		t.Errorf("length trailer not equal, got = %x, want = %x", padded[56:], trailer)
	}
}

func TestPadEmptyMessage(t *testing.T) {
	padded, bitLen, err := Pad(nil)
	if err != nil {
		t.Fatal(err)
	}
	if bitLen != 0 {
		t.Errorf("bit length not equal, got = %d, want = 0", bitLen)
	}
	if len(padded) != BlockSize {
		t.Fatalf("padded size not equal, got = %d, want = %d", len(padded), BlockSize)
	}
	if padded[0] != 0x80 {
		t.Errorf("delimiter byte not equal, got = %#x, want = 0x80", padded[0])
	}
	for i := 1; i < BlockSize; i++ {
		if padded[i] != 0 {
			t.Errorf("byte %d not zero, got = %#x", i, padded[i])
		}
	}
}

func TestPadDoesNotMutate(t *testing.T) {
	msg := bytes.Repeat([]byte{0xAB}, 100)
	orig := make([]byte, len(msg))
	copy(orig, msg)
	padded, _, err := Pad(msg)
	if err != nil {
		t.Fatal(err)
	}
	padded[0] ^= 0xFF
	padded[len(msg)] ^= 0xFF
	if !bytes.Equal(msg, orig) {
		t.Errorf("Pad mutated its input, got = %x, want = %x", msg, orig)
	}
}

func TestBlocksViews(t *testing.T) {
	msg := make([]byte, 200)
	rand.New(rand.NewSource(3)).Read(msg)
	padded, _, err := Pad(msg)
	if err != nil {
		t.Fatal(err)
	}
	blocks, err := Blocks(padded)
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != len(padded)/BlockSize {
		t.Fatalf("block count not equal, got = %d, want = %d", len(blocks), len(padded)/BlockSize)
	}
	for i, blk := range blocks {
		if len(blk) != BlockSize {
			t.Fatalf("%d, block size not equal, got = %d, want = %d", i, len(blk), BlockSize)
		}
		if !bytes.Equal(blk, padded[i*BlockSize:(i+1)*BlockSize]) {
			t.Errorf("%d, block content out of order", i)
		}
	}

	// The blocks are views into the padded buffer, not copies.
	blocks[1][0] ^= 0xFF
	if padded[BlockSize] != msg[BlockSize]^0xFF {
		t.Errorf("block views do not alias the padded buffer")
	}
}

func TestBlocksMalformed(t *testing.T) {
	for i, size := range []int{1, 63, 65, 127, 129} {
		if _, err := Blocks(make([]byte, size)); err != ErrMalformedPadding {
			t.Errorf("%d, error not matched for size %d, got = %v, want = %v", i, size, err, ErrMalformedPadding)
		}
	}
	if _, err := Blocks(nil); err != ErrMalformedPadding {
		t.Errorf("error not matched for empty buffer, got = %v, want = %v", err, ErrMalformedPadding)
	}
}

func TestPadBlocksFoldMatchesStreaming(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for _, l := range []int{0, 1, 55, 56, 64, 100, 437} {
		msg := make([]byte, l)
		rnd.Read(msg)
		padded, _, err := Pad(msg)
		if err != nil {
			t.Fatal(err)
		}
		blocks, err := Blocks(padded)
		if err != nil {
			t.Fatal(err)
		}

		d := new(digest)
		d.Reset()
		for _, blk := range blocks {
			block(d, blk)
		}
		var got [Size]byte
		for i, s := range d.h {
			got[i*4] = byte(s >> 24)
			got[i*4+1] = byte(s >> 16)
			got[i*4+2] = byte(s >> 8)
			got[i*4+3] = byte(s)
		}

		if want := Sum256(msg); got != want {
			t.Errorf("length %d, folded blocks not equal, got = %x, want = %x", l, got, want)
		}
	}
}
