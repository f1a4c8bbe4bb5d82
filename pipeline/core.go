// Package pipeline models the staged SHA256 core cycle by cycle. The core
// accepts one 64-byte block per transfer, spends two cycles on each of the
// 64 rounds, and keeps the message schedule in a sixteen-word register file
// that rewrites itself in place. It mirrors the register-transfer structure
// of the hash block rather than the software engine, so agreement between
// the two checks both.
package pipeline

const blockBytes = 64

// BlockCycles is the cycle cost of one block: a latch cycle, two cycles for
// each of the 64 rounds, and a fold cycle.
const BlockCycles = 1 + 2*64 + 1

// State identifies the stage a core is in. A block passes from Idle through
// PreRound, alternates RoundStageA and RoundStageB for 64 rounds, and folds
// in PostRound before returning to Idle.
type State int

const (
	// Idle accepts block transfers.
	Idle State = iota
	// PreRound latches the running state into the round registers.
	PreRound
	// RoundStageA spends the first cycle of a round deriving the schedule
	// word and the majority half-sum.
	RoundStageA
	// RoundStageB spends the second cycle completing the round and
	// shifting the register chain.
	RoundStageB
	// PostRound folds the round registers back into the running state.
	PostRound
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PreRound:
		return "pre-round"
	case RoundStageA:
		return "round-a"
	case RoundStageB:
		return "round-b"
	case PostRound:
		return "post-round"
	default:
		return "unknown"
	}
}

// Core is a cycle-accurate model of the staged hash block. Blocks of one
// message are loaded strictly in order, one per transfer; the final block
// carries a last flag. When the last block folds, the digest is latched
// into the result register and the running state reinitializes itself, so
// the next message needs no explicit reset.
type Core struct {
	state State

	chain [8]uint32  // running hash value, folded after every block
	work  [8]uint32  // round registers a through h
	w     [16]uint32 // schedule register file
	ptr   int        // register file pointer, round mod 16
	round int

	// Latches between the two round stages.
	wt uint32
	t2 uint32

	last   bool
	done   bool
	result [8]uint32

	cycles uint64
}

// NewCore returns an idle core with the running state initialized.
func NewCore() *Core {
	return &Core{chain: ivROM}
}

// LoadBlock latches one 64-byte block into the schedule register file and
// starts the block computation. last marks the final block of the message.
// A core that is still stepping rejects the transfer with ErrCoreBusy.
func (c *Core) LoadBlock(block []byte, last bool) error {
	if c.state != Idle {
		return ErrCoreBusy
	}
	if len(block) != blockBytes {
		return ErrBlockSize
	}
	for i := 0; i < 16; i++ {
		j := i * 4
		c.w[i] = uint32(block[j])<<24 | uint32(block[j+1])<<16 | uint32(block[j+2])<<8 | uint32(block[j+3])
	}
	c.last = last
	c.done = false
	c.state = PreRound
	return nil
}

// Tick advances the core by one clock cycle. Ticking an idle core does
// nothing.
func (c *Core) Tick() {
	if c.state == Idle {
		return
	}
	c.cycles++

	switch c.state {
	case PreRound:
		c.work = c.chain
		c.round = 0
		c.ptr = 0
		c.state = RoundStageA

	case RoundStageA:
		if c.round < 16 {
			c.wt = c.w[c.ptr]
		} else {
			// The slot under the pointer still holds W[t-16]; the
			// other terms sit at fixed offsets ahead of it.
			wNew := c.w[c.ptr] + smallSigma0(c.w[(c.ptr+1)&0xf]) + c.w[(c.ptr+9)&0xf] + smallSigma1(c.w[(c.ptr+14)&0xf])
			c.w[c.ptr] = wNew
			c.wt = wNew
		}
		c.t2 = bigSigma0(c.work[0]) + maj(c.work[0], c.work[1], c.work[2])
		c.state = RoundStageB

	case RoundStageB:
		t1 := c.work[7] + bigSigma1(c.work[4]) + ch(c.work[4], c.work[5], c.work[6]) + kROM[c.round] + c.wt
		c.work[7] = c.work[6]
		c.work[6] = c.work[5]
		c.work[5] = c.work[4]
		c.work[4] = c.work[3] + t1
		c.work[3] = c.work[2]
		c.work[2] = c.work[1]
		c.work[1] = c.work[0]
		c.work[0] = t1 + c.t2
		c.ptr = (c.ptr + 1) & 0xf
		c.round++
		if c.round == 64 {
			c.state = PostRound
		} else {
			c.state = RoundStageA
		}

	case PostRound:
		for i := range c.chain {
			c.chain[i] += c.work[i]
		}
		if c.last {
			c.result = c.chain
			c.done = true
			c.chain = ivROM
		}
		c.state = Idle
	}
}

// Run ticks the core until it goes idle again and reports the cycles spent.
func (c *Core) Run() int {
	start := c.cycles
	for c.state != Idle {
		c.Tick()
	}
	return int(c.cycles - start)
}

// Done reports whether a message digest is latched in the result register.
func (c *Core) Done() bool {
	return c.done
}

// Digest returns the latched digest of the last completed message. It fails
// with ErrNoResult until the final block of a message has been folded.
func (c *Core) Digest() ([32]byte, error) {
	var out [32]byte
	if !c.done {
		return out, ErrNoResult
	}
	for i, s := range c.result {
		out[i*4] = byte(s >> 24)
		out[i*4+1] = byte(s >> 16)
		out[i*4+2] = byte(s >> 8)
		out[i*4+3] = byte(s)
	}
	return out, nil
}

// State reports the stage the core is in.
func (c *Core) State() State {
	return c.state
}

// Cycles reports the total cycles consumed since construction or Reset.
func (c *Core) Cycles() uint64 {
	return c.cycles
}

// Reset pulls the core back to idle with a fresh running state, dropping
// any latched result and the cycle counter.
func (c *Core) Reset() {
	*c = Core{chain: ivROM}
}
