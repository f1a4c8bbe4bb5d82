package sha256

// Strategy selects how the 64-word message schedule is produced while a
// block is compressed. Both strategies realize the same recurrence and yield
// identical digests for identical input; they differ only in working-set
// shape. StrategyFull is the default.
type Strategy int

const (
	// StrategyFull expands the whole schedule of a block into 64 words
	// before the round loop runs.
	StrategyFull Strategy = iota

	// StrategyRotating keeps a sixteen-word window and derives each later
	// word in place in the round that consumes it, the way a register
	// file of fixed depth would.
	StrategyRotating
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyFull:
		return "full"
	case StrategyRotating:
		return "rotating"
	default:
		return "unknown"
	}
}

func (s Strategy) valid() bool {
	return s == StrategyFull || s == StrategyRotating
}

// ParseStrategy maps a configuration name to a Strategy. Exactly "full" and
// "rotating" are recognized.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "full":
		return StrategyFull, nil
	case "rotating":
		return StrategyRotating, nil
	default:
		return 0, ErrUnknownStrategy
	}
}
