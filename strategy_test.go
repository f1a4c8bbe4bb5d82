package sha256

import "testing"

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		err      error
	}{
		{
			name:     "full",
			strategy: StrategyFull,
			err:      nil,
		},
		{
			name:     "rotating",
			strategy: StrategyRotating,
			err:      nil,
		},
		{
			name: "",
			err:  ErrUnknownStrategy,
		},
		{
			name: "Full",
			err:  ErrUnknownStrategy,
		},
		{
			name: "eager",
			err:  ErrUnknownStrategy,
		},
	}

	for i, test := range tests {
		s, err := ParseStrategy(test.name)
		if err != test.err {
			t.Errorf("%d, ParseStrategy error not matched, got = %v, want = %v", i, err, test.err)
		}
		if err == nil && s != test.strategy {
			t.Errorf("%d, ParseStrategy not equal, got = %v, want = %v", i, s, test.strategy)
		}
	}
}

func TestStrategyString(t *testing.T) {
	tests := []struct {
		strategy Strategy
		str      string
	}{
		{StrategyFull, "full"},
		{StrategyRotating, "rotating"},
		{Strategy(7), "unknown"},
	}

	for i, test := range tests {
		if got := test.strategy.String(); got != test.str {
			t.Errorf("%d, String not equal, got = %s, want = %s", i, got, test.str)
		}
	}
}

func TestStrategyRoundTrip(t *testing.T) {
	for _, strategy := range []Strategy{StrategyFull, StrategyRotating} {
		parsed, err := ParseStrategy(strategy.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != strategy {
			t.Errorf("round trip not equal, got = %v, want = %v", parsed, strategy)
		}
	}
}

func TestUnknownStrategyRejected(t *testing.T) {
	bogus := Strategy(3)
	if _, err := NewWithStrategy(bogus); err != ErrUnknownStrategy {
		t.Errorf("NewWithStrategy error not matched, got = %v, want = %v", err, ErrUnknownStrategy)
	}
	if _, err := New224WithStrategy(bogus); err != ErrUnknownStrategy {
		t.Errorf("New224WithStrategy error not matched, got = %v, want = %v", err, ErrUnknownStrategy)
	}
	if _, err := Sum256WithStrategy([]byte("abc"), bogus); err != ErrUnknownStrategy {
		t.Errorf("Sum256WithStrategy error not matched, got = %v, want = %v", err, ErrUnknownStrategy)
	}
}
