package batch

import (
	"massnet.org/sha256"
)

const (
	defaultPoolWorkers = 32
)

type options struct {
	workers  int
	strategy sha256.Strategy
}

func defaultOptions() *options {
	return &options{
		workers:  defaultPoolWorkers,
		strategy: sha256.StrategyFull,
	}
}

type Option interface {
	apply(*options)
}

type optionFunc struct {
	fn func(*options)
}

func (of *optionFunc) apply(o *options) {
	of.fn(o)
}

func newOptionFunc(fn func(*options)) *optionFunc {
	return &optionFunc{fn: fn}
}

// WithWorkers sets the size of the worker pool.
func WithWorkers(workers int) Option {
	return newOptionFunc(func(o *options) {
		o.workers = workers
	})
}

// WithStrategy sets the schedule strategy used by every worker.
func WithStrategy(strategy sha256.Strategy) Option {
	return newOptionFunc(func(o *options) {
		o.strategy = strategy
	})
}
