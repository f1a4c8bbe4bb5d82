// Package batch hashes independent messages in parallel over a shared
// worker pool. Every message is digested by its own instance, so workers
// never share hash state.
package batch

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants"
	"massnet.org/sha256"
	"massnet.org/sha256/logging"
	"massnet.org/sha256/shautil"
)

type Hasher struct {
	pool     *ants.Pool
	strategy sha256.Strategy
	released int32 // atomic
}

// NewHasher builds a hasher over a pre-allocated worker pool. The default
// pool runs 32 workers with the full schedule strategy.
func NewHasher(opts ...Option) (*Hasher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(o)
	}
	if _, err := sha256.NewWithStrategy(o.strategy); err != nil {
		return nil, err
	}
	pool, err := ants.NewPoolPreMalloc(o.workers)
	if err != nil {
		return nil, err
	}
	return &Hasher{
		pool:     pool,
		strategy: o.strategy,
	}, nil
}

// Workers returns the capacity of the worker pool.
func (h *Hasher) Workers() int {
	return h.pool.Cap()
}

// Release tears down the worker pool. The hasher rejects further work
// afterwards.
func (h *Hasher) Release() {
	if !atomic.CompareAndSwapInt32(&h.released, 0, 1) {
		return
	}
	h.pool.Release()
	logging.CPrint(logging.INFO, "batch hasher released", logging.LogFormat{"workers": h.pool.Cap()})
}

// Sum256All hashes every message and returns the digests in input order.
// A canceled context stops dispatching further messages and returns
// ctx.Err(); messages already handed to the pool still complete.
func (h *Hasher) Sum256All(ctx context.Context, msgs [][]byte) ([]shautil.Hash, error) {
	if h.isReleased() {
		return nil, ErrHasherReleased
	}

	results := make([]shautil.Hash, len(msgs))
	var wg sync.WaitGroup
	for i, msg := range msgs {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		i0, msg0 := i, msg
		wg.Add(1)
		if err := h.pool.Submit(func() {
			results[i0] = h.sum(msg0)
			wg.Done()
		}); err != nil {
			logging.CPrint(logging.WARN, "fail to submit hash job, hashing inline",
				logging.LogFormat{"err": err, "index": i0})
			results[i0] = h.sum(msg0)
			wg.Done()
		}
	}
	wg.Wait()

	return results, nil
}

// Sum256Named hashes every named message and returns a name-to-digest
// snapshot. Cancellation behaves as in Sum256All.
func (h *Hasher) Sum256Named(ctx context.Context, msgs map[string][]byte) (map[string]shautil.Hash, error) {
	if h.isReleased() {
		return nil, ErrHasherReleased
	}

	results := newResultMap()
	var wg sync.WaitGroup
	for name, msg := range msgs {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		name0, msg0 := name, msg
		wg.Add(1)
		if err := h.pool.Submit(func() {
			results.Set(name0, h.sum(msg0))
			wg.Done()
		}); err != nil {
			logging.CPrint(logging.WARN, "fail to submit hash job, hashing inline",
				logging.LogFormat{"err": err, "name": name0})
			results.Set(name0, h.sum(msg0))
			wg.Done()
		}
	}
	wg.Wait()

	return results.Items(), nil
}

func (h *Hasher) sum(msg []byte) shautil.Hash {
	// strategy is validated in NewHasher
	sum, _ := sha256.Sum256WithStrategy(msg, h.strategy)
	return shautil.Hash(sum)
}

func (h *Hasher) isReleased() bool {
	return atomic.LoadInt32(&h.released) == 1
}
