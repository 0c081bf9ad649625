package engine

import "sync"

// barrier is a cyclic rendezvous point for a fixed number of parties,
// grounded on spec.md §4.E's "all threads reach step S before any thread
// proceeds to step S+1" requirement. It is built directly on sync.Cond,
// per SPEC_FULL.md §5, rather than sync.WaitGroup, since parties must be
// able to wait through many successive generations without reallocating.
type barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	parties    int
	waiting    int
	generation int
	broken     bool
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// wait blocks until parties goroutines have called wait for the current
// generation, then releases all of them and advances the generation.
// breakAll makes every past and future waiter return immediately, used to
// unwind the barrier when a worker aborts or ctx is canceled.
func (b *barrier) wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.broken {
		return
	}
	gen := b.generation
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.generation++
		b.cond.Broadcast()
		return
	}
	for gen == b.generation && !b.broken {
		b.cond.Wait()
	}
}

func (b *barrier) breakAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.broken = true
	b.cond.Broadcast()
}
