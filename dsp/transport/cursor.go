package transport

import (
	"math/bits"
	"sync/atomic"
)

// maxCapacity bounds the slot count so that rounding up cannot overflow.
const maxCapacity = 1 << 30

// cursor is the index pair shared by Ring and BlockFifo.
//
// head and tail are free-running counters; the slot of counter v is
// v & mask. The ring is empty when head == tail and full when
// tail-head == size, so every slot is usable. head is written only by the
// consumer, tail only by the producer. The atomic store that publishes a
// counter orders the preceding slot access before it.
type cursor struct {
	head atomic.Uint64
	_    [56]byte // keep producer and consumer counters on separate cache lines
	tail atomic.Uint64
	_    [56]byte

	dropped atomic.Uint64
	size    uint64
	mask    uint64
}

func (c *cursor) init(capacity int) error {
	if capacity <= 0 || capacity > maxCapacity {
		return ErrInvalidCapacity
	}

	c.size = nextPowerOfTwo(uint64(capacity))
	c.mask = c.size - 1

	return nil
}

// acquireWrite returns the producer's next counter, or false when full.
func (c *cursor) acquireWrite() (uint64, bool) {
	t := c.tail.Load()
	if t-c.head.Load() >= c.size {
		c.dropped.Add(1)
		return 0, false
	}

	return t, true
}

func (c *cursor) publish(t uint64) {
	c.tail.Store(t + 1)
}

// acquireRead returns the consumer's next counter, or false when empty.
func (c *cursor) acquireRead() (uint64, bool) {
	h := c.head.Load()
	if h == c.tail.Load() {
		return 0, false
	}

	return h, true
}

func (c *cursor) release(h uint64) {
	c.head.Store(h + 1)
}

func (c *cursor) len() int {
	h := c.head.Load()
	t := c.tail.Load()

	n := t - h
	if n > c.size {
		n = c.size
	}

	return int(n)
}

func nextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len64(n-1)
}
