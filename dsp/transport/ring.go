package transport

import "fmt"

// Ring is a lock-free single-producer single-consumer queue of T values.
// The zero value is not usable; construct with NewRing.
type Ring[T any] struct {
	cur   cursor
	slots []T
}

// NewRing returns a Ring holding at least capacity values.
func NewRing[T any](capacity int) (*Ring[T], error) {
	r := &Ring[T]{}
	if err := r.cur.init(capacity); err != nil {
		return nil, fmt.Errorf("%w: %d", err, capacity)
	}

	r.slots = make([]T, r.cur.size)

	return r, nil
}

// Push appends v. It returns false, leaving the ring unchanged, when the ring
// is full. Producer goroutine only.
func (r *Ring[T]) Push(v T) bool {
	t, ok := r.cur.acquireWrite()
	if !ok {
		return false
	}

	r.slots[t&r.cur.mask] = v
	r.cur.publish(t)

	return true
}

// Pop removes and returns the oldest value. Consumer goroutine only.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T

	h, ok := r.cur.acquireRead()
	if !ok {
		return zero, false
	}

	i := h & r.cur.mask
	v := r.slots[i]
	r.slots[i] = zero
	r.cur.release(h)

	return v, true
}

// Len returns the number of queued values.
func (r *Ring[T]) Len() int { return r.cur.len() }

// Cap returns the slot count (capacity rounded up to a power of two).
func (r *Ring[T]) Cap() int { return int(r.cur.size) }

// Dropped returns the number of values rejected because the ring was full.
func (r *Ring[T]) Dropped() uint64 { return r.cur.dropped.Load() }
