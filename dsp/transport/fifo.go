package transport

import "fmt"

// Block is a contiguous run of samples for one channel. Queue order is the
// block's timestamp; no other time information is carried.
type Block struct {
	Channel int
	Samples []float64
}

type blockSlot struct {
	channel int
	n       int
	samples []float64
}

// BlockFifo is a lock-free SPSC queue of sample blocks with preallocated
// storage. Push copies into a slot, Pop copies out of it, so ownership of the
// sample data never crosses goroutines.
type BlockFifo struct {
	cur       cursor
	slots     []blockSlot
	blockSize int
}

// NewBlockFifo returns a BlockFifo holding at least capacity blocks of up to
// blockSize samples each.
func NewBlockFifo(capacity, blockSize int) (*BlockFifo, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	f := &BlockFifo{blockSize: blockSize}
	if err := f.cur.init(capacity); err != nil {
		return nil, fmt.Errorf("%w: %d", err, capacity)
	}

	f.slots = make([]blockSlot, f.cur.size)
	for i := range f.slots {
		f.slots[i].samples = make([]float64, blockSize)
	}

	return f, nil
}

// Push copies b into the queue. It returns false when the queue is full or b
// is longer than the block size; both cases count as dropped. Never blocks
// and never allocates. Producer goroutine only.
func (f *BlockFifo) Push(b Block) bool {
	if len(b.Samples) > f.blockSize {
		f.cur.dropped.Add(1)
		return false
	}

	t, ok := f.cur.acquireWrite()
	if !ok {
		return false
	}

	slot := &f.slots[t&f.cur.mask]
	slot.channel = b.Channel
	slot.n = copy(slot.samples, b.Samples)
	f.cur.publish(t)

	return true
}

// Pop copies the oldest block into out, reusing out.Samples when its capacity
// suffices. Consumer goroutine only.
func (f *BlockFifo) Pop(out *Block) bool {
	h, ok := f.cur.acquireRead()
	if !ok {
		return false
	}

	slot := &f.slots[h&f.cur.mask]
	out.Channel = slot.channel
	out.Samples = append(out.Samples[:0], slot.samples[:slot.n]...)
	f.cur.release(h)

	return true
}

// BlockSize returns the maximum samples per block.
func (f *BlockFifo) BlockSize() int { return f.blockSize }

// Len returns the number of queued blocks.
func (f *BlockFifo) Len() int { return f.cur.len() }

// Cap returns the slot count (capacity rounded up to a power of two).
func (f *BlockFifo) Cap() int { return int(f.cur.size) }

// Dropped returns the number of blocks rejected by Push.
func (f *BlockFifo) Dropped() uint64 { return f.cur.dropped.Load() }
