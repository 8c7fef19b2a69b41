package buffer

// Buffer is a fixed-length sample window. Slide appends new samples and
// evicts the oldest, so Samples always holds the most recent Len samples in
// time order.
type Buffer struct {
	samples []float64
	written uint64
}

// New returns a zero-filled Buffer of length n (0 if n is negative).
func New(n int) *Buffer {
	return &Buffer{samples: make([]float64, max(n, 0))}
}

// Samples returns the window, oldest sample first. The slice is owned by b.
func (b *Buffer) Samples() []float64 { return b.samples }

func (b *Buffer) Len() int { return len(b.samples) }

// Filled reports whether at least Len samples have been slid in since New
// or the last Zero.
func (b *Buffer) Filled() bool { return b.written >= uint64(len(b.samples)) }

// Zero clears the window.
func (b *Buffer) Zero() {
	clear(b.samples)
	b.written = 0
}

// Slide appends src and drops as many old samples. Only the newest Len
// samples of a longer src are kept. Slide does not allocate.
func (b *Buffer) Slide(src []float64) {
	n := len(b.samples)
	if n == 0 || len(src) == 0 {
		return
	}

	b.written += uint64(len(src))

	if len(src) >= n {
		copy(b.samples, src[len(src)-n:])
		return
	}

	copy(b.samples, b.samples[len(src):])
	copy(b.samples[n-len(src):], src)
}
