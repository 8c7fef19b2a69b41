package eq

import "sync/atomic"

// Gate is a coalescing dirty flag. Any number of MarkDirty calls between two
// ConsumeDirty calls yield exactly one true.
type Gate struct {
	dirty atomic.Bool
}

// MarkDirty sets the flag. Safe from any goroutine.
func (g *Gate) MarkDirty() {
	g.dirty.Store(true)
}

// ConsumeDirty clears the flag and reports whether it was set.
func (g *Gate) ConsumeDirty() bool {
	return g.dirty.CompareAndSwap(true, false)
}
