package plot

import "sync/atomic"

// Latest is a single-slot, latest-wins hand-off for paths. Store replaces
// whatever was there; nothing is ever queued. Safe for concurrent use.
type Latest struct {
	p       atomic.Pointer[Path]
	version atomic.Uint64
}

// Store publishes p. The caller must not modify p afterwards.
func (l *Latest) Store(p Path) {
	l.p.Store(&p)
	l.version.Add(1)
}

// Load returns the most recently stored path, or false if none was stored.
func (l *Latest) Load() (Path, bool) {
	p := l.p.Load()
	if p == nil {
		return nil, false
	}

	return *p, true
}

// Version increases by one on every Store.
func (l *Latest) Version() uint64 {
	return l.version.Load()
}
