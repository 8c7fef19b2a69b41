// Package transport moves data from a real-time producer goroutine to a
// single consumer goroutine without locks.
//
// [Ring] is a generic single-producer single-consumer ring of values.
// [BlockFifo] is its sample-block specialisation: slots are preallocated so
// that Push copies samples without allocating, which makes it safe to call
// from an audio callback.
//
// Both never block. When full, Push rejects the newest item and counts it in
// Dropped; items already queued are never overwritten. Capacity is rounded up
// to the next power of two.
//
// Exactly one goroutine may push and exactly one goroutine may pop. Len, Cap
// and Dropped are safe from any goroutine.
package transport
