package sapling

import "sync/atomic"

// idCounter is the process-wide source of view IDs. It is the one piece of
// package state that may be touched from any goroutine, so allocation uses a
// lock-free atomic increment. Everything else in this package is confined to
// a single owner context (see Context).
var idCounter atomic.Uint64

// ID is a stable identifier for a view. IDs are unique across the entire
// application for the lifetime of the process and are never reused. An ID by
// itself carries no hierarchy information; ancestry is tracked separately by
// a Registry.
//
// The zero value means "no ID" and is never returned by NextID.
type ID uint64

// NextID allocates a new, unique ID. Allocation is monotonic, never fails,
// and is safe to call concurrently from multiple goroutines.
func NextID() ID {
	return ID(idCounter.Add(1))
}

// Raw returns the underlying integer value, for logging and debugging.
func (id ID) Raw() uint64 {
	return uint64(id)
}
