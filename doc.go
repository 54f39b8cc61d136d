// Package genarena implements a generational slot arena: a slice-backed store
// that hands out compact, copyable handles to its values and detects when a
// handle outlives the value it was issued for.
//
// # Handles
//
// A Handle packs a slot index and a generation into one uint64. Removing a
// value advances its slot's generation, so every handle to the removed value
// becomes stale; lookups with a stale handle report "not found" even after the
// slot is reused. The zero Handle is never issued, which lets OptHandle encode
// absence without extra space.
//
//	a := genarena.New[string]()
//	h := a.Insert("hello")
//	v, ok := a.Get(h)   // "hello", true
//	a.Remove(h)
//	_, ok = a.Get(h)    // "", false
//
// # Errors
//
// Nothing in this package panics on a bad handle. Get, GetMut, Remove and
// Contains report a miss through their boolean result; Lookup returns an error
// wrapping ErrNotFound. The only panic is Insert running out of addressable
// slots (see TryInsert).
//
// # Concurrency
//
// Arena has no internal locking. Concurrent readers are fine; any mutation
// needs exclusive access. Locked wraps an arena in a sync.RWMutex, and
// ParallelRange fans a read-only walk out over goroutines. Insertions and
// removals decided during an iteration can be queued in a CommandBuffer and
// applied afterwards.
//
// Generations are 32-bit and wrap after 2^32 removals from the same slot; a
// handle held across that many reuses could alias a new value.
package genarena
