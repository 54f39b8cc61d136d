package genarena

import "sync"

// Locked guards an Arena with a read-write mutex so it can be shared across
// goroutines. Readers run concurrently; mutations are exclusive.
type Locked[T any] struct {
	mu    sync.RWMutex
	arena *Arena[T]
}

// NewLocked wraps a new arena built with opts.
func NewLocked[T any](opts ...Option) *Locked[T] {
	return &Locked[T]{arena: New[T](opts...)}
}

// Insert stores v and returns its handle.
func (l *Locked[T]) Insert(v T) (Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.arena.TryInsert(v)
}

// Get returns a copy of the value h refers to.
func (l *Locked[T]) Get(h Handle) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.arena.Get(h)
}

// Contains reports whether h refers to a live value.
func (l *Locked[T]) Contains(h Handle) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.arena.Contains(h)
}

// Remove takes the value h refers to out of the arena.
func (l *Locked[T]) Remove(h Handle) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.arena.Remove(h)
}

// Len returns the number of live values.
func (l *Locked[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.arena.Len()
}

// Update runs fn on the value h refers to while holding the write lock. It
// reports whether h was live.
func (l *Locked[T]) Update(h Handle, fn func(*T)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.arena.GetMut(h)
	if !ok {
		return false
	}
	fn(v)
	return true
}

// Range calls fn for every live value in ascending index order until fn
// returns false. The lock is taken per step and released while fn runs, so fn
// may call any method of l. Values inserted or removed by other goroutines
// during the walk may or may not be visited.
func (l *Locked[T]) Range(fn func(Handle, T) bool) {
	for start := 0; ; {
		idx, h, v, ok := l.nextFrom(start)
		if !ok || !fn(h, v) {
			return
		}
		start = idx + 1
	}
}

func (l *Locked[T]) nextFrom(start int) (int, Handle, T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	slots := l.arena.slots
	for i := start; i < len(slots); i++ {
		if s := &slots[i]; s.occupied {
			return i, MakeHandle(uint32(i), s.generation), s.value, true
		}
	}
	var zero T
	return 0, Handle{}, zero, false
}

// With runs fn with exclusive access to the underlying arena. The arena must
// not escape fn.
func (l *Locked[T]) With(fn func(*Arena[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.arena)
}

// Stats returns a snapshot of the arena's counters.
func (l *Locked[T]) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.arena.Stats()
}
