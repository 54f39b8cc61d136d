package genarena

import "fmt"

// slot is one storage cell. An occupied slot holds a value; a vacant slot links
// to the next vacant index. generation is carried across both states and only
// advances when the slot is vacated.
type slot[T any] struct {
	value      T
	generation uint32
	next       uint32 // index+1 of the next vacant slot, 0 ends the list
	occupied   bool
}

// Arena stores values in a growable slice of slots and hands out generational
// handles to them. A handle stays valid until the value it denotes is removed;
// afterwards every lookup with it reports "not found", even when the slot is
// reused for a new value.
//
// Arena is not safe for concurrent use. Any number of readers (Get, Contains,
// iteration) may run together, but Insert, GetMut, Remove, Reserve and Clear
// need exclusive access. Wrap the arena in Locked to share it across goroutines.
//
// The zero value is an empty arena ready to use.
type Arena[T any] struct {
	slots    []slot[T]
	freeHead uint32 // index+1 of the first vacant slot, 0 when the list is empty
	len      int
	maxSlots uint64

	name     string
	observer Observer
	counters counters
}

type counters struct {
	inserts uint64
	removes uint64
	reuses  uint64
	grows   uint64
	clears  uint64
}

// New constructs an empty arena.
func New[T any](opts ...Option) *Arena[T] {
	cfg := config{logger: noopLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	a := &Arena[T]{
		name:     cfg.name,
		observer: buildObserverChain(cfg),
	}
	if cfg.capacity > 0 {
		if err := a.Reserve(cfg.capacity); err != nil {
			cfg.logger.With("arena", cfg.name).Error("initial reservation failed", "capacity", cfg.capacity, "err", err)
		}
	}
	return a
}

// Name returns the label given with WithName.
func (a *Arena[T]) Name() string {
	return a.name
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.len
}

// Cap returns how many values the arena can hold without reallocating its
// backing storage.
func (a *Arena[T]) Cap() int {
	if a == nil {
		return 0
	}
	return cap(a.slots)
}

// Insert stores v and returns a handle to it. Vacant slots are reused before
// the backing storage grows. Insert panics with ErrCapacityExceeded only when
// all MaxSlots indices are live; use TryInsert to handle that case.
func (a *Arena[T]) Insert(v T) Handle {
	h, err := a.TryInsert(v)
	if err != nil {
		panic(err)
	}
	return h
}

// TryInsert is like Insert but reports index exhaustion as an error.
func (a *Arena[T]) TryInsert(v T) (Handle, error) {
	if a.freeHead != 0 {
		idx := a.freeHead - 1
		s := &a.slots[idx]
		a.freeHead = s.next
		s.next = 0
		s.value = v
		s.occupied = true
		a.len++
		a.counters.inserts++
		a.counters.reuses++
		return MakeHandle(idx, s.generation), nil
	}

	if uint64(len(a.slots)) >= a.limit() {
		return Handle{}, fmt.Errorf("%w: %d slots in use", ErrCapacityExceeded, len(a.slots))
	}

	idx := uint32(len(a.slots))
	prevCap := cap(a.slots)
	a.slots = append(a.slots, slot[T]{value: v, occupied: true})
	a.len++
	a.counters.inserts++
	if cap(a.slots) != prevCap {
		a.counters.grows++
		a.emit(EventGrow, prevCap)
	}
	return MakeHandle(idx, 0), nil
}

// Get returns a copy of the value h refers to.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	s, err := a.lookup(h)
	if err != nil {
		var zero T
		return zero, false
	}
	return s.value, true
}

// GetMut returns a pointer to the value h refers to. The pointer is only valid
// until the next call that may grow the arena (Insert, TryInsert, Reserve);
// the handle itself stays valid across growth.
func (a *Arena[T]) GetMut(h Handle) (*T, bool) {
	s, err := a.lookup(h)
	if err != nil {
		return nil, false
	}
	return &s.value, true
}

// Lookup is like Get but explains a miss. The error always wraps ErrNotFound.
func (a *Arena[T]) Lookup(h Handle) (T, error) {
	s, err := a.lookup(h)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v: %v", ErrNotFound, h, err)
	}
	return s.value, nil
}

// Contains reports whether h refers to a live value.
func (a *Arena[T]) Contains(h Handle) bool {
	_, err := a.lookup(h)
	return err == nil
}

// Remove takes the value h refers to out of the arena. The slot's generation
// advances so h and every copy of it become stale.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	var zero T
	s, err := a.lookup(h)
	if err != nil {
		return zero, false
	}
	v := s.value
	a.vacate(h.Index(), s)
	a.counters.removes++
	return v, true
}

// Retain removes every value for which keep returns false. keep may use the
// arena, including inserting and removing; the pointer it receives is only
// valid until it inserts. Values inserted by keep are visited as well.
func (a *Arena[T]) Retain(keep func(Handle, *T) bool) {
	if a == nil {
		return
	}
	for i := 0; i < len(a.slots); i++ {
		s := &a.slots[i]
		if !s.occupied {
			continue
		}
		h := MakeHandle(uint32(i), s.generation)
		if keep(h, &s.value) {
			continue
		}
		// keep may have grown the slice or removed h itself.
		s, err := a.lookup(h)
		if err != nil {
			continue
		}
		a.vacate(uint32(i), s)
		a.counters.removes++
	}
}

// Reserve makes room for at least additional more values without further
// reallocation. Existing slots keep their indices.
func (a *Arena[T]) Reserve(additional int) error {
	if additional <= 0 {
		return nil
	}
	if uint64(additional) > a.limit()-uint64(a.len) {
		return fmt.Errorf("%w: reserve %d with %d live", ErrCapacityExceeded, additional, a.len)
	}
	needed := a.len + additional
	if needed <= cap(a.slots) {
		return nil
	}
	prevCap := cap(a.slots)
	grown := make([]slot[T], len(a.slots), needed)
	copy(grown, a.slots)
	a.slots = grown
	a.counters.grows++
	a.emit(EventReserve, prevCap)
	return nil
}

// Clear removes every value. Slots and capacity are kept, and every slot that
// held a value advances its generation, so no handle issued before Clear is
// ever valid again.
func (a *Arena[T]) Clear() {
	var zero T
	a.freeHead = 0
	for i := len(a.slots) - 1; i >= 0; i-- {
		s := &a.slots[i]
		if s.occupied {
			s.value = zero
			s.occupied = false
			s.generation++
		}
		s.next = a.freeHead
		a.freeHead = uint32(i) + 1
	}
	a.len = 0
	a.counters.clears++
	a.emit(EventClear, cap(a.slots))
}

func (a *Arena[T]) lookup(h Handle) (*slot[T], error) {
	if a == nil || h.IsZero() {
		return nil, errOutOfRange
	}
	idx := h.Index()
	if uint64(idx) >= uint64(len(a.slots)) {
		return nil, errOutOfRange
	}
	s := &a.slots[idx]
	if s.generation != h.Generation() {
		return nil, errStale
	}
	if !s.occupied {
		return nil, errVacant
	}
	return s, nil
}

// vacate frees an occupied slot and pushes it onto the free list.
func (a *Arena[T]) vacate(idx uint32, s *slot[T]) {
	var zero T
	s.value = zero
	s.occupied = false
	s.generation++
	s.next = a.freeHead
	a.freeHead = idx + 1
	a.len--
}

func (a *Arena[T]) limit() uint64 {
	if a.maxSlots == 0 {
		return MaxSlots
	}
	return a.maxSlots
}
