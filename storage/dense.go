package storage

import (
	"fmt"

	"github.com/DangerosoDavo/genarena"
)

// DefaultDenseLimit bounds the indices a Dense store accepts unless NewDenseLimit
// sets another bound.
const DefaultDenseLimit = 1 << 26

// Dense stores entries in a slice indexed by handle index. It suits data
// attached to most values of an arena; lookups are a bounds check and a
// generation compare.
//
// The slice grows to the largest index written, so Dense is meant for handles
// issued by an arena. Set rejects indices at or beyond the store's limit with
// ErrIndexTooLarge; use Sparse for handles spread over a huge index range.
type Dense[V any] struct {
	slots []denseSlot[V]
	count int
	limit uint32
}

type denseSlot[V any] struct {
	generation uint32
	value      V
	occupied   bool
}

// NewDense constructs an empty dense store bounded by DefaultDenseLimit.
func NewDense[V any]() *Dense[V] {
	return &Dense[V]{}
}

// NewDenseLimit constructs an empty dense store accepting indices below limit.
// A zero limit means DefaultDenseLimit.
func NewDenseLimit[V any](limit uint32) *Dense[V] {
	return &Dense[V]{limit: limit}
}

func (s *Dense[V]) Len() int {
	return s.count
}

func (s *Dense[V]) Has(h genarena.Handle) bool {
	if h.IsZero() {
		return false
	}
	idx := h.Index()
	if uint64(idx) >= uint64(len(s.slots)) {
		return false
	}
	slot := s.slots[idx]
	return slot.occupied && slot.generation == h.Generation()
}

func (s *Dense[V]) Get(h genarena.Handle) (V, bool) {
	if !s.Has(h) {
		var zero V
		return zero, false
	}
	return s.slots[h.Index()].value, true
}

// Iterate visits entries in ascending index order until fn returns false.
func (s *Dense[V]) Iterate(fn func(genarena.Handle, V) bool) {
	for idx, slot := range s.slots {
		if !slot.occupied {
			continue
		}
		if !fn(genarena.MakeHandle(uint32(idx), slot.generation), slot.value) {
			return
		}
	}
}

// Set stores value for h. An entry written by an older generation of the same
// slot is replaced; a write with an older generation than the stored entry
// fails with ErrStaleHandle.
func (s *Dense[V]) Set(h genarena.Handle, value V) error {
	if h.IsZero() {
		return ErrZeroHandle
	}
	if limit := s.maxIndex(); h.Index() >= limit {
		return fmt.Errorf("%w: %v, limit %d", ErrIndexTooLarge, h, limit)
	}
	idx := int(h.Index())
	s.ensureLen(idx + 1)
	slot := &s.slots[idx]
	if slot.occupied && older(h.Generation(), slot.generation) {
		return fmt.Errorf("%w: %v behind generation %d", ErrStaleHandle, h, slot.generation)
	}
	if !slot.occupied {
		s.count++
	}
	slot.occupied = true
	slot.generation = h.Generation()
	slot.value = value
	return nil
}

func (s *Dense[V]) Remove(h genarena.Handle) (V, bool) {
	var zero V
	if !s.Has(h) {
		return zero, false
	}
	slot := &s.slots[h.Index()]
	v := slot.value
	slot.occupied = false
	slot.value = zero
	s.count--
	return v, true
}

func (s *Dense[V]) Clear() {
	clear(s.slots)
	s.count = 0
}

func (s *Dense[V]) maxIndex() uint32 {
	if s.limit == 0 {
		return DefaultDenseLimit
	}
	return s.limit
}

func (s *Dense[V]) ensureLen(size int) {
	if size <= len(s.slots) {
		return
	}
	s.slots = append(s.slots, make([]denseSlot[V], size-len(s.slots))...)
}

var _ Store[int] = (*Dense[int])(nil)
