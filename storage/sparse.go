package storage

import (
	"fmt"

	"github.com/DangerosoDavo/genarena"
)

// Sparse stores entries in a map keyed by handle index. It suits data attached
// to a small fraction of a large arena, where a dense slice would be mostly
// empty. Iteration order is unspecified.
type Sparse[V any] struct {
	entries map[uint32]sparseEntry[V]
}

type sparseEntry[V any] struct {
	generation uint32
	value      V
}

// NewSparse constructs an empty sparse store.
func NewSparse[V any]() *Sparse[V] {
	return &Sparse[V]{entries: make(map[uint32]sparseEntry[V])}
}

func (s *Sparse[V]) Len() int {
	return len(s.entries)
}

func (s *Sparse[V]) Has(h genarena.Handle) bool {
	_, ok := s.Get(h)
	return ok
}

func (s *Sparse[V]) Get(h genarena.Handle) (V, bool) {
	if h.IsZero() {
		var zero V
		return zero, false
	}
	entry, ok := s.entries[h.Index()]
	if !ok || entry.generation != h.Generation() {
		var zero V
		return zero, false
	}
	return entry.value, true
}

func (s *Sparse[V]) Iterate(fn func(genarena.Handle, V) bool) {
	for idx, entry := range s.entries {
		if !fn(genarena.MakeHandle(idx, entry.generation), entry.value) {
			return
		}
	}
}

// Set follows the same generation rules as Dense.Set.
func (s *Sparse[V]) Set(h genarena.Handle, value V) error {
	if h.IsZero() {
		return ErrZeroHandle
	}
	if s.entries == nil {
		s.entries = make(map[uint32]sparseEntry[V])
	}
	idx := h.Index()
	if existing, ok := s.entries[idx]; ok && older(h.Generation(), existing.generation) {
		return fmt.Errorf("%w: %v behind generation %d", ErrStaleHandle, h, existing.generation)
	}
	s.entries[idx] = sparseEntry[V]{generation: h.Generation(), value: value}
	return nil
}

func (s *Sparse[V]) Remove(h genarena.Handle) (V, bool) {
	v, ok := s.Get(h)
	if !ok {
		return v, false
	}
	delete(s.entries, h.Index())
	return v, true
}

func (s *Sparse[V]) Clear() {
	clear(s.entries)
}

var _ Store[int] = (*Sparse[int])(nil)
