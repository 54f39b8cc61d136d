// Package storage provides secondary stores keyed by genarena handles.
//
// A secondary store attaches extra data to values that live in an Arena
// without owning their slots. Every store remembers the generation of the
// handle that wrote each entry, so a stale handle never reads data written
// for a later occupant of the same slot.
package storage

import (
	"errors"

	"github.com/DangerosoDavo/genarena"
)

var (
	// ErrZeroHandle is returned when a store is written with the zero handle.
	ErrZeroHandle = errors.New("storage: zero handle")
	// ErrStaleHandle is returned when a write uses a handle older than the entry it would replace.
	ErrStaleHandle = errors.New("storage: stale handle")
	// ErrIndexTooLarge is returned when a Dense store is written beyond its index limit.
	ErrIndexTooLarge = errors.New("storage: index beyond dense limit")
)

// View exposes read-only access to stored entries.
type View[V any] interface {
	Len() int
	Has(genarena.Handle) bool
	Get(genarena.Handle) (V, bool)
	Iterate(func(genarena.Handle, V) bool)
}

// Store permits read/write access to stored entries.
type Store[V any] interface {
	View[V]
	Set(genarena.Handle, V) error
	Remove(genarena.Handle) (V, bool)
	Clear()
}

// older reports whether generation a precedes b, treating the counters as
// wrapping serial numbers.
func older(a, b uint32) bool {
	return int32(a-b) < 0
}
