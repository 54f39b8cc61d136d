package genarena

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// CheckInvariants walks the arena and verifies its bookkeeping: the live count
// matches the number of occupied slots, and the free list visits every vacant
// slot exactly once without cycles. It is meant for tests and debugging; the
// cost is linear in the number of slots.
func (a *Arena[T]) CheckInvariants() error {
	if a == nil {
		return nil
	}
	occupied := 0
	for i := range a.slots {
		if a.slots[i].occupied {
			occupied++
		}
	}
	if occupied != a.len {
		return fmt.Errorf("%w: len %d but %d occupied slots", ErrInvariantViolated, a.len, occupied)
	}

	seen := bitset.New(uint(len(a.slots)))
	free := 0
	for link := a.freeHead; link != 0; {
		idx := link - 1
		if uint64(idx) >= uint64(len(a.slots)) {
			return fmt.Errorf("%w: free list links to index %d beyond %d slots", ErrInvariantViolated, idx, len(a.slots))
		}
		if seen.Test(uint(idx)) {
			return fmt.Errorf("%w: free list revisits index %d", ErrInvariantViolated, idx)
		}
		seen.Set(uint(idx))
		s := &a.slots[idx]
		if s.occupied {
			return fmt.Errorf("%w: free list contains occupied index %d", ErrInvariantViolated, idx)
		}
		free++
		link = s.next
	}
	if want := len(a.slots) - a.len; free != want {
		return fmt.Errorf("%w: free list holds %d slots, want %d", ErrInvariantViolated, free, want)
	}
	return nil
}
