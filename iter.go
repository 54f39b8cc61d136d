package genarena

import "iter"

// All yields every live value with its handle in ascending index order.
//
// Removing values during the walk is permitted, as with a map range; values
// inserted during the walk may or may not be visited.
func (a *Arena[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		if a == nil {
			return
		}
		for i := 0; i < len(a.slots); i++ {
			s := &a.slots[i]
			if !s.occupied {
				continue
			}
			if !yield(MakeHandle(uint32(i), s.generation), s.value) {
				return
			}
		}
	}
}

// AllMut is like All but yields pointers to the stored values. A pointer must
// not be retained past the next Insert.
func (a *Arena[T]) AllMut() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		if a == nil {
			return
		}
		for i := 0; i < len(a.slots); i++ {
			s := &a.slots[i]
			if !s.occupied {
				continue
			}
			if !yield(MakeHandle(uint32(i), s.generation), &s.value) {
				return
			}
		}
	}
}

// Handles yields the handle of every live value.
func (a *Arena[T]) Handles() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for h := range a.All() {
			if !yield(h) {
				return
			}
		}
	}
}

// Values yields every live value.
func (a *Arena[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterate calls fn for every live value until fn returns false.
func (a *Arena[T]) Iterate(fn func(Handle, T) bool) {
	for h, v := range a.All() {
		if !fn(h, v) {
			return
		}
	}
}
