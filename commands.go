package genarena

import "fmt"

// Command is a deferred mutation applied to an arena outside an iteration.
type Command[T any] interface {
	Apply(arena *Arena[T]) error
}

// NewInsertCommand enqueues an insertion. If target is non-nil it receives the allocated handle.
func NewInsertCommand[T any](value T, target *Handle) Command[T] {
	return insertCommand[T]{value: value, target: target}
}

// NewRemoveCommand enqueues a removal.
func NewRemoveCommand[T any](h Handle) Command[T] {
	return removeCommand[T]{handle: h}
}

// NewSetCommand enqueues replacing the value h refers to.
func NewSetCommand[T any](h Handle, value T) Command[T] {
	return setCommand[T]{handle: h, value: value}
}

type insertCommand[T any] struct {
	value  T
	target *Handle
}

type removeCommand[T any] struct {
	handle Handle
}

type setCommand[T any] struct {
	handle Handle
	value  T
}

func (c insertCommand[T]) Apply(arena *Arena[T]) error {
	h, err := arena.TryInsert(c.value)
	if err != nil {
		return err
	}
	if c.target != nil {
		*c.target = h
	}
	return nil
}

func (c removeCommand[T]) Apply(arena *Arena[T]) error {
	if _, ok := arena.Remove(c.handle); !ok {
		return fmt.Errorf("genarena: remove %v: %w", c.handle, ErrNotFound)
	}
	return nil
}

func (c setCommand[T]) Apply(arena *Arena[T]) error {
	v, ok := arena.GetMut(c.handle)
	if !ok {
		return fmt.Errorf("genarena: set %v: %w", c.handle, ErrNotFound)
	}
	*v = c.value
	return nil
}

var (
	_ Command[int] = insertCommand[int]{}
	_ Command[int] = removeCommand[int]{}
	_ Command[int] = setCommand[int]{}
)
