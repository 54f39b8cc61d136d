package genarena_test

import (
	"errors"
	"testing"

	"github.com/DangerosoDavo/genarena"
)

func TestInsertCommand(t *testing.T) {
	a := genarena.New[string]()
	var h genarena.Handle
	cmd := genarena.NewInsertCommand("x", &h)
	if err := cmd.Apply(a); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if h.IsZero() {
		t.Fatalf("expected handle to be populated")
	}
	if v, ok := a.Get(h); !ok || v != "x" {
		t.Fatalf("unexpected value: %q, ok=%v", v, ok)
	}
}

func TestRemoveCommand(t *testing.T) {
	a := genarena.New[int]()
	h := a.Insert(1)
	if err := genarena.NewRemoveCommand[int](h).Apply(a); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if a.Contains(h) {
		t.Fatalf("expected value removed")
	}

	err := genarena.NewRemoveCommand[int](h).Apply(a)
	if !errors.Is(err, genarena.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stale remove, got %v", err)
	}
}

func TestSetCommand(t *testing.T) {
	a := genarena.New[int]()
	h := a.Insert(1)
	if err := genarena.NewSetCommand(h, 2).Apply(a); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if v, _ := a.Get(h); v != 2 {
		t.Fatalf("expected 2, got %d", v)
	}

	a.Remove(h)
	if err := genarena.NewSetCommand(h, 3).Apply(a); !errors.Is(err, genarena.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stale set, got %v", err)
	}
}

func TestCommandBufferDuringIteration(t *testing.T) {
	a := genarena.New[int]()
	for i := range 6 {
		a.Insert(i)
	}

	buf := genarena.NewCommandBuffer[int]()
	targets := make([]genarena.Handle, 0, 3)
	for h, v := range a.All() {
		if v%2 == 0 {
			buf.Remove(h)
			targets = append(targets, genarena.Handle{})
			buf.Insert(v+100, &targets[len(targets)-1])
		}
	}
	if a.Len() != 6 {
		t.Fatalf("buffered commands must not touch the arena, len=%d", a.Len())
	}

	if err := buf.Apply(a); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected buffer drained")
	}
	if a.Len() != 6 {
		t.Fatalf("expected 6 values, got %d", a.Len())
	}
	for _, h := range targets {
		v, ok := a.Get(h)
		if !ok || v < 100 {
			t.Fatalf("unexpected value for %v: %d, ok=%v", h, v, ok)
		}
	}
	if err := a.CheckInvariants(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}

func TestCommandBufferApplyStopsAtFirstError(t *testing.T) {
	a := genarena.New[int]()
	h := a.Insert(1)
	a.Remove(h)

	buf := genarena.NewCommandBuffer[int]()
	buf.Insert(5, nil)
	buf.Remove(h)
	buf.Insert(6, nil)

	if err := buf.Apply(a); !errors.Is(err, genarena.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if a.Len() != 1 {
		t.Fatalf("expected only the first insert applied, len=%d", a.Len())
	}
}

func TestCommandBufferPushDrain(t *testing.T) {
	buf := genarena.NewCommandBuffer[int]()
	if buf.Len() != 0 {
		t.Fatalf("expected empty buffer")
	}

	buf.Push(genarena.NewRemoveCommand[int](genarena.Handle{}))
	buf.Push(nil)
	if buf.Len() != 1 {
		t.Fatalf("expected length 1, got %d", buf.Len())
	}

	drained := buf.Drain()
	if len(drained) != 1 {
		t.Fatalf("expected drained commands")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected buffer reset")
	}
}

func TestCommandBufferPoolReuses(t *testing.T) {
	pool := genarena.NewCommandBufferPool[int]()
	buf := pool.Get()
	buf.Set(genarena.Handle{}, 1)
	pool.Put(buf)
	pool.Put(nil)

	reused := pool.Get()
	if reused.Len() != 0 {
		t.Fatalf("expected buffer to be cleared when reused")
	}
}

func TestCommandBufferSnapshotRestore(t *testing.T) {
	buf := genarena.NewCommandBuffer[int]()
	buf.Remove(genarena.Handle{})
	snap := buf.Snapshot()
	buf.Insert(1, nil)
	if buf.Len() != 2 {
		t.Fatalf("expected len 2")
	}
	buf.Restore(snap)
	if buf.Len() != 1 {
		t.Fatalf("expected len reset to 1, got %d", buf.Len())
	}
	buf.Restore(-1)
	if buf.Len() != 0 {
		t.Fatalf("expected negative snapshot to empty the buffer, got %d", buf.Len())
	}
}
