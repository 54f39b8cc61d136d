package genarena

import "sync"

// CommandBuffer accumulates deferred commands, typically while iterating.
type CommandBuffer[T any] struct {
	commands []Command[T]
}

// NewCommandBuffer creates an empty buffer.
func NewCommandBuffer[T any]() *CommandBuffer[T] {
	return &CommandBuffer[T]{}
}

// Len reports how many commands are queued.
func (b *CommandBuffer[T]) Len() int {
	return len(b.commands)
}

// Push appends a command to the buffer.
func (b *CommandBuffer[T]) Push(cmd Command[T]) {
	if cmd == nil {
		return
	}
	b.commands = append(b.commands, cmd)
}

// Insert queues an insertion; target, if non-nil, receives the handle on Apply.
func (b *CommandBuffer[T]) Insert(value T, target *Handle) {
	b.Push(NewInsertCommand(value, target))
}

// Remove queues a removal.
func (b *CommandBuffer[T]) Remove(h Handle) {
	b.Push(NewRemoveCommand[T](h))
}

// Set queues a replacement.
func (b *CommandBuffer[T]) Set(h Handle, value T) {
	b.Push(NewSetCommand(h, value))
}

// Drain returns queued commands and resets the buffer.
func (b *CommandBuffer[T]) Drain() []Command[T] {
	drained := b.commands
	b.commands = nil
	return drained
}

// Snapshot marks the current end of the queue. A walk that abandons the
// mutations it queued after the mark hands it back to Restore.
func (b *CommandBuffer[T]) Snapshot() int {
	return len(b.commands)
}

// Restore drops every command queued after mark. A mark past the end is
// ignored and a negative mark empties the buffer.
func (b *CommandBuffer[T]) Restore(mark int) {
	mark = max(mark, 0)
	if mark >= len(b.commands) {
		return
	}
	clear(b.commands[mark:])
	b.commands = b.commands[:mark]
}

// Apply drains the buffer into arena in push order, stopping at the first
// failing command. Commands after the failure are discarded.
func (b *CommandBuffer[T]) Apply(arena *Arena[T]) error {
	for _, cmd := range b.Drain() {
		if err := cmd.Apply(arena); err != nil {
			return err
		}
	}
	return nil
}

// CommandBufferPool recycles buffers between walks, so a per-frame or
// per-pass mutation queue keeps its backing slice instead of reallocating it.
type CommandBufferPool[T any] struct {
	pool sync.Pool
}

// NewCommandBufferPool constructs an empty pool.
func NewCommandBufferPool[T any]() *CommandBufferPool[T] {
	p := &CommandBufferPool[T]{}
	p.pool.New = func() any { return NewCommandBuffer[T]() }
	return p
}

// Get returns an empty buffer.
func (p *CommandBufferPool[T]) Get() *CommandBuffer[T] {
	return p.pool.Get().(*CommandBuffer[T])
}

// Put discards any commands buf has not applied and returns it to the pool.
// The buffer must not be used after Put.
func (p *CommandBufferPool[T]) Put(buf *CommandBuffer[T]) {
	if buf == nil {
		return
	}
	buf.Restore(0)
	p.pool.Put(buf)
}
