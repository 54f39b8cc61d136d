package genarena

import (
	"fmt"
	"log/slog"
)

// MaxSlots is the largest number of slots an arena can address. The packed
// encoding stores index+1, so the last 32-bit index is unusable.
const MaxSlots = 1<<32 - 1

// Handle identifies a value stored in an Arena. It packs a slot index and a
// generation counter into a single 64-bit word: the low 32 bits hold index+1
// and the high 32 bits hold the generation. The all-zero word is never issued
// by an arena and acts as the "no handle" value.
type Handle struct {
	bits uint64
}

// MakeHandle packs index and generation into a handle. index must be below
// MaxSlots; larger values wrap into the reserved zero pattern.
func MakeHandle(index, generation uint32) Handle {
	return Handle{bits: uint64(generation)<<32 | uint64(index+1)}
}

// HandleFromBits reconstructs a handle from its packed representation.
func HandleFromBits(bits uint64) Handle {
	return Handle{bits: bits}
}

// Bits returns the packed representation.
func (h Handle) Bits() uint64 {
	return h.bits
}

// Index returns the slot index the handle refers to.
func (h Handle) Index() uint32 {
	return uint32(h.bits) - 1
}

// Generation returns the generation the slot must carry for the handle to be live.
func (h Handle) Generation() uint32 {
	return uint32(h.bits >> 32)
}

// IsZero reports whether the handle is the reserved "no handle" value.
func (h Handle) IsZero() bool {
	return uint32(h.bits) == 0
}

// String renders the handle for debugging purposes.
func (h Handle) String() string {
	if h.IsZero() {
		return "Handle(nil)"
	}
	return fmt.Sprintf("Handle(%d:%d)", h.Index(), h.Generation())
}

// LogValue implements slog.LogValuer.
func (h Handle) LogValue() slog.Value {
	if h.IsZero() {
		return slog.StringValue("nil")
	}
	return slog.GroupValue(
		slog.Uint64("index", uint64(h.Index())),
		slog.Uint64("generation", uint64(h.Generation())),
	)
}

// OptHandle is an optional Handle. It occupies exactly the same space as a
// Handle because absence is encoded with the reserved zero pattern.
type OptHandle struct {
	h Handle
}

// NoHandle is the empty OptHandle.
var NoHandle = OptHandle{}

// SomeHandle wraps h. Wrapping the zero handle yields NoHandle.
func SomeHandle(h Handle) OptHandle {
	return OptHandle{h: h}
}

// Get returns the wrapped handle and whether one is present.
func (o OptHandle) Get() (Handle, bool) {
	return o.h, !o.h.IsZero()
}

// IsSome reports whether a handle is present.
func (o OptHandle) IsSome() bool {
	return !o.h.IsZero()
}

// String renders the optional handle.
func (o OptHandle) String() string {
	if !o.IsSome() {
		return "None"
	}
	return "Some(" + o.h.String() + ")"
}

var _ slog.LogValuer = Handle{}
