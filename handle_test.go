package genarena_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DangerosoDavo/genarena"
)

func TestHandleRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		index      uint32
		generation uint32
	}{
		{"origin", 0, 0},
		{"small", 7, 3},
		{"last index", genarena.MaxSlots - 1, 0},
		{"max generation", 12, ^uint32(0)},
		{"both extremes", genarena.MaxSlots - 1, ^uint32(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := genarena.MakeHandle(tt.index, tt.generation)
			assert.Equal(t, tt.index, h.Index())
			assert.Equal(t, tt.generation, h.Generation())
			assert.False(t, h.IsZero())
			assert.NotZero(t, h.Bits())
			assert.Equal(t, h, genarena.HandleFromBits(h.Bits()))
		})
	}
}

func TestHandleZeroValue(t *testing.T) {
	var h genarena.Handle
	assert.True(t, h.IsZero())
	assert.Equal(t, uint64(0), h.Bits())
	assert.Equal(t, "Handle(nil)", h.String())
	assert.NotEqual(t, h, genarena.MakeHandle(0, 0))
}

func TestHandleEquality(t *testing.T) {
	assert.Equal(t, genarena.MakeHandle(3, 1), genarena.MakeHandle(3, 1))
	assert.NotEqual(t, genarena.MakeHandle(3, 1), genarena.MakeHandle(3, 2))
	assert.NotEqual(t, genarena.MakeHandle(3, 1), genarena.MakeHandle(4, 1))
}

func TestHandleString(t *testing.T) {
	assert.Equal(t, "Handle(4:2)", genarena.MakeHandle(4, 2).String())
	assert.Equal(t, "Some(Handle(4:2))", genarena.SomeHandle(genarena.MakeHandle(4, 2)).String())
	assert.Equal(t, "None", genarena.NoHandle.String())
}

func TestHandleLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("lookup", "handle", genarena.MakeHandle(5, 9))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	handle, ok := record["handle"].(map[string]any)
	require.True(t, ok, "handle should log as a group: %v", record)
	assert.EqualValues(t, 5, handle["index"])
	assert.EqualValues(t, 9, handle["generation"])
}

func TestOptHandle(t *testing.T) {
	h := genarena.MakeHandle(0, 0)

	some := genarena.SomeHandle(h)
	got, ok := some.Get()
	require.True(t, ok)
	assert.Equal(t, h, got)
	assert.True(t, some.IsSome())

	_, ok = genarena.NoHandle.Get()
	assert.False(t, ok)
	assert.False(t, genarena.SomeHandle(genarena.Handle{}).IsSome())

	var zero genarena.OptHandle
	assert.Equal(t, genarena.NoHandle, zero)
}

func TestOptHandleSize(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof(genarena.Handle{}), unsafe.Sizeof(genarena.OptHandle{}))
	assert.Equal(t, uintptr(8), unsafe.Sizeof(genarena.Handle{}))
}
