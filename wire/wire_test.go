package wire

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arendz/kvmlink/input"
)

func TestVersionExchange(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVersion(&buf, ProtocolVersion))

	got, err := ReadVersion(&buf)
	require.NoError(t, err)
	assert.Equal(t, ProtocolVersion, got)
}

func TestReadVersionShortStream(t *testing.T) {
	_, err := ReadVersion(bytes.NewReader([]byte{0x00}))
	assert.Error(t, err)
}

func TestMessageRoundTrip(t *testing.T) {
	ev := input.KeyPress(input.Down, input.BtnLeft)

	var buf bytes.Buffer
	require.NoError(t, WriteMessage(&buf, Event(ev)))
	require.NoError(t, WriteMessage(&buf, KeepAlive()))

	msg, err := ReadMessage(&buf)
	require.NoError(t, err)
	assert.Equal(t, KindEvent, msg.Kind)
	require.NotNil(t, msg.Event)
	assert.Equal(t, ev, *msg.Event)

	msg, err = ReadMessage(&buf)
	require.NoError(t, err)
	assert.Equal(t, KindKeepAlive, msg.Kind)
	assert.Nil(t, msg.Event)
}

func frame(t *testing.T, msg any) []byte {
	t.Helper()
	body, err := cbor.Marshal(msg)
	require.NoError(t, err)

	out := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(out, uint32(len(body)))
	copy(out[4:], body)
	return out
}

func TestReadMessageRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "unknown kind", data: frame(t, Message{Kind: 42})},
		{name: "event without payload", data: frame(t, Message{Kind: KindEvent})},
		{name: "not cbor", data: append([]byte{0, 0, 0, 3}, "xyz"...)},
		{name: "truncated body", data: []byte{0, 0, 0, 9, 1}},
		{
			name: "oversized frame",
			data: binary.BigEndian.AppendUint32(nil, MaxMessageSize+1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMessage(bytes.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}
