package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRoundTrip(t *testing.T) {
	events := []Event{
		MouseMove(AxisX, 5),
		MouseMove(AxisY, -3),
		MouseScroll(ScrollLo, 1),
		MouseScroll(ScrollHiRes, -120),
		MouseScroll(ScrollHiResH, 40),
		KeyPress(Down, KeyA),
		KeyPress(Up, KeyA),
		KeyPress(Down, BtnLeft),
		KeyPress(Up, BtnMiddle),
		KeyPress(Down, KeyMicMute),
	}

	for _, ev := range events {
		t.Run(ev.String(), func(t *testing.T) {
			raw, err := ToRaw(ev)
			require.NoError(t, err)

			back, ok := FromRaw(raw)
			require.True(t, ok)
			assert.Equal(t, ev, back)
		})
	}
}

func TestToRawValues(t *testing.T) {
	raw, err := ToRaw(KeyPress(Down, KeyA))
	require.NoError(t, err)
	assert.Equal(t, RawEvent{Type: EvKey, Code: uint16(KeyA), Value: 1}, raw)

	raw, err = ToRaw(KeyPress(Up, KeyA))
	require.NoError(t, err)
	assert.Equal(t, RawEvent{Type: EvKey, Code: uint16(KeyA), Value: 0}, raw)

	raw, err = ToRaw(MouseScroll(ScrollHiRes, -120))
	require.NoError(t, err)
	assert.Equal(t, RawEvent{Type: EvRel, Code: RelWheelHiRes, Value: -120}, raw)
}

func TestToRawUnknownKind(t *testing.T) {
	_, err := ToRaw(Event{Kind: 99})
	var unknown *UnknownEventError
	assert.ErrorAs(t, err, &unknown)
}

func TestFromRawRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  RawEvent
	}{
		{name: "unregistered relative axis", raw: RawEvent{Type: EvRel, Code: 0x07, Value: 1}},
		{name: "sync event", raw: RawEvent{Type: EvSyn, Code: SynReport}},
		{name: "unknown event type", raw: RawEvent{Type: 0x03, Code: 0, Value: 1}},
		{name: "key repeat value", raw: RawEvent{Type: EvKey, Code: uint16(KeyA), Value: 2}},
		{name: "unknown key code", raw: RawEvent{Type: EvKey, Code: 0x2ff, Value: 1}},
		{name: "reserved key code", raw: RawEvent{Type: EvKey, Code: 0, Value: 1}},
		{name: "unnamed button code", raw: RawEvent{Type: EvKey, Code: 0x118, Value: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := FromRaw(tt.raw)
			assert.False(t, ok)
		})
	}
}

func TestInjectionRecordsAppendSync(t *testing.T) {
	records, err := injectionRecords(MouseMove(AxisX, 5))
	require.NoError(t, err)

	assert.Equal(t, RawEvent{Type: EvRel, Code: RelX, Value: 5}, records[0])
	assert.Equal(t, RawEvent{Type: EvSyn, Code: SynReport, Value: 0}, records[1])
}

func TestKeyKindClassification(t *testing.T) {
	assert.True(t, KeyA.IsKey())
	assert.False(t, KeyA.IsButton())
	assert.True(t, BtnLeft.IsButton())
	assert.False(t, BtnLeft.IsKey())
	assert.Equal(t, "LeftButton", BtnLeft.String())
	assert.Equal(t, "A", KeyA.String())
	assert.Equal(t, "unknown", KeyKind(0x2ff).String())
}
