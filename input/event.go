// Package input models forwarded input events and replays them through
// virtual devices on the local machine.
package input

import "fmt"

// Kind discriminates the event variants carried over the wire.
type Kind uint8

const (
	KindMouseMove Kind = iota + 1
	KindMouseScroll
	KindKey
)

// Axis selects the relative axis of a mouse motion event.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Direction is the key transition carried by a Key event.
type Direction uint8

const (
	Up Direction = iota
	Down
)

// Scroll selects the wheel resolution tier of a scroll event.
type Scroll uint8

const (
	ScrollLo Scroll = iota
	ScrollHiRes
	ScrollHiResH
)

// Event is one forwarded input event. Kind selects the variant; only the
// fields belonging to that variant are meaningful. Delta semantics (relative
// displacement, wheel notches) are opaque payload and never validated.
type Event struct {
	Kind Kind `cbor:"k"`

	// MouseMove
	Axis Axis `cbor:"a,omitempty"`

	// MouseMove and MouseScroll
	Delta int32 `cbor:"d,omitempty"`

	// MouseScroll
	Scroll Scroll `cbor:"s,omitempty"`

	// Key
	Direction Direction `cbor:"t,omitempty"`
	Key       KeyKind   `cbor:"c,omitempty"`
}

// MouseMove builds a relative motion event.
func MouseMove(axis Axis, delta int32) Event {
	return Event{Kind: KindMouseMove, Axis: axis, Delta: delta}
}

// MouseScroll builds a wheel event at the given resolution tier.
func MouseScroll(scroll Scroll, delta int32) Event {
	return Event{Kind: KindMouseScroll, Scroll: scroll, Delta: delta}
}

// KeyPress builds a key or button transition event.
func KeyPress(direction Direction, key KeyKind) Event {
	return Event{Kind: KindKey, Direction: direction, Key: key}
}

// UnknownEventError reports an event whose Kind is not a declared variant.
type UnknownEventError struct {
	Kind Kind
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown event kind %d", e.Kind)
}

func (e Event) String() string {
	switch e.Kind {
	case KindMouseMove:
		axis := "x"
		if e.Axis == AxisY {
			axis = "y"
		}
		return fmt.Sprintf("move %s %+d", axis, e.Delta)
	case KindMouseScroll:
		tier := "lo"
		switch e.Scroll {
		case ScrollHiRes:
			tier = "hires"
		case ScrollHiResH:
			tier = "hires-h"
		}
		return fmt.Sprintf("scroll %s %+d", tier, e.Delta)
	case KindKey:
		dir := "up"
		if e.Direction == Down {
			dir = "down"
		}
		return fmt.Sprintf("key %s %s", e.Key, dir)
	default:
		return fmt.Sprintf("invalid event kind %d", e.Kind)
	}
}
