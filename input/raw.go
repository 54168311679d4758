package input

// Raw input event codes as specified in linux/input-event-codes.h. Only the
// subset this client translates or advertises is declared here.
const (
	EvSyn uint16 = 0x00
	EvKey uint16 = 0x01
	EvRel uint16 = 0x02

	SynReport uint16 = 0x00
	SynMax    uint16 = 0x0f

	RelX           uint16 = 0x00
	RelY           uint16 = 0x01
	RelWheel       uint16 = 0x08
	RelWheelHiRes  uint16 = 0x0b
	RelHWheelHiRes uint16 = 0x0c
	RelMax         uint16 = 0x0f
)

// RawEvent is the OS-level input record. The timestamp is deliberately absent:
// it is zero-filled on injection and the kernel assigns the real one.
type RawEvent struct {
	Type  uint16
	Code  uint16
	Value int32
}

// syncEvent flushes a batch of input changes to consumers of the device.
var syncEvent = RawEvent{Type: EvSyn, Code: SynReport, Value: 0}

// injectionRecords expands one logical event into the raw records a device
// writes: the translated event followed by the mandatory sync report. Without
// the sync the kernel buffers the change but never delivers it.
func injectionRecords(ev Event) ([2]RawEvent, error) {
	raw, err := ToRaw(ev)
	if err != nil {
		return [2]RawEvent{}, err
	}
	return [2]RawEvent{raw, syncEvent}, nil
}

// ToRaw maps an event to its raw OS representation. It fails only on an
// event whose Kind is not a declared variant, which can happen when a peer
// sends garbage that still decodes structurally.
func ToRaw(ev Event) (RawEvent, error) {
	switch ev.Kind {
	case KindMouseMove:
		code := RelX
		if ev.Axis == AxisY {
			code = RelY
		}
		return RawEvent{Type: EvRel, Code: code, Value: ev.Delta}, nil
	case KindMouseScroll:
		code := RelWheel
		switch ev.Scroll {
		case ScrollHiRes:
			code = RelWheelHiRes
		case ScrollHiResH:
			code = RelHWheelHiRes
		}
		return RawEvent{Type: EvRel, Code: code, Value: ev.Delta}, nil
	case KindKey:
		value := int32(0)
		if ev.Direction == Down {
			value = 1
		}
		return RawEvent{Type: EvKey, Code: uint16(ev.Key), Value: value}, nil
	default:
		return RawEvent{}, &UnknownEventError{Kind: ev.Kind}
	}
}

// FromRaw maps a raw OS record back to an event. Triples outside the declared
// mapping yield ok == false; callers drop those records rather than erroring.
func FromRaw(raw RawEvent) (Event, bool) {
	switch raw.Type {
	case EvRel:
		switch raw.Code {
		case RelX:
			return MouseMove(AxisX, raw.Value), true
		case RelY:
			return MouseMove(AxisY, raw.Value), true
		case RelWheel:
			return MouseScroll(ScrollLo, raw.Value), true
		case RelWheelHiRes:
			return MouseScroll(ScrollHiRes, raw.Value), true
		case RelHWheelHiRes:
			return MouseScroll(ScrollHiResH, raw.Value), true
		}
	case EvKey:
		kind, ok := keyKindFromRaw(raw.Code)
		if !ok {
			return Event{}, false
		}
		switch raw.Value {
		case 0:
			return KeyPress(Up, kind), true
		case 1:
			return KeyPress(Down, kind), true
		}
	}
	return Event{}, false
}
