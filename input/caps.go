package input

// Identity reported for the virtual devices. Consumers (desktops, compositors)
// key remembered settings on these, so they stay fixed across versions.
const (
	deviceVendor  = 0x4b56
	deviceProduct = 0x0001
	deviceVersion = 0x0001
)

type deviceType uint8

const (
	deviceMouse deviceType = iota
	deviceKeyboard
)

func (t deviceType) String() string {
	if t == deviceKeyboard {
		return "keyboard"
	}
	return "mouse"
}

// deviceName is the name the device registers under in the OS input subsystem.
func (t deviceType) deviceName() string {
	if t == deviceKeyboard {
		return "kvmlink-keyboard"
	}
	return "kvmlink-mouse"
}

// codeRange is an inclusive range of event codes.
type codeRange struct {
	lo, hi uint16
}

// capability declares one event type a device advertises together with the
// code ranges it accepts for that type.
type capability struct {
	evType uint16
	codes  []codeRange
}

// The capability tables are fixed per device type. A device rejects writes of
// codes it never advertised, which is why buttons must go through the mouse
// and keys through the keyboard.
var (
	mouseCapabilities = []capability{
		{evType: EvSyn, codes: []codeRange{{SynReport, SynMax}}},
		{evType: EvRel, codes: []codeRange{{0, RelMax}}},
		{evType: EvKey, codes: []codeRange{{uint16(BtnLeft), uint16(btnGearUp)}}},
	}

	keyboardCapabilities = []capability{
		{evType: EvSyn, codes: []codeRange{{SynReport, SynMax}}},
		{evType: EvKey, codes: []codeRange{{0, uint16(KeyMicMute)}}},
	}
)

func (t deviceType) capabilities() []capability {
	if t == deviceKeyboard {
		return keyboardCapabilities
	}
	return mouseCapabilities
}
