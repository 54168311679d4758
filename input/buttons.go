package input

// Mouse button codes from linux/input-event-codes.h.
const (
	BtnLeft    KeyKind = 0x110
	BtnRight   KeyKind = 0x111
	BtnMiddle  KeyKind = 0x112
	BtnSide    KeyKind = 0x113
	BtnExtra   KeyKind = 0x114
	BtnForward KeyKind = 0x115
	BtnBack    KeyKind = 0x116
	BtnTask    KeyKind = 0x117

	// btnGearUp bounds the button code range the virtual mouse advertises.
	btnGearUp KeyKind = 0x151
)

var buttonNames = map[KeyKind]string{
	BtnLeft:    "LeftButton",
	BtnRight:   "RightButton",
	BtnMiddle:  "MiddleButton",
	BtnSide:    "SideButton",
	BtnExtra:   "ExtraButton",
	BtnForward: "ForwardButton",
	BtnBack:    "BackButton",
	BtnTask:    "TaskButton",
}
