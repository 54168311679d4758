package input

// KeyKind identifies the control a Key event acts on: either a keyboard key
// or a mouse button. Values are Linux input key codes, which keep the split
// unambiguous since the two sets occupy disjoint code ranges.
type KeyKind uint16

// IsKey reports whether the code resolves to a known keyboard key.
func (k KeyKind) IsKey() bool {
	_, ok := keyNames[k]
	return ok
}

// IsButton reports whether the code resolves to a known mouse button.
func (k KeyKind) IsButton() bool {
	_, ok := buttonNames[k]
	return ok
}

func (k KeyKind) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if name, ok := buttonNames[k]; ok {
		return name
	}
	return "unknown"
}

// keyKindFromRaw resolves a raw key code. Codes outside both the key and the
// button tables are unknown and the whole event is dropped by the caller.
func keyKindFromRaw(code uint16) (KeyKind, bool) {
	k := KeyKind(code)
	if k.IsKey() || k.IsButton() {
		return k, true
	}
	return 0, false
}

// Keyboard key codes from linux/input-event-codes.h, up to KEY_MICMUTE. This
// is the whole range the virtual keyboard advertises.
const (
	KeyEsc        KeyKind = 1
	Key1          KeyKind = 2
	Key2          KeyKind = 3
	Key3          KeyKind = 4
	Key4          KeyKind = 5
	Key5          KeyKind = 6
	Key6          KeyKind = 7
	Key7          KeyKind = 8
	Key8          KeyKind = 9
	Key9          KeyKind = 10
	Key0          KeyKind = 11
	KeyMinus      KeyKind = 12
	KeyEqual      KeyKind = 13
	KeyBackspace  KeyKind = 14
	KeyTab        KeyKind = 15
	KeyQ          KeyKind = 16
	KeyW          KeyKind = 17
	KeyE          KeyKind = 18
	KeyR          KeyKind = 19
	KeyT          KeyKind = 20
	KeyY          KeyKind = 21
	KeyU          KeyKind = 22
	KeyI          KeyKind = 23
	KeyO          KeyKind = 24
	KeyP          KeyKind = 25
	KeyLeftBrace  KeyKind = 26
	KeyRightBrace KeyKind = 27
	KeyEnter      KeyKind = 28
	KeyLeftCtrl   KeyKind = 29
	KeyA          KeyKind = 30
	KeyS          KeyKind = 31
	KeyD          KeyKind = 32
	KeyF          KeyKind = 33
	KeyG          KeyKind = 34
	KeyH          KeyKind = 35
	KeyJ          KeyKind = 36
	KeyK          KeyKind = 37
	KeyL          KeyKind = 38
	KeySemicolon  KeyKind = 39
	KeyApostrophe KeyKind = 40
	KeyGrave      KeyKind = 41
	KeyLeftShift  KeyKind = 42
	KeyBackslash  KeyKind = 43
	KeyZ          KeyKind = 44
	KeyX          KeyKind = 45
	KeyC          KeyKind = 46
	KeyV          KeyKind = 47
	KeyB          KeyKind = 48
	KeyN          KeyKind = 49
	KeyM          KeyKind = 50
	KeyComma      KeyKind = 51
	KeyDot        KeyKind = 52
	KeySlash      KeyKind = 53
	KeyRightShift KeyKind = 54
	KeyKpAsterisk KeyKind = 55
	KeyLeftAlt    KeyKind = 56
	KeySpace      KeyKind = 57
	KeyCapsLock   KeyKind = 58
	KeyF1         KeyKind = 59
	KeyF2         KeyKind = 60
	KeyF3         KeyKind = 61
	KeyF4         KeyKind = 62
	KeyF5         KeyKind = 63
	KeyF6         KeyKind = 64
	KeyF7         KeyKind = 65
	KeyF8         KeyKind = 66
	KeyF9         KeyKind = 67
	KeyF10        KeyKind = 68
	KeyNumLock    KeyKind = 69
	KeyScrollLock KeyKind = 70
	KeyKp7        KeyKind = 71
	KeyKp8        KeyKind = 72
	KeyKp9        KeyKind = 73
	KeyKpMinus    KeyKind = 74
	KeyKp4        KeyKind = 75
	KeyKp5        KeyKind = 76
	KeyKp6        KeyKind = 77
	KeyKpPlus     KeyKind = 78
	KeyKp1        KeyKind = 79
	KeyKp2        KeyKind = 80
	KeyKp3        KeyKind = 81
	KeyKp0        KeyKind = 82
	KeyKpDot      KeyKind = 83

	KeyZenkakuHankaku   KeyKind = 85
	Key102nd            KeyKind = 86
	KeyF11              KeyKind = 87
	KeyF12              KeyKind = 88
	KeyRo               KeyKind = 89
	KeyKatakana         KeyKind = 90
	KeyHiragana         KeyKind = 91
	KeyHenkan           KeyKind = 92
	KeyKatakanaHiragana KeyKind = 93
	KeyMuhenkan         KeyKind = 94
	KeyKpJpComma        KeyKind = 95
	KeyKpEnter          KeyKind = 96
	KeyRightCtrl        KeyKind = 97
	KeyKpSlash          KeyKind = 98
	KeySysRq            KeyKind = 99
	KeyRightAlt         KeyKind = 100
	KeyLineFeed         KeyKind = 101
	KeyHome             KeyKind = 102
	KeyUp               KeyKind = 103
	KeyPageUp           KeyKind = 104
	KeyLeft             KeyKind = 105
	KeyRight            KeyKind = 106
	KeyEnd              KeyKind = 107
	KeyDown             KeyKind = 108
	KeyPageDown         KeyKind = 109
	KeyInsert           KeyKind = 110
	KeyDelete           KeyKind = 111
	KeyMacro            KeyKind = 112
	KeyMute             KeyKind = 113
	KeyVolumeDown       KeyKind = 114
	KeyVolumeUp         KeyKind = 115
	KeyPower            KeyKind = 116
	KeyKpEqual          KeyKind = 117
	KeyKpPlusMinus      KeyKind = 118
	KeyPause            KeyKind = 119
	KeyScale            KeyKind = 120
	KeyKpComma          KeyKind = 121
	KeyHangeul          KeyKind = 122
	KeyHanja            KeyKind = 123
	KeyYen              KeyKind = 124
	KeyLeftMeta         KeyKind = 125
	KeyRightMeta        KeyKind = 126
	KeyCompose          KeyKind = 127
	KeyStop             KeyKind = 128
	KeyAgain            KeyKind = 129
	KeyProps            KeyKind = 130
	KeyUndo             KeyKind = 131
	KeyFront            KeyKind = 132
	KeyCopy             KeyKind = 133
	KeyOpen             KeyKind = 134
	KeyPaste            KeyKind = 135
	KeyFind             KeyKind = 136
	KeyCut              KeyKind = 137
	KeyHelp             KeyKind = 138
	KeyMenu             KeyKind = 139
	KeyCalc             KeyKind = 140
	KeySetup            KeyKind = 141
	KeySleep            KeyKind = 142
	KeyWakeup           KeyKind = 143
	KeyFile             KeyKind = 144
	KeySendFile         KeyKind = 145
	KeyDeleteFile       KeyKind = 146
	KeyXfer             KeyKind = 147
	KeyProg1            KeyKind = 148
	KeyProg2            KeyKind = 149
	KeyWWW              KeyKind = 150
	KeyMSDOS            KeyKind = 151
	KeyScreenLock       KeyKind = 152
	KeyRotateDisplay    KeyKind = 153
	KeyCycleWindows     KeyKind = 154
	KeyMail             KeyKind = 155
	KeyBookmarks        KeyKind = 156
	KeyComputer         KeyKind = 157
	KeyBack             KeyKind = 158
	KeyForward          KeyKind = 159
	KeyCloseCD          KeyKind = 160
	KeyEjectCD          KeyKind = 161
	KeyEjectCloseCD     KeyKind = 162
	KeyNextSong         KeyKind = 163
	KeyPlayPause        KeyKind = 164
	KeyPreviousSong     KeyKind = 165
	KeyStopCD           KeyKind = 166
	KeyRecord           KeyKind = 167
	KeyRewind           KeyKind = 168
	KeyPhone            KeyKind = 169
	KeyISO              KeyKind = 170
	KeyConfig           KeyKind = 171
	KeyHomepage         KeyKind = 172
	KeyRefresh          KeyKind = 173
	KeyExit             KeyKind = 174
	KeyMove             KeyKind = 175
	KeyEdit             KeyKind = 176
	KeyScrollUp         KeyKind = 177
	KeyScrollDown       KeyKind = 178
	KeyKpLeftParen      KeyKind = 179
	KeyKpRightParen     KeyKind = 180
	KeyNew              KeyKind = 181
	KeyRedo             KeyKind = 182
	KeyF13              KeyKind = 183
	KeyF14              KeyKind = 184
	KeyF15              KeyKind = 185
	KeyF16              KeyKind = 186
	KeyF17              KeyKind = 187
	KeyF18              KeyKind = 188
	KeyF19              KeyKind = 189
	KeyF20              KeyKind = 190
	KeyF21              KeyKind = 191
	KeyF22              KeyKind = 192
	KeyF23              KeyKind = 193
	KeyF24              KeyKind = 194

	KeyPlayCD          KeyKind = 200
	KeyPauseCD         KeyKind = 201
	KeyProg3           KeyKind = 202
	KeyProg4           KeyKind = 203
	KeyDashboard       KeyKind = 204
	KeySuspend         KeyKind = 205
	KeyClose           KeyKind = 206
	KeyPlay            KeyKind = 207
	KeyFastForward     KeyKind = 208
	KeyBassBoost       KeyKind = 209
	KeyPrint           KeyKind = 210
	KeyHP              KeyKind = 211
	KeyCamera          KeyKind = 212
	KeySound           KeyKind = 213
	KeyQuestion        KeyKind = 214
	KeyEmail           KeyKind = 215
	KeyChat            KeyKind = 216
	KeySearch          KeyKind = 217
	KeyConnect         KeyKind = 218
	KeyFinance         KeyKind = 219
	KeySport           KeyKind = 220
	KeyShop            KeyKind = 221
	KeyAltErase        KeyKind = 222
	KeyCancel          KeyKind = 223
	KeyBrightnessDown  KeyKind = 224
	KeyBrightnessUp    KeyKind = 225
	KeyMedia           KeyKind = 226
	KeySwitchVideoMode KeyKind = 227
	KeyKbdIllumToggle  KeyKind = 228
	KeyKbdIllumDown    KeyKind = 229
	KeyKbdIllumUp      KeyKind = 230
	KeySend            KeyKind = 231
	KeyReply           KeyKind = 232
	KeyForwardMail     KeyKind = 233
	KeySave            KeyKind = 234
	KeyDocuments       KeyKind = 235
	KeyBattery         KeyKind = 236
	KeyBluetooth       KeyKind = 237
	KeyWLAN            KeyKind = 238
	KeyUWB             KeyKind = 239
	KeyVideoNext       KeyKind = 241
	KeyVideoPrev       KeyKind = 242
	KeyBrightnessCycle KeyKind = 243
	KeyBrightnessAuto  KeyKind = 244
	KeyDisplayOff      KeyKind = 245
	KeyWWAN            KeyKind = 246
	KeyRFKill          KeyKind = 247
	KeyMicMute         KeyKind = 248
)

// keyNames doubles as the closed set of known keyboard keys and their
// human-readable names.
var keyNames = map[KeyKind]string{
	KeyEsc: "Esc", Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",
	KeyMinus: "Minus", KeyEqual: "Equal", KeyBackspace: "Backspace", KeyTab: "Tab",
	KeyQ: "Q", KeyW: "W", KeyE: "E", KeyR: "R", KeyT: "T", KeyY: "Y", KeyU: "U",
	KeyI: "I", KeyO: "O", KeyP: "P",
	KeyLeftBrace: "LeftBrace", KeyRightBrace: "RightBrace", KeyEnter: "Enter",
	KeyLeftCtrl: "LeftCtrl",
	KeyA: "A", KeyS: "S", KeyD: "D", KeyF: "F", KeyG: "G", KeyH: "H", KeyJ: "J",
	KeyK: "K", KeyL: "L",
	KeySemicolon: "Semicolon", KeyApostrophe: "Apostrophe", KeyGrave: "Grave",
	KeyLeftShift: "LeftShift", KeyBackslash: "Backslash",
	KeyZ: "Z", KeyX: "X", KeyC: "C", KeyV: "V", KeyB: "B", KeyN: "N", KeyM: "M",
	KeyComma: "Comma", KeyDot: "Dot", KeySlash: "Slash", KeyRightShift: "RightShift",
	KeyKpAsterisk: "Kp*", KeyLeftAlt: "LeftAlt", KeySpace: "Space",
	KeyCapsLock: "CapsLock",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyNumLock: "NumLock", KeyScrollLock: "ScrollLock",
	KeyKp7: "Kp7", KeyKp8: "Kp8", KeyKp9: "Kp9", KeyKpMinus: "Kp-",
	KeyKp4: "Kp4", KeyKp5: "Kp5", KeyKp6: "Kp6", KeyKpPlus: "Kp+",
	KeyKp1: "Kp1", KeyKp2: "Kp2", KeyKp3: "Kp3", KeyKp0: "Kp0", KeyKpDot: "Kp.",
	KeyZenkakuHankaku: "ZenkakuHankaku", Key102nd: "102nd", KeyRo: "Ro",
	KeyKatakana: "Katakana", KeyHiragana: "Hiragana", KeyHenkan: "Henkan",
	KeyKatakanaHiragana: "KatakanaHiragana", KeyMuhenkan: "Muhenkan",
	KeyKpJpComma: "KpJpComma", KeyKpEnter: "KpEnter", KeyRightCtrl: "RightCtrl",
	KeyKpSlash: "Kp/", KeySysRq: "SysRq", KeyRightAlt: "RightAlt",
	KeyLineFeed: "LineFeed", KeyHome: "Home", KeyUp: "Up", KeyPageUp: "PageUp",
	KeyLeft: "Left", KeyRight: "Right", KeyEnd: "End", KeyDown: "Down",
	KeyPageDown: "PageDown", KeyInsert: "Insert", KeyDelete: "Delete",
	KeyMacro: "Macro", KeyMute: "Mute", KeyVolumeDown: "VolumeDown",
	KeyVolumeUp: "VolumeUp", KeyPower: "Power", KeyKpEqual: "Kp=",
	KeyKpPlusMinus: "Kp+-", KeyPause: "Pause", KeyScale: "Scale",
	KeyKpComma: "Kp,", KeyHangeul: "Hangeul", KeyHanja: "Hanja", KeyYen: "Yen",
	KeyLeftMeta: "LeftMeta", KeyRightMeta: "RightMeta", KeyCompose: "Compose",
	KeyStop: "Stop", KeyAgain: "Again", KeyProps: "Props", KeyUndo: "Undo",
	KeyFront: "Front", KeyCopy: "Copy", KeyOpen: "Open", KeyPaste: "Paste",
	KeyFind: "Find", KeyCut: "Cut", KeyHelp: "Help", KeyMenu: "Menu",
	KeyCalc: "Calc", KeySetup: "Setup", KeySleep: "Sleep", KeyWakeup: "Wakeup",
	KeyFile: "File", KeySendFile: "SendFile", KeyDeleteFile: "DeleteFile",
	KeyXfer: "Xfer", KeyProg1: "Prog1", KeyProg2: "Prog2", KeyWWW: "WWW",
	KeyMSDOS: "MSDOS", KeyScreenLock: "ScreenLock",
	KeyRotateDisplay: "RotateDisplay", KeyCycleWindows: "CycleWindows",
	KeyMail: "Mail", KeyBookmarks: "Bookmarks", KeyComputer: "Computer",
	KeyBack: "Back", KeyForward: "Forward", KeyCloseCD: "CloseCD",
	KeyEjectCD: "EjectCD", KeyEjectCloseCD: "EjectCloseCD",
	KeyNextSong: "NextSong", KeyPlayPause: "PlayPause",
	KeyPreviousSong: "PreviousSong", KeyStopCD: "StopCD", KeyRecord: "Record",
	KeyRewind: "Rewind", KeyPhone: "Phone", KeyISO: "ISO", KeyConfig: "Config",
	KeyHomepage: "Homepage", KeyRefresh: "Refresh", KeyExit: "Exit",
	KeyMove: "Move", KeyEdit: "Edit", KeyScrollUp: "ScrollUp",
	KeyScrollDown: "ScrollDown", KeyKpLeftParen: "Kp(", KeyKpRightParen: "Kp)",
	KeyNew: "New", KeyRedo: "Redo",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17",
	KeyF18: "F18", KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22",
	KeyF23: "F23", KeyF24: "F24",
	KeyPlayCD: "PlayCD", KeyPauseCD: "PauseCD", KeyProg3: "Prog3",
	KeyProg4: "Prog4", KeyDashboard: "Dashboard", KeySuspend: "Suspend",
	KeyClose: "Close", KeyPlay: "Play", KeyFastForward: "FastForward",
	KeyBassBoost: "BassBoost", KeyPrint: "Print", KeyHP: "HP",
	KeyCamera: "Camera", KeySound: "Sound", KeyQuestion: "Question",
	KeyEmail: "Email", KeyChat: "Chat", KeySearch: "Search",
	KeyConnect: "Connect", KeyFinance: "Finance", KeySport: "Sport",
	KeyShop: "Shop", KeyAltErase: "AltErase", KeyCancel: "Cancel",
	KeyBrightnessDown: "BrightnessDown", KeyBrightnessUp: "BrightnessUp",
	KeyMedia: "Media", KeySwitchVideoMode: "SwitchVideoMode",
	KeyKbdIllumToggle: "KbdIllumToggle", KeyKbdIllumDown: "KbdIllumDown",
	KeyKbdIllumUp: "KbdIllumUp", KeySend: "Send", KeyReply: "Reply",
	KeyForwardMail: "ForwardMail", KeySave: "Save", KeyDocuments: "Documents",
	KeyBattery: "Battery", KeyBluetooth: "Bluetooth", KeyWLAN: "WLAN",
	KeyUWB: "UWB", KeyVideoNext: "VideoNext", KeyVideoPrev: "VideoPrev",
	KeyBrightnessCycle: "BrightnessCycle", KeyBrightnessAuto: "BrightnessAuto",
	KeyDisplayOff: "DisplayOff", KeyWWAN: "WWAN", KeyRFKill: "RFKill",
	KeyMicMute: "MicMute",
}
