package main

import "fmt"

// Key is a unified symbolic key, independent of keyboard layout.
type Key int

const (
	KeyUnknown Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit row
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Editing and navigation
	KeyReturn
	KeyTab
	KeySpace
	KeyBackspace
	KeyEscape
	KeyForwardDelete
	KeyHelp
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyLeftArrow
	KeyRightArrow
	KeyDownArrow
	KeyUpArrow

	// Modifiers
	KeyCapsLock
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyOptionLeft
	KeyOptionRight
	KeyCommandLeft
	KeyCommandRight
	KeyFunction

	// Punctuation
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyComma
	KeyPeriod
	KeySlash
	KeyGrave
	KeyIntlBackslash

	// Numeric keypad
	KeypadEnter
	KeypadMinus
	KeypadPlus
	KeypadMultiply
	KeypadDivide
	KeypadDecimal
	KeypadClear
	KeypadEquals
	Keypad0
	Keypad1
	Keypad2
	Keypad3
	Keypad4
	Keypad5
	Keypad6
	Keypad7
	Keypad8
	Keypad9
)

// darwinKeycodes maps macOS virtual key codes (kVK_ANSI_* and friends) to
// Keys. Codes identify physical positions, not layout characters.
var darwinKeycodes = map[int64]Key{
	0:  KeyA,
	1:  KeyS,
	2:  KeyD,
	3:  KeyF,
	4:  KeyH,
	5:  KeyG,
	6:  KeyZ,
	7:  KeyX,
	8:  KeyC,
	9:  KeyV,
	10: KeyIntlBackslash,
	11: KeyB,
	12: KeyQ,
	13: KeyW,
	14: KeyE,
	15: KeyR,
	16: KeyY,
	17: KeyT,
	18: Key1,
	19: Key2,
	20: Key3,
	21: Key4,
	22: Key6,
	23: Key5,
	24: KeyEqual,
	25: Key9,
	26: Key7,
	27: KeyMinus,
	28: Key8,
	29: Key0,
	30: KeyRightBracket,
	31: KeyO,
	32: KeyU,
	33: KeyLeftBracket,
	34: KeyI,
	35: KeyP,
	36: KeyReturn,
	37: KeyL,
	38: KeyJ,
	39: KeyQuote,
	40: KeyK,
	41: KeySemicolon,
	42: KeyBackslash,
	43: KeyComma,
	44: KeySlash,
	45: KeyN,
	46: KeyM,
	47: KeyPeriod,
	48: KeyTab,
	49: KeySpace,
	50: KeyGrave,
	51: KeyBackspace,
	53: KeyEscape,
	54: KeyCommandRight,
	55: KeyCommandLeft,
	56: KeyShiftLeft,
	57: KeyCapsLock,
	58: KeyOptionLeft,
	59: KeyControlLeft,
	60: KeyShiftRight,
	61: KeyOptionRight,
	62: KeyControlRight,
	63: KeyFunction,

	65: KeypadDecimal,
	67: KeypadMultiply,
	69: KeypadPlus,
	71: KeypadClear,
	75: KeypadDivide,
	76: KeypadEnter,
	78: KeypadMinus,
	81: KeypadEquals,
	82: Keypad0,
	83: Keypad1,
	84: Keypad2,
	85: Keypad3,
	86: Keypad4,
	87: Keypad5,
	88: Keypad6,
	89: Keypad7,
	91: Keypad8,
	92: Keypad9,

	96:  KeyF5,
	97:  KeyF6,
	98:  KeyF7,
	99:  KeyF3,
	100: KeyF8,
	101: KeyF9,
	103: KeyF11,
	109: KeyF10,
	111: KeyF12,
	114: KeyHelp,
	115: KeyHome,
	116: KeyPageUp,
	117: KeyForwardDelete,
	118: KeyF4,
	119: KeyEnd,
	120: KeyF2,
	121: KeyPageDown,
	122: KeyF1,
	123: KeyLeftArrow,
	124: KeyRightArrow,
	125: KeyDownArrow,
	126: KeyUpArrow,
}

// TranslateKeycode converts a macOS virtual key code to a Key. It is total:
// codes absent from the table yield KeyUnknown, never an error.
func TranslateKeycode(code int64) Key {
	if k, ok := darwinKeycodes[code]; ok {
		return k
	}
	return KeyUnknown
}

var keyNames = map[Key]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12",

	KeyReturn: "Return", KeyTab: "Tab", KeySpace: "Space",
	KeyBackspace: "Backspace", KeyEscape: "Escape",
	KeyForwardDelete: "ForwardDelete", KeyHelp: "Help",
	KeyHome: "Home", KeyEnd: "End", KeyPageUp: "PageUp", KeyPageDown: "PageDown",
	KeyLeftArrow: "LeftArrow", KeyRightArrow: "RightArrow",
	KeyDownArrow: "DownArrow", KeyUpArrow: "UpArrow",

	KeyCapsLock: "CapsLock", KeyShiftLeft: "ShiftLeft", KeyShiftRight: "ShiftRight",
	KeyControlLeft: "ControlLeft", KeyControlRight: "ControlRight",
	KeyOptionLeft: "OptionLeft", KeyOptionRight: "OptionRight",
	KeyCommandLeft: "CommandLeft", KeyCommandRight: "CommandRight",
	KeyFunction: "Fn",

	KeyMinus: "Minus", KeyEqual: "Equal",
	KeyLeftBracket: "LeftBracket", KeyRightBracket: "RightBracket",
	KeyBackslash: "Backslash", KeySemicolon: "Semicolon", KeyQuote: "Quote",
	KeyComma: "Comma", KeyPeriod: "Period", KeySlash: "Slash",
	KeyGrave: "Grave", KeyIntlBackslash: "IntlBackslash",

	KeypadEnter: "KeypadEnter", KeypadMinus: "KeypadMinus",
	KeypadPlus: "KeypadPlus", KeypadMultiply: "KeypadMultiply",
	KeypadDivide: "KeypadDivide", KeypadDecimal: "KeypadDecimal",
	KeypadClear: "KeypadClear", KeypadEquals: "KeypadEquals",
	Keypad0: "Keypad0", Keypad1: "Keypad1", Keypad2: "Keypad2",
	Keypad3: "Keypad3", Keypad4: "Keypad4", Keypad5: "Keypad5",
	Keypad6: "Keypad6", Keypad7: "Keypad7", Keypad8: "Keypad8",
	Keypad9: "Keypad9",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// KeyPress is a single key-down observed by the event tap. Code keeps the
// raw virtual key code so unmapped keys stay distinguishable.
type KeyPress struct {
	Key  Key
	Code int64
}

func (p KeyPress) String() string {
	if p.Key == KeyUnknown {
		return fmt.Sprintf("Unknown(%d)", p.Code)
	}
	return p.Key.String()
}
