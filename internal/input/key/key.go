package key

import "fmt"

// Code represents a keyboard key in the internal representation.
type Code uint32

const (
	// CustomKeyPrefix tags keys that share a toolkit code with another key
	// (right-hand modifiers, keypad keys).
	CustomKeyPrefix Code = 0x20000000

	// NativeKeyPrefix tags an untranslated platform key code.
	NativeKeyPrefix Code = 0x60000000
)

const (
	// None represents no key.
	None Code = 0

	// Printable keys
	Space        Code = 0x20
	Apostrophe   Code = 0x27
	Asterisk     Code = 0x2a
	Plus         Code = 0x2b
	Comma        Code = 0x2c
	Minus        Code = 0x2d
	Period       Code = 0x2e
	Slash        Code = 0x2f
	Key0         Code = 0x30
	Key1         Code = 0x31
	Key2         Code = 0x32
	Key3         Code = 0x33
	Key4         Code = 0x34
	Key5         Code = 0x35
	Key6         Code = 0x36
	Key7         Code = 0x37
	Key8         Code = 0x38
	Key9         Code = 0x39
	Semicolon    Code = 0x3b
	Less         Code = 0x3c
	Equal        Code = 0x3d
	A            Code = 0x41
	Z            Code = 0x5a
	BracketLeft  Code = 0x5b
	Backslash    Code = 0x5c
	BracketRight Code = 0x5d
	QuoteLeft    Code = 0x60

	// Special keys
	Escape    Code = 0x01000000
	Tab       Code = 0x01000001
	Backtab   Code = 0x01000002
	Backspace Code = 0x01000003
	Return    Code = 0x01000004
	Enter     Code = 0x01000005
	Insert    Code = 0x01000006
	Delete    Code = 0x01000007
	Pause     Code = 0x01000008
	Print     Code = 0x01000009
	SysReq    Code = 0x0100000a
	Clear     Code = 0x0100000b

	// Navigation keys
	Home     Code = 0x01000010
	End      Code = 0x01000011
	Left     Code = 0x01000012
	Up       Code = 0x01000013
	Right    Code = 0x01000014
	Down     Code = 0x01000015
	PageUp   Code = 0x01000016
	PageDown Code = 0x01000017

	// Modifiers and locks
	Shift      Code = 0x01000020
	Control    Code = 0x01000021
	Meta       Code = 0x01000022
	Alt        Code = 0x01000023
	CapsLock   Code = 0x01000024
	NumLock    Code = 0x01000025
	ScrollLock Code = 0x01000026

	// Function keys
	F1  Code = 0x01000030
	F2  Code = 0x01000031
	F3  Code = 0x01000032
	F4  Code = 0x01000033
	F5  Code = 0x01000034
	F6  Code = 0x01000035
	F7  Code = 0x01000036
	F8  Code = 0x01000037
	F9  Code = 0x01000038
	F10 Code = 0x01000039
	F11 Code = 0x0100003a
	F12 Code = 0x0100003b

	SuperL     Code = 0x01000053
	SuperR     Code = 0x01000054
	Menu       Code = 0x01000055
	VolumeDown Code = 0x01000070
	VolumeMute Code = 0x01000071
	VolumeUp   Code = 0x01000072
	AltGr      Code = 0x01001103
)

// Right-hand modifiers.
const (
	ShiftR   = Shift | CustomKeyPrefix
	ControlR = Control | CustomKeyPrefix
	MetaR    = Meta | CustomKeyPrefix
	AltR     = Alt | CustomKeyPrefix
)

// Keypad keys.
const (
	KP0        = Key0 | CustomKeyPrefix
	KP1        = Key1 | CustomKeyPrefix
	KP2        = Key2 | CustomKeyPrefix
	KP3        = Key3 | CustomKeyPrefix
	KP4        = Key4 | CustomKeyPrefix
	KP5        = Key5 | CustomKeyPrefix
	KP6        = Key6 | CustomKeyPrefix
	KP7        = Key7 | CustomKeyPrefix
	KP8        = Key8 | CustomKeyPrefix
	KP9        = Key9 | CustomKeyPrefix
	KPDivide   = Slash | CustomKeyPrefix
	KPMultiply = Asterisk | CustomKeyPrefix
	KPSubtract = Minus | CustomKeyPrefix
	KPAdd      = Plus | CustomKeyPrefix
	KPDecimal  = Period | CustomKeyPrefix
	KPEnter    = Enter | CustomKeyPrefix
	KPHome     = Home | CustomKeyPrefix
	KPEnd      = End | CustomKeyPrefix
	KPUp       = Up | CustomKeyPrefix
	KPDown     = Down | CustomKeyPrefix
	KPLeft     = Left | CustomKeyPrefix
	KPRight    = Right | CustomKeyPrefix
	KPPageUp   = PageUp | CustomKeyPrefix
	KPPageDown = PageDown | CustomKeyPrefix
	KPBegin    = Clear | CustomKeyPrefix
	KPInsert   = Insert | CustomKeyPrefix
	KPDelete   = Delete | CustomKeyPrefix
)

// Letter returns the code for an ASCII letter, folding lower case to upper.
// Returns None for anything that is not a letter.
func Letter(r rune) Code {
	switch {
	case r >= 'a' && r <= 'z':
		return Code(r - 'a' + 'A')
	case r >= 'A' && r <= 'Z':
		return Code(r)
	default:
		return None
	}
}

// IsNative reports whether the code is an untranslated platform key code.
func (c Code) IsNative() bool {
	return c&NativeKeyPrefix == NativeKeyPrefix
}

// IsCustom reports whether the code carries the custom key tag.
func (c Code) IsCustom() bool {
	return !c.IsNative() && c&CustomKeyPrefix != 0
}

// Native returns the platform key code carried by a native code.
func (c Code) Native() uint32 {
	return uint32(c &^ NativeKeyPrefix)
}

// Base strips the custom key tag, returning the main-block twin.
func (c Code) Base() Code {
	if c.IsNative() {
		return c
	}
	return c &^ CustomKeyPrefix
}

// IsPrintable reports whether the code is a printable ASCII key.
func (c Code) IsPrintable() bool {
	return c > Space && c < 0x7f
}

// String returns a human-readable name for the key.
func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	if c.IsNative() {
		return fmt.Sprintf("Native(0x%x)", c.Native())
	}
	if c.IsPrintable() {
		return string(rune(c))
	}
	return fmt.Sprintf("0x%x", uint32(c))
}

// Hex formats the code the way profiles store keyboard codes.
func (c Code) Hex() string {
	return fmt.Sprintf("0x%x", uint32(c))
}
