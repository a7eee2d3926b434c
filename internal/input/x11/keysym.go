// Package x11 converts legacy X11 keycodes to key symbols.
//
// Old profiles stored raw X11 keycodes for keyboard slots. Those codes are
// only meaningful relative to a keyboard map, so the conversion uses the
// evdev keycode numbering with a US layout at shift level 0, which is what
// the X server reported for the profiles being upgraded.
package x11

// Keysym is an X11 key symbol.
type Keysym uint32

// NoSymbol is returned for keycodes without a symbol.
const NoSymbol Keysym = 0

// Latin-1 keysyms share their values with ASCII.
const (
	XKSpace        Keysym = 0x0020
	XKApostrophe   Keysym = 0x0027
	XKComma        Keysym = 0x002c
	XKMinus        Keysym = 0x002d
	XKPeriod       Keysym = 0x002e
	XKSlash        Keysym = 0x002f
	XK0            Keysym = 0x0030
	XK9            Keysym = 0x0039
	XKSemicolon    Keysym = 0x003b
	XKLess         Keysym = 0x003c
	XKEqual        Keysym = 0x003d
	XKBracketLeft  Keysym = 0x005b
	XKBackslash    Keysym = 0x005c
	XKBracketRight Keysym = 0x005d
	XKGrave        Keysym = 0x0060
	XKa            Keysym = 0x0061
	XKz            Keysym = 0x007a
)

// Function and modifier keysyms.
const (
	XKBackSpace  Keysym = 0xff08
	XKTab        Keysym = 0xff09
	XKReturn     Keysym = 0xff0d
	XKPause      Keysym = 0xff13
	XKScrollLock Keysym = 0xff14
	XKSysReq     Keysym = 0xff15
	XKEscape     Keysym = 0xff1b
	XKHome       Keysym = 0xff50
	XKLeft       Keysym = 0xff51
	XKUp         Keysym = 0xff52
	XKRight      Keysym = 0xff53
	XKDown       Keysym = 0xff54
	XKPrior      Keysym = 0xff55
	XKNext       Keysym = 0xff56
	XKEnd        Keysym = 0xff57
	XKPrint      Keysym = 0xff61
	XKInsert     Keysym = 0xff63
	XKMenu       Keysym = 0xff67
	XKNumLock    Keysym = 0xff7f

	XKKPEnter    Keysym = 0xff8d
	XKKPHome     Keysym = 0xff95
	XKKPLeft     Keysym = 0xff96
	XKKPUp       Keysym = 0xff97
	XKKPRight    Keysym = 0xff98
	XKKPDown     Keysym = 0xff99
	XKKPPrior    Keysym = 0xff9a
	XKKPNext     Keysym = 0xff9b
	XKKPEnd      Keysym = 0xff9c
	XKKPBegin    Keysym = 0xff9d
	XKKPInsert   Keysym = 0xff9e
	XKKPDelete   Keysym = 0xff9f
	XKKPMultiply Keysym = 0xffaa
	XKKPAdd      Keysym = 0xffab
	XKKPSubtract Keysym = 0xffad
	XKKPDecimal  Keysym = 0xffae
	XKKPDivide   Keysym = 0xffaf
	XKKP0        Keysym = 0xffb0
	XKKP9        Keysym = 0xffb9

	XKF1  Keysym = 0xffbe
	XKF12 Keysym = 0xffc9

	XKShiftL    Keysym = 0xffe1
	XKShiftR    Keysym = 0xffe2
	XKControlL  Keysym = 0xffe3
	XKControlR  Keysym = 0xffe4
	XKCapsLock  Keysym = 0xffe5
	XKMetaL     Keysym = 0xffe7
	XKMetaR     Keysym = 0xffe8
	XKAltL      Keysym = 0xffe9
	XKAltR      Keysym = 0xffea
	XKSuperL    Keysym = 0xffeb
	XKSuperR    Keysym = 0xffec
	XKDelete    Keysym = 0xffff
	XKLevel3    Keysym = 0xfe03
	XKAudioLow  Keysym = 0x1008ff11
	XKAudioMute Keysym = 0x1008ff12
	XKAudioHigh Keysym = 0x1008ff13
)

// keycodes maps evdev keycodes (kernel code + 8) to level-0 keysyms.
var keycodes = map[int]Keysym{
	9:  XKEscape,
	10: '1', 11: '2', 12: '3', 13: '4', 14: '5',
	15: '6', 16: '7', 17: '8', 18: '9', 19: '0',
	20: XKMinus,
	21: XKEqual,
	22: XKBackSpace,
	23: XKTab,
	24: 'q', 25: 'w', 26: 'e', 27: 'r', 28: 't',
	29: 'y', 30: 'u', 31: 'i', 32: 'o', 33: 'p',
	34: XKBracketLeft,
	35: XKBracketRight,
	36: XKReturn,
	37: XKControlL,
	38: 'a', 39: 's', 40: 'd', 41: 'f', 42: 'g',
	43: 'h', 44: 'j', 45: 'k', 46: 'l',
	47: XKSemicolon,
	48: XKApostrophe,
	49: XKGrave,
	50: XKShiftL,
	51: XKBackslash,
	52: 'z', 53: 'x', 54: 'c', 55: 'v', 56: 'b',
	57: 'n', 58: 'm',
	59: XKComma,
	60: XKPeriod,
	61: XKSlash,
	62: XKShiftR,
	63: XKKPMultiply,
	64: XKAltL,
	65: XKSpace,
	66: XKCapsLock,
	67: XKF1, 68: XKF1 + 1, 69: XKF1 + 2, 70: XKF1 + 3, 71: XKF1 + 4,
	72: XKF1 + 5, 73: XKF1 + 6, 74: XKF1 + 7, 75: XKF1 + 8, 76: XKF1 + 9,

	// Keypad
	77: XKNumLock,
	78: XKScrollLock,
	79: XKKPHome,
	80: XKKPUp,
	81: XKKPPrior,
	82: XKKPSubtract,
	83: XKKPLeft,
	84: XKKPBegin,
	85: XKKPRight,
	86: XKKPAdd,
	87: XKKPEnd,
	88: XKKPDown,
	89: XKKPNext,
	90: XKKPInsert,
	91: XKKPDelete,

	94:  XKLess,
	95:  XKF1 + 10,
	96:  XKF12,
	104: XKKPEnter,
	105: XKControlR,
	106: XKKPDivide,
	107: XKPrint,
	108: XKAltR,
	110: XKHome,
	111: XKUp,
	112: XKPrior,
	113: XKLeft,
	114: XKRight,
	115: XKEnd,
	116: XKDown,
	117: XKNext,
	118: XKInsert,
	119: XKDelete,
	121: XKAudioMute,
	122: XKAudioLow,
	123: XKAudioHigh,
	127: XKPause,
	133: XKSuperL,
	134: XKSuperR,
	135: XKMenu,
}

// KeycodeToKeysym returns the keysym for an X11 keycode, or NoSymbol.
func KeycodeToKeysym(keycode int) Keysym {
	return keycodes[keycode]
}
