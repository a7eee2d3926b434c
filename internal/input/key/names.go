package key

import "strings"

var names = map[Code]string{
	None:       "None",
	Space:      "Space",
	Escape:     "Escape",
	Tab:        "Tab",
	Backtab:    "Backtab",
	Backspace:  "Backspace",
	Return:     "Return",
	Enter:      "Enter",
	Insert:     "Insert",
	Delete:     "Delete",
	Pause:      "Pause",
	Print:      "Print",
	SysReq:     "SysReq",
	Clear:      "Clear",
	Home:       "Home",
	End:        "End",
	Left:       "Left",
	Up:         "Up",
	Right:      "Right",
	Down:       "Down",
	PageUp:     "PageUp",
	PageDown:   "PageDown",
	Shift:      "Shift",
	Control:    "Control",
	Meta:       "Meta",
	Alt:        "Alt",
	CapsLock:   "CapsLock",
	NumLock:    "NumLock",
	ScrollLock: "ScrollLock",
	F1:         "F1",
	F2:         "F2",
	F3:         "F3",
	F4:         "F4",
	F5:         "F5",
	F6:         "F6",
	F7:         "F7",
	F8:         "F8",
	F9:         "F9",
	F10:        "F10",
	F11:        "F11",
	F12:        "F12",
	SuperL:     "Super_L",
	SuperR:     "Super_R",
	Menu:       "Menu",
	VolumeDown: "VolumeDown",
	VolumeMute: "VolumeMute",
	VolumeUp:   "VolumeUp",
	AltGr:      "AltGr",
	ShiftR:     "Shift_R",
	ControlR:   "Control_R",
	MetaR:      "Meta_R",
	AltR:       "Alt_R",
	KP0:        "KP_0",
	KP1:        "KP_1",
	KP2:        "KP_2",
	KP3:        "KP_3",
	KP4:        "KP_4",
	KP5:        "KP_5",
	KP6:        "KP_6",
	KP7:        "KP_7",
	KP8:        "KP_8",
	KP9:        "KP_9",
	KPDivide:   "KP_Divide",
	KPMultiply: "KP_Multiply",
	KPSubtract: "KP_Subtract",
	KPAdd:      "KP_Add",
	KPDecimal:  "KP_Decimal",
	KPEnter:    "KP_Enter",
	KPHome:     "KP_Home",
	KPEnd:      "KP_End",
	KPUp:       "KP_Up",
	KPDown:     "KP_Down",
	KPLeft:     "KP_Left",
	KPRight:    "KP_Right",
	KPPageUp:   "KP_PageUp",
	KPPageDown: "KP_PageDown",
	KPBegin:    "KP_Begin",
	KPInsert:   "KP_Insert",
	KPDelete:   "KP_Delete",
}

// byName maps lower-cased names back to codes.
var byName = func() map[string]Code {
	m := make(map[string]Code, len(names)+8)
	for code, name := range names {
		m[strings.ToLower(name)] = code
	}
	// Aliases
	m["esc"] = Escape
	m["ctrl"] = Control
	m["bs"] = Backspace
	m["del"] = Delete
	m["pgup"] = PageUp
	m["pgdown"] = PageDown
	m["super"] = SuperL
	return m
}()
