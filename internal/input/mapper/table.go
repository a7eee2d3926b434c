package mapper

import (
	"github.com/dshills/padmap/internal/input/key"
	"github.com/dshills/padmap/internal/input/x11"
)

func x11Table() map[x11.Keysym]key.Code {
	t := map[x11.Keysym]key.Code{
		x11.XKSpace:      key.Space,
		x11.XKEscape:     key.Escape,
		x11.XKTab:        key.Tab,
		x11.XKBackSpace:  key.Backspace,
		x11.XKReturn:     key.Return,
		x11.XKInsert:     key.Insert,
		x11.XKDelete:     key.Delete,
		x11.XKPause:      key.Pause,
		x11.XKPrint:      key.Print,
		x11.XKSysReq:     key.SysReq,
		x11.XKHome:       key.Home,
		x11.XKEnd:        key.End,
		x11.XKLeft:       key.Left,
		x11.XKUp:         key.Up,
		x11.XKRight:      key.Right,
		x11.XKDown:       key.Down,
		x11.XKPrior:      key.PageUp,
		x11.XKNext:       key.PageDown,
		x11.XKShiftL:     key.Shift,
		x11.XKShiftR:     key.ShiftR,
		x11.XKControlL:   key.Control,
		x11.XKControlR:   key.ControlR,
		x11.XKMetaL:      key.Meta,
		x11.XKMetaR:      key.MetaR,
		x11.XKAltL:       key.Alt,
		x11.XKAltR:       key.AltR,
		x11.XKLevel3:     key.AltGr,
		x11.XKCapsLock:   key.CapsLock,
		x11.XKNumLock:    key.NumLock,
		x11.XKScrollLock: key.ScrollLock,
		x11.XKSuperL:     key.SuperL,
		x11.XKSuperR:     key.SuperR,
		x11.XKMenu:       key.Menu,
		x11.XKAudioLow:   key.VolumeDown,
		x11.XKAudioMute:  key.VolumeMute,
		x11.XKAudioHigh:  key.VolumeUp,

		x11.XKKPEnter:    key.KPEnter,
		x11.XKKPHome:     key.KPHome,
		x11.XKKPLeft:     key.KPLeft,
		x11.XKKPUp:       key.KPUp,
		x11.XKKPRight:    key.KPRight,
		x11.XKKPDown:     key.KPDown,
		x11.XKKPPrior:    key.KPPageUp,
		x11.XKKPNext:     key.KPPageDown,
		x11.XKKPEnd:      key.KPEnd,
		x11.XKKPBegin:    key.KPBegin,
		x11.XKKPInsert:   key.KPInsert,
		x11.XKKPDelete:   key.KPDelete,
		x11.XKKPMultiply: key.KPMultiply,
		x11.XKKPAdd:      key.KPAdd,
		x11.XKKPSubtract: key.KPSubtract,
		x11.XKKPDecimal:  key.KPDecimal,
		x11.XKKPDivide:   key.KPDivide,
	}

	for i := x11.Keysym(0); i <= x11.XKF12-x11.XKF1; i++ {
		t[x11.XKF1+i] = key.F1 + key.Code(i)
	}
	for i := x11.Keysym(0); i <= x11.XKKP9-x11.XKKP0; i++ {
		t[x11.XKKP0+i] = key.KP0 + key.Code(i)
	}

	return t
}
