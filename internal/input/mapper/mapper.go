// Package mapper translates platform key symbols into the internal key
// representation. Each event handler backend owns the mapper matching the
// key symbols it works with.
package mapper

import (
	"github.com/dshills/padmap/internal/input/key"
	"github.com/dshills/padmap/internal/input/x11"
)

// Mapper converts platform key symbols to internal key codes.
type Mapper interface {
	// Identifier names the backend the mapper belongs to.
	Identifier() string

	// ReturnKey returns the internal code for a key symbol, or key.None
	// when the symbol has no translation.
	ReturnKey(sym x11.Keysym) key.Code
}

// X11Mapper maps X11 keysyms for the XTest backend.
type X11Mapper struct {
	table map[x11.Keysym]key.Code
}

// NewX11Mapper creates a mapper populated with the standard keysym table.
func NewX11Mapper() *X11Mapper {
	return &X11Mapper{table: x11Table()}
}

// Identifier implements Mapper.
func (m *X11Mapper) Identifier() string {
	return "xtest"
}

// ReturnKey implements Mapper.
func (m *X11Mapper) ReturnKey(sym x11.Keysym) key.Code {
	if sym == x11.NoSymbol {
		return key.None
	}
	if code, ok := m.table[sym]; ok {
		return code
	}

	// Latin-1 printable range maps onto ASCII, letters folded to upper case.
	if sym > x11.XKSpace && sym < 0x7f {
		if l := key.Letter(rune(sym)); l != key.None {
			return l
		}
		return key.Code(sym)
	}

	return key.None
}

// UInputMapper is the mapper of the uinput backend. uinput works with
// kernel key codes, so X11 keysyms have no reverse mapping here.
type UInputMapper struct{}

// Identifier implements Mapper.
func (UInputMapper) Identifier() string {
	return "uinput"
}

// ReturnKey implements Mapper. It always returns key.None.
func (UInputMapper) ReturnKey(x11.Keysym) key.Code {
	return key.None
}
