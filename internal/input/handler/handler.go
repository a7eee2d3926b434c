// Package handler selects the event handler backend.
//
// A backend is the platform mechanism used to generate keyboard and mouse
// events. Event injection itself lives outside this module; the handler here
// identifies the backend and owns the key mapper matching its key symbols.
package handler

import (
	"errors"
	"fmt"

	"github.com/dshills/padmap/internal/input/mapper"
)

// Backend identifiers.
const (
	XTest  = "xtest"
	UInput = "uinput"

	// DefaultIdentifier is used when no backend is requested.
	DefaultIdentifier = XTest
)

// ErrUnknownBackend is returned for an unrecognized backend identifier.
var ErrUnknownBackend = errors.New("unknown event handler backend")

// Handler is an event handler backend.
type Handler interface {
	// Identifier is the short name used on the command line and in settings.
	Identifier() string
	// Name is a human-readable backend name.
	Name() string
	// Mapper returns the key mapper for the backend's key symbols.
	Mapper() mapper.Mapper
}

type xtestHandler struct {
	m *mapper.X11Mapper
}

func (h *xtestHandler) Identifier() string    { return XTest }
func (h *xtestHandler) Name() string          { return "XTest" }
func (h *xtestHandler) Mapper() mapper.Mapper { return h.m }

type uinputHandler struct{}

func (uinputHandler) Identifier() string    { return UInput }
func (uinputHandler) Name() string          { return "uinput" }
func (uinputHandler) Mapper() mapper.Mapper { return mapper.UInputMapper{} }

// New creates the backend with the given identifier.
func New(identifier string) (Handler, error) {
	switch identifier {
	case XTest:
		return &xtestHandler{m: mapper.NewX11Mapper()}, nil
	case UInput:
		return uinputHandler{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, identifier)
	}
}

// Identifiers returns the known backend identifiers in preference order.
func Identifiers() []string {
	return []string{XTest, UInput}
}

// IsKnown reports whether identifier names a backend.
func IsKnown(identifier string) bool {
	for _, id := range Identifiers() {
		if id == identifier {
			return true
		}
	}
	return false
}
