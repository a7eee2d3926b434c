package handler

import "sync"

// Factory holds the active backend for the process.
type Factory struct {
	mu      sync.RWMutex
	handler Handler
}

// NewFactory creates a factory with the given backend active.
// An empty identifier selects DefaultIdentifier.
func NewFactory(identifier string) (*Factory, error) {
	if identifier == "" {
		identifier = DefaultIdentifier
	}
	h, err := New(identifier)
	if err != nil {
		return nil, err
	}
	return &Factory{handler: h}, nil
}

// Handler returns the active backend.
func (f *Factory) Handler() Handler {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.handler
}

// Switch replaces the active backend.
func (f *Factory) Switch(identifier string) error {
	h, err := New(identifier)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.handler = h
	f.mu.Unlock()
	return nil
}

var (
	defaultOnce    sync.Once
	defaultFactory *Factory
)

// Default returns the process-wide factory, created on first use with the
// default backend.
func Default() *Factory {
	defaultOnce.Do(func() {
		// DefaultIdentifier is always known.
		defaultFactory, _ = NewFactory(DefaultIdentifier)
	})
	return defaultFactory
}
