package layer

import (
	"fmt"
	"sort"
	"sync"
)

// Manager manages configuration layers and provides merged access.
type Manager struct {
	mu     sync.RWMutex
	layers []*Layer       // Sorted by priority (ascending)
	merged map[string]any // Cached merged result
	dirty  bool           // Whether merged cache needs refresh
}

// NewManager creates a new layer manager.
func NewManager() *Manager {
	return &Manager{
		layers: make([]*Layer, 0),
		merged: make(map[string]any),
		dirty:  true,
	}
}

// AddLayer adds a layer to the manager.
// Layers are automatically sorted by priority.
func (m *Manager) AddLayer(layer *Layer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.layers = append(m.layers, layer)
	m.sortLayers()
	m.dirty = true
}

// Layers returns copies of all layers sorted by priority.
func (m *Manager) Layers() []*Layer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Layer, len(m.layers))
	for i, layer := range m.layers {
		result[i] = layer.Clone()
	}
	return result
}

// Merge combines all layers into a single configuration map.
// Results are cached until a layer is added or updated.
func (m *Manager) Merge() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.dirty && m.merged != nil {
		return cloneMap(m.merged)
	}

	result := make(map[string]any)

	// Apply layers in priority order (lowest first, highest last)
	for _, layer := range m.layers {
		result = DeepMerge(result, layer.Data)
	}

	m.merged = result
	m.dirty = false

	return cloneMap(result)
}

// Get returns the effective value for a setting path.
// Returns the value, the name of the layer it came from, and whether it was found.
func (m *Manager) Get(path string) (any, string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Search layers from highest to lowest priority
	for i := len(m.layers) - 1; i >= 0; i-- {
		layer := m.layers[i]
		if val, ok := GetByPath(layer.Data, path); ok {
			return cloneValue(val), layer.Name, true
		}
	}

	return nil, "", false
}

// GetLayerValue returns a value from a specific layer.
func (m *Manager) GetLayerValue(layerName, path string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	layer := m.findLayer(layerName)
	if layer == nil {
		return nil, false
	}

	val, ok := GetByPath(layer.Data, path)
	if !ok {
		return nil, false
	}
	return cloneValue(val), true
}

// Set sets a value in a specific layer.
// Returns an error if the layer is not found or is read-only.
func (m *Manager) Set(layerName, path string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	layer, err := m.writableLayer(layerName)
	if err != nil {
		return err
	}

	if layer.Data == nil {
		layer.Data = make(map[string]any)
	}

	SetByPath(layer.Data, path, value)
	m.dirty = true
	return nil
}

// Delete removes a value from a specific layer.
func (m *Manager) Delete(layerName, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	layer, err := m.writableLayer(layerName)
	if err != nil {
		return err
	}

	if DeleteByPath(layer.Data, path) {
		m.dirty = true
	}
	return nil
}

// UpdateLayer replaces a layer's data entirely.
// Read-only layers can still be replaced wholesale: they are read-only to
// Set and Delete, not to the component that owns their source.
func (m *Manager) UpdateLayer(name string, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	layer := m.findLayer(name)
	if layer == nil {
		return fmt.Errorf("layer not found: %s", name)
	}

	layer.Data = cloneMap(data)
	if layer.Data == nil {
		layer.Data = make(map[string]any)
	}
	m.dirty = true
	return nil
}

// LayerData returns a deep copy of a layer's data.
func (m *Manager) LayerData(name string) (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	layer := m.findLayer(name)
	if layer == nil {
		return nil, fmt.Errorf("layer not found: %s", name)
	}
	return cloneMap(layer.Data), nil
}

// WhichLayer returns the name of the layer that provides a value.
func (m *Manager) WhichLayer(path string) string {
	_, name, found := m.Get(path)
	if !found {
		return ""
	}
	return name
}

// sortLayers sorts layers by priority (ascending).
func (m *Manager) sortLayers() {
	sort.SliceStable(m.layers, func(i, j int) bool {
		return m.layers[i].Priority < m.layers[j].Priority
	})
}

// findLayer finds a layer by name (must be called with lock held).
func (m *Manager) findLayer(name string) *Layer {
	for _, layer := range m.layers {
		if layer.Name == name {
			return layer
		}
	}
	return nil
}

func (m *Manager) writableLayer(name string) (*Layer, error) {
	layer := m.findLayer(name)
	if layer == nil {
		return nil, fmt.Errorf("layer not found: %s", name)
	}
	if layer.ReadOnly {
		return nil, fmt.Errorf("layer is read-only: %s", name)
	}
	return layer, nil
}
