// Package notify delivers settings change notifications to subscribers.
//
// Observers subscribe either to every change or to a settings path; a path
// subscription also receives changes below that path, so subscribing to
// "General" sees "General/AutoProfile".
package notify

import (
	"strings"
	"sync"
)

// ChangeType represents the type of settings change.
type ChangeType int

const (
	// ChangeSet indicates a value was set or updated.
	ChangeSet ChangeType = iota

	// ChangeDelete indicates a value was deleted.
	ChangeDelete

	// ChangeReload indicates the settings file was read again.
	ChangeReload
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeDelete:
		return "delete"
	case ChangeReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Change represents a settings change event.
type Change struct {
	// Path is the slash-separated path of the changed setting.
	// Empty for reload events.
	Path string

	// Type is the type of change.
	Type ChangeType

	// OldValue is the previous value (may be nil).
	OldValue any

	// NewValue is the new value (nil for deletes).
	NewValue any

	// Source identifies where the change came from, such as "file" for
	// changes picked up from disk.
	Source string
}

// Observer is called when a change occurs.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	path     string
	notifier *Notifier
}

// Path returns the subscribed path, "" for all changes.
func (s *Subscription) Path() string {
	return s.path
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages change subscriptions. Observers are called
// synchronously on the goroutine that reported the change, outside the
// notifier's lock.
type Notifier struct {
	mu sync.RWMutex

	globalObservers map[uint64]Observer
	pathObservers   map[string]map[uint64]Observer

	nextID uint64
}

// New creates a new Notifier.
func New() *Notifier {
	return &Notifier{
		globalObservers: make(map[uint64]Observer),
		pathObservers:   make(map[string]map[uint64]Observer),
	}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.globalObservers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// SubscribePath registers an observer for changes at or below path.
// Reload events are delivered to every path observer.
func (n *Notifier) SubscribePath(path string, observer Observer) *Subscription {
	path = strings.Trim(path, "/")

	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	if n.pathObservers[path] == nil {
		n.pathObservers[path] = make(map[uint64]Observer)
	}
	n.pathObservers[path][id] = observer

	return &Subscription{id: id, path: path, notifier: n}
}

// Notify sends a change to all matching observers.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()

	var observers []Observer
	for _, obs := range n.globalObservers {
		observers = append(observers, obs)
	}
	for path, pathObs := range n.pathObservers {
		if change.Path != "" && !matchesPath(path, change.Path) {
			continue
		}
		for _, obs := range pathObs {
			observers = append(observers, obs)
		}
	}

	n.mu.RUnlock()

	for _, obs := range observers {
		obs(change)
	}
}

// NotifySet is a convenience method for set changes.
func (n *Notifier) NotifySet(path string, oldValue, newValue any, source string) {
	n.Notify(Change{
		Path:     path,
		Type:     ChangeSet,
		OldValue: oldValue,
		NewValue: newValue,
		Source:   source,
	})
}

// NotifyDelete is a convenience method for delete changes.
func (n *Notifier) NotifyDelete(path string, oldValue any, source string) {
	n.Notify(Change{
		Path:     path,
		Type:     ChangeDelete,
		OldValue: oldValue,
		Source:   source,
	})
}

// NotifyReload is a convenience method for reload events.
func (n *Notifier) NotifyReload(source string) {
	n.Notify(Change{Type: ChangeReload, Source: source})
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	count := len(n.globalObservers)
	for _, observers := range n.pathObservers {
		count += len(observers)
	}
	return count
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.globalObservers, id)

	for path, observers := range n.pathObservers {
		delete(observers, id)
		if len(observers) == 0 {
			delete(n.pathObservers, path)
		}
	}
}

// matchesPath reports whether a subscription to sub covers path:
// the same path or one below it. The empty subscription covers everything.
func matchesPath(sub, path string) bool {
	if sub == "" || sub == path {
		return true
	}
	return strings.HasPrefix(path, sub+"/")
}
