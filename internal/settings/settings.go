// Package settings provides access to the persisted padmap settings with
// command-line overrides applied on top.
//
// The settings file is loaded into the "user" configuration layer. Options
// given on the command line are imported into a separate "arguments" layer
// that is never written back to disk. RuntimeValue consults the arguments
// layer first; Value and friends only see the stored settings.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dshills/padmap/internal/cmdline"
	"github.com/dshills/padmap/internal/config/layer"
	"github.com/dshills/padmap/internal/config/loader"
	"github.com/dshills/padmap/internal/config/notify"
	"github.com/dshills/padmap/internal/logging"
)

// DefaultDisabledWinEnhanced is the default for the "disable enhanced
// pointer precision" setting.
const DefaultDisabledWinEnhanced = false

// Keys of settings read or written by this package.
const (
	KeyLaunchInTray      = "LaunchInTray"
	KeyDisplaySDLMapping = "DisplaySDLMapping"
	KeyLogLevel          = "LogLevel"
	KeyLogFile           = "LogFile"
	KeyEventGenerator    = "EventGenerator"
)

// SourceFile is the change source reported for values read from disk.
const SourceFile = "file"

// ErrNoGroup is returned by EndGroup when no group is open.
var ErrNoGroup = errors.New("no settings group open")

var (
	userLayer = layer.StandardLayerName(layer.SourceUser)
	argsLayer = layer.StandardLayerName(layer.SourceArgs)
)

// Settings is the settings store of the application.
type Settings struct {
	// lock is handed out to callers through Lock.
	lock sync.Mutex

	mu     sync.RWMutex
	path   string
	groups []string

	layers   *layer.Manager
	loader   loader.Loader
	notifier *notify.Notifier
}

// New creates an empty settings store backed by the TOML file at path.
// Nothing is read until Reload is called. An empty path keeps the
// settings in memory only.
func New(path string) *Settings {
	return NewWithLoader(path, loader.NewTOMLLoader(path))
}

// NewWithLoader creates an empty settings store whose Reload reads from l.
// Sync still writes TOML to path.
func NewWithLoader(path string, l loader.Loader) *Settings {
	m := layer.NewManager()

	user := layer.NewStandardLayer(layer.SourceUser)
	user.Path = path
	m.AddLayer(user)

	args := layer.NewStandardLayer(layer.SourceArgs)
	args.ReadOnly = true
	m.AddLayer(args)

	return &Settings{
		path:     path,
		layers:   m,
		loader:   l,
		notifier: notify.New(),
	}
}

// Load creates a settings store and reads the file at path.
// A missing file yields empty settings.
func Load(path string) (*Settings, error) {
	s := New(path)
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultPath returns the settings file location under the user
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "padmap", "settings.toml"), nil
}

// FileName returns the path of the backing file.
func (s *Settings) FileName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Reload replaces the stored settings with the file contents. On error
// the previous settings are kept.
func (s *Settings) Reload() error {
	_, _, _, err := s.reload()
	return err
}

func (s *Settings) reload() (added, modified, removed []string, err error) {
	path := s.FileName()
	if path == "" {
		return nil, nil, nil, nil
	}

	data, err := s.loader.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	old, err := s.layers.LayerData(userLayer)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := s.layers.UpdateLayer(userLayer, data); err != nil {
		return nil, nil, nil, err
	}

	added, modified, removed = layer.DiffMaps(old, data)
	for _, p := range append(added, modified...) {
		prev, _ := layer.GetByPath(old, p)
		cur, _ := layer.GetByPath(data, p)
		s.notifier.NotifySet(p, prev, cur, SourceFile)
	}
	for _, p := range removed {
		prev, _ := layer.GetByPath(old, p)
		s.notifier.NotifyDelete(p, prev, SourceFile)
	}
	return added, modified, removed, nil
}

// Sync writes the stored settings to the backing file.
func (s *Settings) Sync() error {
	path := s.FileName()
	if path == "" {
		return nil
	}
	data, err := s.layers.LayerData(userLayer)
	if err != nil {
		return err
	}
	return loader.SaveTOML(path, data)
}

// BeginGroup appends prefix to the current group. Keys passed to the
// accessors are resolved relative to the current group.
func (s *Settings) BeginGroup(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append(s.groups, prefix)
}

// EndGroup closes the group opened by the matching BeginGroup.
func (s *Settings) EndGroup() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.groups) == 0 {
		return ErrNoGroup
	}
	s.groups = s.groups[:len(s.groups)-1]
	return nil
}

// Group returns the current group, "" at the top level.
func (s *Settings) Group() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return layer.JoinPath(s.groups...)
}

// fullKey resolves key against the current group.
func (s *Settings) fullKey(key string) string {
	return layer.JoinPath(s.Group(), key)
}

// Value returns the stored value of key, or def when it is not set.
func (s *Settings) Value(key string, def any) any {
	if v, ok := s.layers.GetLayerValue(userLayer, s.fullKey(key)); ok {
		return v
	}
	return def
}

// Contains reports whether key has a stored value.
func (s *Settings) Contains(key string) bool {
	_, ok := s.layers.GetLayerValue(userLayer, s.fullKey(key))
	return ok
}

// SetValue stores value under key. The file is written by Sync.
func (s *Settings) SetValue(key string, value any) error {
	full := s.fullKey(key)
	if full == "" {
		return fmt.Errorf("empty settings key")
	}
	old, _ := s.layers.GetLayerValue(userLayer, full)
	if err := s.layers.Set(userLayer, full, value); err != nil {
		return err
	}
	s.notifier.NotifySet(full, old, value, userLayer)
	return nil
}

// Remove deletes key and everything below it.
func (s *Settings) Remove(key string) error {
	full := s.fullKey(key)
	old, ok := s.layers.GetLayerValue(userLayer, full)
	if err := s.layers.Delete(userLayer, full); err != nil {
		return err
	}
	if ok {
		s.notifier.NotifyDelete(full, old, userLayer)
	}
	return nil
}

// RuntimeValue returns the value currently in effect for key: the
// command-line override when one exists, else the stored value, else def.
func (s *Settings) RuntimeValue(key string, def any) any {
	full := s.fullKey(key)
	if v, ok := s.layers.GetLayerValue(argsLayer, full); ok {
		return v
	}
	return s.Value(key, def)
}

// Source returns where the value in effect for key comes from:
// "arguments", "user", or "" when it is not set.
func (s *Settings) Source(key string) string {
	return s.layers.WhichLayer(s.fullKey(key))
}

// ImportFromCommandLine replaces the command-line overrides with the
// options in opts that correspond to settings.
func (s *Settings) ImportFromCommandLine(opts *cmdline.Options) {
	data := make(map[string]any)
	if opts.IsLaunchInTrayEnabled() {
		data[KeyLaunchInTray] = 1
	}
	if opts.ShouldMapController() {
		data[KeyDisplaySDLMapping] = 1
	}

	// The arguments layer always exists.
	_ = s.layers.UpdateLayer(argsLayer, data)
	s.notifier.NotifyReload(argsLayer)
}

// CmdSettings returns a copy of the command-line overrides.
func (s *Settings) CmdSettings() map[string]any {
	data, err := s.layers.LayerData(argsLayer)
	if err != nil {
		return map[string]any{}
	}
	return data
}

// Data returns a copy of the stored settings.
func (s *Settings) Data() map[string]any {
	data, err := s.layers.LayerData(userLayer)
	if err != nil {
		return map[string]any{}
	}
	return data
}

// Effective returns the stored settings with the command-line overrides
// applied on top.
func (s *Settings) Effective() map[string]any {
	return s.layers.Merge()
}

// LayerInfo describes one settings layer.
type LayerInfo struct {
	Name     string
	Priority int
	Path     string
	Values   int
	ReadOnly bool
}

// Layers describes the settings layers from lowest to highest priority.
func (s *Settings) Layers() []LayerInfo {
	layers := s.layers.Layers()
	infos := make([]LayerInfo, 0, len(layers))
	for _, l := range layers {
		infos = append(infos, LayerInfo{
			Name:     l.Name,
			Priority: l.Priority,
			Path:     l.Path,
			Values:   l.Len(),
			ReadOnly: l.ReadOnly,
		})
	}
	return infos
}

// ApplySettingsToLogger configures logger from the command line, falling
// back to the stored LogLevel and LogFile. A stored level that cannot be
// parsed turns logging off. A nil logger means the process-wide logger.
func (s *Settings) ApplySettingsToLogger(opts *cmdline.Options, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	if level := opts.CurrentLogLevel(); level != logging.LevelNone {
		logger.SetLogLevel(level)
	} else if s.Contains(KeyLogLevel) {
		stored := ToString(s.Value(KeyLogLevel, nil))
		level, err := logging.ParseLevel(stored)
		if err != nil {
			log := logger.Component("settings")
			log.Warn().
				Err(err).
				Str("key", KeyLogLevel).
				Msg("ignoring stored log level, logging disabled")
			level = logging.LevelNone
		}
		logger.SetLogLevel(level)
	}

	file := opts.CurrentLogFile()
	if file == "" && s.Contains(KeyLogFile) {
		file = strings.TrimSpace(ToString(s.Value(KeyLogFile, "")))
	}
	if file != "" {
		return logger.SetCurrentLogFile(file)
	}
	return nil
}

// Subscribe registers observer for changes at or below the absolute
// settings path; an empty path observes every change. Changes made through
// SetValue and Remove are reported with source "user", values picked up by
// a reload with source "file", and a command-line import as a reload event
// with source "arguments".
func (s *Settings) Subscribe(path string, observer notify.Observer) *notify.Subscription {
	if path == "" {
		return s.notifier.Subscribe(observer)
	}
	return s.notifier.SubscribePath(path, observer)
}

// Lock returns the mutex callers hold around multi-step updates.
func (s *Settings) Lock() *sync.Mutex {
	return &s.lock
}
