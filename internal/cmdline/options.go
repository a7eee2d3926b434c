// Package cmdline parses the padmap command-line options.
//
// Options that also exist as persisted settings (tray launch, controller
// mapping, logging) are imported into the settings override layer, so a flag
// wins over the stored value for the lifetime of the process.
package cmdline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dshills/padmap/internal/input/handler"
	"github.com/dshills/padmap/internal/logging"
)

// ErrInvalidOption is returned when an option value is out of range.
var ErrInvalidOption = errors.New("invalid option")

// OptionError describes a rejected option value.
type OptionError struct {
	Flag  string
	Value string
	Err   error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("--%s %q: %v", e.Flag, e.Value, e.Err)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidOption.
func (e *OptionError) Is(target error) bool {
	return target == ErrInvalidOption
}

// Options holds parsed command-line options.
type Options struct {
	LaunchInTray      bool
	Hidden            bool
	Profile           string
	ProfileController int
	MapController     string
	Daemon            bool
	LogLevel          string
	LogFile           string
	EventGenerator    string
	SettingsPath      string
}

// Bind registers the option flags on fs.
func (o *Options) Bind(fs *pflag.FlagSet) {
	fs.BoolVar(&o.LaunchInTray, "tray", false, "launch minimized to the system tray")
	fs.BoolVar(&o.Hidden, "hidden", false, "launch without showing the main window")
	fs.StringVar(&o.Profile, "profile", "", "profile file to load")
	fs.IntVar(&o.ProfileController, "profile-controller", 0, "controller index the profile applies to (1-based, 0 for all)")
	fs.StringVar(&o.MapController, "map", "", "open the mapping dialog for the given controller")
	fs.BoolVar(&o.Daemon, "daemon", false, "keep running and reload settings on change")
	fs.StringVar(&o.LogLevel, "log-level", "", "log level: none, error, warn, info, debug, max")
	fs.StringVar(&o.LogFile, "log-file", "", "append log output to this file")
	fs.StringVar(&o.EventGenerator, "eventgen", "", "event generator backend: "+strings.Join(handler.Identifiers(), ", "))
	fs.StringVar(&o.SettingsPath, "settings", "", "settings file (default $XDG_CONFIG_HOME/padmap/settings.toml)")
}

// Validate checks option values that flags cannot constrain.
func (o *Options) Validate() error {
	if o.LogLevel != "" {
		if _, err := logging.ParseLevel(o.LogLevel); err != nil {
			return &OptionError{Flag: "log-level", Value: o.LogLevel, Err: err}
		}
	}
	if o.EventGenerator != "" && !handler.IsKnown(o.EventGenerator) {
		return &OptionError{Flag: "eventgen", Value: o.EventGenerator, Err: handler.ErrUnknownBackend}
	}
	if o.ProfileController < 0 {
		return &OptionError{
			Flag:  "profile-controller",
			Value: fmt.Sprint(o.ProfileController),
			Err:   errors.New("must not be negative"),
		}
	}
	return nil
}

// IsLaunchInTrayEnabled reports whether --tray was given.
func (o *Options) IsLaunchInTrayEnabled() bool {
	return o != nil && o.LaunchInTray
}

// ShouldMapController reports whether a controller mapping was requested.
func (o *Options) ShouldMapController() bool {
	return o != nil && o.MapController != ""
}

// CurrentLogLevel returns the requested log level, LevelNone when unset.
func (o *Options) CurrentLogLevel() logging.Level {
	if o == nil || o.LogLevel == "" {
		return logging.LevelNone
	}
	level, err := logging.ParseLevel(o.LogLevel)
	if err != nil {
		return logging.LevelNone
	}
	return level
}

// CurrentLogFile returns the requested log file path.
func (o *Options) CurrentLogFile() string {
	if o == nil {
		return ""
	}
	return o.LogFile
}
