package settings

import (
	"context"
	"errors"
	"sort"

	"github.com/dshills/padmap/internal/config/watcher"
	"github.com/dshills/padmap/internal/logging"
)

// ErrNoFile is returned by Watch for settings without a backing file.
var ErrNoFile = errors.New("settings have no backing file")

// Change lists the setting paths that changed on a reload.
type Change struct {
	Added    []string
	Modified []string
	Removed  []string
}

// Empty reports whether the reload changed nothing.
func (c Change) Empty() bool {
	return len(c.Added) == 0 && len(c.Modified) == 0 && len(c.Removed) == 0
}

// Watch reloads the settings whenever the backing file is written or
// replaced, until ctx is done. onReload, if non-nil, is called after each
// reload that changed something. Removing the file keeps the settings
// that were last loaded.
func (s *Settings) Watch(ctx context.Context, onReload func(Change)) error {
	path := s.FileName()
	if path == "" {
		return ErrNoFile
	}

	w := watcher.New(watcher.WithErrorHandler(func(err error) {
		log := logging.FromContext(ctx, "settings")
		log.Warn().Err(err).Msg("watch error")
	}))
	if err := w.Watch(path); err != nil {
		return err
	}

	w.OnChange(func(ev watcher.Event) {
		log := logging.FromContext(ctx, "settings")
		if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
			log.Debug().Str("path", ev.Path).Str("op", ev.Op.String()).Msg("settings file gone, keeping current values")
			return
		}

		added, modified, removed, err := s.reload()
		if err != nil {
			log.Error().Err(err).Str("path", ev.Path).Msg("reload settings")
			return
		}

		change := Change{Added: added, Modified: modified, Removed: removed}
		sort.Strings(change.Added)
		sort.Strings(change.Modified)
		sort.Strings(change.Removed)
		if change.Empty() {
			return
		}

		log.Info().
			Strs("added", change.Added).
			Strs("modified", change.Modified).
			Strs("removed", change.Removed).
			Msg("settings reloaded")
		if onReload != nil {
			onReload(change)
		}
	})

	if err := w.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	w.Stop()
	return nil
}
