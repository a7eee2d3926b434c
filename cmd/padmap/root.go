package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/padmap/internal/cmdline"
	"github.com/dshills/padmap/internal/config/notify"
	"github.com/dshills/padmap/internal/input/handler"
	"github.com/dshills/padmap/internal/logging"
	"github.com/dshills/padmap/internal/migration"
	"github.com/dshills/padmap/internal/settings"
)

func newRootCommand() *cobra.Command {
	opts := &cmdline.Options{}

	cmd := &cobra.Command{
		Use:           "padmap",
		Short:         "Gamepad to keyboard and mouse mapper",
		Long:          "padmap maps gamepad input to keyboard and mouse events. It loads the settings file, applies command-line overrides and migrates legacy profiles.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	opts.Bind(cmd.PersistentFlags())

	cmd.AddCommand(
		newMigrateCommand(opts),
		newKeyCommand(opts),
		newSettingsCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

// session is the state shared by all commands once settings are loaded.
type session struct {
	settings *settings.Settings
	factory  *handler.Factory
}

// openSession loads the settings, imports the command-line overrides,
// configures logging and selects the event handler backend.
func openSession(ctx context.Context, opts *cmdline.Options) (*session, error) {
	path := opts.SettingsPath
	if path == "" {
		var err error
		if path, err = settings.DefaultPath(); err != nil {
			return nil, err
		}
	}

	s, err := settings.Load(path)
	if err != nil {
		return nil, err
	}
	s.ImportFromCommandLine(opts)
	if err := s.ApplySettingsToLogger(opts, nil); err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx, "main")
	log.Debug().Str("settings", path).Msg("settings loaded")

	backend := opts.EventGenerator
	if backend == "" {
		stored := settings.ToString(s.Value(settings.KeyEventGenerator, ""))
		switch {
		case stored == "":
		case handler.IsKnown(stored):
			backend = stored
		default:
			log.Warn().Str("backend", stored).Msg("unknown stored event generator, using default")
		}
	}

	factory := handler.Default()
	if backend != "" {
		if err := factory.Switch(backend); err != nil {
			return nil, err
		}
	}
	log.Debug().Str("backend", factory.Handler().Identifier()).Msg("event handler selected")

	return &session{settings: s, factory: factory}, nil
}

func runRoot(ctx context.Context, out io.Writer, opts *cmdline.Options) error {
	sess, err := openSession(ctx, opts)
	if err != nil {
		return err
	}
	s := sess.settings
	h := sess.factory.Handler()

	fmt.Fprintf(out, "settings:        %s\n", s.FileName())
	fmt.Fprintf(out, "event generator: %s (%s)\n", h.Identifier(), h.Name())
	fmt.Fprintf(out, "launch in tray:  %t\n", settings.ToBool(s.RuntimeValue(settings.KeyLaunchInTray, false)))
	fmt.Fprintf(out, "display mapping: %t\n", settings.ToBool(s.RuntimeValue(settings.KeyDisplaySDLMapping, false)))
	if opts.Hidden {
		fmt.Fprintln(out, "window:          hidden")
	}
	if opts.ShouldMapController() {
		fmt.Fprintf(out, "map controller:  %s\n", opts.MapController)
	}

	if opts.Profile != "" {
		if err := loadProfile(ctx, out, opts, h); err != nil {
			return err
		}
	}

	if !opts.Daemon {
		return nil
	}

	log := logging.FromContext(ctx, "main")
	log.Info().Str("settings", s.FileName()).Msg("watching settings")
	for _, key := range []string{settings.KeyLogLevel, settings.KeyLogFile} {
		sub := s.Subscribe(key, func(c notify.Change) {
			if c.Source != settings.SourceFile {
				return
			}
			if err := s.ApplySettingsToLogger(opts, nil); err != nil {
				log.Error().Err(err).Msg("apply logging settings")
			}
		})
		defer sub.Unsubscribe()
	}
	return s.Watch(ctx, nil)
}

// loadProfile reads the profile given on the command line, migrating it in
// memory when it is a legacy version.
func loadProfile(ctx context.Context, out io.Writer, opts *cmdline.Options, h handler.Handler) error {
	f, err := os.Open(opts.Profile)
	if err != nil {
		return fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	log := logging.FromContext(ctx, "profile")
	m := migration.NewXMLMigrator(f, migration.WithHandler(h), migration.WithLogger(log))

	from := m.FileVersion()
	if m.RequiresMigration() {
		if _, err := m.Migrate(); err != nil {
			return err
		}
		log.Info().Str("profile", opts.Profile).Int("from", from).Int("to", m.FileVersion()).Msg("profile migrated in memory")
	}

	target := "all controllers"
	if opts.ProfileController > 0 {
		target = fmt.Sprintf("controller %d", opts.ProfileController)
	}
	fmt.Fprintf(out, "profile:         %s (version %d", opts.Profile, from)
	if m.FileVersion() != from {
		fmt.Fprintf(out, " -> %d", m.FileVersion())
	}
	fmt.Fprintf(out, ", %s)\n", target)
	return nil
}
