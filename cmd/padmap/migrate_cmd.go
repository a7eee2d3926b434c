package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/padmap/internal/cmdline"
	"github.com/dshills/padmap/internal/logging"
	"github.com/dshills/padmap/internal/migration"
)

func newMigrateCommand(opts *cmdline.Options) *cobra.Command {
	var fopts migration.FileOptions

	cmd := &cobra.Command{
		Use:   "migrate FILE...",
		Short: "Upgrade legacy profiles",
		Long: `Upgrades profiles written with schema versions 2 to 5 to the current schema.
Files are replaced atomically. Profiles that are already current are left alone.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}

			log := logging.FromContext(cmd.Context(), "migrate")
			mopts := []migration.Option{
				migration.WithHandler(sess.factory.Handler()),
				migration.WithLogger(log),
			}

			out := cmd.OutOrStdout()
			var errs []error
			for _, path := range args {
				res, err := migration.MigrateFile(path, fopts, mopts...)
				if err != nil {
					log.Error().Err(err).Str("profile", path).Msg("migration failed")
					errs = append(errs, err)
					continue
				}

				switch {
				case !res.Changed:
					fmt.Fprintf(out, "%s: up to date (version %d)\n", path, res.FromVersion)
				case fopts.DryRun:
					fmt.Fprintf(out, "%s: would migrate version %d -> %d\n", path, res.FromVersion, res.ToVersion)
					fmt.Fprint(out, res.Output)
				default:
					fmt.Fprintf(out, "%s: migrated version %d -> %d\n", path, res.FromVersion, res.ToVersion)
					if res.BackupPath != "" {
						fmt.Fprintf(out, "%s: backup written to %s\n", path, res.BackupPath)
					}
				}
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().BoolVar(&fopts.DryRun, "dry-run", false, "print the migrated profile instead of writing it")
	cmd.Flags().BoolVar(&fopts.Backup, "backup", false, "keep a copy of the original next to each profile")
	return cmd
}
