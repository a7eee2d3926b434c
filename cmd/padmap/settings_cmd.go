package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dshills/padmap/internal/cmdline"
	"github.com/dshills/padmap/internal/config/loader"
	"github.com/dshills/padmap/internal/settings"
)

// errNotSet is returned by "settings get" for a key without a value.
var errNotSet = errors.New("setting not set")

func newSettingsCommand(opts *cmdline.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change settings",
	}
	cmd.AddCommand(
		newSettingsGetCommand(opts),
		newSettingsSetCommand(opts),
		newSettingsDumpCommand(opts),
		newSettingsLayersCommand(opts),
	)
	return cmd
}

func newSettingsGetCommand(opts *cmdline.Options) *cobra.Command {
	var group string
	var showSource bool

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value in effect for a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}
			s := sess.settings

			if group != "" {
				s.BeginGroup(group)
				defer func() { _ = s.EndGroup() }()
			}

			v := s.RuntimeValue(args[0], nil)
			if v == nil {
				return fmt.Errorf("%w: %s", errNotSet, args[0])
			}

			out := cmd.OutOrStdout()
			if showSource {
				fmt.Fprintf(out, "%s\t(%s)\n", settings.ToString(v), s.Source(args[0]))
				return nil
			}
			fmt.Fprintln(out, settings.ToString(v))
			return nil
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "settings group the key belongs to")
	cmd.Flags().BoolVar(&showSource, "source", false, "also print where the value comes from")
	return cmd
}

func newSettingsSetCommand(opts *cmdline.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Store a setting",
		Long:  "Stores a setting in the settings file. Integers and true/false are stored typed, anything else as a string.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}
			s := sess.settings

			mu := s.Lock()
			mu.Lock()
			defer mu.Unlock()

			if err := s.SetValue(args[0], parseValue(args[1])); err != nil {
				return err
			}
			return s.Sync()
		},
	}
}

func newSettingsDumpCommand(opts *cmdline.Options) *cobra.Command {
	var format string
	var effective bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print all stored settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}

			values := sess.settings.Data()
			if effective {
				values = sess.settings.Effective()
			}
			data, err := encodeSettings(values, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "output format: toml or yaml")
	cmd.Flags().BoolVar(&effective, "effective", false, "include command-line overrides")
	return cmd
}

func newSettingsLayersCommand(opts *cmdline.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "List the settings layers in lookup order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Layer", "Priority", "Values", "Source")
			layers := sess.settings.Layers()
			for i := len(layers) - 1; i >= 0; i-- {
				l := layers[i]
				source := l.Path
				if source == "" {
					source = "command line"
				}
				if err := table.Append(l.Name, strconv.Itoa(l.Priority), strconv.Itoa(l.Values), source); err != nil {
					return fmt.Errorf("layers table: %w", err)
				}
			}
			return table.Render()
		},
	}
}

func encodeSettings(data map[string]any, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml":
		return loader.EncodeTOML(data)
	case "yaml", "yml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encoding settings: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// parseValue types a value given on the command line.
func parseValue(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil && strings.ContainsAny(s, "tfTF") {
		return b
	}
	return s
}
