package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dshills/padmap/internal/cmdline"
	"github.com/dshills/padmap/internal/input/key"
	"github.com/dshills/padmap/internal/input/x11"
)

func newKeyCommand(opts *cmdline.Options) *cobra.Command {
	var keycodes bool

	cmd := &cobra.Command{
		Use:   "key NAME...",
		Short: "Show internal key codes",
		Long: `Prints the internal code of each key name. With --keycode the arguments are
legacy X11 keycodes, translated through the selected event generator the
same way profile migration does.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !keycodes {
				for _, arg := range args {
					code, err := key.Parse(arg)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s\t%s\n", code, code.Hex())
				}
				return nil
			}

			sess, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}
			m := sess.factory.Handler().Mapper()
			for _, arg := range args {
				keycode, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("keycode %q: %w", arg, err)
				}
				sym := x11.KeycodeToKeysym(keycode)
				code := m.ReturnKey(sym)
				fmt.Fprintf(out, "%d\tkeysym 0x%x\t%s\t%s\n", keycode, uint32(sym), code, code.Hex())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&keycodes, "keycode", false, "arguments are X11 keycodes")
	return cmd
}
