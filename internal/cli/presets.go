package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPresetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List and apply layout presets",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List presets",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(a.out, renderPresets(a.svc.Presets()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "apply NAME",
			Short: "Create a layout from a preset and switch to it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := a.svc.ApplyPreset(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, id)
				return nil
			},
		},
	)
	return cmd
}
