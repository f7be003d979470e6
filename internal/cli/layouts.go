package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GregMSThompson/dashboard-layout/internal/errs"
)

func newLayoutsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Manage layouts",
	}
	cmd.AddCommand(
		newLayoutsListCmd(a),
		newLayoutsShowCmd(a),
		newLayoutsCreateCmd(a),
		newLayoutsDeleteCmd(a),
		newLayoutsUseCmd(a),
		newLayoutsRenameCmd(a),
	)
	return cmd
}

func newLayoutsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.out, renderLayouts(a.svc.State()))
			return nil
		},
	}
}

func newLayoutsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show the widgets of a layout (the active one by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := a.svc.State()
			id := st.CurrentLayoutID
			if len(args) == 1 {
				id = args[0]
			}
			i := st.LayoutIndex(id)
			if i < 0 {
				return errs.NewNotFoundError("layout not found: " + id)
			}
			fmt.Fprintln(a.out, renderWidgets(st.Layouts[i]))
			return nil
		},
	}
}

func newLayoutsCreateCmd(a *app) *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Copy the active layout under a new name and switch to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.svc.CreateLayout(cmd.Context(), args[0], description)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "layout description")
	return cmd
}

func newLayoutsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.svc.DeleteLayout(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "deleted %s\n", args[0])
			return nil
		},
	}
}

func newLayoutsUseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use ID",
		Short: "Make a layout active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.svc.State().LayoutIndex(args[0]) < 0 {
				return errs.NewNotFoundError("layout not found: " + args[0])
			}
			if err := a.svc.SetCurrentLayout(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "active layout %s\n", args[0])
			return nil
		},
	}
}

func newLayoutsRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a layout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.svc.RenameLayout(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "renamed %s to %q\n", args[0], args[1])
			return nil
		},
	}
}
