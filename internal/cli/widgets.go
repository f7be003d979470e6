package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GregMSThompson/dashboard-layout/internal/errs"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

func newWidgetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "widgets",
		Short: "Edit widgets of the active layout",
	}
	cmd.AddCommand(newWidgetsToggleCmd(a), newWidgetsMoveCmd(a), newWidgetsResizeCmd(a))
	return cmd
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errs.NewValidationError(fmt.Sprintf("%q is not an integer", s))
		}
		out[i] = n
	}
	return out, nil
}

func newWidgetsToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle TYPE",
		Short: "Enable or disable a widget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := models.WidgetType(args[0])
			if err := a.svc.ToggleWidget(cmd.Context(), t); err != nil {
				return err
			}
			l, _ := a.svc.CurrentLayout()
			fmt.Fprintln(a.out, renderWidgets(l))
			return nil
		},
	}
}

func newWidgetsMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move TYPE X Y",
		Short: "Move a widget, clamped into the grid",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			xy, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			if err := a.svc.UpdateWidgetPosition(cmd.Context(), models.WidgetType(args[0]), xy[0], xy[1]); err != nil {
				return err
			}
			l, _ := a.svc.CurrentLayout()
			fmt.Fprintln(a.out, renderWidgets(l))
			return nil
		},
	}
}

func newWidgetsResizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resize TYPE WIDTH HEIGHT",
		Short: "Resize a widget",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			wh, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			if err := a.svc.UpdateWidgetSize(cmd.Context(), models.WidgetType(args[0]), wh[0], wh[1]); err != nil {
				return err
			}
			l, _ := a.svc.CurrentLayout()
			fmt.Fprintln(a.out, renderWidgets(l))
			return nil
		},
	}
}
