// Package cli implements layoutctl, an admin command line for the persisted
// dashboard layout state. Commands operate directly on the configured storage
// backend through the layout service.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/GregMSThompson/dashboard-layout/internal/bootstrap"
	"github.com/GregMSThompson/dashboard-layout/internal/config"
	"github.com/GregMSThompson/dashboard-layout/internal/dto"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
	"github.com/GregMSThompson/dashboard-layout/internal/services"
	"github.com/GregMSThompson/dashboard-layout/pkg/logger"
)

type layoutService interface {
	State() models.LayoutState
	CurrentLayout() (models.DashboardLayout, bool)
	CreateLayout(ctx context.Context, name, description string) (string, error)
	DeleteLayout(ctx context.Context, id string) error
	SetCurrentLayout(ctx context.Context, id string) error
	UpdateLayout(ctx context.Context, id string, patch dto.LayoutPatch) error
	RenameLayout(ctx context.Context, id, name string) error
	ResetToDefault(ctx context.Context) error
	SetEditMode(ctx context.Context, enabled bool) error
	ToggleWidget(ctx context.Context, t models.WidgetType) error
	UpdateWidgetPosition(ctx context.Context, t models.WidgetType, x, y int) error
	UpdateWidgetSize(ctx context.Context, t models.WidgetType, width, height int) error
	Presets() []models.Preset
	ApplyPreset(ctx context.Context, name string) (string, error)
}

// app carries the state shared by every command of one invocation.
type app struct {
	out, errOut io.Writer

	verbose bool
	backend string
	dataDir string

	cfg *config.Config
	bs  *bootstrap.Bootstrap
	svc layoutService
}

// Execute runs layoutctl with args, writing command output to out and logs to errOut.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	a := &app{out: out, errOut: errOut}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	err := root.ExecuteContext(ctx)
	if a.bs != nil {
		a.bs.Close()
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "layoutctl",
		Short:         "Inspect and edit persisted dashboard layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.backend, "backend", "", "storage backend (file, firestore, redis); overrides STORAGEBACKEND")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "directory of the file backend; overrides DATADIR")

	root.AddCommand(newLayoutsCmd(a))
	root.AddCommand(newWidgetsCmd(a))
	root.AddCommand(newPresetsCmd(a))
	root.AddCommand(newResetCmd(a))
	root.AddCommand(newEditModeCmd(a))
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	return slog.New(charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	}))
}

// open resolves configuration, connects the backend and loads the layout state.
func (a *app) open(cmd *cobra.Command) error {
	log := newLogger(a.errOut, a.verbose)
	ctx := logger.ToContext(cmd.Context(), log)
	cmd.SetContext(ctx)

	a.cfg = config.New()
	if a.backend != "" {
		a.cfg.StorageBackend = a.backend
	}
	if a.dataDir != "" {
		a.cfg.DataDir = a.dataDir
	}

	start := time.Now()
	a.bs = &bootstrap.Bootstrap{Log: log}
	if err := a.bs.InitStore(ctx, a.cfg); err != nil {
		return err
	}
	var presets []models.Preset
	if a.cfg.PresetsFile != "" {
		var err error
		presets, err = config.LoadPresets(a.cfg.PresetsFile)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Warn("preset catalog not found, using built-in presets", "path", a.cfg.PresetsFile)
		case err != nil:
			return err
		}
	}
	svc := services.NewLayoutService(a.bs.Store, presets)
	if err := svc.Load(ctx); err != nil {
		return fmt.Errorf("load layout state: %w", err)
	}
	a.svc = svc
	log.Debug("layout state opened", "backend", a.cfg.StorageBackend, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace every layout with the built-in default layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.svc.ResetToDefault(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "layouts reset to default")
			return nil
		},
	}
}

func newEditModeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "edit-mode on|off",
		Short:     "Switch the global edit mode",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
			default:
				return fmt.Errorf("edit-mode expects on or off, got %q", args[0])
			}
			if err := a.svc.SetEditMode(cmd.Context(), enabled); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "edit mode %s\n", args[0])
			return nil
		},
	}
}
