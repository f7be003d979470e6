package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/GregMSThompson/dashboard-layout/internal/bootstrap"
	"github.com/GregMSThompson/dashboard-layout/internal/config"
	"github.com/GregMSThompson/dashboard-layout/internal/editor"
	"github.com/GregMSThompson/dashboard-layout/internal/events"
	"github.com/GregMSThompson/dashboard-layout/internal/handlers"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
	"github.com/GregMSThompson/dashboard-layout/internal/response"
	"github.com/GregMSThompson/dashboard-layout/internal/router"
	"github.com/GregMSThompson/dashboard-layout/internal/services"
	"github.com/GregMSThompson/dashboard-layout/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func loadPresets(path string, log *slog.Logger) []models.Preset {
	if path == "" {
		return nil
	}
	presets, err := config.LoadPresets(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn("preset catalog not found, using built-in presets", "path", path)
		return nil
	}
	exitOnError("invalid preset catalog", err, log)
	log.Info("preset catalog loaded", "path", path, "presets", len(presets))
	return presets
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()
	ctx := logger.ToContext(context.Background(), bs.Log)

	// services
	lserv := services.NewLayoutService(bs.Store, loadPresets(cfg.PresetsFile, bs.Log))
	err = lserv.Load(ctx)
	exitOnError("failed to load layout state", err, bs.Log)
	ed := editor.NewEditor(lserv, cfg.Metrics(), cfg.DragThreshold)

	// change stream
	broker := events.NewBroker(bs.Log)
	unsubscribe := lserv.Subscribe(broker.PublishState)
	defer unsubscribe()

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.LayoutSvc = lserv
	deps.Editor = ed
	deps.Events = broker

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("listening", "port", cfg.Port, "backend", cfg.StorageBackend)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
