package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/dashboard-layout/internal/events"
	"github.com/GregMSThompson/dashboard-layout/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	LayoutSvc       LayoutService
	Editor          Editor
	Events          *events.Broker
}
