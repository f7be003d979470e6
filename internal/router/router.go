package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/dashboard-layout/internal/handlers"
	"github.com/GregMSThompson/dashboard-layout/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	lh := handlers.NewLayoutHandlers(deps)
	wh := handlers.NewWidgetHandlers(deps)
	ph := handlers.NewPresetHandlers(deps)
	eh := handlers.NewEditorHandlers(deps)

	r.Mount("/layouts", lh.LayoutRoutes())
	r.Mount("/widgets", wh.WidgetRoutes())
	r.Mount("/presets", ph.PresetRoutes())
	r.Mount("/editor", eh.EditorRoutes())
	r.Get("/widget-types", wh.GetWidgetTypes)
	return r
}
