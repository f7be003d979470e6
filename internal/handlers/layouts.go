package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/dashboard-layout/internal/dto"
	"github.com/GregMSThompson/dashboard-layout/internal/errs"
	"github.com/GregMSThompson/dashboard-layout/internal/events"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
	"github.com/GregMSThompson/dashboard-layout/internal/response"
)

type LayoutService interface {
	State() models.LayoutState
	CurrentLayout() (models.DashboardLayout, bool)
	WidgetEnabled(t models.WidgetType) bool
	CreateLayout(ctx context.Context, name, description string) (string, error)
	DeleteLayout(ctx context.Context, id string) error
	SetCurrentLayout(ctx context.Context, id string) error
	UpdateLayout(ctx context.Context, id string, patch dto.LayoutPatch) error
	RenameLayout(ctx context.Context, id, name string) error
	ResetToDefault(ctx context.Context) error
	SetEditMode(ctx context.Context, enabled bool) error
	ToggleWidget(ctx context.Context, t models.WidgetType) error
	UpdateWidgetSettings(ctx context.Context, t models.WidgetType, patch models.WidgetSettings) error
	UpdateWidgetPosition(ctx context.Context, t models.WidgetType, x, y int) error
	UpdateWidgetSize(ctx context.Context, t models.WidgetType, width, height int) error
	Presets() []models.Preset
	ApplyPreset(ctx context.Context, name string) (string, error)
}

type layoutHandlers struct {
	ResponseHandler response.ResponseHandler
	LayoutSvc       LayoutService
	Events          *events.Broker
}

func NewLayoutHandlers(deps *Deps) *layoutHandlers {
	return &layoutHandlers{
		ResponseHandler: deps.ResponseHandler,
		LayoutSvc:       deps.LayoutSvc,
		Events:          deps.Events,
	}
}

func (h *layoutHandlers) LayoutRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetState)
	r.Post("/", h.CreateLayout)
	r.Get("/current", h.GetCurrentLayout)
	r.Put("/current", h.SetCurrentLayout)
	r.Post("/reset", h.ResetToDefault)
	r.Put("/edit-mode", h.SetEditMode)
	if h.Events != nil {
		r.Get("/events", events.SSEHandler(h.Events))
	}
	r.Patch("/{layoutId}", h.UpdateLayout)
	r.Put("/{layoutId}/name", h.RenameLayout)
	r.Delete("/{layoutId}", h.DeleteLayout)
	return r
}

func (h *layoutHandlers) GetState(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.LayoutSvc.State())
}

func (h *layoutHandlers) GetCurrentLayout(w http.ResponseWriter, r *http.Request) {
	layout, ok := h.LayoutSvc.CurrentLayout()
	if !ok {
		h.ResponseHandler.HandleError(w, r, errs.NewNotFoundError("no active layout"))
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, layout)
}

func (h *layoutHandlers) CreateLayout(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	id, err := h.LayoutSvc.CreateLayout(r.Context(), req.Name, req.Description)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, dto.CreateLayoutResponse{ID: id})
}

func (h *layoutHandlers) SetCurrentLayout(w http.ResponseWriter, r *http.Request) {
	var req dto.SetCurrentLayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.LayoutSvc.SetCurrentLayout(r.Context(), req.ID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *layoutHandlers) UpdateLayout(w http.ResponseWriter, r *http.Request) {
	layoutID := chi.URLParam(r, "layoutId")
	var patch dto.LayoutPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.LayoutSvc.UpdateLayout(r.Context(), layoutID, patch); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *layoutHandlers) RenameLayout(w http.ResponseWriter, r *http.Request) {
	layoutID := chi.URLParam(r, "layoutId")
	var req dto.RenameLayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.LayoutSvc.RenameLayout(r.Context(), layoutID, req.Name); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *layoutHandlers) DeleteLayout(w http.ResponseWriter, r *http.Request) {
	layoutID := chi.URLParam(r, "layoutId")
	if err := h.LayoutSvc.DeleteLayout(r.Context(), layoutID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// ResetToDefault discards every layout in favour of the built-in one.
func (h *layoutHandlers) ResetToDefault(w http.ResponseWriter, r *http.Request) {
	if err := h.LayoutSvc.ResetToDefault(r.Context()); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.LayoutSvc.State())
}

func (h *layoutHandlers) SetEditMode(w http.ResponseWriter, r *http.Request) {
	var req dto.EditModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.LayoutSvc.SetEditMode(r.Context(), req.Enabled); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
