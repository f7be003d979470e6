package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/dashboard-layout/internal/dto"
	"github.com/GregMSThompson/dashboard-layout/internal/response"
)

type presetHandlers struct {
	ResponseHandler response.ResponseHandler
	LayoutSvc       LayoutService
}

func NewPresetHandlers(deps *Deps) *presetHandlers {
	return &presetHandlers{
		ResponseHandler: deps.ResponseHandler,
		LayoutSvc:       deps.LayoutSvc,
	}
}

func (h *presetHandlers) PresetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListPresets)
	r.Post("/{name}/apply", h.ApplyPreset)
	return r
}

func (h *presetHandlers) ListPresets(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.LayoutSvc.Presets())
}

// ApplyPreset creates a layout from the named preset and makes it active.
func (h *presetHandlers) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	id, err := h.LayoutSvc.ApplyPreset(r.Context(), name)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, dto.CreateLayoutResponse{ID: id})
}
