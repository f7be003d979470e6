package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/dashboard-layout/internal/dto"
	"github.com/GregMSThompson/dashboard-layout/internal/editor"
	"github.com/GregMSThompson/dashboard-layout/internal/grid"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
	"github.com/GregMSThompson/dashboard-layout/internal/response"
)

type Editor interface {
	Select(t models.WidgetType) error
	PointerDown(ctx context.Context, t models.WidgetType, p grid.Point) error
	PointerMove(ctx context.Context, p grid.Point, vp grid.Viewport) (bool, error)
	PointerUp(ctx context.Context) bool
	PointerLeave(ctx context.Context) bool
	ApplyForm(ctx context.Context, t models.WidgetType, form dto.WidgetForm) error
	Snapshot() editor.State
}

type editorHandlers struct {
	ResponseHandler response.ResponseHandler
	Editor          Editor
}

func NewEditorHandlers(deps *Deps) *editorHandlers {
	return &editorHandlers{
		ResponseHandler: deps.ResponseHandler,
		Editor:          deps.Editor,
	}
}

func (h *editorHandlers) EditorRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetEditor)
	r.Post("/select", h.Select)
	r.Post("/pointer/down", h.PointerDown)
	r.Post("/pointer/move", h.PointerMove)
	r.Post("/pointer/up", h.PointerUp)
	r.Post("/pointer/leave", h.PointerLeave)
	r.Put("/widgets/{type}", h.ApplyForm)
	return r
}

func (h *editorHandlers) GetEditor(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.Editor.Snapshot())
}

func (h *editorHandlers) Select(w http.ResponseWriter, r *http.Request) {
	var req dto.EditorSelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.Editor.Select(req.Type); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.Editor.Snapshot())
}

func (h *editorHandlers) PointerDown(w http.ResponseWriter, r *http.Request) {
	var req dto.PointerDownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.Editor.PointerDown(r.Context(), req.Type, req.Point); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.Editor.Snapshot())
}

func (h *editorHandlers) PointerMove(w http.ResponseWriter, r *http.Request) {
	var req dto.PointerMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	moved, err := h.Editor.PointerMove(r.Context(), req.Point, req.Viewport)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.PointerMoveResponse{Moved: moved})
}

func (h *editorHandlers) PointerUp(w http.ResponseWriter, r *http.Request) {
	click := h.Editor.PointerUp(r.Context())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.PointerUpResponse{Click: click})
}

func (h *editorHandlers) PointerLeave(w http.ResponseWriter, r *http.Request) {
	click := h.Editor.PointerLeave(r.Context())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.PointerUpResponse{Click: click})
}

func (h *editorHandlers) ApplyForm(w http.ResponseWriter, r *http.Request) {
	t, err := widgetType(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	var form dto.WidgetForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.Editor.ApplyForm(r.Context(), t, form); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.Editor.Snapshot())
}
