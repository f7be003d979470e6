package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/dashboard-layout/internal/dto"
	"github.com/GregMSThompson/dashboard-layout/internal/errs"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
	"github.com/GregMSThompson/dashboard-layout/internal/response"
)

type widgetHandlers struct {
	ResponseHandler response.ResponseHandler
	LayoutSvc       LayoutService
}

func NewWidgetHandlers(deps *Deps) *widgetHandlers {
	return &widgetHandlers{
		ResponseHandler: deps.ResponseHandler,
		LayoutSvc:       deps.LayoutSvc,
	}
}

func (h *widgetHandlers) WidgetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{type}/enabled", h.GetWidgetEnabled)
	r.Post("/{type}/toggle", h.ToggleWidget)
	r.Put("/{type}/settings", h.UpdateWidgetSettings)
	r.Put("/{type}/position", h.UpdateWidgetPosition)
	r.Put("/{type}/size", h.UpdateWidgetSize)
	return r
}

// widgetType reads the {type} path parameter, rejecting unknown kinds.
func widgetType(r *http.Request) (models.WidgetType, error) {
	t := models.WidgetType(chi.URLParam(r, "type"))
	if !t.Valid() {
		return "", errs.NewValidationError("unknown widget type: " + string(t))
	}
	return t, nil
}

func (h *widgetHandlers) GetWidgetEnabled(w http.ResponseWriter, r *http.Request) {
	t, err := widgetType(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.WidgetEnabledResponse{
		Type:    t,
		Enabled: h.LayoutSvc.WidgetEnabled(t),
	})
}

func (h *widgetHandlers) ToggleWidget(w http.ResponseWriter, r *http.Request) {
	t, err := widgetType(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.LayoutSvc.ToggleWidget(r.Context(), t); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.WidgetEnabledResponse{
		Type:    t,
		Enabled: h.LayoutSvc.WidgetEnabled(t),
	})
}

func (h *widgetHandlers) UpdateWidgetSettings(w http.ResponseWriter, r *http.Request) {
	t, err := widgetType(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	var patch models.WidgetSettings
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.LayoutSvc.UpdateWidgetSettings(r.Context(), t, patch); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *widgetHandlers) UpdateWidgetPosition(w http.ResponseWriter, r *http.Request) {
	t, err := widgetType(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	var req dto.WidgetPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.LayoutSvc.UpdateWidgetPosition(r.Context(), t, req.X, req.Y); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *widgetHandlers) UpdateWidgetSize(w http.ResponseWriter, r *http.Request) {
	t, err := widgetType(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	var req dto.WidgetSizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if err := h.LayoutSvc.UpdateWidgetSize(r.Context(), t, req.Width, req.Height); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// GetWidgetTypes returns the hardcoded catalog of widget types with their default
// placement and settings options.
func (h *widgetHandlers) GetWidgetTypes(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, widgetTypeCatalog())
}

type widgetTypeEntry struct {
	Type             models.WidgetType `json:"type"`
	DefaultPosition  models.Position   `json:"defaultPosition"`
	DefaultSize      models.Size       `json:"defaultSize"`
	EnabledByDefault bool              `json:"enabledByDefault"`
	ConfigOptions    map[string]any    `json:"configOptions"`
}

var widgetConfigOptions = map[models.WidgetType]map[string]any{
	models.WidgetPortfolio:   {"currency": "ISO 4217 code", "showCash": "bool"},
	models.WidgetStats:       {"period": []string{"1d", "1w", "1m", "ytd"}},
	models.WidgetChart:       {"symbol": "required", "interval": []string{"1m", "5m", "1h", "1d"}, "showVolume": "bool"},
	models.WidgetOrders:      {"limit": "1-100 (default 20)", "showFilled": "bool"},
	models.WidgetSignals:     {"limit": "1-50 (default 10)", "minConfidence": "0-1"},
	models.WidgetIndices:     {"symbols": "list of index symbols"},
	models.WidgetAllocation:  {"visualization": []string{"pie", "bar"}, "groupBy": []string{"asset", "sector", "currency"}},
	models.WidgetReturns:     {"period": []string{"1m", "3m", "1y", "all"}, "benchmark": "optional symbol"},
	models.WidgetCorrelation: {"symbols": "list of symbols", "window": "days (default 30)"},
	models.WidgetHeatmap:     {"metric": []string{"change", "volume"}},
	models.WidgetJournal:     {"limit": "1-100 (default 20)"},
	models.WidgetModel:       {"modelId": "required"},
	models.WidgetCandlestick: {"symbol": "required", "interval": []string{"1m", "5m", "1h", "1d"}},
}

func widgetTypeCatalog() []widgetTypeEntry {
	out := make([]widgetTypeEntry, 0, len(models.WidgetTypes))
	for _, t := range models.WidgetTypes {
		seed, _ := models.SeedWidget(t)
		out = append(out, widgetTypeEntry{
			Type:             t,
			DefaultPosition:  seed.Position,
			DefaultSize:      seed.Size,
			EnabledByDefault: seed.Enabled,
			ConfigOptions:    widgetConfigOptions[t],
		})
	}
	return out
}
