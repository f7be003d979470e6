package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/dashboard-layout/internal/dto"
	"github.com/GregMSThompson/dashboard-layout/internal/editor"
	"github.com/GregMSThompson/dashboard-layout/internal/grid"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

// --- Stub response handler ---

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error

	errorWriteCalled bool
	errorWriteStatus int
	errorWriteCode   string
	errorWriteMsg    string
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	s.errorWriteCalled = true
	s.errorWriteStatus = status
	s.errorWriteCode = code
	s.errorWriteMsg = message
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

// --- Stub layout service ---

type stubLayoutService struct {
	state        models.LayoutState
	current      models.DashboardLayout
	hasCurrent   bool
	enabled      map[models.WidgetType]bool
	presets      []models.Preset
	createID     string
	applyID      string
	err          error
	lastName     string
	lastDesc     string
	lastID       string
	lastPatch    dto.LayoutPatch
	lastEditMode bool
	lastType     models.WidgetType
	lastSettings models.WidgetSettings
	lastX, lastY int
	lastW, lastH int
	lastPreset   string
	toggleCalled bool
	resetCalled  bool
}

func (s *stubLayoutService) State() models.LayoutState { return s.state }

func (s *stubLayoutService) CurrentLayout() (models.DashboardLayout, bool) {
	return s.current, s.hasCurrent
}

func (s *stubLayoutService) WidgetEnabled(t models.WidgetType) bool { return s.enabled[t] }

func (s *stubLayoutService) CreateLayout(_ context.Context, name, description string) (string, error) {
	s.lastName, s.lastDesc = name, description
	return s.createID, s.err
}

func (s *stubLayoutService) DeleteLayout(_ context.Context, id string) error {
	s.lastID = id
	return s.err
}

func (s *stubLayoutService) SetCurrentLayout(_ context.Context, id string) error {
	s.lastID = id
	return s.err
}

func (s *stubLayoutService) UpdateLayout(_ context.Context, id string, patch dto.LayoutPatch) error {
	s.lastID, s.lastPatch = id, patch
	return s.err
}

func (s *stubLayoutService) RenameLayout(_ context.Context, id, name string) error {
	s.lastID, s.lastName = id, name
	return s.err
}

func (s *stubLayoutService) ResetToDefault(_ context.Context) error {
	s.resetCalled = true
	return s.err
}

func (s *stubLayoutService) SetEditMode(_ context.Context, enabled bool) error {
	s.lastEditMode = enabled
	return s.err
}

func (s *stubLayoutService) ToggleWidget(_ context.Context, t models.WidgetType) error {
	s.toggleCalled = true
	s.lastType = t
	return s.err
}

func (s *stubLayoutService) UpdateWidgetSettings(_ context.Context, t models.WidgetType, patch models.WidgetSettings) error {
	s.lastType, s.lastSettings = t, patch
	return s.err
}

func (s *stubLayoutService) UpdateWidgetPosition(_ context.Context, t models.WidgetType, x, y int) error {
	s.lastType, s.lastX, s.lastY = t, x, y
	return s.err
}

func (s *stubLayoutService) UpdateWidgetSize(_ context.Context, t models.WidgetType, width, height int) error {
	s.lastType, s.lastW, s.lastH = t, width, height
	return s.err
}

func (s *stubLayoutService) Presets() []models.Preset { return s.presets }

func (s *stubLayoutService) ApplyPreset(_ context.Context, name string) (string, error) {
	s.lastPreset = name
	return s.applyID, s.err
}

// --- Stub editor ---

type stubEditor struct {
	state      editor.State
	err        error
	moved      bool
	click      bool
	lastType   models.WidgetType
	lastPoint  grid.Point
	lastVP     grid.Viewport
	lastForm   dto.WidgetForm
	upCalled   bool
	leftCalled bool
}

func (s *stubEditor) Select(t models.WidgetType) error {
	s.lastType = t
	return s.err
}

func (s *stubEditor) PointerDown(_ context.Context, t models.WidgetType, p grid.Point) error {
	s.lastType, s.lastPoint = t, p
	return s.err
}

func (s *stubEditor) PointerMove(_ context.Context, p grid.Point, vp grid.Viewport) (bool, error) {
	s.lastPoint, s.lastVP = p, vp
	return s.moved, s.err
}

func (s *stubEditor) PointerUp(_ context.Context) bool {
	s.upCalled = true
	return s.click
}

func (s *stubEditor) PointerLeave(_ context.Context) bool {
	s.leftCalled = true
	return s.click
}

func (s *stubEditor) ApplyForm(_ context.Context, t models.WidgetType, form dto.WidgetForm) error {
	s.lastType, s.lastForm = t, form
	return s.err
}

func (s *stubEditor) Snapshot() editor.State { return s.state }

// withChiParam injects a chi URL parameter into the request context.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}
