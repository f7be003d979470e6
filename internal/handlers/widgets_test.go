package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GregMSThompson/dashboard-layout/internal/dto"
	"github.com/GregMSThompson/dashboard-layout/internal/errs"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

func TestGetWidgetEnabled_OK(t *testing.T) {
	svc := &stubLayoutService{enabled: map[models.WidgetType]bool{models.WidgetChart: true}}
	resp := &stubResponseHandler{}
	h := NewWidgetHandlers(&Deps{ResponseHandler: resp, LayoutSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/widgets/chart/enabled", nil)
	req = withChiParam(req, "type", "chart")
	rr := httptest.NewRecorder()
	h.GetWidgetEnabled(rr, req)

	got, ok := resp.writeSuccessData.(dto.WidgetEnabledResponse)
	if !ok || got.Type != models.WidgetChart || !got.Enabled {
		t.Fatalf("unexpected payload %#v", resp.writeSuccessData)
	}
}

func TestWidgetHandlers_UnknownType(t *testing.T) {
	svc := &stubLayoutService{}
	resp := &stubResponseHandler{}
	h := NewWidgetHandlers(&Deps{ResponseHandler: resp, LayoutSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/widgets/weather/toggle", nil)
	req = withChiParam(req, "type", "weather")
	rr := httptest.NewRecorder()
	h.ToggleWidget(rr, req)

	var ve *errs.ValidationError
	if !resp.handleErrorCalled || !errors.As(resp.handleError, &ve) {
		t.Fatalf("expected ValidationError, got %v", resp.handleError)
	}
	if svc.toggleCalled {
		t.Fatal("service must not be called for an unknown type")
	}
}

func TestToggleWidget_OK(t *testing.T) {
	svc := &stubLayoutService{enabled: map[models.WidgetType]bool{}}
	resp := &stubResponseHandler{}
	h := NewWidgetHandlers(&Deps{ResponseHandler: resp, LayoutSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/widgets/journal/toggle", nil)
	req = withChiParam(req, "type", "journal")
	rr := httptest.NewRecorder()
	h.ToggleWidget(rr, req)

	if !svc.toggleCalled || svc.lastType != models.WidgetJournal {
		t.Fatalf("expected journal toggle, got %q", svc.lastType)
	}
	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess")
	}
}

func TestUpdateWidgetSettings_OK(t *testing.T) {
	svc := &stubLayoutService{}
	resp := &stubResponseHandler{}
	h := NewWidgetHandlers(&Deps{ResponseHandler: resp, LayoutSvc: svc})

	body := `{"chart":{"symbol":"AAPL","showVolume":true}}`
	req := httptest.NewRequest(http.MethodPut, "/widgets/chart/settings", strings.NewReader(body))
	req = withChiParam(req, "type", "chart")
	rr := httptest.NewRecorder()
	h.UpdateWidgetSettings(rr, req)

	if !resp.writeSuccessCalled {
		t.Fatalf("expected WriteSuccess, got %v", resp.handleError)
	}
	cs := svc.lastSettings.Chart
	if cs == nil || cs.Symbol != "AAPL" || cs.ShowVolume == nil || !*cs.ShowVolume {
		t.Fatalf("unexpected settings %+v", svc.lastSettings)
	}
}

func TestUpdateWidgetPosition_OK(t *testing.T) {
	svc := &stubLayoutService{}
	resp := &stubResponseHandler{}
	h := NewWidgetHandlers(&Deps{ResponseHandler: resp, LayoutSvc: svc})

	req := httptest.NewRequest(http.MethodPut, "/widgets/chart/position", strings.NewReader(`{"x":10,"y":0}`))
	req = withChiParam(req, "type", "chart")
	rr := httptest.NewRecorder()
	h.UpdateWidgetPosition(rr, req)

	if svc.lastType != models.WidgetChart || svc.lastX != 10 || svc.lastY != 0 {
		t.Fatalf("unexpected args %q (%d,%d)", svc.lastType, svc.lastX, svc.lastY)
	}
}

func TestUpdateWidgetSize_ServiceError(t *testing.T) {
	svc := &stubLayoutService{err: errs.NewNotFoundError("widget not found")}
	resp := &stubResponseHandler{}
	h := NewWidgetHandlers(&Deps{ResponseHandler: resp, LayoutSvc: svc})

	req := httptest.NewRequest(http.MethodPut, "/widgets/model/size", strings.NewReader(`{"width":3,"height":2}`))
	req = withChiParam(req, "type", "model")
	rr := httptest.NewRecorder()
	h.UpdateWidgetSize(rr, req)

	if !resp.handleErrorCalled || svc.lastW != 3 || svc.lastH != 2 {
		t.Fatalf("expected HandleError after size 3x2, got called=%v %dx%d", resp.handleErrorCalled, svc.lastW, svc.lastH)
	}
}

func TestGetWidgetTypes_CoversEveryType(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewWidgetHandlers(&Deps{ResponseHandler: resp, LayoutSvc: &stubLayoutService{}})

	req := httptest.NewRequest(http.MethodGet, "/widget-types", nil)
	rr := httptest.NewRecorder()
	h.GetWidgetTypes(rr, req)

	entries, ok := resp.writeSuccessData.([]widgetTypeEntry)
	if !ok || len(entries) != len(models.WidgetTypes) {
		t.Fatalf("expected %d entries, got %#v", len(models.WidgetTypes), resp.writeSuccessData)
	}
	for _, e := range entries {
		if e.DefaultSize.Width < 1 || e.DefaultSize.Height < 1 {
			t.Errorf("%s has no default size", e.Type)
		}
		if len(e.ConfigOptions) == 0 {
			t.Errorf("%s has no config options", e.Type)
		}
	}
}
