package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/dashboard-layout/internal/dto"
	"github.com/GregMSThompson/dashboard-layout/internal/errs"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

func TestListPresets_OK(t *testing.T) {
	svc := &stubLayoutService{presets: []models.Preset{{Name: "trading"}}}
	resp := &stubResponseHandler{}
	h := NewPresetHandlers(&Deps{ResponseHandler: resp, LayoutSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/presets", nil)
	rr := httptest.NewRecorder()
	h.ListPresets(rr, req)

	ps, ok := resp.writeSuccessData.([]models.Preset)
	if !ok || len(ps) != 1 || ps[0].Name != "trading" {
		t.Fatalf("unexpected payload %#v", resp.writeSuccessData)
	}
}

func TestApplyPreset_OK(t *testing.T) {
	svc := &stubLayoutService{applyID: "p1"}
	resp := &stubResponseHandler{}
	h := NewPresetHandlers(&Deps{ResponseHandler: resp, LayoutSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/presets/trading/apply", nil)
	req = withChiParam(req, "name", "trading")
	rr := httptest.NewRecorder()
	h.ApplyPreset(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("expected WriteSuccess with 201, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	if svc.lastPreset != "trading" {
		t.Errorf("unexpected preset %q", svc.lastPreset)
	}
	if got, ok := resp.writeSuccessData.(dto.CreateLayoutResponse); !ok || got.ID != "p1" {
		t.Errorf("unexpected payload %#v", resp.writeSuccessData)
	}
}

func TestApplyPreset_Unknown(t *testing.T) {
	svc := &stubLayoutService{err: errs.NewNotFoundError("preset not found: nope")}
	resp := &stubResponseHandler{}
	h := NewPresetHandlers(&Deps{ResponseHandler: resp, LayoutSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/presets/nope/apply", nil)
	req = withChiParam(req, "name", "nope")
	rr := httptest.NewRecorder()
	h.ApplyPreset(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
}
