package record

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ehr/medrecord/internal/platform/upstream"
)

func newHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	svc := NewService(upstream.NewMock(nil, true, zerolog.Nop()), zerolog.Nop())
	return NewHandler(svc), echo.New()
}

func doRequest(e *echo.Echo, h *Handler, target string) *httptest.ResponseRecorder {
	h.RegisterRoutes(e.Group("/api/v1"))
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandler_GetPatient(t *testing.T) {
	h, e := newHandler(t)
	rec := doRequest(e, h, "/api/v1/patients/1")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body["patientId"] != "1" || body["category"] != "patient" {
		t.Errorf("unexpected envelope: %v", body)
	}
	if result, _ := body["result"].(string); !strings.Contains(result, "Emily Rose Johnson") {
		t.Errorf("unexpected result: %v", body["result"])
	}
}

func TestHandler_LegacyIDNormalizedInResponse(t *testing.T) {
	h, e := newHandler(t)
	rec := doRequest(e, h, "/api/v1/patients/Patient2/conditions")

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body["patientId"] != "2" {
		t.Errorf("patientId = %v, want normalized 2", body["patientId"])
	}
}

func TestHandler_GetObservations_RejectsBadCount(t *testing.T) {
	h, e := newHandler(t)
	rec := doRequest(e, h, "/api/v1/patients/1/observations?count=abc")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_GetObservations_CountApplied(t *testing.T) {
	h, e := newHandler(t)
	rec := doRequest(e, h, "/api/v1/patients/1/observations?count=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	result, _ := body["result"].(string)
	if strings.Contains(result, "\n---\n") {
		t.Errorf("expected a single observation:\n%s", result)
	}
}

func TestHandler_GetAllMedicalData(t *testing.T) {
	h, e := newHandler(t)
	rec := doRequest(e, h, "/api/v1/patients/3/medical-data")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		PatientID string            `json:"patientId"`
		Data      map[string]string `json:"data"`
		Order     []string          `json:"order"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.PatientID != "3" {
		t.Errorf("patientId = %q", body.PatientID)
	}
	if len(body.Data) != len(SummaryOrder) || len(body.Order) != len(SummaryOrder) {
		t.Errorf("got %d data entries and %d order entries", len(body.Data), len(body.Order))
	}
	if !strings.Contains(body.Data["conditions"], "Migraine with aura") {
		t.Errorf("unexpected conditions: %s", body.Data["conditions"])
	}
}

func TestHandler_GetSummary(t *testing.T) {
	h, e := newHandler(t)
	rec := doRequest(e, h, "/api/v1/patients/4/summary")

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	result, _ := body["result"].(string)
	if !strings.Contains(result, "=== PATIENT MEDICAL SUMMARY ===") {
		t.Errorf("missing summary banner:\n%s", result)
	}
	if !strings.Contains(result, "Chronic obstructive pulmonary disease") {
		t.Errorf("missing patient 4 conditions:\n%s", result)
	}
}
