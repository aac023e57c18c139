package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ehr/medrecord/internal/config"
	"github.com/ehr/medrecord/internal/platform/upstream"
)

// testServer wires the full application against the built-in mock fixtures,
// the same way `serve` does with USE_MOCK_DATA=true.
func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		Port:                   "0",
		Env:                    "test",
		FHIRServerURL:          "https://hapi.fhir.org/baseR4",
		FHIRTimeoutSeconds:     5,
		UseMockData:            true,
		SearchFallbackDefaults: true,
		CORSOrigins:            []string{"http://localhost:3000"},
		RateLimitRPS:           1000,
		RateLimitBurst:         1000,
	}
	src := upstream.NewMock(nil, cfg.SearchFallbackDefaults, zerolog.Nop())
	e := buildServer(cfg, zerolog.Nop(), src)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return resp.StatusCode, body
}

func TestServer_Health(t *testing.T) {
	srv := testServer(t)

	status, body := getJSON(t, srv.URL+"/health")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["status"] != "ok" || body["mode"] != "mock" {
		t.Errorf("unexpected health body: %v", body)
	}
}

func TestServer_PatientEndToEnd(t *testing.T) {
	srv := testServer(t)

	status, body := getJSON(t, srv.URL+"/api/v1/patients/1")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["patientId"] != "1" {
		t.Errorf("expected patientId 1, got %v", body["patientId"])
	}
	result, _ := body["result"].(string)
	if !strings.Contains(result, "Emily") {
		t.Errorf("expected patient 1 details, got %q", result)
	}
}

func TestServer_LegacyIDNormalized(t *testing.T) {
	srv := testServer(t)

	status, body := getJSON(t, srv.URL+"/api/v1/patients/Patient2/conditions")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["patientId"] != "2" {
		t.Errorf("expected normalized patientId 2, got %v", body["patientId"])
	}
}

func TestServer_SearchPatients(t *testing.T) {
	srv := testServer(t)

	status, body := getJSON(t, srv.URL+"/api/v1/patients?name=maria")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	result, _ := body["result"].(string)
	if !strings.Contains(result, "Maria") {
		t.Errorf("expected Maria in search result, got %q", result)
	}
}

func TestServer_BadCountRejected(t *testing.T) {
	srv := testServer(t)

	status, _ := getJSON(t, srv.URL+"/api/v1/patients/1/observations?count=abc")
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
}

func TestServer_SummaryBanner(t *testing.T) {
	srv := testServer(t)

	status, body := getJSON(t, srv.URL+"/api/v1/patients/default/summary")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	result, _ := body["result"].(string)
	if !strings.HasPrefix(result, "=== PATIENT MEDICAL SUMMARY ===") {
		t.Errorf("expected summary banner, got %q", result)
	}
}

func TestServer_ScriptInjectionBlocked(t *testing.T) {
	srv := testServer(t)

	status, body := getJSON(t, srv.URL+"/api/v1/patients?name=%3Cscript%3Ealert(1)%3C/script%3E")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["resourceType"] != "OperationOutcome" {
		t.Errorf("expected OperationOutcome body, got %v", body)
	}
}

func TestServer_MetricsExposed(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestServer_RepeatedReadServedFromCache(t *testing.T) {
	srv := testServer(t)

	for i, want := range []string{"MISS", "HIT"} {
		resp, err := http.Get(srv.URL + "/api/v1/patients/3/medications")
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		resp.Body.Close()
		if got := resp.Header.Get("X-Cache"); got != want {
			t.Errorf("request %d: expected X-Cache %s, got %s", i, want, got)
		}
	}
}
