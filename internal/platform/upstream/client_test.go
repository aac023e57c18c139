package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestClient_FetchCategory_BuildsRequest(t *testing.T) {
	var gotPath, gotQuery, gotAccept, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"resourceType":"Bundle","entry":[{"resource":{"id":"obs1"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key", 0, zerolog.Nop())
	res, err := c.FetchCategory(context.Background(), Request{
		Category:  CategoryObservations,
		Path:      "Observation",
		PatientID: "7",
		Params:    map[string]string{"_count": "10", "_sort": "-date"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Resources) != 1 || res.Resources[0]["id"] != "obs1" {
		t.Errorf("unexpected resources: %v", res.Resources)
	}
	if gotPath != "/Observation" {
		t.Errorf("path = %q", gotPath)
	}
	// url.Values encodes keys in sorted order.
	if gotQuery != "_count=10&_sort=-date&patient=7" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotAccept != "application/fhir+json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if gotAuth != "Bearer secret-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestClient_FetchCategory_NoAuthHeaderWithoutKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"resourceType":"Bundle","entry":[{"resource":{"id":"x"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0, zerolog.Nop())
	if _, err := c.FetchCategory(context.Background(), Request{Category: CategoryConditions, Path: "Condition", PatientID: "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClient_FetchCategory_ByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Patient/3" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"resourceType":"Patient","id":"3","gender":"female"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0, zerolog.Nop())
	res, err := c.FetchCategory(context.Background(), Request{
		Category:  CategoryPatient,
		Path:      "Patient",
		PatientID: "3",
		ByID:      true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Resources) != 1 || res.Resources[0]["gender"] != "female" {
		t.Errorf("unexpected resources: %v", res.Resources)
	}
}

func TestClient_FetchCategory_EmptyBundle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resourceType":"Bundle","total":0}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0, zerolog.Nop())
	_, err := c.FetchCategory(context.Background(), Request{Category: CategoryAllergies, Path: "AllergyIntolerance", PatientID: "1"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_FetchCategory_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0, zerolog.Nop())
	_, err := c.FetchCategory(context.Background(), Request{Category: CategoryConditions, Path: "Condition", PatientID: "1"})
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("server error must not be reported as not-found")
	}
}

func TestClient_SearchPatients_Query(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"resourceType":"Bundle","entry":[{"resource":{"id":"9"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0, zerolog.Nop())
	res, err := c.SearchPatients(context.Background(), "smith", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Resources) != 1 {
		t.Errorf("unexpected resources: %v", res.Resources)
	}
	if gotQuery != "_count=5&name=smith" {
		t.Errorf("query = %q", gotQuery)
	}
}
