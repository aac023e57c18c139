// Package upstream abstracts the clinical data source. Two implementations
// exist: Client, which queries a live FHIR server over HTTP, and Mock, which
// serves a deterministic in-process fixture set. The variant is chosen once
// at startup from configuration; callers only see the Source interface.
package upstream

import (
	"context"
	"errors"
)

// Category keys shared between the source implementations and the record
// domain. Mock fixtures are keyed by these values.
const (
	CategoryPatient           = "patient"
	CategoryConditions        = "conditions"
	CategoryMedications       = "medications"
	CategoryAllergies         = "allergies"
	CategoryObservations      = "observations"
	CategoryVitals            = "vitals"
	CategoryProcedures        = "procedures"
	CategoryImmunizations     = "immunizations"
	CategoryDiagnosticReports = "diagnosticReports"
	CategoryCarePlans         = "carePlans"
)

// ErrNotFound reports a well-formed response with zero matching entries.
// It is distinct from a transport failure: callers render it as a
// "not found" sentence rather than an error sentence.
var ErrNotFound = errors.New("no matching resources")

// Request describes one category fetch. It is constructed once per fetch
// and never mutated.
type Request struct {
	// Category selects the fixture table in mock mode and labels metrics.
	Category string
	// Path is the FHIR resource path, e.g. "Observation".
	Path string
	// PatientID is the normalized patient id. When ByID is set the request
	// reads the single resource at Path/PatientID; otherwise the id becomes
	// the "patient" search parameter.
	PatientID string
	ByID      bool
	// Params holds category-specific query parameters (_count, _sort, code).
	Params map[string]string
}

// Result carries the raw resources of one fetch, in server order.
type Result struct {
	Resources []map[string]interface{}
}

// Source is the category-fetch contract shared by Mock and Client.
type Source interface {
	// FetchCategory performs one best-effort read for the requested
	// category. It returns ErrNotFound for an empty result set and any
	// other error for a transport-level failure.
	FetchCategory(ctx context.Context, req Request) (*Result, error)

	// SearchPatients looks up patients by name and/or identifier. At least
	// one argument must be non-empty; the caller short-circuits the
	// no-argument case before reaching the source.
	SearchPatients(ctx context.Context, name, identifier string) (*Result, error)
}
