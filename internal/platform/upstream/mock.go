package upstream

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ehr/medrecord/internal/platform/fhir"
)

// Mock serves the static fixture tables instead of the network. The tables
// are fixed literal data (patient ids "1".."4" plus "default"), loaded once
// and never written after startup, so the source is safe to share across
// concurrent aggregation calls without locking.
//
// Categories without a fixture table (procedures, immunizations, diagnostic
// reports, care plans, vitals) fall through to the live delegate when one is
// configured; with no delegate they report ErrNotFound.
type Mock struct {
	live             Source
	fallbackDefaults bool
	log              zerolog.Logger
}

// NewMock builds a mock source. live is the optional delegate for categories
// with no fixtures and may be nil. fallbackDefaults controls whether a
// patient search with no matches substitutes the bounded default set instead
// of reporting no results.
func NewMock(live Source, fallbackDefaults bool, logger zerolog.Logger) *Mock {
	return &Mock{live: live, fallbackDefaults: fallbackDefaults, log: logger}
}

func (m *Mock) FetchCategory(ctx context.Context, req Request) (*Result, error) {
	if req.Category == CategoryPatient {
		m.log.Debug().Str("patient_id", req.PatientID).Msg("serving mock patient")
		p, ok := mockPatients[req.PatientID]
		if !ok {
			p = mockPatients["default"]
		}
		return &Result{Resources: []map[string]interface{}{p}}, nil
	}

	table, ok := mockTables[req.Category]
	if !ok {
		if m.live != nil {
			return m.live.FetchCategory(ctx, req)
		}
		return nil, ErrNotFound
	}

	m.log.Debug().
		Str("category", req.Category).
		Str("patient_id", req.PatientID).
		Msg("serving mock fixtures")

	entries, ok := table[req.PatientID]
	if !ok {
		entries = table["default"]
	}
	if n, err := strconv.Atoi(req.Params["_count"]); err == nil && n < len(entries) {
		entries = entries[:n]
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return &Result{Resources: entries}, nil
}

func (m *Mock) SearchPatients(_ context.Context, name, identifier string) (*Result, error) {
	m.log.Debug().Str("name", name).Str("identifier", identifier).Msg("mock patient search")

	var matches []map[string]interface{}

	if name != "" {
		needle := strings.ToLower(name)
		if set, ok := mockSearchSets[needle]; ok {
			matches = set
		} else {
			for _, id := range sortedPatientIDs() {
				p := mockPatients[id]
				if strings.Contains(searchableName(p), needle) {
					matches = append(matches, p)
				}
			}
		}
	}

	if identifier != "" && len(matches) == 0 {
		if p, ok := mockPatients[identifier]; ok && identifier != "default" {
			matches = []map[string]interface{}{p}
		}
	}

	if len(matches) == 0 {
		if !m.fallbackDefaults {
			return nil, ErrNotFound
		}
		matches = mockSearchSets["default"]
		if len(matches) > 5 {
			matches = matches[:5]
		}
		if len(matches) == 0 {
			return nil, ErrNotFound
		}
	}

	return &Result{Resources: matches}, nil
}

// searchableName is the lowercase "family given..." concatenation candidates
// are matched against.
func searchableName(p map[string]interface{}) string {
	n := fhir.First(p, "name")
	if n == nil {
		return ""
	}
	parts := []string{fhir.Str(n, "family")}
	parts = append(parts, fhir.Strings(n, "given")...)
	return strings.ToLower(strings.Join(parts, " "))
}

func sortedPatientIDs() []string {
	ids := make([]string, 0, len(mockPatients))
	for id := range mockPatients {
		if id != "default" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
