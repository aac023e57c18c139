package record

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ehr/medrecord/internal/platform/fhir"
	"github.com/ehr/medrecord/internal/platform/metrics"
	"github.com/ehr/medrecord/internal/platform/upstream"
)

// SummaryOrder is the fixed category order of the summary layout. Both the
// narrative summary and the structured medical data views follow it.
var SummaryOrder = []string{
	upstream.CategoryPatient,
	upstream.CategoryVitals,
	upstream.CategoryConditions,
	upstream.CategoryMedications,
	upstream.CategoryAllergies,
	upstream.CategoryImmunizations,
	upstream.CategoryProcedures,
	upstream.CategoryDiagnosticReports,
	upstream.CategoryCarePlans,
	upstream.CategoryObservations,
}

const defaultObservationCount = 10

// Service aggregates a patient's clinical record from the upstream source.
// All operations are read-only and return narrative text; upstream failures
// degrade to fixed per-category sentences, never to errors.
type Service struct {
	src upstream.Source
	log zerolog.Logger
}

func NewService(src upstream.Source, logger zerolog.Logger) *Service {
	return &Service{src: src, log: logger}
}

// fetchCategory runs one category's request/extract/render cycle. Each call
// issues exactly one upstream fetch; the not-found and failure outcomes
// render as the category's fixed sentences.
func (s *Service) fetchCategory(ctx context.Context, spec categorySpec, patientID string, overrides map[string]string) string {
	id := fhir.NormalizePatientID(patientID)

	params := make(map[string]string, len(spec.params)+len(overrides))
	for k, v := range spec.params {
		params[k] = v
	}
	for k, v := range overrides {
		params[k] = v
	}

	start := time.Now()
	res, err := s.src.FetchCategory(ctx, upstream.Request{
		Category:  spec.name,
		Path:      spec.path,
		PatientID: id,
		ByID:      spec.byID,
		Params:    params,
	})
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			metrics.RecordCategoryFetch(spec.name, "not_found", time.Since(start))
			return spec.notFound
		}
		metrics.RecordCategoryFetch(spec.name, "error", time.Since(start))
		s.log.Error().
			Err(err).
			Str("category", spec.name).
			Str("patient_id", id).
			Msg("category fetch failed")
		return spec.failure
	}
	metrics.RecordCategoryFetch(spec.name, "ok", time.Since(start))

	lines := make([]string, 0, len(res.Resources))
	for _, raw := range res.Resources {
		line, err := spec.extract(raw)
		if err != nil {
			s.log.Debug().
				Err(err).
				Str("category", spec.name).
				Str("patient_id", id).
				Msg("skipping malformed resource")
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return spec.invalid
	}
	return strings.Join(lines, listSeparator)
}

// GetPatient returns the demographics view of one patient.
func (s *Service) GetPatient(ctx context.Context, patientID string) string {
	return s.fetchCategory(ctx, patientSpec, patientID, nil)
}

// GetObservations returns the patient's most recent observations. A
// non-positive count falls back to the default of 10.
func (s *Service) GetObservations(ctx context.Context, patientID string, count int) string {
	if count <= 0 {
		count = defaultObservationCount
	}
	return s.fetchCategory(ctx, observationsSpec, patientID, map[string]string{
		"_count": strconv.Itoa(count),
	})
}

func (s *Service) GetConditions(ctx context.Context, patientID string) string {
	return s.fetchCategory(ctx, conditionsSpec, patientID, nil)
}

func (s *Service) GetMedications(ctx context.Context, patientID string) string {
	return s.fetchCategory(ctx, medicationsSpec, patientID, nil)
}

func (s *Service) GetAllergies(ctx context.Context, patientID string) string {
	return s.fetchCategory(ctx, allergiesSpec, patientID, nil)
}

func (s *Service) GetProcedures(ctx context.Context, patientID string) string {
	return s.fetchCategory(ctx, proceduresSpec, patientID, nil)
}

func (s *Service) GetImmunizations(ctx context.Context, patientID string) string {
	return s.fetchCategory(ctx, immunizationsSpec, patientID, nil)
}

func (s *Service) GetDiagnosticReports(ctx context.Context, patientID string) string {
	return s.fetchCategory(ctx, diagnosticReportsSpec, patientID, nil)
}

func (s *Service) GetCarePlans(ctx context.Context, patientID string) string {
	return s.fetchCategory(ctx, carePlansSpec, patientID, nil)
}

// GetVitals returns the most recent reading per vital sign. The upstream
// result is sorted newest first, so the first occurrence of each LOINC code
// wins and later duplicates are dropped.
func (s *Service) GetVitals(ctx context.Context, patientID string) string {
	id := fhir.NormalizePatientID(patientID)

	params := make(map[string]string, len(vitalsSpec.params))
	for k, v := range vitalsSpec.params {
		params[k] = v
	}

	start := time.Now()
	res, err := s.src.FetchCategory(ctx, upstream.Request{
		Category:  vitalsSpec.name,
		Path:      vitalsSpec.path,
		PatientID: id,
		Params:    params,
	})
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			metrics.RecordCategoryFetch(vitalsSpec.name, "not_found", time.Since(start))
			return vitalsSpec.notFound
		}
		metrics.RecordCategoryFetch(vitalsSpec.name, "error", time.Since(start))
		s.log.Error().
			Err(err).
			Str("category", vitalsSpec.name).
			Str("patient_id", id).
			Msg("category fetch failed")
		return vitalsSpec.failure
	}
	metrics.RecordCategoryFetch(vitalsSpec.name, "ok", time.Since(start))

	seen := make(map[string]bool)
	var lines []string
	for _, raw := range res.Resources {
		vital, err := ExtractVital(raw)
		if err != nil {
			continue
		}
		if seen[vital.Code] {
			continue
		}
		seen[vital.Code] = true
		lines = append(lines, vital.Render())
	}
	if len(lines) == 0 {
		return vitalsSpec.invalid
	}
	return strings.Join(lines, listSeparator)
}

// GetPatientSummary assembles the narrative medical summary. All category
// fetches run concurrently; the join waits for every one regardless of
// outcome, so a single failing category degrades only its own section.
func (s *Service) GetPatientSummary(ctx context.Context, patientID string) string {
	results := s.fetchAll(ctx, patientID, defaultObservationCount)

	sections := []string{
		"=== PATIENT MEDICAL SUMMARY ===",
		"",
		"## PATIENT INFORMATION",
		results[upstream.CategoryPatient],
		"",
		"## VITAL SIGNS",
		results[upstream.CategoryVitals],
		"",
		"## MEDICAL CONDITIONS",
		results[upstream.CategoryConditions],
		"",
		"## MEDICATIONS",
		results[upstream.CategoryMedications],
		"",
		"## ALLERGIES",
		results[upstream.CategoryAllergies],
		"",
		"## IMMUNIZATIONS",
		results[upstream.CategoryImmunizations],
		"",
		"## PROCEDURES",
		results[upstream.CategoryProcedures],
		"",
		"## DIAGNOSTIC REPORTS",
		results[upstream.CategoryDiagnosticReports],
		"",
		"## CARE PLANS",
		results[upstream.CategoryCarePlans],
		"",
		"## RECENT OBSERVATIONS",
		results[upstream.CategoryObservations],
		"",
		"=== END OF SUMMARY ===",
	}
	return strings.Join(sections, "\n")
}

// GetAllMedicalData returns the per-category results as a map for machine
// consumption. Iterate with SummaryOrder for deterministic output.
func (s *Service) GetAllMedicalData(ctx context.Context, patientID string) map[string]string {
	return s.fetchAll(ctx, patientID, 15)
}

// fetchAll fans out every category concurrently and joins when all are done.
// Each goroutine owns its own result slot; there is no early cancellation,
// partial results are always usable.
func (s *Service) fetchAll(ctx context.Context, patientID string, observationCount int) map[string]string {
	fetches := map[string]func() string{
		upstream.CategoryPatient: func() string { return s.GetPatient(ctx, patientID) },
		upstream.CategoryVitals:  func() string { return s.GetVitals(ctx, patientID) },
		upstream.CategoryConditions: func() string {
			return s.GetConditions(ctx, patientID)
		},
		upstream.CategoryMedications: func() string {
			return s.GetMedications(ctx, patientID)
		},
		upstream.CategoryAllergies: func() string {
			return s.GetAllergies(ctx, patientID)
		},
		upstream.CategoryImmunizations: func() string {
			return s.GetImmunizations(ctx, patientID)
		},
		upstream.CategoryProcedures: func() string {
			return s.GetProcedures(ctx, patientID)
		},
		upstream.CategoryDiagnosticReports: func() string {
			return s.GetDiagnosticReports(ctx, patientID)
		},
		upstream.CategoryCarePlans: func() string {
			return s.GetCarePlans(ctx, patientID)
		},
		upstream.CategoryObservations: func() string {
			return s.GetObservations(ctx, patientID, observationCount)
		},
	}

	results := make(map[string]string, len(fetches))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for name, fetch := range fetches {
		wg.Add(1)
		go func(name string, fetch func() string) {
			defer wg.Done()
			text := fetch()
			mu.Lock()
			results[name] = text
			mu.Unlock()
		}(name, fetch)
	}
	wg.Wait()
	return results
}
