// Package search implements patient lookup by name or identifier. It is a
// single-category case of the record pipeline: one fetch, each match
// rendered through the patient extractor.
package search

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ehr/medrecord/internal/domain/record"
	"github.com/ehr/medrecord/internal/platform/fhir"
	"github.com/ehr/medrecord/internal/platform/metrics"
	"github.com/ehr/medrecord/internal/platform/upstream"
)

const (
	// matchSeparator joins the rendered patient matches.
	matchSeparator = "\n\n======\n\n"

	promptSentence  = "Please provide a name or identifier to search for patients."
	noMatchSentence = "No patients found matching your search criteria."
	invalidSentence = "No valid patient records found matching your search criteria."
	failureSentence = "Unable to search for patients."
)

type Service struct {
	src upstream.Source
	log zerolog.Logger
}

func NewService(src upstream.Source, logger zerolog.Logger) *Service {
	return &Service{src: src, log: logger}
}

// SearchPatients looks up patients by name and/or identifier and renders
// each match with a normalized id label. With both arguments empty it
// returns the guidance prompt without touching the source.
func (s *Service) SearchPatients(ctx context.Context, name, identifier string) string {
	if name == "" && identifier == "" {
		return promptSentence
	}

	res, err := s.src.SearchPatients(ctx, name, identifier)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			metrics.RecordPatientSearch("empty")
			return noMatchSentence
		}
		metrics.RecordPatientSearch("error")
		s.log.Error().
			Err(err).
			Str("name", name).
			Str("identifier", identifier).
			Msg("patient search failed")
		return failureSentence
	}

	var entries []string
	for _, raw := range res.Resources {
		p, err := record.ExtractPatient(raw)
		if err != nil {
			continue
		}
		id := fhir.NormalizePatientID(fhir.Str(raw, "id"))
		if id == "" {
			id = "Unknown"
		}
		entries = append(entries, "Patient ID: "+id+"\n"+p.Render())
	}
	if len(entries) == 0 {
		metrics.RecordPatientSearch("empty")
		return invalidSentence
	}
	metrics.RecordPatientSearch("matched")
	return strings.Join(entries, matchSeparator)
}
