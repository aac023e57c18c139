package record

import (
	"strings"

	"github.com/ehr/medrecord/internal/platform/upstream"
)

// listSeparator joins the rendered entries of one category.
const listSeparator = "\n---\n"

// LOINC codes for the vital signs the vitals view queries.
var vitalCodes = []string{
	"8867-4",  // Heart rate
	"8480-6",  // Blood pressure systolic
	"8462-4",  // Blood pressure diastolic
	"8310-5",  // Body temperature
	"9279-1",  // Respiratory rate
	"8302-2",  // Body height
	"29463-7", // Body weight
	"39156-5", // BMI
	"59408-5", // Oxygen saturation
}

// categorySpec drives the shared fetch/extract/render cycle for one resource
// category: where to fetch it, how to render each entry, and the fixed
// sentences for the empty and failure outcomes.
type categorySpec struct {
	name     string
	path     string
	byID     bool
	params   map[string]string
	extract  func(map[string]interface{}) (string, error)
	notFound string
	invalid  string
	failure  string
}

func renderWith[T interface{ Render() string }](extract func(map[string]interface{}) (T, error)) func(map[string]interface{}) (string, error) {
	return func(raw map[string]interface{}) (string, error) {
		rec, err := extract(raw)
		if err != nil {
			return "", err
		}
		return rec.Render(), nil
	}
}

var (
	patientSpec = categorySpec{
		name:     upstream.CategoryPatient,
		path:     "Patient",
		byID:     true,
		extract:  renderWith(ExtractPatient),
		notFound: "Patient information not available",
		invalid:  "Patient information not available",
		failure:  "Unable to fetch patient information.",
	}

	observationsSpec = categorySpec{
		name:     upstream.CategoryObservations,
		path:     "Observation",
		params:   map[string]string{"_count": "10", "_sort": "-date"},
		extract:  renderWith(ExtractObservation),
		notFound: "No observations found for this patient.",
		invalid:  "No valid observations found for this patient.",
		failure:  "Unable to retrieve observations for this patient.",
	}

	conditionsSpec = categorySpec{
		name:     upstream.CategoryConditions,
		path:     "Condition",
		params:   map[string]string{"_count": "20", "_sort": "-recorded-date"},
		extract:  renderWith(ExtractCondition),
		notFound: "No conditions found for this patient.",
		invalid:  "No valid conditions found for this patient.",
		failure:  "Unable to retrieve conditions for this patient.",
	}

	medicationsSpec = categorySpec{
		name:     upstream.CategoryMedications,
		path:     "MedicationRequest",
		params:   map[string]string{"_count": "15", "_sort": "-authored"},
		extract:  renderWith(ExtractMedication),
		notFound: "No medications found for this patient.",
		invalid:  "No valid medications found for this patient.",
		failure:  "Unable to retrieve medications for this patient.",
	}

	allergiesSpec = categorySpec{
		name:     upstream.CategoryAllergies,
		path:     "AllergyIntolerance",
		params:   map[string]string{"_count": "15"},
		extract:  renderWith(ExtractAllergy),
		notFound: "No allergies found for this patient.",
		invalid:  "No valid allergies found for this patient.",
		failure:  "Unable to retrieve allergies for this patient.",
	}

	proceduresSpec = categorySpec{
		name:     upstream.CategoryProcedures,
		path:     "Procedure",
		params:   map[string]string{"_count": "20", "_sort": "-date"},
		extract:  renderWith(ExtractProcedure),
		notFound: "No procedures found for this patient.",
		invalid:  "No valid procedures found for this patient.",
		failure:  "Unable to retrieve procedures for this patient.",
	}

	immunizationsSpec = categorySpec{
		name:     upstream.CategoryImmunizations,
		path:     "Immunization",
		params:   map[string]string{"_count": "20"},
		extract:  renderWith(ExtractImmunization),
		notFound: "No immunizations found for this patient.",
		invalid:  "No valid immunizations found for this patient.",
		failure:  "Unable to retrieve immunizations for this patient.",
	}

	diagnosticReportsSpec = categorySpec{
		name:     upstream.CategoryDiagnosticReports,
		path:     "DiagnosticReport",
		params:   map[string]string{"_count": "20", "_sort": "-date"},
		extract:  renderWith(ExtractDiagnosticReport),
		notFound: "No diagnostic reports found for this patient.",
		invalid:  "No valid diagnostic reports found for this patient.",
		failure:  "Unable to retrieve diagnostic reports for this patient.",
	}

	carePlansSpec = categorySpec{
		name:     upstream.CategoryCarePlans,
		path:     "CarePlan",
		params:   map[string]string{"_count": "20", "_sort": "-date"},
		extract:  renderWith(ExtractCarePlan),
		notFound: "No care plans found for this patient.",
		invalid:  "No valid care plans found for this patient.",
		failure:  "Unable to retrieve care plans for this patient.",
	}

	vitalsSpec = categorySpec{
		name: upstream.CategoryVitals,
		path: "Observation",
		params: map[string]string{
			"code":   strings.Join(vitalCodes, "|"),
			"_count": "50",
			"_sort":  "-date",
		},
		notFound: "No vital signs found for this patient.",
		invalid:  "No valid vital signs found for this patient.",
		failure:  "Unable to retrieve vital signs for this patient.",
	}
)
