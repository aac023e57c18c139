// Package record implements the patient record aggregation service: it
// fetches the clinical resource categories for one patient from the
// configured upstream source, normalizes each raw resource into a display
// record, and assembles the narrative summary and structured medical data
// views consumed by the API.
package record

import (
	"fmt"
	"strings"

	"github.com/ehr/medrecord/internal/platform/fhir"
)

// ExtractionError reports a raw resource too malformed to render at all.
// The surrounding entries still render; the offending one is skipped.
type ExtractionError struct {
	Category string
	Reason   string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("cannot extract %s resource: %s", e.Category, e.Reason)
}

// Patient is the normalized demographics view of a Patient resource.
type Patient struct {
	Name      string
	Gender    string
	BirthDate string
	Address   string
}

func (p Patient) Render() string {
	return fmt.Sprintf("Name: %s\nGender: %s\nBirth Date: %s\nAddress: %s",
		p.Name, p.Gender, p.BirthDate, p.Address)
}

// ExtractPatient never fails on missing fields; every field degrades to its
// placeholder. Only a missing resource is an error.
func ExtractPatient(raw map[string]interface{}) (Patient, error) {
	if raw == nil {
		return Patient{}, &ExtractionError{Category: "patient", Reason: "resource is not an object"}
	}
	p := Patient{
		Name: fhir.Chain("Unknown", func() string {
			name := fhir.First(raw, "name")
			if name == nil {
				return ""
			}
			given := strings.Join(fhir.Strings(name, "given"), " ")
			family := fhir.Str(name, "family")
			return strings.TrimSpace(given + " " + family)
		}),
		Gender:    fhir.Chain("Unknown", func() string { return fhir.Str(raw, "gender") }),
		BirthDate: fhir.Chain("Unknown", func() string { return fhir.Str(raw, "birthDate") }),
		Address: fhir.Chain("No address on file", func() string {
			addr := fhir.First(raw, "address")
			if addr == nil {
				return ""
			}
			line := strings.Join(fhir.Strings(addr, "line"), ", ")
			full := fmt.Sprintf("%s, %s, %s %s", line, fhir.Str(addr, "city"), fhir.Str(addr, "state"), fhir.Str(addr, "postalCode"))
			return strings.TrimSpace(strings.ReplaceAll(full, ", ,", ","))
		}),
	}
	return p, nil
}

// Observation is the normalized view of an Observation resource.
type Observation struct {
	Test   string
	Value  string
	Date   string
	Status string
}

func (o Observation) Render() string {
	return fmt.Sprintf("%s: %s (%s, %s)", o.Test, o.Value, o.Date, o.Status)
}

func ExtractObservation(raw map[string]interface{}) (Observation, error) {
	if raw == nil {
		return Observation{}, &ExtractionError{Category: "observations", Reason: "resource is not an object"}
	}
	return Observation{
		Test: fhir.Chain("Unknown Test", func() string { return fhir.CodingDisplay(raw, "code") }),
		Value: fhir.Chain("No value recorded",
			func() string { return fhir.QuantityString(raw, "valueQuantity") },
			func() string { return fhir.Str(raw, "valueCodeableConcept", "text") },
			func() string { return fhir.CodingDisplay(raw, "valueCodeableConcept") },
			func() string { return fhir.Str(raw, "valueString") },
		),
		Date:   fhir.Chain("Unknown Date", func() string { return fhir.Str(raw, "effectiveDateTime") }),
		Status: fhir.Chain("unknown", func() string { return fhir.Str(raw, "status") }),
	}, nil
}

// Condition is the normalized view of a Condition resource.
type Condition struct {
	Name   string
	Status string
	Onset  string
}

func (c Condition) Render() string {
	return fmt.Sprintf("%s (Status: %s, Onset: %s)", c.Name, c.Status, c.Onset)
}

func ExtractCondition(raw map[string]interface{}) (Condition, error) {
	if raw == nil {
		return Condition{}, &ExtractionError{Category: "conditions", Reason: "resource is not an object"}
	}
	return Condition{
		Name: fhir.Chain("Unknown Condition",
			func() string { return fhir.CodingDisplay(raw, "code") },
			func() string { return fhir.Str(raw, "code", "text") },
		),
		Status: fhir.Chain("unknown", func() string { return fhir.CodingCode(raw, "clinicalStatus") }),
		Onset:  fhir.Chain("Unknown onset", func() string { return fhir.Str(raw, "onsetDateTime") }),
	}, nil
}

// Medication is the normalized view of a MedicationRequest resource.
type Medication struct {
	Name   string
	Status string
	Dosage string
}

func (m Medication) Render() string {
	return fmt.Sprintf("%s (Status: %s, Dosage: %s)", m.Name, m.Status, m.Dosage)
}

func ExtractMedication(raw map[string]interface{}) (Medication, error) {
	if raw == nil {
		return Medication{}, &ExtractionError{Category: "medications", Reason: "resource is not an object"}
	}
	return Medication{
		Name: fhir.Chain("Unknown Medication",
			func() string { return fhir.CodingDisplay(raw, "medicationCodeableConcept") },
			func() string { return fhir.Str(raw, "medicationCodeableConcept", "text") },
		),
		Status: fhir.Chain("unknown", func() string { return fhir.Str(raw, "status") }),
		Dosage: fhir.Chain("No dosage information", func() string {
			return fhir.Str(fhir.First(raw, "dosageInstruction"), "text")
		}),
	}, nil
}

// Allergy is the normalized view of an AllergyIntolerance resource.
type Allergy struct {
	Allergen    string
	Reaction    string
	Criticality string
}

func (a Allergy) Render() string {
	return fmt.Sprintf("%s (Reaction: %s, Criticality: %s)", a.Allergen, a.Reaction, a.Criticality)
}

func ExtractAllergy(raw map[string]interface{}) (Allergy, error) {
	if raw == nil {
		return Allergy{}, &ExtractionError{Category: "allergies", Reason: "resource is not an object"}
	}
	manifestation := fhir.First(fhir.First(raw, "reaction"), "manifestation")
	return Allergy{
		Allergen: fhir.Chain("Unknown Allergen",
			func() string { return fhir.CodingDisplay(raw, "code") },
			func() string { return fhir.Str(raw, "code", "text") },
		),
		Reaction: fhir.Chain("Unknown reaction",
			func() string { return fhir.Str(fhir.First(manifestation, "coding"), "display") },
			func() string { return fhir.Str(manifestation, "text") },
		),
		Criticality: fhir.Chain("unknown", func() string { return fhir.Str(raw, "criticality") }),
	}, nil
}

// Procedure is the normalized view of a Procedure resource.
type Procedure struct {
	Name      string
	Date      string
	Status    string
	Performer string
}

func (p Procedure) Render() string {
	return fmt.Sprintf("%s\nDate: %s\nStatus: %s\nPerformer: %s", p.Name, p.Date, p.Status, p.Performer)
}

func ExtractProcedure(raw map[string]interface{}) (Procedure, error) {
	if raw == nil {
		return Procedure{}, &ExtractionError{Category: "procedures", Reason: "resource is not an object"}
	}
	return Procedure{
		Name: fhir.Chain("Unknown Procedure",
			func() string { return fhir.CodingDisplay(raw, "code") },
			func() string { return fhir.Str(raw, "code", "text") },
		),
		Date: fhir.Chain("Unknown date",
			func() string { return fhir.Str(raw, "performedDateTime") },
			func() string { return fhir.Str(raw, "performedPeriod", "start") },
		),
		Status: fhir.Chain("unknown", func() string { return fhir.Str(raw, "status") }),
		Performer: fhir.Chain("Unknown performer", func() string {
			return fhir.Str(fhir.First(raw, "performer"), "actor", "display")
		}),
	}, nil
}

// Immunization is the normalized view of an Immunization resource.
type Immunization struct {
	Vaccine string
	Date    string
	Status  string
	Dose    string
}

func (i Immunization) Render() string {
	return fmt.Sprintf("%s\nDate: %s\nStatus: %s\nDose: %s", i.Vaccine, i.Date, i.Status, i.Dose)
}

func ExtractImmunization(raw map[string]interface{}) (Immunization, error) {
	if raw == nil {
		return Immunization{}, &ExtractionError{Category: "immunizations", Reason: "resource is not an object"}
	}
	return Immunization{
		Vaccine: fhir.Chain("Unknown vaccine",
			func() string { return fhir.CodingDisplay(raw, "vaccineCode") },
			func() string { return fhir.Str(raw, "vaccineCode", "text") },
		),
		Date:   fhir.Chain("Unknown date", func() string { return fhir.Str(raw, "occurrenceDateTime") }),
		Status: fhir.Chain("unknown", func() string { return fhir.Str(raw, "status") }),
		Dose: fhir.Chain("Dose information not available", func() string {
			return fhir.QuantityString(raw, "doseQuantity")
		}),
	}, nil
}

// DiagnosticReport is the normalized view of a DiagnosticReport resource.
type DiagnosticReport struct {
	Type       string
	Date       string
	Status     string
	Conclusion string
}

func (d DiagnosticReport) Render() string {
	return fmt.Sprintf("%s\nDate: %s\nStatus: %s\nConclusion: %s", d.Type, d.Date, d.Status, d.Conclusion)
}

func ExtractDiagnosticReport(raw map[string]interface{}) (DiagnosticReport, error) {
	if raw == nil {
		return DiagnosticReport{}, &ExtractionError{Category: "diagnosticReports", Reason: "resource is not an object"}
	}
	return DiagnosticReport{
		Type: fhir.Chain("Unknown report",
			func() string { return fhir.CodingDisplay(raw, "code") },
			func() string { return fhir.Str(raw, "code", "text") },
		),
		Date: fhir.Chain("Unknown date",
			func() string { return fhir.Str(raw, "effectiveDateTime") },
			func() string { return fhir.Str(raw, "issued") },
		),
		Status:     fhir.Chain("unknown", func() string { return fhir.Str(raw, "status") }),
		Conclusion: fhir.Chain("No conclusion provided", func() string { return fhir.Str(raw, "conclusion") }),
	}, nil
}

// CarePlan is the normalized view of a CarePlan resource.
type CarePlan struct {
	Title  string
	Status string
	Period string
	Goals  string
}

func (c CarePlan) Render() string {
	return fmt.Sprintf("%s\nStatus: %s\nPeriod: %s\nGoals: %s", c.Title, c.Status, c.Period, c.Goals)
}

func ExtractCarePlan(raw map[string]interface{}) (CarePlan, error) {
	if raw == nil {
		return CarePlan{}, &ExtractionError{Category: "carePlans", Reason: "resource is not an object"}
	}
	return CarePlan{
		Title:  fhir.Chain("Untitled Care Plan", func() string { return fhir.Str(raw, "title") }),
		Status: fhir.Chain("unknown", func() string { return fhir.Str(raw, "status") }),
		Period: fhir.Chain("No time period specified", func() string {
			period := fhir.Map(raw, "period")
			if period == nil {
				return ""
			}
			start := fhir.Chain("unknown start", func() string { return fhir.Str(period, "start") })
			end := fhir.Chain("ongoing", func() string { return fhir.Str(period, "end") })
			return fmt.Sprintf("From %s to %s", start, end)
		}),
		Goals: fhir.Chain("No specific goals documented.", func() string {
			var goals []string
			for _, g := range fhir.List(raw, "goal") {
				ref, ok := g.(map[string]interface{})
				if !ok {
					continue
				}
				if display := fhir.Str(ref, "display"); display != "" {
					goals = append(goals, display)
				}
			}
			return strings.Join(goals, ", ")
		}),
	}, nil
}

// Vital is the normalized view of a vital-sign Observation. Code carries
// the LOINC code used for deduplication.
type Vital struct {
	Code  string
	Name  string
	Value string
	Date  string
}

func (v Vital) Render() string {
	return fmt.Sprintf("%s: %s (%s)", v.Name, v.Value, v.Date)
}

// Blood pressure observations split their reading across components.
const (
	loincSystolicBP  = "8480-6"
	loincDiastolicBP = "8462-4"
)

// ExtractVital fails when the observation has no identifiable coding,
// because an unidentifiable vital cannot participate in deduplication.
func ExtractVital(raw map[string]interface{}) (Vital, error) {
	if raw == nil {
		return Vital{}, &ExtractionError{Category: "vitals", Reason: "resource is not an object"}
	}
	code := fhir.CodingCode(raw, "code")
	if code == "" {
		return Vital{}, &ExtractionError{Category: "vitals", Reason: "observation has no coding"}
	}
	return Vital{
		Code: code,
		Name: fhir.Chain("Unknown Vital", func() string { return fhir.CodingDisplay(raw, "code") }),
		Value: fhir.Chain("No value recorded",
			func() string { return fhir.QuantityString(raw, "valueQuantity") },
			func() string {
				if code != loincSystolicBP && code != loincDiastolicBP {
					return ""
				}
				return bloodPressureComponents(raw)
			},
		),
		Date: fhir.Chain("Unknown Date", func() string { return fhir.Str(raw, "effectiveDateTime") }),
	}, nil
}

// bloodPressureComponents joins the component readings of a composite blood
// pressure observation, e.g. "Systolic: 120 mmHg, Diastolic: 80 mmHg".
func bloodPressureComponents(raw map[string]interface{}) string {
	var parts []string
	for _, c := range fhir.List(raw, "component") {
		comp, ok := c.(map[string]interface{})
		if !ok {
			continue
		}
		name := fhir.CodingDisplay(comp, "code")
		value := fhir.QuantityString(comp, "valueQuantity")
		if name == "" || value == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, value))
	}
	return strings.Join(parts, ", ")
}
