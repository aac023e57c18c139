package fhir

import "strings"

// NormalizePatientID canonicalizes a patient identifier. Legacy callers pass
// ids like "Patient3" or "pat2"; the canonical form is the bare suffix.
// The "Patient" prefix is tried before "pat", and stripping repeats until
// neither matches so that normalizing an already-normalized id is a no-op.
// No numeric validation is performed and the function never fails; at worst
// the input is returned unchanged.
func NormalizePatientID(id string) string {
	for {
		switch {
		case strings.HasPrefix(id, "Patient"):
			id = strings.TrimPrefix(id, "Patient")
		case strings.HasPrefix(id, "pat"):
			id = strings.TrimPrefix(id, "pat")
		default:
			return id
		}
	}
}
