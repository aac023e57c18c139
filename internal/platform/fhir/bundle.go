package fhir

// BundleEntries unwraps the entry[].resource objects of a searchset Bundle.
// Entries without a resource object are skipped. A nil or entry-less bundle
// yields nil.
func BundleEntries(bundle map[string]interface{}) []map[string]interface{} {
	var out []map[string]interface{}
	for _, e := range List(bundle, "entry") {
		entry, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		if res := Map(entry, "resource"); res != nil {
			out = append(out, res)
		}
	}
	return out
}
