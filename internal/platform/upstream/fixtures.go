package upstream

// Static fixture data served by Mock. The tables mirror real FHIR resource
// shapes (coded concepts first, free text as fallback) so the extractors
// exercise the same field probes in mock and live mode. All tables are
// read-only after process start.

type obj = map[string]interface{}

// mockTables maps category -> patient id -> resource list. Order within a
// list is significant and preserved.
var mockTables = map[string]map[string][]obj{
	CategoryConditions:   mockConditions,
	CategoryMedications:  mockMedications,
	CategoryAllergies:    mockAllergies,
	CategoryObservations: mockObservations,
}

var mockPatients = map[string]obj{
	"default": {
		"id":        "default",
		"name":      []obj{{"use": "official", "family": "Smith", "given": []string{"John", "Edward"}}},
		"gender":    "male",
		"birthDate": "1974-12-25",
		"address":   []obj{{"use": "home", "line": []string{"123 Main St"}, "city": "Anytown", "state": "CA", "postalCode": "12345"}},
		"telecom": []obj{
			{"system": "phone", "value": "555-555-5555", "use": "home"},
			{"system": "email", "value": "john.smith@example.com"},
		},
		"communication": []obj{{"language": obj{"coding": []obj{{"system": "urn:ietf:bcp:47", "code": "en", "display": "English"}}}}},
		"maritalStatus": obj{"coding": []obj{{"system": "http://terminology.hl7.org/CodeSystem/v3-MaritalStatus", "code": "M", "display": "Married"}}},
		"active":        true,
	},
	"1": {
		"id":        "1",
		"name":      []obj{{"use": "official", "family": "Johnson", "given": []string{"Emily", "Rose"}}},
		"gender":    "female",
		"birthDate": "1985-04-19",
		"address":   []obj{{"use": "home", "line": []string{"456 Oak Avenue"}, "city": "Springfield", "state": "IL", "postalCode": "62704"}},
		"telecom": []obj{
			{"system": "phone", "value": "555-123-4567", "use": "home"},
			{"system": "email", "value": "emily.johnson@example.com"},
		},
		"communication": []obj{{"language": obj{"coding": []obj{{"system": "urn:ietf:bcp:47", "code": "en", "display": "English"}}}}},
		"maritalStatus": obj{"coding": []obj{{"system": "http://terminology.hl7.org/CodeSystem/v3-MaritalStatus", "code": "S", "display": "Single"}}},
		"active":        true,
	},
	"2": {
		"id":        "2",
		"name":      []obj{{"use": "official", "family": "Williams", "given": []string{"Robert", "James"}}},
		"gender":    "male",
		"birthDate": "1952-08-10",
		"address":   []obj{{"use": "home", "line": []string{"789 Elm Street"}, "city": "Riverdale", "state": "NY", "postalCode": "10471"}},
		"telecom": []obj{
			{"system": "phone", "value": "555-987-6543", "use": "home"},
			{"system": "email", "value": "robert.williams@example.com"},
		},
		"communication": []obj{{"language": obj{"coding": []obj{{"system": "urn:ietf:bcp:47", "code": "en", "display": "English"}}}}},
		"maritalStatus": obj{"coding": []obj{{"system": "http://terminology.hl7.org/CodeSystem/v3-MaritalStatus", "code": "M", "display": "Married"}}},
		"active":        true,
	},
	"3": {
		"id":        "3",
		"name":      []obj{{"use": "official", "family": "Garcia", "given": []string{"Maria", "Elena"}}},
		"gender":    "female",
		"birthDate": "1990-11-27",
		"address":   []obj{{"use": "home", "line": []string{"321 Pine Road"}, "city": "Portland", "state": "OR", "postalCode": "97205"}},
		"telecom": []obj{
			{"system": "phone", "value": "555-456-7890", "use": "mobile"},
			{"system": "email", "value": "maria.garcia@example.com"},
		},
		"communication": []obj{
			{"language": obj{"coding": []obj{{"system": "urn:ietf:bcp:47", "code": "en", "display": "English"}}}},
			{"language": obj{"coding": []obj{{"system": "urn:ietf:bcp:47", "code": "es", "display": "Spanish"}}}},
		},
		"maritalStatus": obj{"coding": []obj{{"system": "http://terminology.hl7.org/CodeSystem/v3-MaritalStatus", "code": "S", "display": "Single"}}},
		"active":        true,
	},
	"4": {
		"id":        "4",
		"name":      []obj{{"use": "official", "family": "Chen", "given": []string{"Li"}}},
		"gender":    "female",
		"birthDate": "1945-06-15",
		"address":   []obj{{"use": "home", "line": []string{"555 Maple Court"}, "city": "Chicago", "state": "IL", "postalCode": "60601"}},
		"telecom": []obj{
			{"system": "phone", "value": "555-789-0123", "use": "home"},
			{"system": "email", "value": "li.chen@example.com"},
		},
		"communication": []obj{
			{"language": obj{"coding": []obj{{"system": "urn:ietf:bcp:47", "code": "en", "display": "English"}}}},
			{"language": obj{"coding": []obj{{"system": "urn:ietf:bcp:47", "code": "zh", "display": "Chinese"}}}},
		},
		"maritalStatus": obj{"coding": []obj{{"system": "http://terminology.hl7.org/CodeSystem/v3-MaritalStatus", "code": "W", "display": "Widowed"}}},
		"active":        true,
	},
}

var mockConditions = map[string][]obj{
	"default": {
		{"code": obj{"coding": []obj{{"display": "Essential hypertension"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2020-03-15"},
		{"code": obj{"coding": []obj{{"display": "Type 2 diabetes mellitus"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2018-11-05"},
		{"code": obj{"coding": []obj{{"display": "Hyperlipidemia"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2019-05-22"},
		{"code": obj{"coding": []obj{{"display": "Osteoarthritis of knee"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2021-07-18"},
		{"code": obj{"coding": []obj{{"display": "Gastroesophageal reflux disease"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2017-09-30"},
	},
	"1": {
		{"code": obj{"coding": []obj{{"display": "Asthma"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2010-02-15"},
		{"code": obj{"coding": []obj{{"display": "Seasonal allergic rhinitis"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2012-04-10"},
		{"code": obj{"coding": []obj{{"display": "Anxiety disorder"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2019-11-23"},
	},
	"2": {
		{"code": obj{"coding": []obj{{"display": "Coronary artery disease"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2015-08-20"},
		{"code": obj{"coding": []obj{{"display": "Chronic kidney disease"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2018-03-12"},
		{"code": obj{"coding": []obj{{"display": "Atrial fibrillation"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2017-06-30"},
		{"code": obj{"coding": []obj{{"display": "Gout"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2020-01-15"},
	},
	"3": {
		{"code": obj{"coding": []obj{{"display": "Migraine with aura"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2018-05-12"},
		{"code": obj{"coding": []obj{{"display": "Irritable bowel syndrome"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2016-11-28"},
		{"code": obj{"text": "Major depressive disorder, recurrent"}, "clinicalStatus": obj{"coding": []obj{{"code": "resolved"}}}, "onsetDateTime": "2015-02-15"},
	},
	"4": {
		{"code": obj{"coding": []obj{{"display": "Chronic obstructive pulmonary disease"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2014-09-05"},
		{"code": obj{"coding": []obj{{"display": "Osteoporosis"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2019-03-12"},
		{"code": obj{"coding": []obj{{"display": "Hypothyroidism"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2016-07-25"},
		{"code": obj{"coding": []obj{{"display": "Chronic pain syndrome"}}}, "clinicalStatus": obj{"coding": []obj{{"code": "active"}}}, "onsetDateTime": "2017-11-18"},
	},
}

var mockMedications = map[string][]obj{
	"default": {
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Lisinopril 10 mg oral tablet"}}}, "dosageInstruction": []obj{{"text": "1 tablet once daily"}}, "status": "active"},
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Metformin 500 mg oral tablet"}}}, "dosageInstruction": []obj{{"text": "1 tablet twice daily with meals"}}, "status": "active"},
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Simvastatin 20 mg oral tablet"}}}, "dosageInstruction": []obj{{"text": "1 tablet at bedtime"}}, "status": "active"},
	},
	"1": {
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Albuterol 90 mcg/actuation inhaler"}}}, "dosageInstruction": []obj{{"text": "2 puffs every 4-6 hours as needed for shortness of breath"}}, "status": "active"},
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Fluticasone 110 mcg/actuation inhaler"}}}, "dosageInstruction": []obj{{"text": "2 puffs twice daily"}}, "status": "active"},
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Loratadine 10 mg oral tablet"}}}, "dosageInstruction": []obj{{"text": "1 tablet daily as needed for allergies"}}, "status": "active"},
	},
	"2": {
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Warfarin 5 mg oral tablet"}}}, "dosageInstruction": []obj{{"text": "1 tablet daily as directed by provider"}}, "status": "active"},
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Furosemide 40 mg oral tablet"}}}, "dosageInstruction": []obj{{"text": "1 tablet daily in the morning"}}, "status": "active"},
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Metoprolol succinate 50 mg oral tablet"}}}, "dosageInstruction": []obj{{"text": "1 tablet daily"}}, "status": "active"},
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Allopurinol 300 mg oral tablet"}}}, "dosageInstruction": []obj{{"text": "1 tablet daily"}}, "status": "active"},
	},
	"3": {
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Sumatriptan 50 mg oral tablet"}}}, "dosageInstruction": []obj{{"text": "1 tablet at onset of migraine, may repeat after 2 hours if needed"}}, "status": "active"},
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Dicyclomine 10 mg oral capsule"}}}, "dosageInstruction": []obj{{"text": "1 capsule four times daily before meals and at bedtime"}}, "status": "active"},
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Sertraline 50 mg oral tablet"}}}, "dosageInstruction": []obj{{"text": "1 tablet daily in the morning"}}, "status": "completed"},
	},
	"4": {
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Tiotropium 18 mcg inhalation capsule"}}}, "dosageInstruction": []obj{{"text": "Inhale contents of 1 capsule daily using HandiHaler device"}}, "status": "active"},
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Alendronate 70 mg oral tablet"}}}, "dosageInstruction": []obj{{"text": "1 tablet once weekly on empty stomach with water, remain upright for 30 minutes"}}, "status": "active"},
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Levothyroxine 75 mcg oral tablet"}}}, "dosageInstruction": []obj{{"text": "1 tablet daily in the morning on empty stomach"}}, "status": "active"},
		{"medicationCodeableConcept": obj{"coding": []obj{{"display": "Gabapentin 300 mg oral capsule"}}}, "dosageInstruction": []obj{{"text": "1 capsule three times daily"}}, "status": "active"},
	},
}

var mockAllergies = map[string][]obj{
	"default": {
		{"code": obj{"coding": []obj{{"display": "Penicillin"}}}, "reaction": []obj{{"manifestation": []obj{{"coding": []obj{{"display": "Hives"}}}}}}, "criticality": "high", "verificationStatus": "confirmed"},
		{"code": obj{"coding": []obj{{"display": "Shellfish"}}}, "reaction": []obj{{"manifestation": []obj{{"coding": []obj{{"display": "Anaphylaxis"}}}}}}, "criticality": "high", "verificationStatus": "confirmed"},
	},
	"1": {
		{"code": obj{"coding": []obj{{"display": "Pollen"}}}, "reaction": []obj{{"manifestation": []obj{{"coding": []obj{{"display": "Allergic rhinitis"}}}}}}, "criticality": "low", "verificationStatus": "confirmed"},
		{"code": obj{"coding": []obj{{"display": "Dust mites"}}}, "reaction": []obj{{"manifestation": []obj{{"coding": []obj{{"display": "Wheezing"}}}}}}, "criticality": "moderate", "verificationStatus": "confirmed"},
		{"code": obj{"coding": []obj{{"display": "Pet dander"}}}, "reaction": []obj{{"manifestation": []obj{{"coding": []obj{{"display": "Asthma attack"}}}}}}, "criticality": "high", "verificationStatus": "confirmed"},
	},
	"2": {
		{"code": obj{"coding": []obj{{"display": "Sulfa drugs"}}}, "reaction": []obj{{"manifestation": []obj{{"coding": []obj{{"display": "Rash"}}}}}}, "criticality": "moderate", "verificationStatus": "confirmed"},
		{"code": obj{"coding": []obj{{"display": "NSAIDs"}}}, "reaction": []obj{{"manifestation": []obj{{"coding": []obj{{"display": "Angioedema"}}}}}}, "criticality": "high", "verificationStatus": "confirmed"},
	},
	"3": {
		{"code": obj{"coding": []obj{{"display": "Latex"}}}, "reaction": []obj{{"manifestation": []obj{{"coding": []obj{{"display": "Contact dermatitis"}}}}}}, "criticality": "moderate", "verificationStatus": "confirmed"},
	},
	"4": {
		{"code": obj{"coding": []obj{{"display": "Contrast dye"}}}, "reaction": []obj{{"manifestation": []obj{{"coding": []obj{{"display": "Itching"}}}}}}, "criticality": "moderate", "verificationStatus": "confirmed"},
		{"code": obj{"coding": []obj{{"display": "Aspirin"}}}, "reaction": []obj{{"manifestation": []obj{{"coding": []obj{{"display": "Bronchospasm"}}}}}}, "criticality": "high", "verificationStatus": "confirmed"},
	},
}

var mockObservations = map[string][]obj{
	"default": {
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8867-4", "display": "Heart rate"}}}, "valueQuantity": obj{"value": 72, "unit": "beats/minute"}, "effectiveDateTime": "2024-05-01T10:30:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8480-6", "display": "Systolic blood pressure"}}}, "valueQuantity": obj{"value": 132, "unit": "mmHg"}, "effectiveDateTime": "2024-05-01T10:30:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8462-4", "display": "Diastolic blood pressure"}}}, "valueQuantity": obj{"value": 82, "unit": "mmHg"}, "effectiveDateTime": "2024-05-01T10:30:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8310-5", "display": "Body temperature"}}}, "valueQuantity": obj{"value": 37.2, "unit": "Cel"}, "effectiveDateTime": "2024-05-01T10:30:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "29463-7", "display": "Body weight"}}}, "valueQuantity": obj{"value": 70.3, "unit": "kg"}, "effectiveDateTime": "2024-05-01T10:30:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "39156-5", "display": "BMI"}}}, "valueQuantity": obj{"value": 24.3, "unit": "kg/m2"}, "effectiveDateTime": "2024-05-01T10:30:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "18262-6", "display": "Cholesterol in LDL"}}}, "valueQuantity": obj{"value": 128, "unit": "mg/dL"}, "effectiveDateTime": "2024-04-15T09:00:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "2339-0", "display": "Glucose"}}}, "valueQuantity": obj{"value": 95, "unit": "mg/dL"}, "effectiveDateTime": "2024-04-15T09:00:00Z", "status": "final"},
	},
	"1": {
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8867-4", "display": "Heart rate"}}}, "valueQuantity": obj{"value": 82, "unit": "beats/minute"}, "effectiveDateTime": "2024-05-02T14:15:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8480-6", "display": "Systolic blood pressure"}}}, "valueQuantity": obj{"value": 122, "unit": "mmHg"}, "effectiveDateTime": "2024-05-02T14:15:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8462-4", "display": "Diastolic blood pressure"}}}, "valueQuantity": obj{"value": 76, "unit": "mmHg"}, "effectiveDateTime": "2024-05-02T14:15:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8310-5", "display": "Body temperature"}}}, "valueQuantity": obj{"value": 36.8, "unit": "Cel"}, "effectiveDateTime": "2024-05-02T14:15:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "33536-4", "display": "Exhaled CO2"}}}, "valueQuantity": obj{"value": 4.8, "unit": "%"}, "effectiveDateTime": "2024-05-02T14:15:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "20564-1", "display": "Oxygen saturation in Blood"}}}, "valueQuantity": obj{"value": 97, "unit": "%"}, "effectiveDateTime": "2024-05-02T14:15:00Z", "status": "final"},
	},
	"2": {
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8867-4", "display": "Heart rate"}}}, "valueQuantity": obj{"value": 68, "unit": "beats/minute"}, "effectiveDateTime": "2024-05-03T11:45:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8480-6", "display": "Systolic blood pressure"}}}, "valueQuantity": obj{"value": 145, "unit": "mmHg"}, "effectiveDateTime": "2024-05-03T11:45:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8462-4", "display": "Diastolic blood pressure"}}}, "valueQuantity": obj{"value": 92, "unit": "mmHg"}, "effectiveDateTime": "2024-05-03T11:45:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8310-5", "display": "Body temperature"}}}, "valueQuantity": obj{"value": 36.4, "unit": "Cel"}, "effectiveDateTime": "2024-05-03T11:45:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "32693-4", "display": "Creatinine"}}}, "valueQuantity": obj{"value": 1.8, "unit": "mg/dL"}, "effectiveDateTime": "2024-05-03T11:45:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "2160-0", "display": "Creatinine clearance"}}}, "valueQuantity": obj{"value": 48, "unit": "mL/min"}, "effectiveDateTime": "2024-05-03T11:45:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "4548-4", "display": "Hemoglobin A1c"}}}, "valueQuantity": obj{"value": 6.8, "unit": "%"}, "effectiveDateTime": "2024-05-03T11:45:00Z", "status": "final"},
	},
	"3": {
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8867-4", "display": "Heart rate"}}}, "valueQuantity": obj{"value": 78, "unit": "beats/minute"}, "effectiveDateTime": "2024-05-04T09:30:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8480-6", "display": "Systolic blood pressure"}}}, "valueQuantity": obj{"value": 118, "unit": "mmHg"}, "effectiveDateTime": "2024-05-04T09:30:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8462-4", "display": "Diastolic blood pressure"}}}, "valueQuantity": obj{"value": 74, "unit": "mmHg"}, "effectiveDateTime": "2024-05-04T09:30:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8310-5", "display": "Body temperature"}}}, "valueQuantity": obj{"value": 37.1, "unit": "Cel"}, "effectiveDateTime": "2024-05-04T09:30:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "2345-7", "display": "Glucose"}}}, "valueQuantity": obj{"value": 85, "unit": "mg/dL"}, "effectiveDateTime": "2024-05-04T09:30:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "35209-6", "display": "Anxiety assessment"}}}, "valueCodeableConcept": obj{"coding": []obj{{"code": "LA6568-5", "display": "Moderate"}}}, "effectiveDateTime": "2024-05-04T09:30:00Z", "status": "final"},
	},
	"4": {
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8867-4", "display": "Heart rate"}}}, "valueQuantity": obj{"value": 84, "unit": "beats/minute"}, "effectiveDateTime": "2024-05-05T15:40:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8480-6", "display": "Systolic blood pressure"}}}, "valueQuantity": obj{"value": 138, "unit": "mmHg"}, "effectiveDateTime": "2024-05-05T15:40:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8462-4", "display": "Diastolic blood pressure"}}}, "valueQuantity": obj{"value": 88, "unit": "mmHg"}, "effectiveDateTime": "2024-05-05T15:40:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "8310-5", "display": "Body temperature"}}}, "valueQuantity": obj{"value": 36.9, "unit": "Cel"}, "effectiveDateTime": "2024-05-05T15:40:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "19926-5", "display": "FEV1"}}}, "valueQuantity": obj{"value": 1.8, "unit": "L"}, "effectiveDateTime": "2024-05-05T15:40:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "20564-1", "display": "Oxygen saturation"}}}, "valueQuantity": obj{"value": 93, "unit": "%"}, "effectiveDateTime": "2024-05-05T15:40:00Z", "status": "final"},
		{"code": obj{"coding": []obj{{"system": "http://loinc.org", "code": "69434-4", "display": "Bone mineral density"}}}, "valueQuantity": obj{"value": -2.3, "unit": "score"}, "effectiveDateTime": "2024-05-05T15:40:00Z", "status": "final"},
	},
}

// mockSearchSets holds named search results. The "default" set is the
// bounded substitute used when a search yields no matches.
var mockSearchSets = map[string][]obj{
	"default": {
		mockPatients["1"],
		mockPatients["2"],
		mockPatients["3"],
		mockPatients["4"],
	},
	"john": {
		{
			"id":        "1",
			"name":      []obj{{"use": "official", "family": "Doe", "given": []string{"John"}}},
			"gender":    "male",
			"birthDate": "1990-01-01",
			"address":   []obj{{"use": "home", "line": []string{"123 Main St"}, "city": "Anytown", "state": "CA", "postalCode": "12345"}},
		},
		{
			"id":        "2",
			"name":      []obj{{"use": "official", "family": "Smith", "given": []string{"John", "Robert"}}},
			"gender":    "male",
			"birthDate": "1985-03-15",
		},
	},
	"emily": {
		{
			"id":        "1",
			"name":      []obj{{"use": "official", "family": "Johnson", "given": []string{"Emily", "Rose"}}},
			"gender":    "female",
			"birthDate": "1985-04-19",
		},
	},
	"maria": {
		{
			"id":        "3",
			"name":      []obj{{"use": "official", "family": "Garcia", "given": []string{"Maria", "Elena"}}},
			"gender":    "female",
			"birthDate": "1990-11-27",
		},
	},
	"li": {
		{
			"id":        "4",
			"name":      []obj{{"use": "official", "family": "Chen", "given": []string{"Li"}}},
			"gender":    "female",
			"birthDate": "1945-06-15",
		},
	},
}
