package record

import (
	"context"
	"fmt"
	"strings"

	"github.com/ehr/medrecord/internal/platform/upstream"
)

// conditionAdvice maps a condition keyword to the extra recommendations it
// triggers. Matching is case-insensitive substring over the rendered
// conditions text.
var conditionAdvice = []struct {
	keywords []string
	advice   []string
}{
	{
		keywords: []string{"hypertension", "blood pressure"},
		advice: []string{
			"Consider blood pressure monitoring at home",
			"Reduce sodium intake",
		},
	},
	{
		keywords: []string{"diabetes"},
		advice: []string{
			"Regular blood glucose monitoring",
			"Be mindful of carbohydrate intake",
		},
	},
	{
		keywords: []string{"asthma", "copd"},
		advice: []string{
			"Avoid known respiratory triggers",
			"Keep rescue inhalers accessible",
		},
	},
}

var baselineAdvice = []string{
	"Regular follow-ups with your healthcare provider for all your conditions",
	"Maintain a balanced diet rich in fruits, vegetables, and whole grains",
	"Stay physically active as appropriate for your condition",
	"Take medications as prescribed",
	"Monitor your symptoms and report any changes to your provider",
}

const adviceDisclaimer = "NOTE: These are general recommendations. Please consult with your healthcare provider for personalized medical advice."

// GetHealthRecommendations builds rule-based health guidance from the
// patient's aggregated record. It fetches the full medical data set and
// appends condition-specific advice on top of the general baseline.
func (s *Service) GetHealthRecommendations(ctx context.Context, patientID string) string {
	data := s.GetAllMedicalData(ctx, patientID)
	conditions := strings.ToLower(data[upstream.CategoryConditions])

	lines := []string{"Based on your medical profile, consider these general recommendations:", ""}
	n := 0
	for _, advice := range baselineAdvice {
		n++
		lines = append(lines, fmt.Sprintf("%d. %s", n, advice))
	}
	for _, rule := range conditionAdvice {
		for _, kw := range rule.keywords {
			if strings.Contains(conditions, kw) {
				for _, advice := range rule.advice {
					n++
					lines = append(lines, fmt.Sprintf("%d. %s", n, advice))
				}
				break
			}
		}
	}
	lines = append(lines, "", adviceDisclaimer)
	return strings.Join(lines, "\n")
}
