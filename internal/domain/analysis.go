package domain

import (
	"strings"

	"github.com/goccy/go-json"
)

// AnalysisResult is the structured document returned by the vision-AI service
type AnalysisResult struct {
	SkinType               string                    `json:"skinType"`
	Concerns               StringList                `json:"concerns"`
	OverallScore           float64                   `json:"overallScore,omitempty"`
	Summary                string                    `json:"summary,omitempty"`
	ProductRecommendations []AIProductRecommendation `json:"productRecommendations"`
}

// AIProductRecommendation is one product-type suggestion made by the AI
type AIProductRecommendation struct {
	ProductType            string     `json:"productType"`
	RecommendedIngredients StringList `json:"recommendedIngredients,omitempty"`
	RecommendedUsage       string     `json:"recommendedUsage,omitempty"`
	Reason                 string     `json:"reason,omitempty"`
	TargetConcerns         StringList `json:"targetConcerns,omitempty"`
}

// ReportRecommendation pairs an AI suggestion with the catalog products
// selected for it
type ReportRecommendation struct {
	Entry        AIProductRecommendation `json:"entry"`
	Categories   []string                `json:"categories"`
	Products     []Product               `json:"products"`
	EmptyMessage string                  `json:"emptyMessage,omitempty"`
}

// StringList decodes either a JSON array of strings or a single
// comma-separated string. The AI is not consistent about which it emits.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = compactStrings(items)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = compactStrings(strings.Split(single, ","))
	return nil
}

func compactStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
