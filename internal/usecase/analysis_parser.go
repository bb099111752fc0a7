package usecase

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"github.com/skinlens/backend/internal/domain"
)

// Compiled patterns for cleaning AI output before decoding
var (
	// Matches a markdown code fence wrapping the whole document, e.g. ```json ... ```
	codeFencePattern = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

	// Matches a trailing " skin" / "-skinned" qualifier in skin type labels
	skinQualifierPattern = regexp.MustCompile(`[\s-]*(skin|skinned)$`)
)

// skinTypeSynonyms maps localized or descriptive skin type labels onto the
// enumerated skin types
var skinTypeSynonyms = map[string]string{
	"greasy":         domain.SkinTypeOily,
	"油性":             domain.SkinTypeOily,
	"油皮":             domain.SkinTypeOily,
	"dehydrated":     domain.SkinTypeDry,
	"干性":             domain.SkinTypeDry,
	"乾性":             domain.SkinTypeDry,
	"干皮":             domain.SkinTypeDry,
	"中性":             domain.SkinTypeNormal,
	"balanced":       domain.SkinTypeNormal,
	"mixed":          domain.SkinTypeCombination,
	"combo":          domain.SkinTypeCombination,
	"混合性":            domain.SkinTypeCombination,
	"混合":             domain.SkinTypeCombination,
	"sensitized":     domain.SkinTypeSensitive,
	"敏感性":            domain.SkinTypeSensitive,
	"敏感":             domain.SkinTypeSensitive,
	"all":            domain.SkinTypeAll,
	"all skin":       domain.SkinTypeAll,
	"all skin types": domain.SkinTypeAll,
}

// ParseAnalysis decodes the vision-AI analysis document. It tolerates a
// markdown code fence around the JSON and prose before or after the object.
func ParseAnalysis(raw []byte) (*domain.AnalysisResult, error) {
	// Step 1: Trim whitespace and a UTF-8 byte order mark
	body := bytes.TrimSpace(bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf")))
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidAnalysis)
	}

	// Step 2: Unwrap a markdown code fence
	if m := codeFencePattern.FindSubmatch(body); m != nil {
		body = m[1]
	}

	// Step 3: Cut any prose around the outermost JSON object
	if body[0] != '{' {
		start := bytes.IndexByte(body, '{')
		end := bytes.LastIndexByte(body, '}')
		if start < 0 || end <= start {
			return nil, fmt.Errorf("%w: no JSON object found", domain.ErrInvalidAnalysis)
		}
		body = body[start : end+1]
	}

	var analysis domain.AnalysisResult
	if err := json.Unmarshal(body, &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAnalysis, err)
	}

	// Step 4: Normalize free-text fields
	analysis.SkinType = strings.TrimSpace(analysis.SkinType)
	for i := range analysis.ProductRecommendations {
		entry := &analysis.ProductRecommendations[i]
		entry.ProductType = strings.TrimSpace(entry.ProductType)
	}

	return &analysis, nil
}

// NormalizeSkinType maps an AI-reported skin type ("Oily Skin", "油性") onto
// the enumerated skin types. Empty input becomes "all"; unrecognized labels
// are returned lowercased so they still match catalog tags verbatim.
func NormalizeSkinType(skinType string) string {
	cleaned := strings.ToLower(strings.TrimSpace(skinType))
	if cleaned == "" {
		return domain.SkinTypeAll
	}
	if mapped, ok := skinTypeSynonyms[cleaned]; ok {
		return mapped
	}

	cleaned = strings.TrimSpace(skinQualifierPattern.ReplaceAllString(cleaned, ""))
	if mapped, ok := skinTypeSynonyms[cleaned]; ok {
		return mapped
	}
	if isKnownSkinType(cleaned) {
		return cleaned
	}
	if cleaned == "" {
		return domain.SkinTypeAll
	}
	return cleaned
}
