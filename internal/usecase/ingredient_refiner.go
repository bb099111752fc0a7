package usecase

import (
	"strings"

	"github.com/skinlens/backend/internal/domain"
)

// ingredientRuleGroup holds the per-skin-type ingredient allow-lists for a
// family of categories where ingredient semantics are well understood
type ingredientRuleGroup struct {
	name       string
	categories []string
	allow      map[string][]string // skin type -> required ingredient substrings
}

var ingredientRuleGroups = []ingredientRuleGroup{
	{
		name:       "cleansers",
		categories: []string{domain.CategoryCleanser, "Face Wash"},
		allow: map[string][]string{
			domain.SkinTypeOily:        {"salicylic acid", "tea tree", "glycolic"},
			domain.SkinTypeDry:         {"ceramide", "hyaluronic acid", "glycerin"},
			domain.SkinTypeNormal:      {"glycerin", "ceramide", "niacinamide", "amino acid"},
			domain.SkinTypeCombination: {"salicylic acid", "niacinamide", "glycolic", "gluconolactone"},
			domain.SkinTypeSensitive:   {"centella", "oat", "allantoin", "ceramide", "aloe"},
		},
	},
	{
		name:       "acne treatments",
		categories: []string{"Acne Treatment", domain.CategoryTargetedTreatment, "Spot Treatment"},
		allow: map[string][]string{
			domain.SkinTypeOily:        {"salicylic acid", "benzoyl peroxide", "adapalene"},
			domain.SkinTypeDry:         {"azelaic acid", "niacinamide", "sulfur"},
			domain.SkinTypeNormal:      {"salicylic acid", "benzoyl peroxide", "adapalene", "azelaic acid"},
			domain.SkinTypeCombination: {"salicylic acid", "adapalene", "niacinamide"},
			domain.SkinTypeSensitive:   {"azelaic acid", "sulfur", "centella"},
		},
	},
	{
		name:       "moisturizers",
		categories: []string{domain.CategoryMoisturizer, "Moisturiser", domain.CategoryHydrator},
		allow: map[string][]string{
			domain.SkinTypeOily:        {"niacinamide", "hyaluronic acid", "squalane"},
			domain.SkinTypeDry:         {"hyaluronic acid", "glycerin", "ceramide"},
			domain.SkinTypeNormal:      {"hyaluronic acid", "glycerin", "ceramide", "peptides"},
			domain.SkinTypeCombination: {"hyaluronic acid", "niacinamide", "glycerin"},
			domain.SkinTypeSensitive:   {"ceramide", "centella", "oat", "panthenol"},
		},
	},
}

// isKnownSkinType reports whether skinType is one of the enumerated types
func isKnownSkinType(skinType string) bool {
	for _, known := range domain.KnownSkinTypes {
		if strings.EqualFold(skinType, known) {
			return true
		}
	}
	return false
}

// RefineByIngredients narrows candidates with the ingredient allow-lists of
// every rule group whose categories overlap canonicalLabel. Inside an active
// group a product must mention one allow-listed ingredient for skinType.
// Products outside the group or without ingredient text pass unchanged, as
// does everything when skinType is not an enumerated type. The result is
// always a subset of candidates.
func RefineByIngredients(candidates []domain.Product, canonicalLabel, skinType string) []domain.Product {
	skinType = strings.ToLower(strings.TrimSpace(skinType))
	if !isKnownSkinType(skinType) {
		return candidates
	}

	refined := candidates
	for _, group := range ingredientRuleGroups {
		if !overlapsAny(canonicalLabel, group.categories) {
			continue
		}
		allowed, ok := group.allow[skinType]
		if !ok || len(allowed) == 0 {
			continue
		}
		refined = applyRuleGroup(refined, group, allowed)
	}
	return refined
}

func applyRuleGroup(candidates []domain.Product, group ingredientRuleGroup, allowed []string) []domain.Product {
	result := make([]domain.Product, 0, len(candidates))
	for _, product := range candidates {
		if strings.TrimSpace(product.Ingredients) == "" || !overlapsAny(product.Category, group.categories) {
			result = append(result, product)
			continue
		}
		if containsAnyIngredient(product.Ingredients, allowed) {
			result = append(result, product)
		}
	}
	return result
}
