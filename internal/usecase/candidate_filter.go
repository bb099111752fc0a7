package usecase

import (
	"strings"

	"github.com/skinlens/backend/internal/domain"
)

// CategoriesOverlap reports whether two category labels match under the
// directional substring rule: either label contains the other, ignoring case.
// Empty labels never match.
func CategoriesOverlap(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchesSkinType reports whether a product applies to the requested skin
// type. An empty or "all" request skips the check; a product tagged "all"
// applies to every skin type.
func MatchesSkinType(product domain.Product, skinType string) bool {
	skinType = strings.TrimSpace(skinType)
	if skinType == "" || strings.EqualFold(skinType, domain.SkinTypeAll) {
		return true
	}
	for _, tag := range product.SkinTypes {
		tag = strings.TrimSpace(tag)
		if strings.EqualFold(tag, skinType) || strings.EqualFold(tag, domain.SkinTypeAll) {
			return true
		}
	}
	return false
}

// containsAnyIngredient reports whether the ingredient text mentions any of
// the given substrings, ignoring case
func containsAnyIngredient(ingredients string, targets []string) bool {
	if ingredients == "" {
		return false
	}
	lower := strings.ToLower(ingredients)
	for _, target := range targets {
		target = strings.ToLower(strings.TrimSpace(target))
		if target != "" && strings.Contains(lower, target) {
			return true
		}
	}
	return false
}

// overlapsAny reports whether category overlaps any of the targets
func overlapsAny(category string, targets []string) bool {
	for _, target := range targets {
		if CategoriesOverlap(category, target) {
			return true
		}
	}
	return false
}

// FilterCandidates returns the catalog products matching any of the
// canonical categories and the skin type. Each product appears at most once
// and catalog order is kept.
func FilterCandidates(catalog []domain.Product, categories []string, skinType string) []domain.Product {
	candidates := make([]domain.Product, 0)
	seen := make(map[string]bool)

	for _, product := range catalog {
		if seen[product.ID] {
			continue
		}
		if !overlapsAny(product.Category, categories) {
			continue
		}
		if !MatchesSkinType(product, skinType) {
			continue
		}
		seen[product.ID] = true
		candidates = append(candidates, product)
	}

	return candidates
}

// ApplyConcerns narrows candidates to those relevant to the concern profile:
// the product category overlaps a concern category, or its ingredient text
// mentions a concern ingredient. An empty profile passes everything through.
func ApplyConcerns(candidates []domain.Product, profile ConcernProfile) []domain.Product {
	if profile.Empty() {
		return candidates
	}

	result := make([]domain.Product, 0, len(candidates))
	for _, product := range candidates {
		if overlapsAny(product.Category, profile.Categories) ||
			containsAnyIngredient(product.Ingredients, profile.Ingredients) {
			result = append(result, product)
		}
	}
	return result
}
