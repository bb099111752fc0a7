package usecase

import (
	"strings"

	"github.com/skinlens/backend/internal/domain"
)

// defaultConcernRules maps concern keywords reported by the analysis to the
// ingredients and categories that address them
var defaultConcernRules = map[string]domain.ConcernRule{
	"acne": {
		Ingredients: []string{"salicylic acid", "benzoyl peroxide", "tea tree oil", "sulfur"},
		Categories:  []string{domain.CategoryCleanser, domain.CategoryTargetedTreatment},
	},
	"aging": {
		Ingredients: []string{"retinol", "peptides", "vitamin c", "hyaluronic acid"},
		Categories:  []string{domain.CategoryTargetedTreatment, domain.CategoryHydrator, domain.CategoryEyeCare},
	},
	"hyperpigmentation": {
		Ingredients: []string{"vitamin c", "niacinamide", "alpha arbutin", "kojic acid", "tranexamic acid"},
		Categories:  []string{domain.CategorySerum, domain.CategoryTargetedTreatment, domain.CategorySunscreen},
	},
	"dryness": {
		Ingredients: []string{"hyaluronic acid", "ceramide", "glycerin", "squalane", "shea butter"},
		Categories:  []string{domain.CategoryHydrator, domain.CategoryMoisturizer},
	},
	"oiliness": {
		Ingredients: []string{"niacinamide", "salicylic acid", "clay", "zinc"},
		Categories:  []string{domain.CategoryCleanser, domain.CategoryToner},
	},
	"sensitivity": {
		Ingredients: []string{"centella", "aloe", "oat", "allantoin", "panthenol"},
		Categories:  []string{domain.CategoryGentleCleanser, domain.CategoryMoisturizer},
	},
	"redness": {
		Ingredients: []string{"centella", "azelaic acid", "niacinamide", "green tea"},
		Categories:  []string{domain.CategorySerum, domain.CategoryMoisturizer},
	},
	"pores": {
		Ingredients: []string{"salicylic acid", "niacinamide", "clay"},
		Categories:  []string{domain.CategoryToner, domain.CategoryExfoliant, domain.CategoryMask},
	},
	"dullness": {
		Ingredients: []string{"vitamin c", "glycolic acid", "lactic acid"},
		Categories:  []string{domain.CategoryExfoliant, domain.CategorySerum},
	},
	"dark circles": {
		Ingredients: []string{"caffeine", "vitamin k", "retinol"},
		Categories:  []string{domain.CategoryEyeCare},
	},
	"puffiness": {
		Ingredients: []string{"caffeine", "peptides"},
		Categories:  []string{domain.CategoryEyeCare},
	},
	"dandruff": {
		Ingredients: []string{"zinc pyrithione", "ketoconazole", "selenium sulfide", "piroctone olamine"},
		Categories:  []string{domain.CategoryShampoo, domain.CategoryScalpTreatment},
	},
	"hair loss": {
		Ingredients: []string{"minoxidil", "caffeine", "biotin", "rosemary"},
		Categories:  []string{domain.CategoryScalpTreatment, domain.CategoryShampoo},
	},
	"frizz": {
		Ingredients: []string{"argan oil", "keratin", "shea butter"},
		Categories:  []string{domain.CategoryConditioner, domain.CategoryHairOil, domain.CategoryHairMask},
	},
}

// DefaultConcernRules returns a copy of the built-in concern table
func DefaultConcernRules() map[string]domain.ConcernRule {
	rules := make(map[string]domain.ConcernRule, len(defaultConcernRules))
	for keyword, rule := range defaultConcernRules {
		rules[keyword] = rule
	}
	return rules
}

// ConcernProfile is the union of ingredients and categories for a set of
// concerns. Unknown lists the concerns that had no rule.
type ConcernProfile struct {
	Ingredients []string
	Categories  []string
	Unknown     []string
}

// Empty reports whether the profile constrains nothing
func (p ConcernProfile) Empty() bool {
	return len(p.Ingredients) == 0 && len(p.Categories) == 0
}

// ConcernMapper maps concern keywords to target ingredients and categories
type ConcernMapper struct {
	rules map[string]domain.ConcernRule
}

// NewConcernMapper creates a mapper over the given rules. Keys are matched
// case-insensitively. A nil map selects the built-in table.
func NewConcernMapper(rules map[string]domain.ConcernRule) *ConcernMapper {
	if rules == nil {
		rules = defaultConcernRules
	}

	normalized := make(map[string]domain.ConcernRule, len(rules))
	for keyword, rule := range rules {
		normalized[normalizeConcern(keyword)] = rule
	}
	return &ConcernMapper{rules: normalized}
}

// MapConcerns unions the rules of every recognized concern. Unrecognized
// concerns contribute nothing.
func (m *ConcernMapper) MapConcerns(concerns []string) ConcernProfile {
	profile := ConcernProfile{Unknown: []string{}}
	ingredients := newOrderedSet()
	categories := newOrderedSet()

	for _, concern := range concerns {
		rule, ok := m.rules[normalizeConcern(concern)]
		if !ok {
			if strings.TrimSpace(concern) != "" {
				profile.Unknown = append(profile.Unknown, concern)
			}
			continue
		}
		ingredients.add(rule.Ingredients...)
		categories.add(rule.Categories...)
	}

	profile.Ingredients = ingredients.items
	profile.Categories = categories.items
	return profile
}

func normalizeConcern(concern string) string {
	return strings.ToLower(strings.TrimSpace(concern))
}

// orderedSet keeps the first-seen order of its items. Items are compared
// case-insensitively.
type orderedSet struct {
	items []string
	seen  map[string]bool
}

func newOrderedSet() *orderedSet {
	return &orderedSet{items: []string{}, seen: make(map[string]bool)}
}

func (s *orderedSet) add(items ...string) {
	for _, item := range items {
		key := strings.ToLower(item)
		if s.seen[key] {
			continue
		}
		s.seen[key] = true
		s.items = append(s.items, item)
	}
}
