package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skinlens/backend/internal/domain"
)

func TestMapConcerns(t *testing.T) {
	mapper := NewConcernMapper(nil)

	t.Run("no concerns yields empty profile", func(t *testing.T) {
		profile := mapper.MapConcerns(nil)
		assert.True(t, profile.Empty())
		assert.Empty(t, profile.Unknown)
		assert.NotNil(t, profile.Ingredients)
		assert.NotNil(t, profile.Categories)
		assert.NotNil(t, profile.Unknown)
	})

	t.Run("acne maps to its ingredients and categories", func(t *testing.T) {
		profile := mapper.MapConcerns([]string{"acne"})
		assert.Equal(t, []string{"salicylic acid", "benzoyl peroxide", "tea tree oil", "sulfur"}, profile.Ingredients)
		assert.Equal(t, []string{domain.CategoryCleanser, domain.CategoryTargetedTreatment}, profile.Categories)
	})

	t.Run("lookup is case insensitive and trimmed", func(t *testing.T) {
		profile := mapper.MapConcerns([]string{"  AGING "})
		assert.Contains(t, profile.Ingredients, "retinol")
		assert.Contains(t, profile.Categories, domain.CategoryEyeCare)
	})

	t.Run("unions without duplicates", func(t *testing.T) {
		profile := mapper.MapConcerns([]string{"acne", "oiliness"})
		assert.Equal(t, 1, countOf(profile.Ingredients, "salicylic acid"))
		assert.Equal(t, 1, countOf(profile.Categories, domain.CategoryCleanser))
		assert.Contains(t, profile.Categories, domain.CategoryToner)
	})

	t.Run("unknown concerns are ignored and reported", func(t *testing.T) {
		profile := mapper.MapConcerns([]string{"acne", "freckles", ""})
		assert.Equal(t, []string{"freckles"}, profile.Unknown)
		assert.Equal(t, mapper.MapConcerns([]string{"acne"}).Ingredients, profile.Ingredients)
	})
}

func TestNewConcernMapper_CustomRules(t *testing.T) {
	mapper := NewConcernMapper(map[string]domain.ConcernRule{
		"Sunburn": {Ingredients: []string{"aloe"}, Categories: []string{"After Sun"}},
	})

	profile := mapper.MapConcerns([]string{"sunburn", "acne"})
	assert.Equal(t, []string{"aloe"}, profile.Ingredients)
	assert.Equal(t, []string{"After Sun"}, profile.Categories)
	assert.Equal(t, []string{"acne"}, profile.Unknown)
}

func TestDefaultConcernRules_ReturnsCopy(t *testing.T) {
	rules := DefaultConcernRules()
	delete(rules, "acne")

	_, ok := DefaultConcernRules()["acne"]
	assert.True(t, ok)
}

func countOf(items []string, want string) int {
	n := 0
	for _, item := range items {
		if item == want {
			n++
		}
	}
	return n
}
