package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/skinlens/backend/internal/domain"
)

func TestAliasResolver_Resolve(t *testing.T) {
	resolver := NewAliasResolver()

	tests := []struct {
		name  string
		label string
		want  []string
	}{
		{"chinese cleanser label", "洁面乳", []string{domain.CategoryCleanser, domain.CategoryGentleCleanser}},
		{"traditional chinese label", "防曬霜", []string{domain.CategorySunscreen}},
		{"english synonym", "Gentle Cleanser", []string{domain.CategoryGentleCleanser, domain.CategoryCleanser}},
		{"lowercase synonym", "moisturizer", []string{domain.CategoryMoisturizer, domain.CategoryHydratingMoisturizer}},
		{"canonical name falls back to itself", "Cleanser", []string{"Cleanser"}},
		{"unknown label falls back to itself", "Nail Polish", []string{"Nail Polish"}},
		{"lookup is verbatim", "MOISTURIZER", []string{"MOISTURIZER"}},
		{"empty label falls back to itself", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.label))
		})
	}
}

func TestAliasResolver_ActiveLocaleFirst(t *testing.T) {
	en := LocaleTable{
		Tag:          language.English,
		Aliases:      map[string][]string{"Cream": {"Moisturizer"}},
		EmptyMessage: "none",
	}
	fr := LocaleTable{
		Tag:          language.French,
		Aliases:      map[string][]string{"Cream": {"Eye Care"}, "Nettoyant": {"Cleanser"}},
		EmptyMessage: "aucun",
	}
	resolver := NewAliasResolver(en, fr)

	assert.Equal(t, []string{"Moisturizer"}, resolver.Resolve("Cream"))
	assert.Equal(t, []string{"Eye Care"}, resolver.ResolveFor("fr-FR", "Cream"))
	assert.Equal(t, []string{"Cleanser"}, resolver.ResolveFor("en", "Nettoyant"), "other locales are consulted after the active one")
	assert.Equal(t, "aucun", resolver.EmptyMessage("fr-CA,fr;q=0.9"))
	assert.Equal(t, "none", resolver.EmptyMessage(""))
}

func TestAliasResolver_Locale(t *testing.T) {
	resolver := NewAliasResolver()

	assert.Equal(t, language.English, resolver.Locale(""))
	assert.Equal(t, language.SimplifiedChinese, resolver.Locale("zh-CN"))
	assert.Equal(t, language.TraditionalChinese, resolver.Locale("zh-TW"))
	assert.Equal(t, language.English, resolver.Locale("not a locale"))
	assert.Equal(t, "未找到合适的产品", resolver.EmptyMessage("zh-CN,zh;q=0.9,en;q=0.8"))
}

func TestNewAliasResolverForLocale(t *testing.T) {
	resolver := NewAliasResolverForLocale("zh-Hant")

	assert.Equal(t, language.TraditionalChinese, resolver.Locale(""))
	assert.Equal(t, []string{domain.CategoryCleanser, domain.CategoryGentleCleanser}, resolver.Resolve("洁面乳"))
}

func TestAliasResolver_ResultIsCopy(t *testing.T) {
	resolver := NewAliasResolver()

	first := resolver.Resolve("洁面乳")
	first[0] = "mutated"

	assert.Equal(t, domain.CategoryCleanser, resolver.Resolve("洁面乳")[0])
}

func TestAliasResolver_Known(t *testing.T) {
	resolver := NewAliasResolver()

	for _, category := range domain.CanonicalCategories {
		assert.True(t, resolver.Known(category), category)
	}

	tests := []struct {
		label string
		want  bool
	}{
		{"cleanser", true},
		{"HAIR OIL", true},
		{"洁面乳", true},
		{"Cleanzer", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Known(tt.label))
		})
	}
}

func TestDefaultLocaleTables_ReturnsCopy(t *testing.T) {
	tables := DefaultLocaleTables()
	tables[0].Aliases["cleanser"][0] = "mutated"
	delete(tables[0].Aliases, "moisturizer")

	fresh := DefaultLocaleTables()
	assert.Equal(t, domain.CategoryCleanser, fresh[0].Aliases["cleanser"][0])
	assert.Contains(t, fresh[0].Aliases, "moisturizer")
}
