package usecase

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/skinlens/backend/internal/domain"
)

// LocaleTable is the alias table for one supported locale
type LocaleTable struct {
	Tag          language.Tag
	Aliases      map[string][]string
	EmptyMessage string
}

// AliasResolver maps product type labels to canonical categories. Lookups
// try the active locale's table first and then every other table in order,
// so a label written in any supported language resolves regardless of the
// caller's locale.
type AliasResolver struct {
	tables  []LocaleTable
	matcher language.Matcher
}

// NewAliasResolver creates a resolver over the given tables. The first table
// is the default locale. With no tables the built-in ones are used.
func NewAliasResolver(tables ...LocaleTable) *AliasResolver {
	if len(tables) == 0 {
		tables = DefaultLocaleTables()
	}

	tags := make([]language.Tag, len(tables))
	for i, table := range tables {
		tags[i] = table.Tag
	}

	return &AliasResolver{
		tables:  tables,
		matcher: language.NewMatcher(tags),
	}
}

// NewAliasResolverForLocale creates a resolver over the built-in tables with
// defaultLocale moved to the front
func NewAliasResolverForLocale(defaultLocale string) *AliasResolver {
	tables := DefaultLocaleTables()
	idx := NewAliasResolver(tables...).localeIndex(defaultLocale)
	if idx > 0 {
		reordered := make([]LocaleTable, 0, len(tables))
		reordered = append(reordered, tables[idx])
		reordered = append(reordered, tables[:idx]...)
		reordered = append(reordered, tables[idx+1:]...)
		tables = reordered
	}
	return NewAliasResolver(tables...)
}

// Resolve maps a label to canonical categories using the default locale
func (r *AliasResolver) Resolve(label string) []string {
	return r.ResolveFor("", label)
}

// ResolveFor maps a label to canonical categories. locale may be a BCP-47
// tag or an Accept-Language header value. The label is looked up verbatim;
// an unknown label resolves to itself.
func (r *AliasResolver) ResolveFor(locale, label string) []string {
	categories, ok := r.lookup(locale, label)
	if !ok {
		return []string{label}
	}
	return categories
}

// Known reports whether label is a recognized product type: either an alias
// table entry or a canonical category name (case-insensitive)
func (r *AliasResolver) Known(label string) bool {
	if _, ok := r.lookup("", label); ok {
		return true
	}
	return isCanonicalCategory(label)
}

// Locale returns the supported locale that best matches locale
func (r *AliasResolver) Locale(locale string) language.Tag {
	return r.tables[r.localeIndex(locale)].Tag
}

// EmptyMessage returns the "no products found" text for locale
func (r *AliasResolver) EmptyMessage(locale string) string {
	return r.tables[r.localeIndex(locale)].EmptyMessage
}

func (r *AliasResolver) lookup(locale, label string) ([]string, bool) {
	active := r.localeIndex(locale)
	if categories, ok := r.tables[active].Aliases[label]; ok {
		return dedupe(categories), true
	}
	for i, table := range r.tables {
		if i == active {
			continue
		}
		if categories, ok := table.Aliases[label]; ok {
			return dedupe(categories), true
		}
	}
	return nil, false
}

// localeIndex returns the index of the table best matching locale, falling
// back to the default table
func (r *AliasResolver) localeIndex(locale string) int {
	if strings.TrimSpace(locale) == "" {
		return 0
	}
	_, idx := language.MatchStrings(r.matcher, locale)
	if idx < 0 || idx >= len(r.tables) {
		return 0
	}
	return idx
}

func isCanonicalCategory(label string) bool {
	label = strings.TrimSpace(label)
	for _, category := range domain.CanonicalCategories {
		if strings.EqualFold(label, category) {
			return true
		}
	}
	return false
}

// dedupe returns a copy of items without case-insensitive duplicates
func dedupe(items []string) []string {
	set := newOrderedSet()
	set.add(items...)
	return set.items
}
