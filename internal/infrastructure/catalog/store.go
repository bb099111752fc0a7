package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/skinlens/backend/internal/domain"
)

var validate = validator.New()

// Store is an immutable in-memory product catalog
type Store struct {
	products   []domain.Product
	byID       map[string]int
	categories []domain.CategoryCount
	source     string
}

// New validates products and builds a Store. Every malformed entry is
// reported; the returned error wraps domain.ErrInvalidCatalog.
func New(products []domain.Product, source string) (*Store, error) {
	store := &Store{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
		source:   source,
	}

	var problems []error
	counts := make(map[string]int)
	for i, product := range products {
		product = normalizeProduct(product)

		if err := validate.Struct(product); err != nil {
			problems = append(problems, fmt.Errorf("entry %d (id %q): %w", i, product.ID, err))
			continue
		}
		if _, dup := store.byID[product.ID]; dup {
			problems = append(problems, fmt.Errorf("entry %d: duplicate id %q", i, product.ID))
			continue
		}

		store.byID[product.ID] = len(store.products)
		store.products = append(store.products, product)
		counts[product.Category]++
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidCatalog, source, errors.Join(problems...))
	}

	for category, count := range counts {
		store.categories = append(store.categories, domain.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(store.categories, func(i, j int) bool {
		return store.categories[i].Category < store.categories[j].Category
	})

	return store, nil
}

// normalizeProduct trims display fields and lowercases skin type tags
func normalizeProduct(p domain.Product) domain.Product {
	p.ID = strings.TrimSpace(p.ID)
	p.Brand = strings.TrimSpace(p.Brand)
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	p.Ingredients = strings.TrimSpace(p.Ingredients)

	tags := make([]string, 0, len(p.SkinTypes))
	for _, tag := range p.SkinTypes {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			tags = append(tags, tag)
		}
	}
	p.SkinTypes = tags
	return p
}

// Products returns a copy of every product in catalog order
func (s *Store) Products() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID looks up a single product
func (s *Store) ProductByID(id string) (domain.Product, error) {
	idx, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return s.products[idx], nil
}

// Categories returns the category labels present in the catalog with their
// product counts, sorted by label
func (s *Store) Categories() []domain.CategoryCount {
	out := make([]domain.CategoryCount, len(s.categories))
	copy(out, s.categories)
	return out
}

// Len returns the number of products
func (s *Store) Len() int {
	return len(s.products)
}

// Source describes where the catalog was loaded from
func (s *Store) Source() string {
	return s.source
}

var _ domain.CatalogRepository = (*Store)(nil)
