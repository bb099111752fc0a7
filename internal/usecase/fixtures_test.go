package usecase

import (
	"github.com/skinlens/backend/internal/domain"
)

// staticCatalog is an in-memory CatalogRepository for tests
type staticCatalog struct {
	products []domain.Product
}

func (c *staticCatalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *staticCatalog) ProductByID(id string) (domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func (c *staticCatalog) Categories() []domain.CategoryCount {
	counts := make(map[string]int)
	var order []string
	for _, p := range c.products {
		if counts[p.Category] == 0 {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}
	out := make([]domain.CategoryCount, 0, len(order))
	for _, category := range order {
		out = append(out, domain.CategoryCount{Category: category, Count: counts[category]})
	}
	return out
}

func (c *staticCatalog) Len() int {
	return len(c.products)
}

// testCatalog is a small synthetic catalog covering every pipeline stage
func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: "cl-oily", Brand: "Clearwell", Name: "BHA Gel Cleanser", Category: "Cleanser",
			SkinTypes: []string{"oily", "all"}, Price: 64, Ingredients: "Salicylic Acid, Jojoba esters"},
		{ID: "cl-dry", Brand: "Softleaf", Name: "Cream Cleanser", Category: "Cleanser",
			SkinTypes: []string{"dry"}, Price: 18, Ingredients: "Ceramides"},
		{ID: "cl-gentle", Brand: "Calmora", Name: "Milky Gentle Cleanser", Category: "Gentle Cleanser",
			SkinTypes: []string{"sensitive", "dry"}, Price: 22, Ingredients: "Oat extract, Glycerin"},
		{ID: "cl-plain", Brand: "Basic", Name: "Daily Face Wash", Category: "Cleanser",
			SkinTypes: []string{"oily"}, Price: 9},
		{ID: "ser-calm", Brand: "Calmora", Name: "Hydrating & Calming Serum", Category: "Hydrating & Calming Serum",
			SkinTypes: []string{"all"}, Price: 35, Ingredients: "Centella asiatica, Hyaluronic Acid"},
		{ID: "ser-vitc", Brand: "Lumen", Name: "Vitamin C 15", Category: "Serum",
			SkinTypes: []string{"normal", "combination"}, Price: 29, Ingredients: "Vitamin C, Ferulic acid"},
		{ID: "acne-bp", Brand: "Clearwell", Name: "BP Spot Gel", Category: "Targeted Acne Treatment",
			SkinTypes: []string{"oily", "combination"}, Price: 12, Ingredients: "Benzoyl Peroxide 2.5%"},
		{ID: "acne-aza", Brand: "Softleaf", Name: "Azelaic Cream", Category: "Targeted Acne Treatment",
			SkinTypes: []string{"oily", "sensitive"}, Price: 20, Ingredients: "Azelaic Acid 10%"},
		{ID: "moist-dry", Brand: "Softleaf", Name: "Barrier Cream", Category: "Hydrating Moisturizer",
			SkinTypes: []string{"dry"}, Price: 26, Ingredients: "Ceramide NP, Glycerin"},
		{ID: "moist-oily", Brand: "Clearwell", Name: "Oil-Free Gel", Category: "Moisturizer",
			SkinTypes: []string{"oily"}, Price: 15, Ingredients: "Niacinamide, Dimethicone"},
		{ID: "moist-rich", Brand: "Opulent", Name: "Rich Night Balm", Category: "Moisturizer",
			SkinTypes: []string{"dry", "oily"}, Price: 80, Ingredients: "Mineral oil, Lanolin"},
		{ID: "spf", Brand: "Lumen", Name: "Daily SPF 50", Category: "Sunscreen",
			SkinTypes: []string{"all"}, Price: 19, Ingredients: "Zinc Oxide"},
		{ID: "shampoo", Brand: "Crown", Name: "Anti-Dandruff Shampoo", Category: "Shampoo",
			SkinTypes: []string{"all"}, Price: 11, Ingredients: "Zinc Pyrithione"},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
