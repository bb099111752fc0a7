package domain

// Skin type tags used in Product.SkinTypes and recommendation requests
const (
	SkinTypeAll         = "all"
	SkinTypeOily        = "oily"
	SkinTypeDry         = "dry"
	SkinTypeNormal      = "normal"
	SkinTypeCombination = "combination"
	SkinTypeSensitive   = "sensitive"
)

// KnownSkinTypes lists the enumerated skin types (excluding the "all" wildcard)
var KnownSkinTypes = []string{
	SkinTypeOily,
	SkinTypeDry,
	SkinTypeNormal,
	SkinTypeCombination,
	SkinTypeSensitive,
}

// Product represents a single catalog entry. Products are immutable once the
// catalog has been loaded; every filtering stage produces new slices.
type Product struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Brand       string   `json:"brand" yaml:"brand"`
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category" validate:"required"`
	SkinTypes   []string `json:"skinTypes" yaml:"skin_types" validate:"required,min=1,dive,required"`
	Price       float64  `json:"price" yaml:"price" validate:"gte=0"`
	Ingredients string   `json:"ingredients,omitempty" yaml:"ingredients"`
	Size        string   `json:"size,omitempty" yaml:"size"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Usage       string   `json:"usage,omitempty" yaml:"usage"`
}

// ConcernRule maps one concern keyword to the ingredients and categories
// that indicate suitability for it
type ConcernRule struct {
	Ingredients []string `json:"ingredients"`
	Categories  []string `json:"categories"`
}

// CategoryCount is the number of catalog products carrying a category label
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
