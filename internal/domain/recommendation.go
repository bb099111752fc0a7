package domain

// RecommendationRequest is one call into the matching engine
type RecommendationRequest struct {
	ProductTypeLabel string
	Concerns         []string
	SkinType         string // defaults to "all"
	Limit            int    // 0 uses the service default, negative disables truncation
	Locale           string // BCP-47 tag or Accept-Language value; empty uses the default locale
}

// Recommendation is the outcome of one engine call
type Recommendation struct {
	ProductType string    `json:"productType"`
	Categories  []string  `json:"categories"`
	Products    []Product `json:"products"`
}

// RecommendationTrace records the candidate ids surviving each pipeline stage
// so a catalog reviewer can see why a product was or was not selected
type RecommendationTrace struct {
	ProductType        string    `json:"productType"`
	SkinType           string    `json:"skinType"`
	Categories         []string  `json:"categories"`
	AliasFallback      bool      `json:"aliasFallback"` // label matched no alias or canonical category
	ConcernIngredients []string  `json:"concernIngredients"`
	ConcernCategories  []string  `json:"concernCategories"`
	UnknownConcerns    []string  `json:"unknownConcerns"`
	Filtered           []string  `json:"filtered"`
	ConcernFiltered    []string  `json:"concernFiltered"`
	Refined            []string  `json:"refined"`
	Products           []Product `json:"products"`
}
