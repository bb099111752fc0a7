package usecase

import (
	"sort"

	"github.com/skinlens/backend/internal/domain"
)

// SelectProducts orders candidates by ascending price, keeping catalog order
// for equal prices, and truncates to limit. A limit of zero or less keeps
// every candidate. The input slice is not modified.
func SelectProducts(candidates []domain.Product, limit int) []domain.Product {
	ranked := make([]domain.Product, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Price < ranked[j].Price
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
