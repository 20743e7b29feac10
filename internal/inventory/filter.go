package inventory

import (
	"strings"

	"sofa-stock/internal/domain"
)

// CategoryAll selects every category in FilterProducts.
const CategoryAll = "all"

// FilterProducts narrows the product collection to those matching the
// selected category and the free-text query. The query matches by
// case-insensitive substring against name, SKU, or material. Collection
// order is preserved; no re-sorting happens here.
func FilterProducts(products []*domain.Product, query, category string) []*domain.Product {
	needle := strings.ToLower(query)

	filtered := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if category != CategoryAll && p.Category != category {
			continue
		}

		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.SKU), needle) &&
			!strings.Contains(strings.ToLower(p.Material), needle) {
			continue
		}

		filtered = append(filtered, p)
	}

	return filtered
}
