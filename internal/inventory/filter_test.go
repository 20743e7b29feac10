package inventory

import (
	"strings"
	"testing"

	"sofa-stock/internal/domain"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func filterProduct(name, sku, category, material string) *domain.Product {
	return &domain.Product{
		ID:       uuid.New(),
		Name:     name,
		SKU:      sku,
		Category: category,
		Material: material,
	}
}

func TestFilterProducts_EmptyQueryAllCategoriesReturnsEverything(t *testing.T) {
	products := []*domain.Product{
		filterProduct("Harbor Sofa", "SOF-1", "sofa", "Linen"),
		filterProduct("Drift Recliner", "REC-1", "recliner", "Leather"),
		filterProduct("Nook Loveseat", "LOV-1", "loveseat", "Boucle"),
	}

	filtered := FilterProducts(products, "", CategoryAll)

	if len(filtered) != len(products) {
		t.Fatalf("Expected %d products, got %d", len(products), len(filtered))
	}
	for i := range products {
		if filtered[i].ID != products[i].ID {
			t.Errorf("Position %d: order not preserved", i)
		}
	}
}

func TestFilterProducts_CategoryNarrowsResults(t *testing.T) {
	products := []*domain.Product{
		filterProduct("Harbor Sofa", "SOF-1", "sofa", "Linen"),
		filterProduct("Mesa Sectional", "SEC-1", "sectional", "Velvet"),
		filterProduct("Coastal Sofa", "SOF-2", "sofa", "Cotton"),
	}

	filtered := FilterProducts(products, "", "sofa")

	if len(filtered) != 2 {
		t.Fatalf("Expected 2 sofas, got %d", len(filtered))
	}
	if filtered[0].SKU != "SOF-1" || filtered[1].SKU != "SOF-2" {
		t.Errorf("Expected SOF-1 then SOF-2, got %s then %s", filtered[0].SKU, filtered[1].SKU)
	}
}

func TestFilterProducts_CaseInsensitiveMatch(t *testing.T) {
	products := []*domain.Product{
		filterProduct("Harbor Sofa", "SKU-1", "sofa", "Linen"),
	}

	for _, query := range []string{"sku-1", "SKU-1", "Sku-1", "harbor", "LINEN"} {
		if got := FilterProducts(products, query, CategoryAll); len(got) != 1 {
			t.Errorf("Query %q: expected 1 match, got %d", query, len(got))
		}
	}
}

func TestFilterProducts_MatchesAnyOfNameSKUMaterial(t *testing.T) {
	products := []*domain.Product{
		filterProduct("Alpha", "X-100", "sofa", "Velvet"),
		filterProduct("Beta Velour", "X-200", "sofa", "Cotton"),
		filterProduct("Gamma", "VEL-300", "sofa", "Wool"),
	}

	// "vel" appears in the material of the first, the name of the second,
	// and the SKU of the third
	filtered := FilterProducts(products, "vel", CategoryAll)

	if len(filtered) != 3 {
		t.Errorf("Expected 3 matches across name/sku/material, got %d", len(filtered))
	}
}

func TestFilterProducts_QueryAndCategoryCombine(t *testing.T) {
	products := []*domain.Product{
		filterProduct("Harbor Sofa", "SOF-1", "sofa", "Linen"),
		filterProduct("Harbor Recliner", "REC-1", "recliner", "Linen"),
	}

	filtered := FilterProducts(products, "harbor", "recliner")

	if len(filtered) != 1 || filtered[0].SKU != "REC-1" {
		t.Fatalf("Expected only REC-1, got %d results", len(filtered))
	}
}

// Property: filtering never invents products, never reorders them, and
// query case never changes the result.
func TestProperty_FilterPreservesOrderAndIgnoresCase(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("filtered output is an ordered subset, query case irrelevant", prop.ForAll(
		func(names []string, query string) bool {
			products := make([]*domain.Product, 0, len(names))
			for i, name := range names {
				sku := "SKU-" + strings.Repeat("X", i%5)
				products = append(products, filterProduct(name, sku, "sofa", "Linen"))
			}

			lower := FilterProducts(products, strings.ToLower(query), CategoryAll)
			upper := FilterProducts(products, strings.ToUpper(query), CategoryAll)

			if len(lower) != len(upper) {
				t.Logf("FAIL: case changed result size: %d vs %d", len(lower), len(upper))
				return false
			}

			// Ordered subset check: walk the source collection alongside
			// the filtered one.
			i := 0
			for _, p := range products {
				if i < len(lower) && lower[i].ID == p.ID {
					i++
				}
			}
			if i != len(lower) {
				t.Logf("FAIL: filtered output is not an ordered subset")
				return false
			}
			return true
		},
		gen.SliceOf(gen.RegexMatch(`[A-Za-z ]{0,20}`)),
		gen.RegexMatch(`[A-Za-z]{0,8}`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
