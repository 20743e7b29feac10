package inventory

import (
	"sofa-stock/internal/domain"

	"github.com/shopspring/decimal"
)

// ComputeStats derives aggregate inventory statistics from the current
// product and category collections. It is a pure function: no caching, no
// incremental state, recomputed from scratch on every call.
//
// A product whose category slug has no entry in the registry still counts
// toward the totals but is absent from CategoryCounts.
func ComputeStats(products []*domain.Product, categories []*domain.Category) domain.InventoryStats {
	categoryCounts := make(map[string]int, len(categories))
	for _, c := range categories {
		categoryCounts[c.ID] = 0
	}

	totalValue := decimal.Zero
	lowStockCount := 0
	outOfStockCount := 0

	for _, p := range products {
		if _, known := categoryCounts[p.Category]; known {
			categoryCounts[p.Category]++
		}

		totalValue = totalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.StockQuantity))))

		switch {
		case p.StockQuantity == 0:
			outOfStockCount++
		case p.StockQuantity <= p.MinStockLevel:
			lowStockCount++
		}
	}

	return domain.InventoryStats{
		TotalProducts:   len(products),
		TotalValue:      totalValue,
		LowStockCount:   lowStockCount,
		OutOfStockCount: outOfStockCount,
		CategoryCounts:  categoryCounts,
	}
}
