package inventory

import (
	"sort"

	"sofa-stock/internal/domain"
)

// DeriveAlerts builds the stock alert list from the current product
// collection: every product at or below its minimum stock level yields one
// alert, critical when the shelf is empty, warning otherwise. The result is
// sorted ascending by current stock; the sort is stable so products with
// equal stock keep their collection order.
func DeriveAlerts(products []*domain.Product) []domain.StockAlert {
	alerts := make([]domain.StockAlert, 0)
	for _, p := range products {
		if p.StockQuantity > p.MinStockLevel {
			continue
		}

		severity := domain.SeverityWarning
		if p.StockQuantity == 0 {
			severity = domain.SeverityCritical
		}

		alerts = append(alerts, domain.StockAlert{
			ProductID:     p.ID,
			ProductName:   p.Name,
			CurrentStock:  p.StockQuantity,
			MinStockLevel: p.MinStockLevel,
			Severity:      severity,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].CurrentStock < alerts[j].CurrentStock
	})

	return alerts
}
