package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"sofa-stock/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// entry mirrors a product in the seed file: everything the store needs
// except the id and timestamps, which are assigned at load time.
type entry struct {
	Name          string            `json:"name"`
	SKU           string            `json:"sku"`
	Category      string            `json:"category"`
	Description   string            `json:"description"`
	Price         decimal.Decimal   `json:"price"`
	CostPrice     decimal.Decimal   `json:"cost_price"`
	StockQuantity int               `json:"stock_quantity"`
	MinStockLevel int               `json:"min_stock_level"`
	ImageURL      string            `json:"image_url"`
	Dimensions    domain.Dimensions `json:"dimensions"`
	Material      string            `json:"material"`
	Color         string            `json:"color"`
}

// Products returns the startup product seed: the contents of the given
// JSON file, or the built-in demo catalog when path is empty.
func Products(path string) ([]*domain.Product, error) {
	if path == "" {
		return demoProducts(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	return materialize(entries), nil
}

func materialize(entries []entry) []*domain.Product {
	now := time.Now()
	products := make([]*domain.Product, 0, len(entries))
	for _, e := range entries {
		products = append(products, &domain.Product{
			ID:            uuid.New(),
			Name:          e.Name,
			SKU:           e.SKU,
			Category:      e.Category,
			Description:   e.Description,
			Price:         e.Price,
			CostPrice:     e.CostPrice,
			StockQuantity: e.StockQuantity,
			MinStockLevel: e.MinStockLevel,
			ImageURL:      e.ImageURL,
			Dimensions:    e.Dimensions,
			Material:      e.Material,
			Color:         e.Color,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return products
}

func demoProducts() []*domain.Product {
	return materialize([]entry{
		{
			Name:          "Harbor 3-Seater Sofa",
			SKU:           "SOF-1001",
			Category:      "sofa",
			Description:   "Deep-seat three-seater with feather-wrapped cushions",
			Price:         decimal.RequireFromString("1299.00"),
			CostPrice:     decimal.RequireFromString("640.00"),
			StockQuantity: 12,
			MinStockLevel: 5,
			Dimensions:    domain.Dimensions{Width: 218, Height: 85, Depth: 96},
			Material:      "Linen",
			Color:         "Oatmeal",
		},
		{
			Name:          "Mesa L-Shape Sectional",
			SKU:           "SEC-2040",
			Category:      "sectional",
			Description:   "Modular five-piece sectional with reversible chaise",
			Price:         decimal.RequireFromString("2499.00"),
			CostPrice:     decimal.RequireFromString("1180.00"),
			StockQuantity: 4,
			MinStockLevel: 4,
			Dimensions:    domain.Dimensions{Width: 290, Height: 88, Depth: 160},
			Material:      "Performance Velvet",
			Color:         "Slate",
		},
		{
			Name:          "Drift Power Recliner",
			SKU:           "REC-3310",
			Category:      "recliner",
			Description:   "Wall-hugger recliner with USB charging",
			Price:         decimal.RequireFromString("899.00"),
			CostPrice:     decimal.RequireFromString("410.00"),
			StockQuantity: 0,
			MinStockLevel: 3,
			Dimensions:    domain.Dimensions{Width: 92, Height: 104, Depth: 98},
			Material:      "Top-Grain Leather",
			Color:         "Walnut",
		},
		{
			Name:          "Nook Compact Loveseat",
			SKU:           "LOV-4120",
			Category:      "loveseat",
			Description:   "Apartment-scale two-seater on tapered oak legs",
			Price:         decimal.RequireFromString("749.00"),
			CostPrice:     decimal.RequireFromString("335.00"),
			StockQuantity: 9,
			MinStockLevel: 4,
			Dimensions:    domain.Dimensions{Width: 148, Height: 82, Depth: 84},
			Material:      "Boucle",
			Color:         "Ivory",
		},
		{
			Name:          "Midnight Queen Sleeper",
			SKU:           "SLP-5200",
			Category:      "sleeper",
			Description:   "Queen pull-out with memory foam mattress",
			Price:         decimal.RequireFromString("1599.00"),
			CostPrice:     decimal.RequireFromString("780.00"),
			StockQuantity: 2,
			MinStockLevel: 3,
			Dimensions:    domain.Dimensions{Width: 225, Height: 90, Depth: 100},
			Material:      "Woven Polyester",
			Color:         "Navy",
		},
		{
			Name:          "Pebble Storage Ottoman",
			SKU:           "OTT-6015",
			Category:      "ottoman",
			Description:   "Lift-top ottoman with hidden storage tray",
			Price:         decimal.RequireFromString("299.00"),
			CostPrice:     decimal.RequireFromString("120.00"),
			StockQuantity: 25,
			MinStockLevel: 8,
			Dimensions:    domain.Dimensions{Width: 80, Height: 45, Depth: 80},
			Material:      "Faux Leather",
			Color:         "Charcoal",
		},
		{
			Name:          "Wren Accent Chair",
			SKU:           "ACC-7082",
			Category:      "accent-chair",
			Description:   "Barrel-back accent chair with swivel base",
			Price:         decimal.RequireFromString("549.00"),
			CostPrice:     decimal.RequireFromString("230.00"),
			StockQuantity: 6,
			MinStockLevel: 5,
			Dimensions:    domain.Dimensions{Width: 78, Height: 79, Depth: 77},
			Material:      "Chenille",
			Color:         "Moss",
		},
	})
}
