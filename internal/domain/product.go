package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dimensions holds the physical size of a product in centimeters.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Product represents a furniture item in the inventory
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockQuantity int             `json:"stock_quantity"`
	MinStockLevel int             `json:"min_stock_level"`
	ImageURL      string          `json:"image_url,omitempty"`
	Dimensions    Dimensions      `json:"dimensions"`
	Material      string          `json:"material"`
	Color         string          `json:"color"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductPatch carries a partial product update. Nil fields are left
// untouched by the merge.
type ProductPatch struct {
	Name          *string
	SKU           *string
	Category      *string
	Description   *string
	Price         *decimal.Decimal
	CostPrice     *decimal.Decimal
	StockQuantity *int
	MinStockLevel *int
	ImageURL      *string
	Dimensions    *Dimensions
	Material      *string
	Color         *string
}

// AlertSeverity classifies how urgent a stock alert is
type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// StockAlert is derived from a product whose stock has fallen to or below
// its minimum level. Alerts are recomputed on every read, never stored.
type StockAlert struct {
	ProductID     uuid.UUID     `json:"product_id"`
	ProductName   string        `json:"product_name"`
	CurrentStock  int           `json:"current_stock"`
	MinStockLevel int           `json:"min_stock_level"`
	Severity      AlertSeverity `json:"severity"`
}

// InventoryStats is the aggregate view over the whole product collection
type InventoryStats struct {
	TotalProducts   int             `json:"total_products"`
	TotalValue      decimal.Decimal `json:"total_value"`
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	CategoryCounts  map[string]int  `json:"category_counts"`
}
