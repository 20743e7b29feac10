package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestProducts_DemoCatalogWhenNoFile(t *testing.T) {
	products, err := Products("")
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("Expected a non-empty demo catalog")
	}

	seen := make(map[uuid.UUID]bool)
	for _, p := range products {
		if p.ID == uuid.Nil {
			t.Error("Expected every seed product to get an id")
		}
		if seen[p.ID] {
			t.Error("Seed product ids must be unique")
		}
		seen[p.ID] = true
		if p.Name == "" || p.SKU == "" {
			t.Errorf("Seed product missing required fields: %+v", p)
		}
		if p.StockQuantity < 0 {
			t.Errorf("Seed product %s has negative stock", p.SKU)
		}
		if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
			t.Errorf("Seed product %s missing timestamps", p.SKU)
		}
	}
}

func TestProducts_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	content := `[
		{
			"name": "Test Sofa",
			"sku": "TST-1",
			"category": "sofa",
			"price": "499.00",
			"cost_price": "200.00",
			"stock_quantity": 7,
			"min_stock_level": 3,
			"dimensions": {"width": 200, "height": 80, "depth": 90},
			"material": "Linen",
			"color": "Grey"
		}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}

	products, err := Products(path)
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("Expected 1 product, got %d", len(products))
	}

	p := products[0]
	if p.Name != "Test Sofa" || p.SKU != "TST-1" {
		t.Errorf("Unexpected product: %+v", p)
	}
	if !p.Price.Equal(decimal.RequireFromString("499.00")) {
		t.Errorf("Expected price 499.00, got %s", p.Price)
	}
	if p.StockQuantity != 7 {
		t.Errorf("Expected stock 7, got %d", p.StockQuantity)
	}
}

func TestProducts_MissingFile(t *testing.T) {
	if _, err := Products(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("Expected an error for a missing seed file")
	}
}

func TestProducts_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(`{"not": "a list"`), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}

	if _, err := Products(path); err == nil {
		t.Fatal("Expected an error for a malformed seed file")
	}
}
