package inventory

import (
	"context"
	"fmt"
	"time"

	"sofa-stock/internal/domain"
	"sofa-stock/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewProduct carries the caller-supplied fields for product creation.
// The id and timestamps are assigned by the service.
type NewProduct struct {
	Name          string
	SKU           string
	Category      string
	Description   string
	Price         decimal.Decimal
	CostPrice     decimal.Decimal
	StockQuantity int
	MinStockLevel int
	ImageURL      string
	Dimensions    domain.Dimensions
	Material      string
	Color         string
}

// NewCategory carries the caller-supplied fields for category creation.
// The slug id is derived from Name by the service.
type NewCategory struct {
	Name  string
	Label string
	Icon  string
}

// Service defines the inventory business logic: the only mutation path
// into the product store and category registry, plus the derived read
// models the dashboard consumes.
type Service interface {
	AddProduct(ctx context.Context, input NewProduct) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	AdjustStock(ctx context.Context, id uuid.UUID, quantity int) (*domain.Product, error)
	AllProducts(ctx context.Context) ([]*domain.Product, error)
	FilteredProducts(ctx context.Context, query, category string) ([]*domain.Product, error)
	Stats(ctx context.Context) (domain.InventoryStats, error)
	Alerts(ctx context.Context) ([]domain.StockAlert, error)
	AddCategory(ctx context.Context, input NewCategory) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]*domain.Category, error)
}

type service struct {
	products   store.ProductStore
	categories store.CategoryRegistry
}

// NewService creates a new instance of Service over the given stores.
func NewService(products store.ProductStore, categories store.CategoryRegistry) Service {
	return &service{
		products:   products,
		categories: categories,
	}
}

// AddProduct assigns a fresh id and timestamps and appends the product to
// the collection. Duplicate SKUs are permitted; that is a policy choice,
// retailers reuse SKUs across colorways.
func (s *service) AddProduct(ctx context.Context, input NewProduct) (*domain.Product, error) {
	now := time.Now()
	product := &domain.Product{
		ID:            uuid.New(),
		Name:          input.Name,
		SKU:           input.SKU,
		Category:      input.Category,
		Description:   input.Description,
		Price:         input.Price,
		CostPrice:     input.CostPrice,
		StockQuantity: clampStock(input.StockQuantity),
		MinStockLevel: input.MinStockLevel,
		ImageURL:      input.ImageURL,
		Dimensions:    input.Dimensions,
		Material:      input.Material,
		Color:         input.Color,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// UpdateProduct merges the non-nil patch fields into the matching product
// and refreshes its updated-at timestamp. A negative stock quantity in the
// patch is clamped to zero so the non-negativity invariant holds on every
// mutation path, not just AdjustStock.
func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error) {
	return s.products.Update(ctx, id, func(p *domain.Product) {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.SKU != nil {
			p.SKU = *patch.SKU
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.CostPrice != nil {
			p.CostPrice = *patch.CostPrice
		}
		if patch.StockQuantity != nil {
			p.StockQuantity = clampStock(*patch.StockQuantity)
		}
		if patch.MinStockLevel != nil {
			p.MinStockLevel = *patch.MinStockLevel
		}
		if patch.ImageURL != nil {
			p.ImageURL = *patch.ImageURL
		}
		if patch.Dimensions != nil {
			p.Dimensions = *patch.Dimensions
		}
		if patch.Material != nil {
			p.Material = *patch.Material
		}
		if patch.Color != nil {
			p.Color = *patch.Color
		}
		p.UpdatedAt = time.Now()
	})
}

// DeleteProduct removes the matching product. Deleting an unknown id is a
// no-op, so the operation is idempotent.
func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.products.Delete(ctx, id)
}

// AdjustStock sets the product's stock quantity, clamped at zero, and
// refreshes its updated-at timestamp.
func (s *service) AdjustStock(ctx context.Context, id uuid.UUID, quantity int) (*domain.Product, error) {
	return s.products.Update(ctx, id, func(p *domain.Product) {
		p.StockQuantity = clampStock(quantity)
		p.UpdatedAt = time.Now()
	})
}

// AllProducts returns the full collection in insertion order
func (s *service) AllProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

// FilteredProducts returns the products matching the query and selected
// category, in insertion order. An empty category selects all.
func (s *service) FilteredProducts(ctx context.Context, query, category string) ([]*domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if category == "" {
		category = CategoryAll
	}

	return FilterProducts(products, query, category), nil
}

// Stats recomputes the aggregate inventory statistics from the current
// store snapshot.
func (s *service) Stats(ctx context.Context) (domain.InventoryStats, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return domain.InventoryStats{}, fmt.Errorf("failed to list products: %w", err)
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return domain.InventoryStats{}, fmt.Errorf("failed to list categories: %w", err)
	}

	return ComputeStats(products, categories), nil
}

// Alerts recomputes the stock alert list from the current store snapshot.
func (s *service) Alerts(ctx context.Context) ([]domain.StockAlert, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return DeriveAlerts(products), nil
}

// AddCategory derives the slug id from the category name and registers the
// category. A name that normalizes to an already-registered slug is
// rejected with store.ErrCategoryExists.
func (s *service) AddCategory(ctx context.Context, input NewCategory) (*domain.Category, error) {
	now := time.Now()
	category := &domain.Category{
		ID:        domain.Slugify(input.Name),
		Name:      input.Name,
		Label:     input.Label,
		Icon:      input.Icon,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory merges the non-nil patch fields into the matching
// category and refreshes its updated-at timestamp. The slug id is fixed at
// creation and never rederived, even when the name changes.
func (s *service) UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	return s.categories.Update(ctx, id, func(c *domain.Category) {
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Label != nil {
			c.Label = *patch.Label
		}
		if patch.Icon != nil {
			c.Icon = *patch.Icon
		}
		c.UpdatedAt = time.Now()
	})
}

// DeleteCategory removes the category without touching products that
// reference it. Their dangling slug degrades to uncategorized in the
// stats. Deleting an unknown id is a no-op.
func (s *service) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

// Categories returns all registered categories in creation order
func (s *service) Categories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func clampStock(quantity int) int {
	if quantity < 0 {
		return 0
	}
	return quantity
}
