package store

import (
	"context"
	"errors"
	"sync"

	"sofa-stock/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductStore defines the interface for product data access
type ProductStore interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, id uuid.UUID, apply func(*domain.Product)) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}

// productStore keeps the product collection in memory. Insertion order is
// the default display order, so the backing structure is a slice rather
// than a map.
type productStore struct {
	mu       sync.RWMutex
	products []*domain.Product
}

// NewProductStore creates an empty in-memory ProductStore.
func NewProductStore() ProductStore {
	return &productStore{}
}

// NewSeededProductStore creates a ProductStore pre-populated with the given
// products, preserving their order.
func NewSeededProductStore(seed []*domain.Product) ProductStore {
	s := &productStore{products: make([]*domain.Product, 0, len(seed))}
	for _, p := range seed {
		cp := *p
		s.products = append(s.products, &cp)
	}
	return s
}

// Create appends a new product to the collection
func (s *productStore) Create(_ context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *product
	s.products = append(s.products, &cp)
	return nil
}

// Update applies a mutation to the matching product and returns a copy of
// the result. Returns ErrProductNotFound if no product has the given id.
func (s *productStore) Update(_ context.Context, id uuid.UUID, apply func(*domain.Product)) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			apply(p)
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrProductNotFound
}

// Delete removes the matching product. Deleting an absent id is a no-op,
// so repeated deletes are idempotent.
func (s *productStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return nil
}

// FindByID retrieves a copy of the product with the given id
func (s *productStore) FindByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrProductNotFound
}

// List returns a snapshot of all products in insertion order
func (s *productStore) List(_ context.Context) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*domain.Product, 0, len(s.products))
	for _, p := range s.products {
		cp := *p
		products = append(products, &cp)
	}
	return products, nil
}
