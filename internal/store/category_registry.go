package store

import (
	"context"
	"errors"
	"sync"

	"sofa-stock/internal/domain"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category with this slug already exists")
)

// CategoryRegistry defines the interface for category data access
type CategoryRegistry interface {
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, id string, apply func(*domain.Category)) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}

// categoryRegistry keeps the category collection in memory, slice-backed so
// listing preserves creation order.
type categoryRegistry struct {
	mu         sync.RWMutex
	categories []*domain.Category
}

// NewCategoryRegistry creates a CategoryRegistry pre-populated with the
// given seed, preserving its order.
func NewCategoryRegistry(seed []*domain.Category) CategoryRegistry {
	r := &categoryRegistry{categories: make([]*domain.Category, 0, len(seed))}
	for _, c := range seed {
		cp := *c
		r.categories = append(r.categories, &cp)
	}
	return r
}

// Create appends a new category. Returns ErrCategoryExists when a category
// with the same slug is already registered.
func (r *categoryRegistry) Create(_ context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.ID == category.ID {
			return ErrCategoryExists
		}
	}

	cp := *category
	r.categories = append(r.categories, &cp)
	return nil
}

// Update applies a mutation to the matching category and returns a copy of
// the result. Returns ErrCategoryNotFound if no category has the given id.
func (r *categoryRegistry) Update(_ context.Context, id string, apply func(*domain.Category)) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.ID == id {
			apply(c)
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrCategoryNotFound
}

// Delete removes the matching category. Products referencing the deleted
// slug are left alone; the stats path treats the dangling reference as
// uncategorized. Deleting an absent id is a no-op.
func (r *categoryRegistry) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

// FindByID retrieves a copy of the category with the given slug
func (r *categoryRegistry) FindByID(_ context.Context, id string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrCategoryNotFound
}

// List returns a snapshot of all categories in creation order
func (r *categoryRegistry) List(_ context.Context) ([]*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		categories = append(categories, &cp)
	}
	return categories, nil
}
