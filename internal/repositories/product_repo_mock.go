package repositories

import (
	"fmt"
	"sync"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperrors.NotFound("product", id)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return apperrors.NotFound("product", product.ID)
	}
	r.products[product.ID] = *product
	return nil
}

// DecrementStock reduces the product's stock by quantity, rejecting the
// decrement when it would drop stock below zero.
func (r *MockProductRepository) DecrementStock(id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok || product.Stock < quantity {
		return fmt.Errorf("product %s: %w", id, ErrInsufficientStock)
	}
	product.Stock -= quantity
	r.products[id] = product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return apperrors.NotFound("product", id)
	}
	delete(r.products, id)
	return nil
}
