package repositories

import (
	"errors"

	"storefront/internal/models"
)

// ErrInsufficientStock is returned by DecrementStock when the product does
// not exist or its remaining stock does not cover the requested quantity.
// Stock never goes negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// DecrementStock atomically reduces the product's stock by quantity,
	// failing with ErrInsufficientStock rather than going below zero.
	DecrementStock(id string, quantity int) error
}
