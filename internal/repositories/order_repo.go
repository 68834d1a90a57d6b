package repositories

import (
	"storefront/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	// GetByIDWithUser loads the order with the owning user's name and email
	// expanded. Used by admin detail reads.
	GetByIDWithUser(id string) (*models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	Create(order *models.Order) error
	// UpdatePaymentInfo persists only the payment/delivery columns of the
	// order, leaving the rest of the row untouched.
	UpdatePaymentInfo(order *models.Order) error
	// Delete removes an order and reports how many rows were affected.
	// Deleting a non-existent ID is not an error; it reports zero.
	Delete(id string) (int64, error)
}
