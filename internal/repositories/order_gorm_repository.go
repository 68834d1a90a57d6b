package repositories

import (
	"fmt"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders from the database.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID from the database.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("order", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByIDWithUser retrieves an order with the owning user's name and email
// expanded.
func (r *GORMOrderRepository) GetByIDWithUser(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "email")
		}).
		First(&order, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("order", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByUserID retrieves all orders belonging to a user.
func (r *GORMOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Find(&orders, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// Create creates a new order with its line items in the database.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdatePaymentInfo persists only the payment/delivery columns, so a narrow
// status update cannot be blocked by unrelated validation on the rest of the
// row.
func (r *GORMOrderRepository) UpdatePaymentInfo(order *models.Order) error {
	res := r.db.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"payment_payment_status":  order.PaymentInfo.PaymentStatus,
			"payment_delivery_status": order.PaymentInfo.DeliveryStatus,
			"payment_delivered_at":    order.PaymentInfo.DeliveredAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update order %s: %w", order.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("order", order.ID)
	}
	return nil
}

// Delete removes an order and its line items, reporting the number of order
// rows affected. Zero affected rows is not an error.
func (r *GORMOrderRepository) Delete(id string) (int64, error) {
	if err := r.db.Delete(&models.OrderItem{}, "order_id = ?", id).Error; err != nil {
		return 0, fmt.Errorf("failed to delete order items for order %s: %w", id, err)
	}
	res := r.db.Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete order %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
