package repositories

import (
	"sync"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	users  map[string]models.User
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
		users:  make(map[string]models.User),
	}
}

// SeedUser registers a user so GetByIDWithUser can expand it.
func (r *MockOrderRepository) SeedUser(user models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
}

// GetAll returns all orders.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NotFound("order", id)
	}
	return &order, nil
}

// GetByIDWithUser returns an order with the owning user's name and email
// expanded, when the user is known to the mock.
func (r *MockOrderRepository) GetByIDWithUser(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NotFound("order", id)
	}
	if user, ok := r.users[order.UserID]; ok {
		order.User = &models.User{ID: user.ID, Username: user.Username, Email: user.Email}
	}
	return &order, nil
}

// GetByUserID returns all orders belonging to a user.
func (r *MockOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			orderList = append(orderList, order)
		}
	}
	return orderList, nil
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = models.NewOrderID()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// UpdatePaymentInfo replaces the stored order's payment info.
func (r *MockOrderRepository) UpdatePaymentInfo(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[order.ID]
	if !ok {
		return apperrors.NotFound("order", order.ID)
	}
	stored.PaymentInfo = order.PaymentInfo
	stored.UpdatedAt = time.Now()
	r.orders[order.ID] = stored
	return nil
}

// Delete removes an order by its ID, reporting the number of affected
// entries. A missing ID reports zero without an error.
func (r *MockOrderRepository) Delete(id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return 0, nil
	}
	delete(r.orders, id)
	return 1, nil
}
