package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// OrderEventPublisher publishes order lifecycle events to the message
// broker. Implemented by the RabbitMQ client; nil disables publication.
type OrderEventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderService manages the order lifecycle: creation with stock-adjustment
// side effects, status transitions, reads, and deletion.
type OrderService struct {
	uow       repositories.UnitOfWork
	orderRepo repositories.OrderRepository
	publisher OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(uow repositories.UnitOfWork, orderRepo repositories.OrderRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		uow:       uow,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// CreateOrder creates a new order for the given user. The order identifier
// is a short random token, mirrored into PaymentInfo.ID. The order insert
// and one stock decrement per line item run in a single unit of work: a
// product with insufficient stock aborts the whole creation.
func (s *OrderService) CreateOrder(userID string, order models.Order) (*models.Order, error) {
	if len(order.Items) == 0 {
		return nil, apperrors.New(apperrors.KindValidation, "order must contain at least one item")
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return nil, apperrors.New(apperrors.KindValidation,
				fmt.Sprintf("quantity for product %s must be positive", item.ProductID))
		}
	}

	order.ID = models.NewOrderID()
	order.UserID = userID
	order.User = nil
	order.PaymentInfo.ID = order.ID
	order.PaymentInfo.DeliveryStatus = models.DeliveryProcessing
	order.PaymentInfo.DeliveredAt = nil
	if order.PaymentInfo.PaymentStatus == "" {
		order.PaymentInfo.PaymentStatus = models.PaymentPending
	}
	if !order.PaymentInfo.PaymentStatus.Valid() {
		return nil, apperrors.New(apperrors.KindValidation,
			fmt.Sprintf("invalid payment status: %s", order.PaymentInfo.PaymentStatus))
	}

	err := s.uow.Do(func(orders repositories.OrderRepository, products repositories.ProductRepository) error {
		// Capture the current price on each line item before persisting.
		for i := range order.Items {
			product, err := products.GetByID(order.Items[i].ProductID)
			if err != nil {
				return err
			}
			order.Items[i].Price = product.Price
		}

		if err := orders.Create(&order); err != nil {
			return err
		}

		for _, item := range order.Items {
			if err := products.DecrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.CreationFailed("order creation failed", err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"order_id":        order.ID,
		"user_id":         order.UserID,
		"delivery_status": order.PaymentInfo.DeliveryStatus,
		"items":           len(order.Items),
	})

	return &order, nil
}

// TransitionOrder moves an order to the requested delivery status. Terminal
// orders (Delivered, Cancelled) reject any transition. Delivered stamps the
// delivery timestamp; Cancelled marks the payment as failed. Only the
// payment/delivery columns are persisted.
func (s *OrderService) TransitionOrder(id string, next models.DeliveryStatus) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	current := order.PaymentInfo.DeliveryStatus
	if current.Terminal() {
		return nil, apperrors.InvalidTransition(
			fmt.Sprintf("order %s is %s and cannot be updated", id, current))
	}
	if !current.CanTransitionTo(next) {
		return nil, apperrors.InvalidTransition(
			fmt.Sprintf("order %s cannot move from %s to %s", id, current, next))
	}

	order.PaymentInfo.DeliveryStatus = next
	switch next {
	case models.DeliveryDelivered:
		now := time.Now()
		order.PaymentInfo.DeliveredAt = &now
	case models.DeliveryCancelled:
		order.PaymentInfo.PaymentStatus = models.PaymentFailed
		order.PaymentInfo.DeliveredAt = nil
	}

	if err := s.orderRepo.UpdatePaymentInfo(order); err != nil {
		return nil, err
	}

	s.publishEvent("order.status_updated", map[string]interface{}{
		"order_id":        order.ID,
		"delivery_status": order.PaymentInfo.DeliveryStatus,
		"payment_status":  order.PaymentInfo.PaymentStatus,
	})

	return order, nil
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetUserOrders retrieves all orders belonging to a user.
func (s *OrderService) GetUserOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetOrderWithUser retrieves a single order with the owning user's name and
// email expanded.
func (s *OrderService) GetOrderWithUser(id string) (*models.Order, error) {
	return s.orderRepo.GetByIDWithUser(id)
}

// DeleteOrder removes an order, reporting how many rows were affected.
// Deleting a non-existent ID reports zero without an error.
func (s *OrderService) DeleteOrder(id string) (int64, error) {
	return s.orderRepo.Delete(id)
}

// publishEvent sends an order event to the broker. Publication is
// best-effort: failures are logged and never affect the request outcome.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
