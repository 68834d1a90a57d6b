package handlers

import (
	"log"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user-facing order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/", h.HandleGetUserOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
}

// RegisterAdminRoutes registers the admin-only order routes. The caller
// mounts these behind the admin middleware.
func (h *OrderHandler) RegisterAdminRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetAllOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderWithUser)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
}

// HandleCreateOrder creates a new order for the authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		log.Printf("Error parsing create order request body: %v", err)
		return apperrors.Wrap(apperrors.KindValidation, "Invalid request body", err)
	}

	if err := h.validate.Struct(order); err != nil {
		return apperrors.Wrap(apperrors.KindValidation, "Order validation failed", err)
	}

	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return apperrors.Unauthorized("Missing user identity")
	}

	createdOrder, err := h.service.CreateOrder(userID, order)
	if err != nil {
		log.Printf("Error creating order for user %s: %v", userID, err)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Order created successfully",
		"order":   createdOrder,
	})
}

// HandleGetUserOrders retrieves the authenticated user's orders.
func (h *OrderHandler) HandleGetUserOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return apperrors.Unauthorized("Missing user identity")
	}

	orders, err := h.service.GetUserOrders(userID)
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", userID, err)
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// HandleGetAllOrders retrieves all orders.
func (h *OrderHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}

// HandleGetOrderWithUser retrieves a single order with the owning user's
// name and email expanded.
func (h *OrderHandler) HandleGetOrderWithUser(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderWithUser(orderID)
	if err != nil {
		log.Printf("Error getting order %s with user: %v", orderID, err)
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// UpdateOrderStatusRequest carries the target delivery status for a
// transition. Nothing else is accepted; in particular the order's owner
// cannot be reassigned through this endpoint.
type UpdateOrderStatusRequest struct {
	PaymentInfo struct {
		DeliveryStatus models.DeliveryStatus `json:"delivery_status" validate:"required"`
	} `json:"payment_info"`
}

// HandleUpdateOrderStatus transitions an order's delivery status.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update body for order %s: %v", orderID, err)
		return apperrors.Wrap(apperrors.KindValidation, "Invalid request body", err)
	}
	if req.PaymentInfo.DeliveryStatus == "" {
		return apperrors.New(apperrors.KindValidation, "Delivery status is required")
	}

	order, err := h.service.TransitionOrder(orderID, req.PaymentInfo.DeliveryStatus)
	if err != nil {
		log.Printf("Error updating status for order %s: %v", orderID, err)
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"order":   order,
	})
}

// HandleDeleteOrder removes an order. A non-existent ID still yields a 200
// with a zero deleted count.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")

	deleted, err := h.service.DeleteOrder(orderID)
	if err != nil {
		log.Printf("Error deleting order %s: %v", orderID, err)
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order deleted successfully",
		"deleted": deleted,
	})
}
