package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderItem represents a single line item within an order.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price"` // Price at the time of order
}

// ShippingInfo holds the delivery address for an order. The order core
// treats these fields as opaque.
type ShippingInfo struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
}

// PaymentInfo tracks payment and delivery progress for an order.
// ID always equals the owning order's ID; it is assigned at creation.
// DeliveredAt is nil until the order reaches Delivered.
type PaymentInfo struct {
	ID             string         `json:"id"`
	PaymentStatus  PaymentStatus  `json:"payment_status"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`
	DeliveredAt    *time.Time     `json:"delivered_at,omitempty"`
}

// Order represents a customer purchase record aggregating line items,
// shipping, and payment/delivery status.
type Order struct {
	ID           string       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string       `json:"user_id" gorm:"index;type:varchar(36)"`
	User         *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items        []OrderItem  `json:"items" gorm:"foreignKey:OrderID" validate:"required,min=1,dive"`
	ShippingInfo ShippingInfo `json:"shipping_info" gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentInfo  PaymentInfo  `json:"payment_info" gorm:"embedded;embeddedPrefix:payment_"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NewOrderID generates a short order identifier: the first segment of a
// random UUID. Collision probability is negligible at this scale.
func NewOrderID() string {
	return strings.SplitN(uuid.New().String(), "-", 2)[0]
}
