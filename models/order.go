package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a product reference with quantity inside an order.
type OrderItem struct {
	ProductID uuid.UUID `json:"product" bson:"product_id"`
	Quantity  int       `json:"quantity" bson:"quantity"`
}

// Order is a placed order. Order creation is independent of the cart: it
// neither consumes nor clears it.
type Order struct {
	ID          uuid.UUID   `json:"id" bson:"_id"`
	UserID      uuid.UUID   `json:"user" bson:"user_id"`
	Products    []OrderItem `json:"products" bson:"products"`
	TotalAmount float64     `json:"totalAmount" bson:"total_amount"`
	Status      OrderStatus `json:"status" bson:"status"`
	CreatedAt   time.Time   `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" bson:"updated_at"`
}

// OrderItemView is an order line with its product resolved at read time.
type OrderItemView struct {
	Product  CartProduct `json:"product"`
	Quantity int         `json:"quantity"`
}

// OrderUserRef is the slim user projection joined into order reads.
type OrderUserRef struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

// OrderDetail is an order with its user and products resolved at read time.
// The joins are not persisted.
type OrderDetail struct {
	Order
	UserDetail     *OrderUserRef   `json:"userDetail,omitempty"`
	ProductDetails []OrderItemView `json:"productDetails"`
}

// CreateOrderRequest is the payload for POST /api/order.
type CreateOrderRequest struct {
	User        string      `json:"user"`
	Products    []OrderItem `json:"products"`
	TotalAmount *float64    `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
}

// UpdateOrderStatusRequest is the payload for PUT /api/order/:id/status.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

// OrderCreatedEvent is published to the configured event sink when an order
// is created.
type OrderCreatedEvent struct {
	Event       string      `json:"event"`
	OrderID     string      `json:"order_id"`
	UserID      string      `json:"user_id"`
	Products    []OrderItem `json:"products"`
	TotalAmount float64     `json:"total_amount"`
	Timestamp   time.Time   `json:"timestamp"`
}
