package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a single product line inside a cart. UnitPrice is the product
// price captured when the item was first added; later product price changes
// never touch it.
type CartItem struct {
	ProductID    uuid.UUID `json:"product" bson:"product_id"`
	UnitPrice    float64   `json:"unitPrice" bson:"unit_price"`
	Quantity     int       `json:"quantity" bson:"quantity"`
	ItemDiscount float64   `json:"itemDiscount" bson:"item_discount"`
}

// Cart holds one user's active cart. TotalPrice is derived from the items and
// CartDiscount and is recomputed after every mutation, never set directly.
// Version is bumped on every save and backs the optional conditional replace
// in the repository.
type Cart struct {
	ID           uuid.UUID  `json:"id" bson:"_id"`
	UserID       uuid.UUID  `json:"user" bson:"user_id"`
	Items        []CartItem `json:"items" bson:"items"`
	CartDiscount float64    `json:"cartDiscount" bson:"cart_discount"`
	TotalPrice   float64    `json:"totalPrice" bson:"total_price"`
	Version      int64      `json:"-" bson:"version"`
	CreatedAt    time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updated_at"`
}

// CartProduct is the display projection of a product joined into a cart read.
type CartProduct struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Price  float64   `json:"price"`
	Images []string  `json:"images"`
}

// CartItemView is a cart line with its product resolved at read time.
type CartItemView struct {
	Product      CartProduct `json:"product"`
	UnitPrice    float64     `json:"unitPrice"`
	Quantity     int         `json:"quantity"`
	ItemDiscount float64     `json:"itemDiscount"`
}

// CartView is the read model returned by GetCart. The product join is not
// persisted.
type CartView struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user"`
	Items        []CartItemView `json:"items"`
	CartDiscount float64        `json:"cartDiscount"`
	TotalPrice   float64        `json:"totalPrice"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// AddItemRequest is the payload for POST /api/cart.
type AddItemRequest struct {
	User     string `json:"user"`
	Product  string `json:"product"`
	Quantity *int   `json:"quantity"`
}

// RemoveItemRequest is the payload for POST /api/cart/remove/item.
type RemoveItemRequest struct {
	User    string `json:"user"`
	Product string `json:"product"`
}

// UpdateQuantityRequest is the payload for PUT /api/cart/update/qty.
// Quantity is a pointer so a missing field can be told apart from zero;
// zero and negative values are accepted and passed through.
type UpdateQuantityRequest struct {
	User     string `json:"user"`
	Product  string `json:"product"`
	Quantity *int   `json:"quantity"`
}

// ApplyDiscountRequest is the payload for POST /api/cart/apply/discount.
type ApplyDiscountRequest struct {
	User         string   `json:"user"`
	CartDiscount *float64 `json:"cartDiscount"`
}
