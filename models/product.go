package models

import (
	"time"

	"github.com/google/uuid"
)

// Ratings is the aggregate review score embedded in a product.
type Ratings struct {
	Average float64 `json:"average" bson:"average"`
	Count   int     `json:"count" bson:"count"`
}

type Product struct {
	ID          uuid.UUID  `json:"id" bson:"_id"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	Category    *uuid.UUID `json:"category,omitempty" bson:"category,omitempty"`
	Price       float64    `json:"price" bson:"price"`
	Currency    string     `json:"currency" bson:"currency"`
	Stock       int        `json:"stock" bson:"stock"`
	Discount    float64    `json:"discount" bson:"discount"`
	Warehouse   *uuid.UUID `json:"warehouse,omitempty" bson:"warehouse,omitempty"`
	Images      []string   `json:"images" bson:"images"`
	Ratings     Ratings    `json:"ratings" bson:"ratings"`
	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updated_at"`
}

// CreateProductRequest is the payload for POST /api/product.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Currency    string   `json:"currency"`
	Stock       *int     `json:"stock"`
	Discount    *float64 `json:"discount"`
	Warehouse   string   `json:"warehouse"`
	Images      []string `json:"images"`
}

// ProductDetail is a product with its category resolved at read time.
type ProductDetail struct {
	Product
	CategoryDetail *CategoryRef `json:"categoryDetail,omitempty"`
}

// CategoryRef is the slim category projection joined into product reads.
type CategoryRef struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}
