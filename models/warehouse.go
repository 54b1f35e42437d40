package models

import (
	"time"

	"github.com/google/uuid"
)

// WarehouseLocation is the embedded address of a warehouse.
type WarehouseLocation struct {
	Address    string `json:"address,omitempty" bson:"address,omitempty"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	Country    string `json:"country" bson:"country"`
	PostalCode string `json:"postalCode,omitempty" bson:"postal_code,omitempty"`
}

// WarehouseManager is the embedded contact for a warehouse.
type WarehouseManager struct {
	Name    string `json:"name,omitempty" bson:"name,omitempty"`
	Contact string `json:"contact,omitempty" bson:"contact,omitempty"`
}

type Warehouse struct {
	ID             uuid.UUID         `json:"id" bson:"_id"`
	Name           string            `json:"name" bson:"name"`
	Location       WarehouseLocation `json:"location" bson:"location"`
	Capacity       int               `json:"capacity" bson:"capacity"`
	Manager        WarehouseManager  `json:"manager" bson:"manager"`
	InventoryCount int               `json:"inventoryCount" bson:"inventory_count"`
	IsActive       bool              `json:"isActive" bson:"is_active"`
	CreatedAt      time.Time         `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time         `json:"updatedAt" bson:"updated_at"`
}

// WarehouseRequest is the payload for creating or updating a warehouse.
// IsActive is a pointer so an explicit false survives the merge on update.
type WarehouseRequest struct {
	Name           string             `json:"name"`
	Location       *WarehouseLocation `json:"location"`
	Capacity       *int               `json:"capacity"`
	Manager        *WarehouseManager  `json:"manager"`
	InventoryCount *int               `json:"inventoryCount"`
	IsActive       *bool              `json:"isActive"`
}
